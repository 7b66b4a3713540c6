// Package domain contains the core model for coursetable: course entries, the
// markdown table they render into, and the marker-delimited region of a README
// that the table replaces.
//
// The domain is persistence-agnostic: it does not read CSV, touch the filesystem
// or know about the CLI. Infra adapters map into/from these types.
package domain
