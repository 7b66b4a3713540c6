package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/MegaPintoos/Courses/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("coursetable %s (commit=%s, date=%s)", Version, Commit, Date)
}
