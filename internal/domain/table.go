package domain

import (
	"fmt"
	"slices"
	"strings"
)

// WarningHeader is the HTML comment placed right after the opening marker.
var WarningHeader = []string{
	"<!---",
	"   WARNING: DO NOT EDIT THIS TABLE MANUALLY. IT IS AUTOMATICALLY GENERATED.",
	"   HEAD OVER TO CONTRIBUTING.MD FOR MORE DETAILS ON HOW TO MAKE CHANGES PROPERLY.",
	"-->",
}

// TableHeader is the markdown header row and its alignment row.
var TableHeader = []string{
	"| **topic** | **format** | **difficulty** | **release year** | **price** | **course** |",
	"|:---------:|:----------:|:--------------:|:----------------:|:---------:|:----------:|",
}

// TableColumns is the number of columns in the rendered table.
const TableColumns = 6

// Table is the generated block injected between the markers.
type Table struct {
	Lines   []string
	Entries int
}

// FormatEntry renders one entry as a markdown table row.
func FormatEntry(e Entry) (string, error) {
	bar, err := e.Difficulty.Bar()
	if err != nil {
		if e.Line > 0 {
			err = fmt.Errorf("line %d: %w", e.Line, err)
		}
		return "", &OpError{Op: "table.format_entry", Kind: KindInvalidData, Err: err}
	}

	return fmt.Sprintf("| %s | %s | %s | %s | %s | [%s](%s) by %s |",
		e.Topic, e.Format, bar, e.ReleaseYear, e.Price, e.Label, e.URL, e.Author), nil
}

// FormatEntries renders every entry, stopping at the first failure.
func FormatEntries(entries []Entry) ([]string, error) {
	rows := make([]string, 0, len(entries))
	for _, e := range entries {
		row, err := FormatEntry(e)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// BuildTable returns the warning block, the table header and one row per entry.
func BuildTable(entries []Entry) (Table, error) {
	rows, err := FormatEntries(entries)
	if err != nil {
		return Table{}, err
	}

	lines := make([]string, 0, len(WarningHeader)+len(TableHeader)+len(rows))
	lines = append(lines, WarningHeader...)
	lines = append(lines, TableHeader...)
	lines = append(lines, rows...)

	return Table{Lines: lines, Entries: len(rows)}, nil
}

// Markdown returns the table without the warning comment, as a single
// newline-terminated document suitable for rendering.
func (t Table) Markdown() string {
	body := t.Lines
	if len(body) >= len(WarningHeader) && slices.Equal(body[:len(WarningHeader)], WarningHeader) {
		body = body[len(WarningHeader):]
	}
	if len(body) == 0 {
		return ""
	}
	return strings.Join(body, "\n") + "\n"
}

// TableStats describes the first table found in a rendered markdown document.
type TableStats struct {
	Tables  int
	Columns int
	Rows    int // body rows, header excluded
}
