package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/MegaPintoos/Courses/internal/domain"
	"github.com/MegaPintoos/Courses/internal/ports"
)

// Problem is one validation finding for an entry.
type Problem struct {
	Line    int
	Field   string
	Message string
}

func (p Problem) String() string {
	var b strings.Builder
	if p.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", p.Line)
	}
	if p.Field != "" {
		b.WriteString(p.Field)
		b.WriteString(": ")
	}
	b.WriteString(p.Message)
	return b.String()
}

type ValidationReport struct {
	Entries  int
	Problems []Problem
}

func (r ValidationReport) OK() bool { return len(r.Problems) == 0 }

type ValidateData struct {
	entries ports.EntrySource
}

func NewValidateData(es ports.EntrySource) *ValidateData {
	return &ValidateData{entries: es}
}

// Execute loads the data file and checks every entry. Problems in the data
// are returned in the report; the error is reserved for load failures.
func (uc *ValidateData) Execute(ctx context.Context, dataPath string) (ValidationReport, error) {
	entries, err := uc.entries.LoadEntries(ctx, dataPath)
	if err != nil {
		return ValidationReport{}, err
	}

	return ValidationReport{
		Entries:  len(entries),
		Problems: collectProblems(entries),
	}, nil
}

// collectProblems applies the entry rules plus cross-entry and rendering checks.
func collectProblems(entries []domain.Entry) []Problem {
	var out []Problem
	seenURL := map[string]int{}

	for _, e := range entries {
		for _, fp := range e.Problems() {
			out = append(out, Problem{Line: e.Line, Field: fp.Field, Message: fp.Message})
		}

		for _, f := range textFields(e) {
			if strings.ContainsAny(f.value, "|\n\r") {
				out = append(out, Problem{
					Line:    e.Line,
					Field:   f.name,
					Message: "must not contain '|' or line breaks (breaks the markdown table)",
				})
			}
		}

		if e.URL == "" {
			continue
		}
		if first, dup := seenURL[e.URL]; dup {
			out = append(out, Problem{
				Line:    e.Line,
				Field:   domain.ColumnURL,
				Message: fmt.Sprintf("duplicate url (first seen on line %d)", first),
			})
			continue
		}
		seenURL[e.URL] = e.Line
	}
	return out
}

type namedValue struct {
	name  string
	value string
}

func textFields(e domain.Entry) []namedValue {
	return []namedValue{
		{domain.ColumnTopic, e.Topic},
		{domain.ColumnFormat, e.Format},
		{domain.ColumnReleaseYear, e.ReleaseYear},
		{domain.ColumnPrice, e.Price},
		{domain.ColumnLabel, e.Label},
		{domain.ColumnURL, e.URL},
		{domain.ColumnAuthor, e.Author},
	}
}
