package usecase

import (
	"context"
	"slices"

	"github.com/MegaPintoos/Courses/internal/ports"
)

type GenerateResult struct {
	Entries    int
	ReadmePath string
	// Changed is false when the README lines were already up to date.
	// The file is rewritten either way, which normalizes trailing whitespace
	// and line endings.
	Changed bool
}

type GenerateReadme struct {
	entries ports.EntrySource
	docs    ports.DocumentStore
}

func NewGenerateReadme(es ports.EntrySource, ds ports.DocumentStore) *GenerateReadme {
	return &GenerateReadme{
		entries: es,
		docs:    ds,
	}
}

// Execute loads the entries, renders the table, splices it between the README
// markers and rewrites the README in place.
func (uc *GenerateReadme) Execute(ctx context.Context, req Request) (GenerateResult, error) {
	r, err := renderReadme(ctx, uc.entries, uc.docs, req)
	if err != nil {
		return GenerateResult{}, err
	}

	res := GenerateResult{
		Entries:    r.table.Entries,
		ReadmePath: req.ReadmePath,
		Changed:    !slices.Equal(r.current, r.updated),
	}
	if err := ctx.Err(); err != nil {
		return GenerateResult{}, err
	}
	if err := uc.docs.WriteLines(req.ReadmePath, r.updated); err != nil {
		return GenerateResult{}, err
	}
	return res, nil
}
