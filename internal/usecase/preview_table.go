package usecase

import (
	"context"

	"github.com/MegaPintoos/Courses/internal/domain"
	"github.com/MegaPintoos/Courses/internal/ports"
)

type PreviewTable struct {
	entries ports.EntrySource
}

func NewPreviewTable(es ports.EntrySource) *PreviewTable {
	return &PreviewTable{entries: es}
}

// Execute returns the markdown of the table that would be injected, without
// the warning comment. The README is not read.
func (uc *PreviewTable) Execute(ctx context.Context, dataPath string) (string, int, error) {
	entries, err := uc.entries.LoadEntries(ctx, dataPath)
	if err != nil {
		return "", 0, err
	}

	table, err := domain.BuildTable(entries)
	if err != nil {
		return "", 0, err
	}
	return table.Markdown(), table.Entries, nil
}
