package ports

import (
	"context"

	"github.com/MegaPintoos/Courses/internal/domain"
)

// EntrySource loads course entries from a data file (e.g., CSV).
type EntrySource interface {
	LoadEntries(ctx context.Context, path string) ([]domain.Entry, error)
}
