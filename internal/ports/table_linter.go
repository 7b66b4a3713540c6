package ports

import "github.com/MegaPintoos/Courses/internal/domain"

// TableLinter inspects rendered markdown and reports the shape of its table.
type TableLinter interface {
	TableStats(markdown []byte) (domain.TableStats, error)
}
