package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/MegaPintoos/Courses/internal/domain"
	"github.com/MegaPintoos/Courses/internal/ports"
)

type CheckResult struct {
	Entries  int
	UpToDate bool
	// Diff is a human-readable (-current +generated) diff of the README
	// region, empty when UpToDate.
	Diff  string
	Stats *domain.TableStats
}

type CheckReadme struct {
	entries ports.EntrySource
	docs    ports.DocumentStore
	linter  ports.TableLinter
}

type CheckOption func(*CheckReadme)

// WithLinter enables a structural check of the regenerated region.
func WithLinter(l ports.TableLinter) CheckOption {
	return func(uc *CheckReadme) {
		if l != nil {
			uc.linter = l
		}
	}
}

func NewCheckReadme(es ports.EntrySource, ds ports.DocumentStore, opts ...CheckOption) *CheckReadme {
	uc := &CheckReadme{
		entries: es,
		docs:    ds,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute runs the generation pipeline without writing and reports whether
// the README on disk already matches. A stale README is not an error.
func (uc *CheckReadme) Execute(ctx context.Context, req Request) (CheckResult, error) {
	r, err := renderReadme(ctx, uc.entries, uc.docs, req)
	if err != nil {
		return CheckResult{}, err
	}

	res := CheckResult{Entries: r.table.Entries}

	if uc.linter != nil {
		stats, err := uc.lint(r.table)
		if err != nil {
			return res, err
		}
		res.Stats = &stats
	}

	oldRegion, err := domain.ExtractTable(r.current)
	if err != nil {
		return res, err
	}
	newRegion, err := domain.ExtractTable(r.updated)
	if err != nil {
		return res, err
	}

	res.Diff = cmp.Diff(oldRegion, newRegion)
	res.UpToDate = res.Diff == ""
	return res, nil
}

func (uc *CheckReadme) lint(table domain.Table) (domain.TableStats, error) {
	md := strings.Join(table.Lines, "\n") + "\n"
	stats, err := uc.linter.TableStats([]byte(md))
	if err != nil {
		return stats, err
	}

	if stats.Tables != 1 || stats.Columns != domain.TableColumns || stats.Rows != table.Entries {
		return stats, &domain.OpError{
			Op:   "usecase.check.lint",
			Kind: domain.KindInvalidData,
			Err: fmt.Errorf("%w: generated region renders as %d table(s), %d column(s), %d row(s); expected 1, %d, %d",
				domain.ErrInvalidData, stats.Tables, stats.Columns, stats.Rows, domain.TableColumns, table.Entries),
		}
	}
	return stats, nil
}
