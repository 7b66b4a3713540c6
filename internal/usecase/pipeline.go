package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MegaPintoos/Courses/internal/domain"
	"github.com/MegaPintoos/Courses/internal/ports"
)

// Request names the two files a run reads (and possibly rewrites).
type Request struct {
	DataPath   string
	ReadmePath string
	// Strict rejects entries that fail content validation before rendering.
	Strict bool
}

// rendered is the outcome of the read-transform-inject pipeline, before anything is written.
type rendered struct {
	table   domain.Table
	current []string
	updated []string
}

func renderReadme(ctx context.Context, src ports.EntrySource, docs ports.DocumentStore, req Request) (rendered, error) {
	entries, err := src.LoadEntries(ctx, req.DataPath)
	if err != nil {
		return rendered{}, err
	}

	if req.Strict {
		if err := strictCheck(req.DataPath, entries); err != nil {
			return rendered{}, err
		}
	}

	table, err := domain.BuildTable(entries)
	if err != nil {
		return rendered{}, err
	}

	if err := ctx.Err(); err != nil {
		return rendered{}, err
	}

	current, err := docs.ReadLines(req.ReadmePath)
	if err != nil {
		return rendered{}, err
	}

	updated, err := domain.InjectTable(current, table.Lines)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) && oe.Path == "" {
			oe.Path = req.ReadmePath
		}
		return rendered{}, err
	}

	return rendered{table: table, current: current, updated: updated}, nil
}

func strictCheck(path string, entries []domain.Entry) error {
	problems := collectProblems(entries)
	if len(problems) == 0 {
		return nil
	}

	const shown = 3
	msgs := make([]string, 0, shown)
	for i, p := range problems {
		if i == shown {
			break
		}
		msgs = append(msgs, p.String())
	}
	more := ""
	if len(problems) > shown {
		more = fmt.Sprintf(" (and %d more)", len(problems)-shown)
	}

	return &domain.OpError{
		Op:   "usecase.strict",
		Kind: domain.KindInvalidData,
		Path: path,
		Err:  fmt.Errorf("%w: %s%s", domain.ErrInvalidData, strings.Join(msgs, "; "), more),
	}
}
