// Package mdlint parses rendered markdown with goldmark and reports the shape
// of the tables it contains, so the generated README region can be checked
// the way a GFM renderer will actually see it.
package mdlint

import (
	"errors"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/MegaPintoos/Courses/internal/domain"
	"github.com/MegaPintoos/Courses/internal/ports"
)

// Linter is stateless and safe to reuse.
type Linter struct {
	md goldmark.Markdown
}

func NewLinter() *Linter {
	return &Linter{
		md: goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
}

var _ ports.TableLinter = (*Linter)(nil)

// TableStats counts the tables in markdown and describes the first one.
// A document without any table is reported as KindInvalidData.
func (l *Linter) TableStats(markdown []byte) (domain.TableStats, error) {
	doc := l.md.Parser().Parse(text.NewReader(markdown))

	var stats domain.TableStats
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != east.KindTable {
			return ast.WalkContinue, nil
		}

		stats.Tables++
		if stats.Tables == 1 {
			stats.Columns, stats.Rows = describe(n)
		}
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return domain.TableStats{}, domain.ExecError("mdlint.walk", "", err)
	}

	if stats.Tables == 0 {
		return stats, &domain.OpError{
			Op:   "mdlint.table_stats",
			Kind: domain.KindInvalidData,
			Err:  errors.New("no markdown table found"),
		}
	}
	return stats, nil
}

func describe(table ast.Node) (columns, rows int) {
	for c := table.FirstChild(); c != nil; c = c.NextSibling() {
		switch c.Kind() {
		case east.KindTableHeader:
			columns = c.ChildCount()
		case east.KindTableRow:
			rows++
		}
	}
	return columns, rows
}
