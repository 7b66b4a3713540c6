package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/MegaPintoos/Courses/internal/domain"
	"github.com/MegaPintoos/Courses/internal/ports"
)

const utf8BOM = "\ufeff"

// Loader reads course entries from a CSV (or TSV) file with a header row.
type Loader struct {
	comma rune
}

type Option func(*Loader)

// WithComma forces the field delimiter instead of inferring it from the file extension.
func WithComma(r rune) Option {
	return func(l *Loader) { l.comma = r }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.EntrySource = (*Loader)(nil)

func (l *Loader) LoadEntries(ctx context.Context, path string) ([]domain.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, domain.FileError("csvsource.open", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = l.delimiterFor(path)

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("file is empty, expected a header row")
		}
		return nil, invalidData(path, err)
	}

	cols, err := indexColumns(header)
	if err != nil {
		return nil, invalidData(path, err)
	}

	var entries []domain.Entry
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, invalidData(path, err)
		}

		line, _ := r.FieldPos(0)
		e, err := mapRecord(rec, cols, line)
		if err != nil {
			return nil, invalidData(path, err)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (l *Loader) delimiterFor(path string) rune {
	if l.comma != 0 {
		return l.comma
	}
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		return '\t'
	}
	return ','
}

// indexColumns maps each required column to its position in header. Header
// names are whitespace-trimmed; the first occurrence of a duplicate name wins.
func indexColumns(header []string) (map[string]int, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		name := strings.TrimSpace(h)
		if i == 0 {
			name = strings.TrimSpace(strings.TrimPrefix(name, utf8BOM))
		}
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}

	var missing []string
	cols := make(map[string]int, len(domain.RequiredColumns))
	for _, c := range domain.RequiredColumns {
		i, ok := pos[c]
		if !ok {
			missing = append(missing, c)
			continue
		}
		cols[c] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing column(s): %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func mapRecord(rec []string, cols map[string]int, line int) (domain.Entry, error) {
	get := func(name string) string {
		return strings.TrimSpace(rec[cols[name]])
	}

	raw := get(domain.ColumnDifficulty)
	d, err := strconv.Atoi(raw)
	if err != nil {
		return domain.Entry{}, fmt.Errorf("line %d: difficulty %q is not an integer", line, raw)
	}

	return domain.Entry{
		Topic:       get(domain.ColumnTopic),
		Format:      get(domain.ColumnFormat),
		Difficulty:  domain.Difficulty(d),
		ReleaseYear: get(domain.ColumnReleaseYear),
		Price:       get(domain.ColumnPrice),
		Label:       get(domain.ColumnLabel),
		URL:         get(domain.ColumnURL),
		Author:      get(domain.ColumnAuthor),
		Line:        line,
	}, nil
}

func invalidData(path string, err error) error {
	return &domain.OpError{
		Op:   "csvsource.load",
		Kind: domain.KindInvalidData,
		Path: path,
		Err:  fmt.Errorf("%w: %w", domain.ErrInvalidData, err),
	}
}
