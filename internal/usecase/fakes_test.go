package usecase

import (
	"context"
	"slices"

	"github.com/MegaPintoos/Courses/internal/domain"
)

type fakeEntrySource struct {
	entries []domain.Entry
	err     error
	calls   int
}

func (f *fakeEntrySource) LoadEntries(_ context.Context, _ string) ([]domain.Entry, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return slices.Clone(f.entries), nil
}

type fakeDocStore struct {
	docs     map[string][]string
	readErr  error
	writeErr error
	writes   int
}

func newFakeDocStore(path string, lines ...string) *fakeDocStore {
	return &fakeDocStore{docs: map[string][]string{path: lines}}
}

func (f *fakeDocStore) ReadLines(path string) ([]string, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	lines, ok := f.docs[path]
	if !ok {
		return nil, &domain.OpError{Op: "fake.read", Kind: domain.KindNotFound, Path: path, Err: domain.ErrNotFound}
	}
	return slices.Clone(lines), nil
}

func (f *fakeDocStore) WriteLines(path string, lines []string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.writes++
	f.docs[path] = slices.Clone(lines)
	return nil
}

type fakeLinter struct {
	stats domain.TableStats
	err   error
	input string
}

func (f *fakeLinter) TableStats(md []byte) (domain.TableStats, error) {
	f.input = string(md)
	return f.stats, f.err
}

func course(label string, d domain.Difficulty, line int) domain.Entry {
	return domain.Entry{
		Topic:       "Go",
		Format:      "video",
		Difficulty:  d,
		ReleaseYear: "2023",
		Price:       "free",
		Label:       label,
		URL:         "https://example.com/" + label,
		Author:      "Author",
		Line:        line,
	}
}
