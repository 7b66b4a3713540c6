package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func readmeWith(markers int) []string {
	lines := []string{"# Courses", ""}
	for i := 0; i < markers; i++ {
		lines = append(lines, MarkerToken, "old line")
	}
	return append(lines, "", "## Contributing")
}

func TestFindMarkerLines_SubstringMatch(t *testing.T) {
	lines := []string{
		"intro",
		"  " + MarkerToken + "  ",
		"middle",
		"prefix" + MarkerToken,
	}
	got := FindMarkerLines(lines, MarkerToken)
	if diff := cmp.Diff([]int{1, 3}, got); diff != "" {
		t.Fatalf("unexpected indexes (-want +got):\n%s", diff)
	}
}

func TestInjectTable_ReplacesRegion(t *testing.T) {
	readme := []string{
		"# Courses",
		MarkerToken,
		"stale 1",
		"stale 2",
		MarkerToken,
		"footer",
	}
	table := []string{"| a |", "| b |"}

	got, err := InjectTable(readme, table)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{
		"# Courses",
		MarkerToken,
		"| a |",
		"| b |",
		MarkerToken,
		"footer",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected readme (-want +got):\n%s", diff)
	}
	if readme[2] != "stale 1" {
		t.Fatalf("expected input not mutated")
	}
}

func TestInjectTable_AdjacentMarkers(t *testing.T) {
	readme := []string{MarkerToken, MarkerToken}
	got, err := InjectTable(readme, []string{"x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{MarkerToken, "x", MarkerToken}, got); diff != "" {
		t.Fatalf("unexpected readme (-want +got):\n%s", diff)
	}
}

func TestInjectTable_Idempotent(t *testing.T) {
	table, err := BuildTable([]Entry{sampleEntry(), sampleEntry()})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	base := []string{"# Title", MarkerToken, "anything", MarkerToken, "tail"}
	first, err := InjectTable(base, table.Lines)
	if err != nil {
		t.Fatalf("first inject: %v", err)
	}
	second, err := InjectTable(first, table.Lines)
	if err != nil {
		t.Fatalf("second inject: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("injection not idempotent (-first +second):\n%s", diff)
	}
}

func TestInjectTable_WrongMarkerCount(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		found string
	}{
		{"none", []string{"# Title", "body"}, "found 0"},
		{"one", []string{"# Title", MarkerToken, "body"}, "found 1"},
		{"three", []string{MarkerToken, "a", MarkerToken, "b", MarkerToken}, "found 3"},
		{"four", readmeWith(4), "found 4"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := InjectTable(c.lines, []string{"x"})
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrMarkerCount) {
				t.Fatalf("expected ErrMarkerCount, got %v", err)
			}
			if !IsKind(err, KindMarker) {
				t.Fatalf("expected KindMarker, got %v", err)
			}
			if !strings.Contains(err.Error(), c.found) {
				t.Fatalf("expected %q in error, got %v", c.found, err)
			}
			if !strings.Contains(err.Error(), MarkerToken) {
				t.Fatalf("expected token in error, got %v", err)
			}
		})
	}
}

func TestExtractTable(t *testing.T) {
	readme := []string{"top", MarkerToken, "a", "b", MarkerToken, "bottom"}
	got, err := ExtractTable(readme)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Fatalf("unexpected region (-want +got):\n%s", diff)
	}

	got[0] = "changed"
	if readme[2] != "a" {
		t.Fatalf("expected a copy, input was mutated")
	}

	if _, err := ExtractTable([]string{MarkerToken}); !errors.Is(err, ErrMarkerCount) {
		t.Fatalf("expected ErrMarkerCount, got %v", err)
	}
}
