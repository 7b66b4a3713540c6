package domain

import "testing"

func TestEntryValidate_Valid(t *testing.T) {
	if err := sampleEntry().Validate(); err != nil {
		t.Fatalf("expected valid entry, got %v", err)
	}
	if p := sampleEntry().Problems(); len(p) != 0 {
		t.Fatalf("expected no problems, got %+v", p)
	}
}

func TestEntryProblems(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Entry)
		field  string
	}{
		{"missing topic", func(e *Entry) { e.Topic = "" }, ColumnTopic},
		{"bad difficulty", func(e *Entry) { e.Difficulty = 4 }, ColumnDifficulty},
		{"zero difficulty", func(e *Entry) { e.Difficulty = 0 }, ColumnDifficulty},
		{"short year", func(e *Entry) { e.ReleaseYear = "21" }, ColumnReleaseYear},
		{"relative url", func(e *Entry) { e.URL = "/courses/go" }, ColumnURL},
		{"ftp url", func(e *Entry) { e.URL = "ftp://example.com/x" }, ColumnURL},
		{"missing author", func(e *Entry) { e.Author = "" }, ColumnAuthor},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := sampleEntry()
			c.mutate(&e)

			problems := e.Problems()
			if len(problems) != 1 {
				t.Fatalf("expected 1 problem, got %+v", problems)
			}
			if problems[0].Field != c.field {
				t.Fatalf("expected field %q, got %q (%s)", c.field, problems[0].Field, problems[0].Message)
			}
		})
	}
}

func TestEntryProblems_SortedByField(t *testing.T) {
	problems := Entry{Difficulty: DifficultyBeginner}.Problems()
	if len(problems) < 2 {
		t.Fatalf("expected several problems, got %+v", problems)
	}
	for i := 1; i < len(problems); i++ {
		if problems[i-1].Field > problems[i].Field {
			t.Fatalf("expected sorted problems, got %+v", problems)
		}
	}
}

func TestEntryValidate_PriceOptional(t *testing.T) {
	e := sampleEntry()
	e.Price = ""
	if err := e.Validate(); err != nil {
		t.Fatalf("expected empty price to be allowed, got %v", err)
	}
}

func TestEntryProblems_UnknownDifficultyMessage(t *testing.T) {
	e := sampleEntry()
	e.Difficulty = 7
	problems := e.Problems()
	if len(problems) != 1 {
		t.Fatalf("expected one problem, got %+v", problems)
	}
	if problems[0].Field != ColumnDifficulty || problems[0].Message != "difficulty must be 1, 2 or 3" {
		t.Fatalf("unexpected problem %+v", problems[0])
	}
}
