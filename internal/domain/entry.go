package domain

import "fmt"

// Column names expected in the data source header.
const (
	ColumnTopic       = "topic"
	ColumnFormat      = "format"
	ColumnDifficulty  = "difficulty"
	ColumnReleaseYear = "release_year"
	ColumnPrice       = "price"
	ColumnLabel       = "label"
	ColumnURL         = "url"
	ColumnAuthor      = "author"
)

// RequiredColumns lists every column an entry is built from, in table order.
var RequiredColumns = []string{
	ColumnTopic,
	ColumnFormat,
	ColumnDifficulty,
	ColumnReleaseYear,
	ColumnPrice,
	ColumnLabel,
	ColumnURL,
	ColumnAuthor,
}

// Difficulty is the 1..3 difficulty rating of a course.
type Difficulty int

const (
	DifficultyBeginner     Difficulty = 1
	DifficultyIntermediate Difficulty = 2
	DifficultyAdvanced     Difficulty = 3
)

var difficultyBars = map[Difficulty]string{
	DifficultyBeginner:     "🟩⬜⬜",
	DifficultyIntermediate: "🟩🟩⬜",
	DifficultyAdvanced:     "🟩🟩🟩",
}

// Bar returns the emoji bar shown in the difficulty column.
func (d Difficulty) Bar() (string, error) {
	bar, ok := difficultyBars[d]
	if !ok {
		return "", fmt.Errorf("%w: %d (expected 1, 2 or 3)", ErrUnknownDifficulty, int(d))
	}
	return bar, nil
}

// Valid reports whether d has a bar.
func (d Difficulty) Valid() bool {
	_, ok := difficultyBars[d]
	return ok
}

// Entry is one course row from the data source.
type Entry struct {
	Topic       string
	Format      string
	Difficulty  Difficulty
	ReleaseYear string
	Price       string
	Label       string
	URL         string
	Author      string

	// Line is the 1-based line in the data file (0 when unknown).
	Line int
}
