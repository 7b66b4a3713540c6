package tui

import (
	"log/slog"
)

type Deps struct {
	// Title is shown above the pager, usually the data file path.
	Title string
	// Markdown is the document to page through.
	Markdown string
	// Style is a glamour standard style name; empty picks one from the terminal.
	Style string

	Logger *slog.Logger
}
