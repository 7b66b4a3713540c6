package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// PlainStyle renders without colors or escape sequences.
const PlainStyle = "notty"

const minWrap = 20

// RenderMarkdown renders md for a terminal of the given width.
func RenderMarkdown(md string, width int, style string) (string, error) {
	if width < minWrap {
		width = minWrap
	}

	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	if strings.TrimSpace(style) == "" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
