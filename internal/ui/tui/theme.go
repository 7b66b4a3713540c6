package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	OK       lipgloss.Style
	Fail     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		OK:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Fail:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}
