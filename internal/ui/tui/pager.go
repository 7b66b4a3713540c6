package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type renderFunc func(md string, width int, style string) (string, error)

type model struct {
	theme Theme
	deps  Deps

	render renderFunc
	vp     viewport.Model
	ready  bool
	width  int

	toast string
}

// Run pages through deps.Markdown in the alternate screen until the user quits.
func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	return model{
		theme:  DefaultTheme(),
		deps:   deps,
		render: RenderMarkdown,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.footerView())
		h := msg.Height - chrome
		if h < 1 {
			h = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, h)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = h
		}
		if msg.Width != m.width {
			m.width = msg.Width
			m.refresh()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		}
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *model) refresh() {
	out, err := m.render(m.deps.Markdown, m.width, m.deps.Style)
	if err != nil {
		if m.deps.Logger != nil {
			m.deps.Logger.Warn("preview.render.failed", "err", err)
		}
		m.toast = "Render failed, showing raw markdown"
		out = m.deps.Markdown
	}
	m.vp.SetContent(out)
}

func (m model) View() string {
	if !m.ready {
		return "loading…"
	}
	return m.headerView() + "\n" + m.vp.View() + "\n" + m.footerView()
}

func (m model) headerView() string {
	title := m.deps.Title
	if title == "" {
		title = "courses"
	}
	if m.width > 4 {
		title = clampString(title, m.width-4)
	}
	return m.theme.Title.Render(title)
}

func (m model) footerView() string {
	pct := 0.0
	if m.ready {
		pct = m.vp.ScrollPercent() * 100
	}
	help := fmt.Sprintf("↑/↓ scroll • q quit • %3.f%%", pct)
	if m.toast != "" {
		help = m.toast + " • " + help
	}
	return m.theme.Help.Render(help)
}
