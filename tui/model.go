// Package tui is the minimal interactive preview spec.md §1 names as an
// out-of-scope collaborator ("the interactive terminal UI and its
// key-dispatch/widget framework"): a single bubbletea model that renders
// a generated palette as a swatch grid plus the syntax-highlighted code
// sample, with no config editing and no live hue-grid widget.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jonathantroyer/base24gen/palette"
	"github.com/jonathantroyer/base24gen/preview"
	"github.com/jonathantroyer/base24gen/scheme"
)

// Model is the root bubbletea model: the scheme being previewed plus
// which of the two panes (swatches, highlighted code) has focus, the
// only piece of interactive state this minimal preview carries.
type Model struct {
	scheme scheme.Scheme
	pal    palette.Palette

	showHighlight bool
	warnings      []string
	quitting      bool
}

// New builds a Model over a palette and the warnings its generation run
// produced.
func New(s scheme.Scheme, p palette.Palette, warnings []string) Model {
	return Model{scheme: s, pal: p, warnings: warnings}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update dispatches the key events the preview supports: 'q'/ctrl+c to
// quit, tab to switch between the swatch grid and the code sample.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab", " ":
			m.showHighlight = !m.showHighlight
		}
	}
	return m, nil
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	footStyle  = lipgloss.NewStyle().Faint(true).Padding(1, 1, 0)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", titleStyle.Render(fmt.Sprintf("%s (%s)", m.scheme.Name, m.scheme.Variant)))

	if m.showHighlight {
		highlighted, err := preview.Highlight(m.pal)
		if err != nil {
			highlighted = warnStyle.Render(err.Error())
		}
		b.WriteString(highlighted)
	} else {
		b.WriteString(preview.Swatches(m.pal))
	}

	for _, w := range m.warnings {
		b.WriteString(warnStyle.Render("! " + w))
		b.WriteByte('\n')
	}

	b.WriteString(footStyle.Render("tab: toggle preview   q: quit"))
	return b.String()
}

// Run starts the bubbletea program and blocks until the user quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m).Run()
	return err
}
