package app

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduquest/internal/ui/theme"
)

func (m *Model) View() tea.View {
	var b strings.Builder

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderSeparator())
	b.WriteString("\n")
	b.WriteString(theme.UserLine.Render("> "))
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.renderSeparator())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())

	v := tea.NewView(b.String())
	v.AltScreen = true
	return v
}

// rebuildViewport re-renders the transcript into the viewport. Called when
// entries, dimensions, or the waiting spinner change.
func (m *Model) rebuildViewport() {
	var b strings.Builder

	for _, e := range m.entries {
		if e.user {
			b.WriteString(theme.UserLine.Render("You> "))
			b.WriteString(e.text)
		} else {
			b.WriteString(theme.ForKind(e.kind).Render(e.text))
		}
		b.WriteString("\n\n")
	}

	if m.waiting {
		b.WriteString(m.spinner.View())
		b.WriteString(" Thinking...\n\n")
	}

	m.viewport.SetContent(b.String())
}

func (m *Model) renderSeparator() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	return theme.Subtitle.Render(strings.Repeat("─", width))
}

func (m *Model) renderStatusBar() string {
	return theme.Hint.Render("enter send · pgup/pgdn scroll · type 'help' for commands · ctrl+c quit")
}
