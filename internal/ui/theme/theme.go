package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduquest/internal/orchestrator"
)

// Color palette — studious, calm, readable on dark terminals
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Chat roles
var (
	UserLine = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	AssistantLine = lipgloss.NewStyle().
			Foreground(Text)

	InfoLine = lipgloss.NewStyle().
			Foreground(Secondary)

	SuccessLine = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	WarnLine = lipgloss.NewStyle().
			Foreground(Accent)

	ErrorLine = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	InputBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)
)

// ForKind maps an orchestrator message kind to its render style.
func ForKind(kind orchestrator.MessageKind) lipgloss.Style {
	switch kind {
	case orchestrator.KindInfo:
		return InfoLine
	case orchestrator.KindSuccess:
		return SuccessLine
	case orchestrator.KindWarn:
		return WarnLine
	case orchestrator.KindError:
		return ErrorLine
	case orchestrator.KindBody:
		return Body
	default:
		return AssistantLine
	}
}
