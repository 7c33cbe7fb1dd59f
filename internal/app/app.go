// Package app is the Bubble Tea chat interface: a scrollable transcript, a
// single-line input, and a spinner while a turn is being processed.
package app

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/eduquest/internal/orchestrator"
)

// Layout constants for viewport height calculation.
const (
	separatorLines = 2
	inputLines     = 1
	statusLines    = 1
	minViewport    = 3
)

// entry is one rendered transcript line group.
type entry struct {
	user bool
	kind orchestrator.MessageKind
	text string
}

// turnMsg delivers a processed turn back into the event loop.
type turnMsg struct {
	turn orchestrator.Turn
}

// Model is the root Bubble Tea model.
type Model struct {
	ctx  context.Context
	orch *orchestrator.Orchestrator

	input    textarea.Model
	spinner  spinner.Model
	viewport viewport.Model

	entries []entry
	waiting bool

	width  int
	height int
}

// New builds the chat model and seeds the transcript with the welcome
// banner.
func New(ctx context.Context, orch *orchestrator.Orchestrator) *Model {
	ta := textarea.New()
	ta.Placeholder = "Ask me to plan your studies or quiz you..."
	ta.SetHeight(1)
	ta.SetWidth(76)
	ta.ShowLineNumbers = false

	plain := textarea.StyleState{
		Base:        lipgloss.NewStyle(),
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Prompt:      lipgloss.NewStyle(),
	}
	ta.SetStyles(textarea.Styles{Focused: plain, Blurred: plain})
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	vp := viewport.New(viewport.WithWidth(80), viewport.WithHeight(20))
	vp.MouseWheelEnabled = true
	vp.SoftWrap = true
	vp.KeyMap = viewport.KeyMap{}

	m := &Model{
		ctx:      ctx,
		orch:     orch,
		input:    ta,
		spinner:  sp,
		viewport: vp,
		width:    80,
	}
	m.appendTurn(orch.WelcomeMessage())
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textarea.Blink,
		m.spinner.Tick,
		m.input.Focus(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		fixed := separatorLines + inputLines + statusLines
		vpHeight := max(msg.Height-fixed, minViewport)

		m.viewport.SetWidth(msg.Width)
		m.viewport.SetHeight(vpHeight)
		m.input.SetWidth(msg.Width - 4)

		m.rebuildViewport()
		return m, nil

	case tea.MouseWheelMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.waiting {
			m.rebuildViewport()
		}
		return m, cmd

	case turnMsg:
		m.waiting = false
		m.appendTurn(msg.turn)
		if msg.turn.Quit {
			return m, tea.Quit
		}
		return m, m.input.Focus()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+d":
		return m, tea.Quit

	case "enter":
		if m.waiting {
			return m, nil
		}
		return m, m.submit()

	case "pgup":
		m.viewport.PageUp()
		return m, nil

	case "pgdown":
		m.viewport.PageDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the typed input through the orchestrator in a command so
// the event loop stays responsive while the providers are slow.
func (m *Model) submit() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}
	m.input.Reset()

	m.entries = append(m.entries, entry{user: true, text: text})
	m.waiting = true
	m.rebuildViewport()
	m.viewport.GotoBottom()

	return func() tea.Msg {
		return turnMsg{turn: m.orch.HandleTurn(m.ctx, text)}
	}
}

func (m *Model) appendTurn(t orchestrator.Turn) {
	for _, msg := range t.Messages {
		m.entries = append(m.entries, entry{kind: msg.Kind, text: msg.Text})
	}
	m.rebuildViewport()
	m.viewport.GotoBottom()
}

// Run starts the chat program and blocks until the conversation ends.
func Run(ctx context.Context, orch *orchestrator.Orchestrator) error {
	p := tea.NewProgram(New(ctx, orch), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
