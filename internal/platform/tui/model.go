package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-terminal/internal/display"
)

// Model adapts a Terminal to Bubble Tea. The program must run with
// tea.WithoutRenderer: the terminal writes its own escape sequences, so
// View renders nothing.
type Model struct {
	term *Terminal
	keys KeyMap
}

// NewModel creates the Bubble Tea model for term.
func NewModel(term *Terminal) Model {
	return Model{term: term, keys: DefaultKeyMap()}
}

// Init prints the banner and prompt.
func (m Model) Init() tea.Cmd {
	m.term.Start()
	return m.term.timers.drain()
}

// Update delivers keystrokes and timer ticks to the terminal.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.term.Port.Write(display.LineBreak)
			m.term.Quit()
			break
		}
		if in, ok := m.keys.Translate(msg); ok {
			m.term.Feed(in)
		}
	case fireMsg:
		m.term.timers.fire(msg)
	}

	if m.term.Quitting() {
		return m, tea.Quit
	}
	return m, m.term.timers.drain()
}

// View implements tea.Model.
func (m Model) View() string {
	return ""
}

// Terminal returns the session the model drives.
func (m Model) Terminal() *Terminal {
	return m.term
}
