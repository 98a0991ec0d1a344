package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-terminal/internal/core"
)

// Input is what one Bubble Tea key message means to a display port: the
// raw data the terminal would have sent and the named key, either of
// which may be empty.
type Input struct {
	Data string
	Key  string
}

// KeyMap holds the bindings the terminal recognizes.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Backspace key.Binding
	Escape    key.Binding
	Tab       key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:        key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous command")),
		Down:      key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next command")),
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run command")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete")),
		Escape:    key.NewBinding(key.WithKeys("esc")),
		Tab:       key.NewBinding(key.WithKeys("tab")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// Translate converts a key message into port input. It reports false for
// keys the terminal has no meaning for.
func (k KeyMap) Translate(msg tea.KeyMsg) (Input, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return Input{Data: core.CSI + "A", Key: core.KeyArrowUp}, true
	case key.Matches(msg, k.Down):
		return Input{Data: core.CSI + "B", Key: core.KeyArrowDown}, true
	case key.Matches(msg, k.Right):
		return Input{Data: core.CSI + "C", Key: core.KeyArrowRight}, true
	case key.Matches(msg, k.Left):
		return Input{Data: core.CSI + "D", Key: core.KeyArrowLeft}, true
	case key.Matches(msg, k.Enter):
		return Input{Data: core.CarriageReturn, Key: core.KeyEnter}, true
	case key.Matches(msg, k.Backspace):
		return Input{Data: core.Delete, Key: core.KeyBackspace}, true
	case key.Matches(msg, k.Escape):
		return Input{Data: core.Escape, Key: core.KeyEscape}, true
	case key.Matches(msg, k.Tab):
		return Input{Data: "\t", Key: core.KeyTab}, true
	}

	switch {
	case msg.Type == tea.KeySpace:
		return Input{Data: " ", Key: " "}, true
	case msg.Type == tea.KeyRunes:
		text := string(msg.Runes)
		if msg.Paste || len(msg.Runes) != 1 {
			return Input{Data: text}, true
		}
		return Input{Data: text, Key: text}, true
	case msg.Type >= 0 && msg.Type < 0x20:
		// Remaining control keys arrive as their C0 code.
		return Input{Data: string(rune(msg.Type)), Key: msg.String()}, true
	}
	return Input{}, false
}
