package commands

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
	"github.com/vovakirdan/tui-terminal/internal/shell"
)

// Dialog shows modal messages and questions.
type Dialog interface {
	Message(port display.Port, title, text string)

	// Ask calls answer exactly once: with the entered text, or with ""
	// when the user cancels.
	Ask(port display.Port, title, question string, answer func(string))
}

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Padding(0, 2)

	dialogTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("14"))
)

// DialogPrompt is printed before the answer of an Ask dialog.
const DialogPrompt = "> "

// TerminalDialog draws dialogs inline on the port. Ask takes over the
// keyboard through fg until Enter or Escape.
type TerminalDialog struct {
	fg shell.Foreground
}

// NewTerminalDialog creates a dialog that holds fg while asking.
func NewTerminalDialog(fg shell.Foreground) *TerminalDialog {
	return &TerminalDialog{fg: fg}
}

func renderDialog(title, body string) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		dialogTitleStyle.Render(title),
		"",
		body,
	)
	return dialogStyle.Render(content)
}

// Message draws a boxed message.
func (d *TerminalDialog) Message(port display.Port, title, text string) {
	display.WriteBlock(port, renderDialog(title, text))
}

// Ask draws the question and collects one line of input.
func (d *TerminalDialog) Ask(port display.Port, title, question string, answer func(string)) {
	release := d.fg.Hold()
	display.WriteBlock(port, renderDialog(title, question))
	port.Write(DialogPrompt)

	var (
		line        shell.Line
		unsubscribe func()
	)
	finish := func(value string) {
		port.Write(display.LineBreak)
		unsubscribe()
		answer(value)
		release()
	}
	unsubscribe = port.OnData(func(ev core.DataEvent) {
		switch ev.Value {
		case core.CarriageReturn:
			finish(line.Take())
		case core.Escape:
			finish("")
		default:
			line.Edit(port, ev.Value)
		}
	})
}
