package commands

import (
	"strings"

	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
)

// Msg shows its arguments in a message dialog.
type Msg struct {
	dialog Dialog
}

// NewMsg creates the msg command.
func NewMsg(dialog Dialog) *Msg {
	return &Msg{dialog: dialog}
}

func (m *Msg) Name() string        { return "msg" }
func (m *Msg) Description() string { return "Show a message dialog" }

func (m *Msg) Execute(port display.Port, args []string) error {
	if len(args) < 2 {
		port.WriteLine(core.ColorBrightRed.Paint("Usage: msg <message>"))
		return nil
	}

	m.dialog.Message(port, "Message", strings.Join(args[1:], " "))
	port.WriteLine(core.ColorBrightGreen.Paint("Dialog shown!"))
	return nil
}
