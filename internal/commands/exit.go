package commands

import (
	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
)

// Exit ends the session through the injected quit func.
type Exit struct {
	quit func()
}

// NewExit creates the exit command.
func NewExit(quit func()) *Exit {
	return &Exit{quit: quit}
}

func (e *Exit) Name() string        { return "exit" }
func (e *Exit) Description() string { return "Close the terminal session" }

func (e *Exit) Execute(port display.Port, _ []string) error {
	port.WriteLine(core.ColorBrightGreen.Paint("Goodbye!"))
	if e.quit != nil {
		e.quit()
	}
	return nil
}
