package commands

import (
	"strings"

	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
)

// Prompt asks a question through a dialog and echoes the answer.
type Prompt struct {
	dialog Dialog
}

// NewPrompt creates the prompt command.
func NewPrompt(dialog Dialog) *Prompt {
	return &Prompt{dialog: dialog}
}

func (p *Prompt) Name() string        { return "prompt" }
func (p *Prompt) Description() string { return "Show a prompt dialog" }

func (p *Prompt) Execute(port display.Port, args []string) error {
	if len(args) < 2 {
		port.WriteLine(core.ColorBrightRed.Paint("Usage: prompt <question>"))
		return nil
	}

	p.dialog.Ask(port, "Input Required", strings.Join(args[1:], " "), func(answer string) {
		if strings.TrimSpace(answer) == "" {
			port.WriteLine(core.ColorBrightYellow.Paint("No input provided"))
			return
		}
		port.WriteLine(core.ColorBrightGreen.Paint("You answered: " + answer))
	})
	return nil
}
