package commands

import (
	"fmt"

	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
	"github.com/vovakirdan/tui-terminal/internal/registry"
)

// Help lists every registered command in registration order.
type Help struct {
	commands *registry.Registry
}

// NewHelp creates the help command over r.
func NewHelp(r *registry.Registry) *Help {
	return &Help{commands: r}
}

func (h *Help) Name() string        { return "help" }
func (h *Help) Description() string { return "Show available commands" }

func (h *Help) Execute(port display.Port, _ []string) error {
	port.WriteLine(core.ColorBrightCyan.Paint("Available Commands:"))
	port.WriteLine("")
	for cmd := range h.commands.List() {
		name := core.ColorBrightYellow.Paint(fmt.Sprintf("%-12s", cmd.Name()))
		port.WriteLine("  " + name + " - " + cmd.Description())
	}
	port.WriteLine("")
	return nil
}
