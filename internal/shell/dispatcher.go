package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
	"github.com/vovakirdan/tui-terminal/internal/registry"
)

// Dispatcher turns a submitted line into a command invocation.
type Dispatcher struct {
	commands *registry.Registry
	logger   *log.Logger
}

// NewDispatcher creates a dispatcher over the given registry.
// A nil logger discards output.
func NewDispatcher(commands *registry.Registry, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Dispatcher{commands: commands, logger: logger}
}

// Tokenize splits a line on runs of whitespace.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Dispatch runs the command named by the first token of line.
// Blank lines are ignored. Unknown commands and handler failures are
// reported on the port; Dispatch itself never fails.
func (d *Dispatcher) Dispatch(port display.Port, line string) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return
	}
	name := strings.ToLower(tokens[0])

	cmd, ok := d.commands.Lookup(name)
	if !ok {
		d.logger.Debug("unknown command", "name", name)
		port.WriteLine(core.ColorBrightRed.Paint("Command not found: " + name))
		port.WriteLine("Type " + core.ColorBrightYellow.Paint("help") + " to see available commands.")
		return
	}

	if err := d.invoke(port, cmd, tokens); err != nil {
		d.logger.Warn("command failed", "name", name, "error", err)
		port.WriteLine(core.ColorBrightRed.Paint("Error executing command: " + err.Error()))
	}
}

// invoke calls the handler, converting a panic into an error.
func (d *Dispatcher) invoke(port display.Port, cmd registry.Command, tokens []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return cmd.Execute(port, tokens)
}
