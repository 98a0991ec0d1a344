package commands

import (
	"fmt"

	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
)

// HistorySource exposes the submitted lines of a session.
type HistorySource interface {
	History() []string
}

// History prints the session's submitted lines, numbered from 1.
type History struct {
	source HistorySource
}

// NewHistory creates the history command.
func NewHistory(source HistorySource) *History {
	return &History{source: source}
}

func (h *History) Name() string        { return "history" }
func (h *History) Description() string { return "Show command history" }

func (h *History) Execute(port display.Port, _ []string) error {
	lines := h.source.History()
	if len(lines) == 0 {
		port.WriteLine(core.ColorBrightYellow.Paint("No command history yet"))
		return nil
	}

	port.WriteLine(core.ColorBrightCyan.Paint("Command History:"))
	for i, line := range lines {
		port.WriteLine("  " + core.ColorBrightYellow.Paint(fmt.Sprintf("%3d", i+1)) + "  " + line)
	}
	return nil
}
