package commands

import "github.com/vovakirdan/tui-terminal/internal/display"

// Clear wipes the display.
type Clear struct{}

func (Clear) Name() string        { return "clear" }
func (Clear) Description() string { return "Clear the terminal screen" }

func (Clear) Execute(port display.Port, _ []string) error {
	port.Clear()
	return nil
}
