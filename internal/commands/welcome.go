package commands

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
)

// WelcomeTitle is the text inside the session banner.
const WelcomeTitle = "Welcome to the Go Terminal!"

var welcomeStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(lipgloss.Color("10")).
	Foreground(lipgloss.Color("10")).
	Bold(true).
	Padding(0, 3)

// Welcome prints the banner shown when a session starts.
func Welcome(port display.Port) {
	display.WriteBlock(port, welcomeStyle.Render(WelcomeTitle))
	port.WriteLine("")
	port.WriteLine("Type " + core.ColorBrightYellow.Paint("help") + " to see available commands.")
	port.WriteLine("Type " + core.ColorBrightYellow.Paint("snake") + " to play the Snake game!")
	port.WriteLine("Use " + core.ColorBrightYellow.Paint("↑↓") + " arrow keys to navigate history.")
	port.WriteLine("")
}
