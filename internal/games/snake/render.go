package snake

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
)

// FrameOrigin moves the cursor to the first row below the banner. Every
// frame starts there so it overwrites the previous one in place.
const FrameOrigin = "\x1b[6;1H"

// Board glyphs.
const (
	GlyphHead = '●'
	GlyphBody = '○'
	GlyphFood = '★'
)

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("14")).
			Foreground(lipgloss.Color("14")).
			Bold(true).
			Width(BoardWidth).
			Align(lipgloss.Center)

	gameOverStyle = bannerStyle.
			BorderForeground(lipgloss.Color("9")).
			Foreground(lipgloss.Color("9"))
)

// Render draws the bordered board into dst, which must be at least
// (Width+2) x (Height+2).
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawBox(core.NewRect(0, 0, g.Width()+2, g.Height()+2), core.ColorBrightBlue)

	if g.HasFood() {
		dst.SetCell(g.food.X+1, g.food.Y+1, GlyphFood, core.ColorBrightRed)
	}
	for i, seg := range g.body {
		if i == 0 {
			dst.SetCell(seg.X+1, seg.Y+1, GlyphHead, core.ColorBrightGreen)
		} else {
			dst.SetCell(seg.X+1, seg.Y+1, GlyphBody, core.ColorGreen)
		}
	}
}

// NewFrameScreen allocates a screen sized for g's board and border.
func NewFrameScreen(g *Game) *core.Screen {
	return core.NewScreen(g.Width()+2, g.Height()+2)
}

// StatusLine returns the score line printed under the board.
func StatusLine(g *Game) string {
	return core.ColorBrightYellow.Paint(fmt.Sprintf("Score: %d  |  Length: %d", g.Score(), g.Length()))
}

// Frame renders the full in-place frame: cursor reposition, board, status.
func Frame(g *Game, screen *core.Screen) string {
	g.Render(screen)
	return FrameOrigin +
		screen.ANSI(display.LineBreak) + display.LineBreak +
		display.LineBreak +
		StatusLine(g) + display.LineBreak
}

func writeBanner(port display.Port) {
	display.WriteBlock(port, bannerStyle.Render("SNAKE GAME"))
	port.WriteLine(core.ColorBrightYellow.Paint("Use Arrow Keys to move  |  Press 'Q' to quit"))
	port.WriteLine("")
}

func writeGameOver(port display.Port, g *Game) {
	port.WriteLine("")
	display.WriteBlock(port, gameOverStyle.Render("GAME OVER!"))
	port.WriteLine("")
	port.WriteLine(core.ColorBrightYellow.Paint(g.Reason()))
	port.WriteLine(core.ColorBrightCyan.Paint(fmt.Sprintf("Final Score: %d", g.Score())))
	port.WriteLine(core.ColorBrightCyan.Paint(fmt.Sprintf("Final Length: %d", g.Length())))
	port.WriteLine("")
	port.WriteLine("Type " + core.ColorBrightGreen.Paint("snake") + " to play again!")
	port.WriteLine("")
}

func writeStopped(port display.Port, g *Game) {
	port.WriteLine("")
	port.WriteLine(core.ColorBrightYellow.Paint(fmt.Sprintf("Game stopped. Final score: %d", g.Score())))
	port.WriteLine("")
}
