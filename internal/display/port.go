// Package display defines the Display Port: the sink that accepts text with
// embedded ANSI sequences and the source that raises data and key events.
package display

import (
	"strings"

	"github.com/vovakirdan/tui-terminal/internal/core"
)

// Port is the terminal surface the session and games write to.
// Text is passed through unmodified, including escape sequences.
type Port interface {
	Write(text string)
	WriteLine(text string)
	Clear()
	Focus()

	// OnData subscribes to decoded input. The returned func unsubscribes.
	OnData(fn func(core.DataEvent)) (unsubscribe func())
	// OnKey subscribes to key presses. The returned func unsubscribes.
	OnKey(fn func(core.KeyEvent)) (unsubscribe func())
}

// LineBreak ends a line on a raw terminal.
const LineBreak = "\r\n"

// ClearSequence homes the cursor and erases the screen and scrollback.
const ClearSequence = "\x1b[H\x1b[2J\x1b[3J"

// WriteBlock writes a multi-line block (such as a lipgloss render) one line
// at a time so every row ends with a raw-mode line break.
func WriteBlock(p Port, block string) {
	for _, line := range strings.Split(block, "\n") {
		p.WriteLine(line)
	}
}
