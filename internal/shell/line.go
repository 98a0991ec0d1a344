package shell

import (
	"strings"

	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
)

// eraseSequence moves back one cell, blanks it, and moves back again.
const eraseSequence = "\b \b"

// Line is an editable, echoed line of input.
type Line struct {
	runes []rune
}

// String returns the current content.
func (l *Line) String() string {
	return string(l.runes)
}

// Len returns the number of characters in the line.
func (l *Line) Len() int {
	return len(l.runes)
}

// Append adds the printable characters of text and echoes them.
// Non-printable characters are dropped silently.
func (l *Line) Append(port display.Port, text string) {
	var echo strings.Builder
	for _, r := range text {
		if !core.IsPrintable(r) {
			continue
		}
		l.runes = append(l.runes, r)
		echo.WriteRune(r)
	}
	if echo.Len() > 0 {
		port.Write(echo.String())
	}
}

// Backspace removes the last character and erases it on screen.
// It reports false on an empty line.
func (l *Line) Backspace(port display.Port) bool {
	if len(l.runes) == 0 {
		return false
	}
	l.runes = l.runes[:len(l.runes)-1]
	port.Write(eraseSequence)
	return true
}

// Replace erases every visible character and echoes text in their place.
func (l *Line) Replace(port display.Port, text string) {
	if n := len(l.runes); n > 0 {
		port.Write(strings.Repeat(eraseSequence, n))
	}
	l.runes = []rune(text)
	if text != "" {
		port.Write(text)
	}
}

// Take returns the content and empties the line without touching the screen.
func (l *Line) Take() string {
	s := string(l.runes)
	l.runes = l.runes[:0]
	return s
}

// isEditInput reports whether value is one of the delete codes.
func isEditInput(value string) bool {
	return value == core.Delete || value == core.Backspace
}

// Edit applies a data event to the line: delete codes remove a character,
// escape sequences are ignored and anything else is appended.
// Carriage returns are left to the caller.
func (l *Line) Edit(port display.Port, value string) {
	switch {
	case isEditInput(value):
		l.Backspace(port)
	case strings.HasPrefix(value, core.CSI):
		// Arrow keys and friends arrive as key events.
	default:
		l.Append(port, value)
	}
}
