package display

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Buffer is an in-memory Port. Clear discards recorded output, so Output
// holds what is visible since the last clear.
type Buffer struct {
	Hub
	out     strings.Builder
	clears  int
	focused bool
}

// NewBuffer creates an empty in-memory port.
func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Write(text string) {
	b.out.WriteString(text)
}

func (b *Buffer) WriteLine(text string) {
	b.out.WriteString(text + LineBreak)
}

func (b *Buffer) Clear() {
	b.out.Reset()
	b.clears++
}

func (b *Buffer) Focus() {
	b.focused = true
}

// Output returns the raw text written since the last Clear or Reset.
func (b *Buffer) Output() string {
	return b.out.String()
}

// Plain returns Output with escape sequences stripped.
func (b *Buffer) Plain() string {
	return ansi.Strip(b.out.String())
}

// Reset discards recorded output without counting a clear.
func (b *Buffer) Reset() {
	b.out.Reset()
}

// Clears returns how many times Clear was called.
func (b *Buffer) Clears() int {
	return b.clears
}

// Focused reports whether Focus was called.
func (b *Buffer) Focused() bool {
	return b.focused
}

// Type delivers each rune of text as its own data event, the way a user
// typing would.
func (b *Buffer) Type(text string) {
	for _, r := range text {
		b.EmitData(string(r))
	}
}
