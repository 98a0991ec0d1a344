package display

import (
	"io"
)

// Stream is a Port backed by an io.Writer such as a raw-mode TTY or an SSH
// channel. Input events are injected by the owner through the embedded Hub.
type Stream struct {
	Hub
	w   io.Writer
	err error
}

// NewStream creates a port writing to w.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

// Write passes text through unmodified.
// After the first write error, further output is dropped.
func (s *Stream) Write(text string) {
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, text)
}

// WriteLine writes text followed by a raw-mode line break.
func (s *Stream) WriteLine(text string) {
	s.Write(text + LineBreak)
}

// Clear erases the screen and homes the cursor.
func (s *Stream) Clear() {
	s.Write(ClearSequence)
}

// Focus shows the cursor.
func (s *Stream) Focus() {
	s.Write("\x1b[?25h")
}

// Err returns the first write error, if any.
func (s *Stream) Err() error {
	return s.err
}
