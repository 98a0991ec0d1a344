// Package shell implements the terminal's line editor, input history and
// command dispatch.
package shell

import (
	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
)

// DefaultPrompt is printed before every line of input.
const DefaultPrompt = "$ "

// Foreground is the capability handed to a mode that takes over the keyboard,
// such as a game or a dialog.
type Foreground interface {
	NavigationEnabled() bool
	SetNavigationEnabled(enabled bool)

	// Hold stops line input from reaching the editor until release is called.
	// Releasing the last hold prints the prompt.
	Hold() (release func())
}

// Session buffers keystrokes into lines, keeps the history of submitted
// lines and hands each line to the dispatcher. It lives for the whole
// terminal session.
type Session struct {
	port       display.Port
	dispatcher *Dispatcher
	prompt     string

	line       Line
	history    []string
	cursor     int // len(history) means not browsing
	navigation bool

	holds       int
	dispatching bool
	detach      []func()
}

var _ Foreground = (*Session)(nil)

// Option configures a Session.
type Option func(*Session)

// WithPrompt overrides DefaultPrompt.
func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// NewSession creates a session writing to port. Call Attach to start
// receiving input.
func NewSession(port display.Port, dispatcher *Dispatcher, opts ...Option) *Session {
	s := &Session{
		port:       port,
		dispatcher: dispatcher,
		prompt:     DefaultPrompt,
		navigation: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Attach subscribes the session to the port's data and key events.
func (s *Session) Attach() {
	s.detach = append(s.detach,
		s.port.OnData(s.HandleData),
		s.port.OnKey(s.HandleKey),
	)
}

// Detach removes the session's subscriptions.
func (s *Session) Detach() {
	for _, unsubscribe := range s.detach {
		unsubscribe()
	}
	s.detach = nil
}

// Prompt prints the prompt.
func (s *Session) Prompt() {
	s.port.Write(s.prompt)
}

// HandleData applies one data event to the current line.
func (s *Session) HandleData(ev core.DataEvent) {
	if s.holds > 0 {
		return
	}

	if ev.Value == core.CarriageReturn {
		s.port.Write(display.LineBreak)
		if s.line.Len() > 0 {
			s.history = append(s.history, s.line.String())
			s.cursor = len(s.history)
		}
		s.Submit(s.line.Take())
		return
	}

	s.line.Edit(s.port, ev.Value)
}

// HandleKey recalls history on ArrowUp/ArrowDown while navigation is enabled.
func (s *Session) HandleKey(ev core.KeyEvent) {
	if !s.navigation || s.holds > 0 {
		return
	}

	switch ev.Key {
	case core.KeyArrowUp:
		if s.cursor > 0 {
			s.cursor--
			s.line.Replace(s.port, s.history[s.cursor])
		}
	case core.KeyArrowDown:
		last := len(s.history) - 1
		switch {
		case s.cursor < last:
			s.cursor++
			s.line.Replace(s.port, s.history[s.cursor])
		case s.cursor == last:
			s.cursor++
			s.line.Replace(s.port, "")
		}
	}
}

// Submit dispatches a completed line and prints the prompt again, unless
// the command took over the keyboard.
func (s *Session) Submit(line string) {
	s.dispatching = true
	s.dispatcher.Dispatch(s.port, line)
	s.dispatching = false

	if s.holds == 0 {
		s.Prompt()
	}
}

// Hold implements Foreground.
func (s *Session) Hold() func() {
	s.holds++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		s.holds--
		if s.holds == 0 && !s.dispatching {
			s.Prompt()
		}
	}
}

// Held reports whether a foreground mode owns the keyboard.
func (s *Session) Held() bool {
	return s.holds > 0
}

// NavigationEnabled implements Foreground.
func (s *Session) NavigationEnabled() bool {
	return s.navigation
}

// SetNavigationEnabled implements Foreground.
func (s *Session) SetNavigationEnabled(enabled bool) {
	s.navigation = enabled
}

// History returns a copy of the submitted lines, oldest first.
func (s *Session) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// Cursor returns the history browse position.
func (s *Session) Cursor() int {
	return s.cursor
}

// Buffer returns the unsubmitted line.
func (s *Session) Buffer() string {
	return s.line.String()
}
