package shell

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
	"github.com/vovakirdan/tui-terminal/internal/registry"
)

// recordingCommand captures every invocation.
type recordingCommand struct {
	name    string
	calls   [][]string
	execute func(port display.Port, args []string) error
}

func (c *recordingCommand) Name() string        { return c.name }
func (c *recordingCommand) Description() string { return "records " + c.name }

func (c *recordingCommand) Execute(port display.Port, args []string) error {
	c.calls = append(c.calls, args)
	if c.execute != nil {
		return c.execute(port, args)
	}
	return nil
}

func newTestSession(t *testing.T, cmds ...registry.Command) (*Session, *display.Buffer) {
	t.Helper()
	reg := registry.New()
	for _, cmd := range cmds {
		require.NoError(t, reg.Register(cmd))
	}
	port := display.NewBuffer()
	s := NewSession(port, NewDispatcher(reg, nil))
	s.Attach()
	return s, port
}

func enter(port *display.Buffer, line string) {
	port.Type(line)
	port.EmitData(core.CarriageReturn)
}

func TestSession_SubmitsTypedLine(t *testing.T) {
	echo := &recordingCommand{name: "echo"}
	s, port := newTestSession(t, echo)

	enter(port, "echo  hello   world")

	require.Len(t, echo.calls, 1)
	assert.Equal(t, []string{"echo", "hello", "world"}, echo.calls[0])
	assert.Empty(t, s.Buffer())
	assert.Equal(t, []string{"echo  hello   world"}, s.History())
}

func TestSession_EchoesPrintableInput(t *testing.T) {
	_, port := newTestSession(t)

	port.Type("ab")
	port.EmitData("\x01")  // control code: dropped
	port.EmitData("\x1b[A") // arrow escape: dropped
	port.EmitData("é")

	assert.Equal(t, "abé", port.Output())
}

func TestSession_BackspaceRemovesOneCharacter(t *testing.T) {
	s, port := newTestSession(t)

	port.Type("lss")
	port.EmitData(core.Delete)
	assert.Equal(t, "ls", s.Buffer())
	assert.True(t, strings.HasSuffix(port.Output(), "\b \b"))

	port.EmitData(core.Backspace)
	port.EmitData(core.Backspace)
	assert.Empty(t, s.Buffer())

	port.Reset()
	port.EmitData(core.Delete)
	assert.Empty(t, port.Output(), "backspace on an empty line is a no-op")
}

func TestSession_SubmittedLineAppliesTrailingEdits(t *testing.T) {
	echo := &recordingCommand{name: "echo"}
	_, port := newTestSession(t, echo)

	port.Type("echo abx")
	port.EmitData(core.Delete)
	port.Type("c")
	port.EmitData(core.CarriageReturn)

	require.Len(t, echo.calls, 1)
	assert.Equal(t, []string{"echo", "abc"}, echo.calls[0])
}

func TestSession_CarriageReturnEchoesNewlineAndPrompt(t *testing.T) {
	_, port := newTestSession(t)

	port.EmitData(core.CarriageReturn)
	assert.Equal(t, "\r\n$ ", port.Output())
}

func TestSession_HistoryIsAppendOnlyAndOrdered(t *testing.T) {
	s, port := newTestSession(t, &recordingCommand{name: "help"}, &recordingCommand{name: "clear"})

	lines := []string{"help", "clear", "bogus arg", "help"}
	for _, l := range lines {
		enter(port, l)
	}
	port.EmitData(core.CarriageReturn) // empty line is not recorded

	assert.Equal(t, lines, s.History())
	assert.Equal(t, len(lines), s.Cursor())

	h := s.History()
	h[0] = "mutated"
	assert.Equal(t, "help", s.History()[0], "History must return a copy")
}

func TestSession_ArrowUpRecallsHistory(t *testing.T) {
	s, port := newTestSession(t, &recordingCommand{name: "help"}, &recordingCommand{name: "clear"})
	enter(port, "help")
	enter(port, "clear")
	require.Equal(t, 2, s.Cursor())

	port.EmitKey(core.KeyArrowUp)
	assert.Equal(t, 1, s.Cursor())
	assert.Equal(t, "clear", s.Buffer())

	port.EmitKey(core.KeyArrowUp)
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, "help", s.Buffer())

	port.Reset()
	port.EmitKey(core.KeyArrowUp)
	assert.Equal(t, 0, s.Cursor())
	assert.Equal(t, "help", s.Buffer())
	assert.Empty(t, port.Output(), "ArrowUp at the oldest entry is a no-op")
}

func TestSession_ArrowDownReturnsToFreshLine(t *testing.T) {
	s, port := newTestSession(t, &recordingCommand{name: "help"}, &recordingCommand{name: "clear"})
	enter(port, "help")
	enter(port, "clear")

	port.EmitKey(core.KeyArrowUp)
	port.EmitKey(core.KeyArrowUp)

	port.EmitKey(core.KeyArrowDown)
	assert.Equal(t, 1, s.Cursor())
	assert.Equal(t, "clear", s.Buffer())

	port.EmitKey(core.KeyArrowDown)
	assert.Equal(t, 2, s.Cursor())
	assert.Empty(t, s.Buffer())

	port.EmitKey(core.KeyArrowDown)
	assert.Equal(t, 2, s.Cursor(), "ArrowDown while not browsing is a no-op")
}

func TestSession_ReplaceErasesPreviousContent(t *testing.T) {
	_, port := newTestSession(t, &recordingCommand{name: "help"})
	enter(port, "help")

	port.Type("xyz")
	port.Reset()
	port.EmitKey(core.KeyArrowUp)

	assert.Equal(t, strings.Repeat("\b \b", 3)+"help", port.Output())
}

func TestSession_CursorStaysInBounds(t *testing.T) {
	s, port := newTestSession(t, &recordingCommand{name: "a"})

	keys := []string{core.KeyArrowUp, core.KeyArrowDown, core.KeyArrowDown, core.KeyArrowUp}
	for i := range 3 {
		enter(port, "a")
		for _, k := range keys {
			port.EmitKey(k)
			assert.GreaterOrEqual(t, s.Cursor(), 0)
			assert.LessOrEqual(t, s.Cursor(), i+1)
		}
	}
}

func TestSession_NavigationDisabledIgnoresArrows(t *testing.T) {
	s, port := newTestSession(t, &recordingCommand{name: "help"})
	enter(port, "help")

	s.SetNavigationEnabled(false)
	assert.False(t, s.NavigationEnabled())

	port.EmitKey(core.KeyArrowUp)
	assert.Equal(t, 1, s.Cursor())
	assert.Empty(t, s.Buffer())

	s.SetNavigationEnabled(true)
	port.EmitKey(core.KeyArrowUp)
	assert.Equal(t, "help", s.Buffer())
}

func TestSession_HoldSuspendsInputAndPrompt(t *testing.T) {
	var release func()
	var s *Session
	game := &recordingCommand{name: "game"}
	game.execute = func(display.Port, []string) error {
		release = s.Hold()
		return nil
	}

	s, port := newTestSession(t, game)
	enter(port, "game")
	require.True(t, s.Held())
	assert.False(t, strings.HasSuffix(port.Output(), "$ "), "held session must not prompt")

	port.Type("q")
	port.EmitData(core.CarriageReturn)
	assert.Empty(t, s.Buffer())
	assert.Len(t, game.calls, 1, "input while held never reaches the dispatcher")

	port.Reset()
	release()
	assert.Equal(t, "$ ", port.Output())
	assert.False(t, s.Held())

	release()
	assert.Equal(t, "$ ", port.Output(), "release is idempotent")
}

func TestSession_ReleaseDuringDispatchPromptsOnce(t *testing.T) {
	var s *Session
	quick := &recordingCommand{name: "quick"}
	quick.execute = func(display.Port, []string) error {
		s.Hold()()
		return nil
	}

	s, port := newTestSession(t, quick)
	enter(port, "quick")

	assert.Equal(t, 1, strings.Count(port.Output(), "$ "))
}

func TestSession_DetachStopsInput(t *testing.T) {
	s, port := newTestSession(t)
	s.Detach()

	port.Type("abc")
	assert.Empty(t, s.Buffer())
}

func TestSession_CustomPrompt(t *testing.T) {
	reg := registry.New()
	port := display.NewBuffer()
	s := NewSession(port, NewDispatcher(reg, nil), WithPrompt("> "))

	s.Prompt()
	assert.Equal(t, "> ", port.Output())
}

func TestSession_HandlerErrorDoesNotEndSession(t *testing.T) {
	bad := &recordingCommand{name: "bad", execute: func(display.Port, []string) error {
		return errors.New("disk on fire")
	}}
	good := &recordingCommand{name: "good"}
	_, port := newTestSession(t, bad, good)

	enter(port, "bad")
	enter(port, "good")

	assert.Contains(t, port.Plain(), "Error executing command: disk on fire")
	assert.Len(t, good.calls, 1)
}
