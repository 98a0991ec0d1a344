package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-terminal/internal/commands"
	"github.com/vovakirdan/tui-terminal/internal/display"
	"github.com/vovakirdan/tui-terminal/internal/games/snake"
	"github.com/vovakirdan/tui-terminal/internal/registry"
	"github.com/vovakirdan/tui-terminal/internal/shell"
)

// ScoreStore is the score persistence a terminal uses. *storage.Store
// satisfies it.
type ScoreStore interface {
	snake.ScoreSaver
	commands.ScoreReader
}

// Options configures a Terminal.
type Options struct {
	Prompt    string
	Interval  time.Duration // snake tick interval
	Seed      int64         // snake food seed, 0 for random
	Scores    ScoreStore    // nil disables score keeping
	Logger    *log.Logger
	SessionID string // generated when empty
}

// Terminal is one interactive session: a port, its line editor and the
// commands registered for it.
type Terminal struct {
	ID       string
	Port     *display.Stream
	Session  *shell.Session
	Registry *registry.Registry

	timers   *timerSet
	logger   *log.Logger
	quitting bool
}

// NewTerminal wires a session writing to out.
func NewTerminal(out io.Writer, opts Options) *Terminal {
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Prompt == "" {
		opts.Prompt = shell.DefaultPrompt
	}

	t := &Terminal{
		ID:       opts.SessionID,
		Port:     display.NewStream(out),
		Registry: registry.New(),
		timers:   newTimerSet(),
		logger:   opts.Logger,
	}
	dispatcher := shell.NewDispatcher(t.Registry, t.logger)
	t.Session = shell.NewSession(t.Port, dispatcher, shell.WithPrompt(opts.Prompt))
	t.Session.Attach()

	dialog := commands.NewTerminalDialog(t.Session)
	snakeOpts := []snake.Option{
		snake.WithInterval(opts.Interval),
		snake.WithSeed(opts.Seed),
		snake.WithLogger(t.logger),
	}
	var reader commands.ScoreReader
	if opts.Scores != nil {
		snakeOpts = append(snakeOpts, snake.WithScores(opts.Scores, t.ID))
		reader = opts.Scores
	}
	game := snake.NewCommand(t.Session, t.timers.New, snakeOpts...)

	t.Registry.MustRegister(
		commands.NewHelp(t.Registry),
		commands.Clear{},
		commands.NewTime(nil),
		commands.NewMsg(dialog),
		commands.NewPrompt(dialog),
		commands.NewHistory(t.Session),
		game,
		commands.NewScores(reader, snake.GameID, "Snake"),
		commands.NewExit(t.Quit),
	)
	return t
}

// Start prints the welcome banner and the first prompt.
func (t *Terminal) Start() {
	commands.Welcome(t.Port)
	t.Session.Prompt()
	t.Port.Focus()
	t.logger.Debug("session started", "session", t.ID)
}

// Feed delivers one decoded keystroke: data first, then the key.
func (t *Terminal) Feed(in Input) {
	if in.Data != "" {
		t.Port.EmitData(in.Data)
	}
	if in.Key != "" {
		t.Port.EmitKey(in.Key)
	}
}

// Quit marks the session for shutdown.
func (t *Terminal) Quit() {
	t.quitting = true
}

// Quitting reports whether the session should end.
func (t *Terminal) Quitting() bool {
	return t.quitting
}
