package snake

import (
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
	"github.com/vovakirdan/tui-terminal/internal/shell"
)

// GameID identifies Snake runs in the score store.
const GameID = "snake"

// DefaultInterval is the time between two ticks.
const DefaultInterval = 150 * time.Millisecond

// ScoreSaver records finished runs.
type ScoreSaver interface {
	SaveScore(gameID, sessionID string, score int) (int64, error)
}

var turns = map[string]Direction{
	"arrowup":    DirUp,
	"arrowdown":  DirDown,
	"arrowleft":  DirLeft,
	"arrowright": DirRight,
}

// Command starts a Snake run that takes over the keyboard until the game
// ends.
type Command struct {
	fg       shell.Foreground
	timers   core.TimerFactory
	interval time.Duration
	seed     int64
	scores   ScoreSaver
	session  string
	logger   *log.Logger

	current *run
}

// Option configures a Command.
type Option func(*Command)

// WithInterval overrides DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(c *Command) {
		if d > 0 {
			c.interval = d
		}
	}
}

// WithSeed fixes the food RNG seed. Zero seeds from the clock.
func WithSeed(seed int64) Option {
	return func(c *Command) {
		c.seed = seed
	}
}

// WithScores saves every run with a positive score under sessionID.
func WithScores(saver ScoreSaver, sessionID string) Option {
	return func(c *Command) {
		c.scores = saver
		c.session = sessionID
	}
}

// WithLogger sets the logger for run lifecycle events.
func WithLogger(logger *log.Logger) Option {
	return func(c *Command) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCommand creates the snake command. fg is the session the game takes
// the keyboard from; timers supplies the tick source for each run.
func NewCommand(fg shell.Foreground, timers core.TimerFactory, opts ...Option) *Command {
	c := &Command{
		fg:       fg,
		timers:   timers,
		interval: DefaultInterval,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Command) Name() string { return "snake" }

func (c *Command) Description() string {
	return "Play the classic Snake game (Use arrow keys to move, 'q' to quit)"
}

// Execute starts a run and returns at once; the run continues on key and
// timer events.
func (c *Command) Execute(port display.Port, _ []string) error {
	seed := c.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	r := &run{
		cmd:   c,
		port:  port,
		game:  New(rand.New(rand.NewSource(seed))),
		begun: time.Now(),
	}
	r.screen = NewFrameScreen(r.game)
	c.current = r
	r.start()
	return nil
}

// Running reports whether a run currently owns the keyboard.
func (c *Command) Running() bool {
	return c.current != nil
}

// run is one game from start to summary.
type run struct {
	cmd    *Command
	port   display.Port
	game   *Game
	screen *core.Screen
	timer  core.Timer
	begun  time.Time

	prevNavigation bool
	release        func()
	unsubscribe    func()
	done           bool
}

func (r *run) start() {
	fg := r.cmd.fg
	r.prevNavigation = fg.NavigationEnabled()
	fg.SetNavigationEnabled(false)
	r.release = fg.Hold()

	r.port.Clear()
	writeBanner(r.port)
	r.draw()

	r.unsubscribe = r.port.OnKey(r.handleKey)
	r.timer = r.cmd.timers()
	r.timer.Start(r.cmd.interval, r.tick)

	r.cmd.logger.Debug("snake started",
		"session", r.cmd.session,
		"food", r.game.Food(),
		"interval", r.cmd.interval,
	)
}

func (r *run) handleKey(ev core.KeyEvent) {
	if r.done {
		return
	}

	key := strings.ToLower(ev.Key)
	if d, ok := turns[key]; ok {
		r.game.Turn(d)
		return
	}
	if key == "q" {
		r.game.Stop()
		r.finish()
	}
}

func (r *run) tick() {
	if r.done {
		return
	}
	if r.game.Step() == OutcomeGameOver {
		r.finish()
		return
	}
	r.draw()
}

func (r *run) draw() {
	r.port.Write(Frame(r.game, r.screen))
}

// finish tears the run down. Both the q path and the collision path end
// here; only the first call has any effect.
func (r *run) finish() {
	if r.done {
		return
	}
	r.done = true

	r.timer.Stop()
	r.unsubscribe()
	r.cmd.fg.SetNavigationEnabled(r.prevNavigation)

	if r.game.Status() == StatusGameOver {
		writeGameOver(r.port, r.game)
	} else {
		writeStopped(r.port, r.game)
	}
	r.save()

	snap := r.game.Snapshot()
	r.cmd.logger.Debug("snake finished",
		"session", r.cmd.session,
		"status", snap.Status,
		"reason", snap.Reason,
		"score", snap.Score,
		"length", snap.Length,
		"ticks", snap.Tick,
		"duration", time.Since(r.begun).Round(time.Millisecond),
	)

	r.cmd.current = nil
	r.release()
}

func (r *run) save() {
	score := r.game.Score()
	if r.cmd.scores == nil || score <= 0 {
		return
	}
	if _, err := r.cmd.scores.SaveScore(GameID, r.cmd.session, score); err != nil {
		r.cmd.logger.Warn("could not save score", "session", r.cmd.session, "score", score, "error", err)
	}
}
