// Package snake implements the Snake game: a pure grid engine advanced one
// cell per tick, and the terminal command that runs it on a display port.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-terminal/internal/core"
)

// Board and scoring constants.
const (
	BoardWidth    = 40
	BoardHeight   = 20
	InitialLength = 3
	FoodPoints    = 10
)

// Game-over reasons shown in the summary.
const (
	ReasonWall = "You hit the wall!"
	ReasonSelf = "You bit yourself!"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Vector returns the one-cell offset for d.
func (d Direction) Vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// Opposite returns the reverse of d.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Status is the lifecycle state of a single run.
type Status int

const (
	StatusRunning Status = iota
	StatusGameOver
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	case StatusStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Outcome describes what a single Step did.
type Outcome int

const (
	OutcomeIdle Outcome = iota // game already finished
	OutcomeMoved
	OutcomeAte
	OutcomeGameOver
)

// noFood marks a board with no free cell left.
var noFood = core.Point{X: -1, Y: -1}

// Game is the state of one Snake run.
type Game struct {
	bounds core.Rect
	rng    *rand.Rand

	body      []core.Point // head at index 0
	direction Direction
	pending   Direction // applied at the next tick

	food   core.Point
	score  int
	ticks  uint64
	status Status
	reason string
}

// New creates a game on the standard board.
func New(rng *rand.Rand) *Game {
	return NewBoard(BoardWidth, BoardHeight, rng)
}

// NewBoard creates a game on a width x height board. The snake starts
// centered, heading right. It panics if the board cannot hold the
// initial snake.
func NewBoard(width, height int, rng *rand.Rand) *Game {
	head := core.NewRect(0, 0, width, height).Center()
	if height < 1 || head.X-(InitialLength-1) < 0 {
		panic(fmt.Sprintf("snake: board %dx%d too small", width, height))
	}

	g := &Game{
		bounds:    core.NewRect(0, 0, width, height),
		rng:       rng,
		direction: DirRight,
		pending:   DirRight,
		status:    StatusRunning,
	}
	for i := range InitialLength {
		g.body = append(g.body, head.Add(-i, 0))
	}
	g.spawnFood()
	return g
}

// Turn queues d for the next tick. A turn straight back into the neck
// is refused.
func (g *Game) Turn(d Direction) bool {
	if g.status != StatusRunning || d == g.direction.Opposite() {
		return false
	}
	g.pending = d
	return true
}

// Stop ends a running game without a collision.
func (g *Game) Stop() {
	if g.status == StatusRunning {
		g.status = StatusStopped
	}
}

// Step advances the snake by one cell.
func (g *Game) Step() Outcome {
	if g.status != StatusRunning {
		return OutcomeIdle
	}
	g.ticks++

	g.direction = g.pending
	newHead := g.body[0].Add(g.direction.Vector())

	if !g.bounds.Contains(newHead) {
		g.end(ReasonWall)
		return OutcomeGameOver
	}
	// The tail cell counts even though it would move away this tick.
	if g.occupies(newHead) {
		g.end(ReasonSelf)
		return OutcomeGameOver
	}

	g.body = append([]core.Point{newHead}, g.body...)
	if newHead == g.food {
		g.score += FoodPoints
		g.spawnFood()
		return OutcomeAte
	}
	g.body = g.body[:len(g.body)-1]
	return OutcomeMoved
}

func (g *Game) end(reason string) {
	g.status = StatusGameOver
	g.reason = reason
}

func (g *Game) occupies(p core.Point) bool {
	for _, seg := range g.body {
		if seg == p {
			return true
		}
	}
	return false
}

// spawnFood picks a uniformly random free cell. Random probing finds one
// quickly on a sparse board; a crowded board falls back to enumerating
// the free cells.
func (g *Game) spawnFood() {
	w, h := g.bounds.W, g.bounds.H
	for range w * h * 2 {
		p := core.Point{X: g.rng.Intn(w), Y: g.rng.Intn(h)}
		if !g.occupies(p) {
			g.food = p
			return
		}
	}

	var free []core.Point
	for y := range h {
		for x := range w {
			p := core.Point{X: x, Y: y}
			if !g.occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		g.food = noFood
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

// Body returns a copy of the snake's cells, head first.
func (g *Game) Body() []core.Point {
	out := make([]core.Point, len(g.body))
	copy(out, g.body)
	return out
}

// Head returns the head cell.
func (g *Game) Head() core.Point { return g.body[0] }

// Length returns the number of body cells.
func (g *Game) Length() int { return len(g.body) }

// Direction returns the direction applied at the last tick.
func (g *Game) Direction() Direction { return g.direction }

// Pending returns the direction the next tick will apply.
func (g *Game) Pending() Direction { return g.pending }

// Food returns the food cell, or (-1,-1) when the board is full.
func (g *Game) Food() core.Point { return g.food }

// HasFood reports whether food is on the board.
func (g *Game) HasFood() bool { return g.food != noFood }

func (g *Game) Score() int { return g.score }
func (g *Game) Ticks() uint64 { return g.ticks }
func (g *Game) Status() Status { return g.status }
func (g *Game) Reason() string { return g.reason }
func (g *Game) Width() int { return g.bounds.W }
func (g *Game) Height() int { return g.bounds.H }
func (g *Game) Running() bool { return g.status == StatusRunning }
func (g *Game) Bounds() core.Rect { return g.bounds }
