package snake

import "github.com/vovakirdan/tui-terminal/internal/core"

// Snapshot captures the observable game state for determinism checks and
// run logging.
type Snapshot struct {
	Tick   uint64
	Score  int
	Length int
	Head   core.Point
	Dir    Direction
	Food   core.Point
	Status Status
	Reason string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.ticks,
		Score:  g.score,
		Length: len(g.body),
		Head:   g.body[0],
		Dir:    g.direction,
		Food:   g.food,
		Status: g.status,
		Reason: g.reason,
	}
}
