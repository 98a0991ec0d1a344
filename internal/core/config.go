package core

import "time"

// RuntimeConfig contains settings handed to a terminal session and the games
// it starts.
type RuntimeConfig struct {
	Prompt       string        // Prompt printed before each line
	TickInterval time.Duration // Interval between game ticks
	Seed         int64         // RNG seed, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Prompt:       "$ ",
		TickInterval: 150 * time.Millisecond,
		Seed:         0, // 0 means use current time in the game
	}
}
