package commands

import (
	"fmt"

	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
	"github.com/vovakirdan/tui-terminal/internal/storage"
)

// LeaderboardSize is how many runs the scores command lists.
const LeaderboardSize = 10

// ScoreReader is the read side of the score store.
type ScoreReader interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	HighScore(gameID string) (int, error)
}

// Scores prints the leaderboard of one game.
type Scores struct {
	reader ScoreReader
	gameID string
	title  string
}

// NewScores creates the scores command for gameID. A nil reader reports
// that scores are unavailable.
func NewScores(reader ScoreReader, gameID, title string) *Scores {
	return &Scores{reader: reader, gameID: gameID, title: title}
}

func (s *Scores) Name() string        { return "scores" }
func (s *Scores) Description() string { return "Show " + s.title + " high scores" }

func (s *Scores) Execute(port display.Port, _ []string) error {
	if s.reader == nil {
		port.WriteLine(core.ColorBrightYellow.Paint("Scores are unavailable"))
		return nil
	}
	return WriteLeaderboard(port, s.reader, s.gameID, s.title)
}

// WriteLeaderboard prints the top runs of gameID followed by the best score.
func WriteLeaderboard(port display.Port, reader ScoreReader, gameID, title string) error {
	entries, err := reader.TopScores(gameID, LeaderboardSize)
	if err != nil {
		return fmt.Errorf("load scores: %w", err)
	}

	port.WriteLine(core.ColorBrightCyan.Paint(title + " High Scores:"))
	port.WriteLine("")
	if len(entries) == 0 {
		port.WriteLine(core.ColorBrightYellow.Paint("No scores yet. Type " + gameID + " to play!"))
		return nil
	}

	for i, e := range entries {
		rank := core.ColorBrightYellow.Paint(fmt.Sprintf("%3d.", i+1))
		when := ""
		if !e.CreatedAt.IsZero() {
			when = "  " + e.CreatedAt.Format("2006-01-02 15:04")
		}
		port.WriteLine(fmt.Sprintf("  %s %6d%s", rank, e.Score, when))
	}

	best, err := reader.HighScore(gameID)
	if err != nil {
		return fmt.Errorf("load high score: %w", err)
	}
	port.WriteLine("")
	port.WriteLine(core.ColorBrightGreen.Paint(fmt.Sprintf("Best: %d", best)))
	return nil
}
