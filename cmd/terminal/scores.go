package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-terminal/internal/commands"
	"github.com/vovakirdan/tui-terminal/internal/display"
	"github.com/vovakirdan/tui-terminal/internal/games/snake"
	"github.com/vovakirdan/tui-terminal/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the Snake leaderboard",
	Long: `Display the top 10 Snake scores and the best score ever recorded.

Examples:
  terminal scores
  terminal scores --db ./scores.db
  terminal scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded Snake scores")
}

func runScores(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(snake.GameID); err != nil {
			return err
		}
		fmt.Println("Snake scores cleared.")
		return nil
	}

	out := display.NewStream(os.Stdout)
	if err := commands.WriteLeaderboard(out, store, snake.GameID, "Snake"); err != nil {
		return err
	}
	return out.Err()
}
