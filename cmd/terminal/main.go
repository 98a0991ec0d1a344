// terminal is an interactive line-oriented terminal with command history,
// builtin commands and a Snake game, usable locally or over SSH.
//
// Usage:
//
//	terminal                 - Start a session on this terminal
//	terminal run             - Same as above
//	terminal serve           - Start SSH server for remote sessions
//	terminal scores          - Show the Snake leaderboard
//	terminal commands        - List builtin commands
//
// Global flags:
//
//	--config <path>     - Configuration file (default: search order, then embedded)
//	--db <path>         - Scores database path
//	--seed <value>      - Snake RNG seed for reproducible food placement
//	--tick <ms>         - Snake tick interval in milliseconds
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Log file for local sessions
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-terminal/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagTickMS   int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "terminal",
	Short: "An interactive terminal with history, commands and Snake",
	Long: `terminal is a line-oriented shell with command history, a handful of
builtin commands and a Snake game that takes over the screen.

Available commands:
  run       - Start a session on this terminal (default)
  serve     - Start SSH server for remote sessions
  scores    - View the Snake leaderboard
  commands  - List builtin commands

Examples:
  terminal
  terminal --seed 42 --tick 100
  terminal serve --ssh :2222
  terminal scores`,
	SilenceUsage: true,
	RunE:         runLocal,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Snake RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagTickMS, "tick", 0, "Snake tick interval in milliseconds (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for local sessions")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(commandsCmd)
}

// loadConfig reads the configuration and applies flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("seed") {
		cfg.Snake.Seed = flagSeed
	}
	if flags.Changed("tick") {
		cfg.Snake.TickMS = flagTickMS
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}
