package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-terminal/internal/platform/tui"
	"github.com/vovakirdan/tui-terminal/internal/storage"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start a terminal session on this TTY",
	Long: `Start an interactive session on the current terminal.

Type help for the list of commands, use the arrow keys to recall
earlier lines, and exit or Ctrl+C to leave.

Examples:
  terminal run
  terminal run --log-file /tmp/terminal.log --log-level debug`,
	RunE: runLocal,
}

func runLocal(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// Logs would garble the raw terminal, so they go to a file or nowhere.
	logger, closeLog, err := newLogger(cfg.Log, io.Discard, "terminal")
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Debug("configuration loaded", "source", cfg.Source)

	rc := cfg.Runtime()
	opts := tui.Options{
		Prompt:   rc.Prompt,
		Interval: rc.TickInterval,
		Seed:     rc.Seed,
		Logger:   logger,
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer store.Close()
		opts.Scores = store
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.RunLocal(ctx, opts)
}
