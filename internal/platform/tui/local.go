package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// RunLocal runs one terminal session on the process's controlling TTY and
// returns when the user exits.
func RunLocal(ctx context.Context, opts Options) error {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("tui: stdin is not a terminal")
	}

	// Without a renderer Bubble Tea leaves the TTY in cooked mode.
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("tui: cannot enter raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	t := NewTerminal(os.Stdout, opts)
	p := tea.NewProgram(NewModel(t),
		tea.WithContext(ctx),
		tea.WithInput(os.Stdin),
		tea.WithOutput(os.Stdout),
		tea.WithoutRenderer(),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("tui: session failed: %w", err)
	}
	if err := t.Port.Err(); err != nil {
		return fmt.Errorf("tui: write failed: %w", err)
	}
	return nil
}
