package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-terminal/internal/platform/tui"
)

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List builtin commands",
	Long:  `Shows every command available inside a terminal session.`,
	Args:  cobra.NoArgs,
	Run:   runCommands,
}

func runCommands(_ *cobra.Command, _ []string) {
	term := tui.NewTerminal(io.Discard, tui.Options{})

	fmt.Println("Available commands:")
	fmt.Println()
	for cmd := range term.Registry.List() {
		fmt.Printf("  %-12s  %s\n", cmd.Name(), cmd.Description())
	}
	fmt.Println()
	fmt.Println("Run 'terminal' to start a session.")
}
