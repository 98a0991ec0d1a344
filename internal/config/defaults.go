package config

import (
	_ "embed"
)

//go:embed defaults/terminal.yaml
var defaultTerminalYAML []byte

// DefaultConfig returns the built-in configuration. It matches
// defaults/terminal.yaml.
func DefaultConfig() Config {
	return Config{
		Prompt: "$ ",
		Snake: SnakeConfig{
			TickMS: 150,
			Seed:   0,
		},
		Storage: StorageConfig{
			DBPath: "~/.terminal/scores.db",
		},
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30,
		},
		Log: LogConfig{
			Level: "info",
		},
		Source: "embedded",
	}
}
