// Package config provides YAML-based configuration for the terminal: the
// prompt, Snake timing, score storage, the SSH server and logging.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-terminal/internal/core"
)

// Config is the complete terminal configuration.
type Config struct {
	Prompt  string        `yaml:"prompt"`
	Snake   SnakeConfig   `yaml:"snake"`
	Storage StorageConfig `yaml:"storage"`
	SSH     SSHConfig     `yaml:"ssh"`
	Log     LogConfig     `yaml:"log"`

	// Source is the file the configuration was read from, or "embedded".
	Source string `yaml:"-"`
}

// SnakeConfig defines Snake timing.
type SnakeConfig struct {
	TickMS int   `yaml:"tick_ms"` // Milliseconds between moves
	Seed   int64 `yaml:"seed"`    // 0 = random per run
}

// Interval returns the tick interval as a duration.
func (c SnakeConfig) Interval() time.Duration {
	return time.Duration(c.TickMS) * time.Millisecond
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// SSHConfig defines the SSH server.
type SSHConfig struct {
	Address     string `yaml:"address"`
	HostKeyPath string `yaml:"host_key_path"`
	IdleTimeout int    `yaml:"idle_timeout"` // Minutes, 0 disables
}

// Idle returns the idle timeout as a duration.
func (c SSHConfig) Idle() time.Duration {
	return time.Duration(c.IdleTimeout) * time.Minute
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Snake.TickMS <= 0 {
		return fmt.Errorf("snake.tick_ms must be positive, got %d", c.Snake.TickMS)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("ssh.idle_timeout must not be negative, got %d", c.SSH.IdleTimeout)
	}
	if c.SSH.Address == "" {
		return errors.New("ssh.address must not be empty")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Runtime returns the settings handed to each terminal session.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	if c.Prompt != "" {
		rc.Prompt = c.Prompt
	}
	if c.Snake.TickMS > 0 {
		rc.TickInterval = c.Snake.Interval()
	}
	rc.Seed = c.Snake.Seed
	return rc
}
