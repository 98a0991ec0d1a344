// Package registry maps command names to the handlers the terminal session
// dispatches to. Names are matched case-insensitively and listed in the order
// they were registered.
package registry

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-terminal/internal/display"
)

// Command is the contract every terminal command implements.
type Command interface {
	// Name returns the lowercase word that invokes the command (e.g. "help").
	Name() string

	// Description returns a one-line summary for the help listing.
	Description() string

	// Execute runs the command. args[0] is the command name and the rest are
	// the whitespace-split arguments. A returned error is reported on the
	// port and never ends the session.
	Execute(port display.Port, args []string) error
}

// ErrEmptyName is returned when registering a command without a name.
var ErrEmptyName = errors.New("registry: command name cannot be empty")

// DuplicateCommandError is returned when a name is registered twice.
type DuplicateCommandError struct {
	Name string
}

func (e *DuplicateCommandError) Error() string {
	return fmt.Sprintf("registry: command %q already registered", e.Name)
}

// Registry holds registered commands. Entries are immutable once added.
type Registry struct {
	mu     sync.RWMutex
	order  []Command
	byName map[string]Command
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byName: make(map[string]Command),
	}
}

// Register adds a command to the registry.
func (r *Registry) Register(cmd Command) error {
	key := strings.ToLower(cmd.Name())
	if key == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[key]; exists {
		return &DuplicateCommandError{Name: key}
	}

	r.byName[key] = cmd
	r.order = append(r.order, cmd)
	return nil
}

// MustRegister registers every command and panics on the first failure.
// Intended for wiring fixed command sets at startup.
func (r *Registry) MustRegister(cmds ...Command) {
	for _, cmd := range cmds {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
}

// Lookup finds a command by exact, case-insensitive name.
func (r *Registry) Lookup(name string) (Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.byName[strings.ToLower(name)]
	return cmd, ok
}

// List yields commands in registration order. Each iteration takes a fresh
// snapshot, so the sequence can be ranged over any number of times.
func (r *Registry) List() iter.Seq[Command] {
	return func(yield func(Command) bool) {
		r.mu.RLock()
		snapshot := make([]Command, len(r.order))
		copy(snapshot, r.order)
		r.mu.RUnlock()

		for _, cmd := range snapshot {
			if !yield(cmd) {
				return
			}
		}
	}
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
