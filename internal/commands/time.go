package commands

import (
	"time"

	"github.com/vovakirdan/tui-terminal/internal/core"
	"github.com/vovakirdan/tui-terminal/internal/display"
)

// TimeLayout is the format used by the time command.
const TimeLayout = "2006-01-02 15:04:05"

// Time prints the local wall clock.
type Time struct {
	now func() time.Time
}

// NewTime creates the time command. A nil clock means time.Now.
func NewTime(now func() time.Time) *Time {
	if now == nil {
		now = time.Now
	}
	return &Time{now: now}
}

func (t *Time) Name() string        { return "time" }
func (t *Time) Description() string { return "Show current time" }

func (t *Time) Execute(port display.Port, _ []string) error {
	port.WriteLine(core.ColorBrightGreen.Paint("Current time: " + t.now().Format(TimeLayout)))
	return nil
}
