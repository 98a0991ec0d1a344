// Package tui runs terminal sessions on Bubble Tea: it decodes keystrokes
// into port events, drives game timers with tea.Tick and serves sessions
// locally or over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-terminal/internal/core"
)

// fireMsg is delivered when a timer interval elapses. gen ties the message
// to one Start call so ticks scheduled before a Stop are dropped.
type fireMsg struct {
	id  int
	gen int
}

// timerSet hands out core.Timer values backed by tea.Tick. Timers never
// block: scheduling queues a command that the model returns from Update.
type timerSet struct {
	next    int
	active  map[int]*tickTimer
	pending []tea.Cmd
}

func newTimerSet() *timerSet {
	return &timerSet{active: make(map[int]*tickTimer)}
}

// New implements core.TimerFactory.
func (s *timerSet) New() core.Timer {
	t := &tickTimer{set: s, id: s.next}
	s.next++
	return t
}

// fire runs the callback of the timer msg belongs to and schedules its
// next tick, unless the callback stopped or restarted it.
func (s *timerSet) fire(msg fireMsg) {
	t, ok := s.active[msg.id]
	if !ok || t.gen != msg.gen {
		return
	}

	t.onFire()
	if current, ok := s.active[msg.id]; ok && current.gen == msg.gen {
		t.schedule()
	}
}

// drain returns the queued tick commands as one command.
func (s *timerSet) drain() tea.Cmd {
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Len returns the number of running timers.
func (s *timerSet) Len() int {
	return len(s.active)
}

type tickTimer struct {
	set      *timerSet
	id       int
	gen      int
	interval time.Duration
	onFire   func()
}

func (t *tickTimer) Start(interval time.Duration, onFire func()) {
	t.gen++
	t.interval = interval
	t.onFire = onFire
	t.set.active[t.id] = t
	t.schedule()
}

// Stop is safe to call repeatedly and from inside onFire.
func (t *tickTimer) Stop() {
	delete(t.set.active, t.id)
}

func (t *tickTimer) schedule() {
	msg := fireMsg{id: t.id, gen: t.gen}
	t.set.pending = append(t.set.pending, tea.Tick(t.interval, func(time.Time) tea.Msg {
		return msg
	}))
}
