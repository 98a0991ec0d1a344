package display

import (
	"slices"

	"github.com/vovakirdan/tui-terminal/internal/core"
)

type subscription[E any] struct {
	id int
	fn func(E)
}

type subscribers[E any] struct {
	next int
	subs []subscription[E]
}

func (s *subscribers[E]) add(fn func(E)) func() {
	id := s.next
	s.next++
	s.subs = append(s.subs, subscription[E]{id: id, fn: fn})
	return func() { s.remove(id) }
}

func (s *subscribers[E]) remove(id int) {
	s.subs = slices.DeleteFunc(s.subs, func(sub subscription[E]) bool {
		return sub.id == id
	})
}

func (s *subscribers[E]) active(id int) bool {
	return slices.ContainsFunc(s.subs, func(sub subscription[E]) bool {
		return sub.id == id
	})
}

// emit delivers ev to the subscribers registered when emission started.
// A subscriber removed by an earlier handler is skipped.
func (s *subscribers[E]) emit(ev E) {
	for _, sub := range slices.Clone(s.subs) {
		if s.active(sub.id) {
			sub.fn(ev)
		}
	}
}

// Hub fans data and key events out to subscribers in registration order.
// It is not safe for concurrent use: events are delivered from a single
// event loop.
type Hub struct {
	data subscribers[core.DataEvent]
	keys subscribers[core.KeyEvent]
}

// OnData registers fn for data events.
func (h *Hub) OnData(fn func(core.DataEvent)) func() {
	return h.data.add(fn)
}

// OnKey registers fn for key events.
func (h *Hub) OnKey(fn func(core.KeyEvent)) func() {
	return h.keys.add(fn)
}

// EmitData delivers a data event.
func (h *Hub) EmitData(value string) {
	h.data.emit(core.DataEvent{Value: value})
}

// EmitKey delivers a key event.
func (h *Hub) EmitKey(key string) {
	h.keys.emit(core.KeyEvent{Key: key})
}

// Subscribers returns the number of data and key subscribers.
func (h *Hub) Subscribers() (data, keys int) {
	return len(h.data.subs), len(h.keys.subs)
}
