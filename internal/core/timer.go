package core

import "time"

// Timer fires a callback at a fixed interval until stopped.
// Implementations deliver fires on the owning event loop, so onFire never
// runs concurrently with key or data handlers. Stop must be idempotent and
// callable from inside onFire.
type Timer interface {
	Start(interval time.Duration, onFire func())
	Stop()
}

// TimerFactory creates a timer bound to the current event loop.
type TimerFactory func() Timer
