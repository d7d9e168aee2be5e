package notice

import "time"

// Record is the constraint every notification-like payload satisfies.
//
// It is F-bounded: each transition returns a new T, so records behave as
// values and a collection snapshot is never mutated after it is published.
// Implementations must not share mutable state between copies.
type Record[T any] interface {
	// ID returns the identity assigned by Spawn. It is the only equality key.
	ID() string
	// Alive reports whether any lifetime remains.
	Alive() bool
	// Paused reports whether the countdown is frozen.
	Paused() bool
	// Spawn finalizes a freshly created payload: it assigns the id and spawn
	// time and starts the countdown at the payload's own lifetime, or at
	// defaultLifetime when the payload did not set one.
	Spawn(id string, at time.Time, defaultLifetime time.Duration) T
	// Tick subtracts elapsed from the remaining lifetime, floored at zero.
	Tick(elapsed time.Duration) T
	// Pause freezes the countdown.
	Pause() T
	// Resume unfreezes the countdown and restarts it from the full lifetime.
	Resume() T
}
