package notice

import "time"

// ActionKind enumerates the actions the reducer understands.
type ActionKind uint8

const (
	ActionNew ActionKind = iota + 1
	ActionClose
	ActionTick
	ActionPause
	ActionContinue
)

func (k ActionKind) String() string {
	switch k {
	case ActionNew:
		return "new"
	case ActionClose:
		return "close"
	case ActionTick:
		return "tick"
	case ActionPause:
		return "pause"
	case ActionContinue:
		return "continue"
	default:
		return "unknown"
	}
}

// Action is a single state transition request.
//
// Everything non-deterministic (the generated id, the spawn time, the tick
// quantum) travels inside the action so Reduce stays pure.
type Action[T any] struct {
	Kind ActionKind
	// ID targets Close, Pause and Continue, and names the record created by New.
	ID string
	// Item is the payload of a New action.
	Item T
	// At is the spawn time of a New action.
	At time.Time
	// Lifetime is the default lifetime applied by New when the payload sets none.
	Lifetime time.Duration
	// Elapsed is the amount of lifetime a Tick consumes.
	Elapsed time.Duration
}

// NewAction creates a record from item under the given id.
func NewAction[T any](id string, item T, at time.Time, defaultLifetime time.Duration) Action[T] {
	return Action[T]{Kind: ActionNew, ID: id, Item: item, At: at, Lifetime: defaultLifetime}
}

// CloseAction removes the record with the given id.
func CloseAction[T any](id string) Action[T] {
	return Action[T]{Kind: ActionClose, ID: id}
}

// TickAction ages every non-paused record by elapsed.
func TickAction[T any](elapsed time.Duration) Action[T] {
	return Action[T]{Kind: ActionTick, Elapsed: elapsed}
}

// PauseAction freezes the record with the given id.
func PauseAction[T any](id string) Action[T] {
	return Action[T]{Kind: ActionPause, ID: id}
}

// ContinueAction unfreezes the record with the given id and restarts its countdown.
func ContinueAction[T any](id string) Action[T] {
	return Action[T]{Kind: ActionContinue, ID: id}
}
