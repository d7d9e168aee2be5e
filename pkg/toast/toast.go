package toast

import (
	"slices"
	"time"
)

// ClosingWindow is how much lifetime a toast spends before it counts as closing.
const ClosingWindow = 500 * time.Millisecond

// Toast is a short-lived notification. It satisfies notice.Record, so every
// transition returns a modified copy and published toasts never change.
type Toast struct {
	id        string
	kind      Kind
	title     string
	body      string
	classes   []string
	spawnedAt time.Time

	lifetime    time.Duration
	lifetimeSet bool

	full      time.Duration
	remaining time.Duration
	paused    bool
}

// Option customizes a toast before it is spawned.
type Option func(*Toast)

// WithLifetime overrides the scheduler's default lifetime for this toast.
// Negative values are clamped to zero and the toast disappears on the next tick.
func WithLifetime(d time.Duration) Option {
	return func(t *Toast) {
		t.lifetime = d
		t.lifetimeSet = true
	}
}

// WithClasses appends extra CSS classes to the rendered toast.
func WithClasses(classes ...string) Option {
	return func(t *Toast) {
		for _, c := range classes {
			if c != "" {
				t.classes = append(t.classes, c)
			}
		}
	}
}

// New builds an unspawned toast. It gets its id and countdown when a Manager
// spawns it. Out of range kinds are stored as KindInfo.
func New(kind Kind, title, body string, opts ...Option) Toast {
	if !kind.Valid() {
		kind = KindInfo
	}
	t := Toast{
		kind:  kind,
		title: title,
		body:  body,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func (t Toast) ID() string { return t.id }

func (t Toast) Alive() bool { return t.remaining > 0 }

func (t Toast) Paused() bool { return t.paused }

// Spawn implements notice.Record.
func (t Toast) Spawn(id string, at time.Time, defaultLifetime time.Duration) Toast {
	full := defaultLifetime
	if t.lifetimeSet {
		full = t.lifetime
	}
	t.id = id
	t.spawnedAt = at
	t.full = max(full, 0)
	t.remaining = t.full
	t.paused = false
	t.classes = slices.Clone(t.classes)
	return t
}

// Tick implements notice.Record. Paused toasts do not age.
func (t Toast) Tick(elapsed time.Duration) Toast {
	if t.paused {
		return t
	}
	t.remaining = max(t.remaining-elapsed, 0)
	return t
}

// Pause implements notice.Record.
func (t Toast) Pause() Toast {
	t.paused = true
	return t
}

// Resume implements notice.Record. The countdown restarts from the full lifetime.
func (t Toast) Resume() Toast {
	t.paused = false
	t.remaining = t.full
	return t
}

func (t Toast) Kind() Kind { return t.kind }

func (t Toast) Title() string { return t.title }

func (t Toast) Body() string { return t.body }

func (t Toast) SpawnedAt() time.Time { return t.spawnedAt }

// Lifetime returns the full lifetime the countdown restarts from.
func (t Toast) Lifetime() time.Duration { return t.full }

func (t Toast) Remaining() time.Duration { return t.remaining }

// Classes returns the extra classes given with WithClasses.
func (t Toast) Classes() []string { return slices.Clone(t.classes) }

// Closing reports whether the toast has left its opening phase. That happens
// once the remaining lifetime drops below full minus ClosingWindow; a toast
// whose lifetime is within ClosingWindow is closing after its first tick.
// Renderers use it for exit animations; it never removes anything.
func (t Toast) Closing() bool {
	if t.full > ClosingWindow {
		return t.remaining < t.full-ClosingWindow
	}
	return t.remaining < t.full
}

// Progress is the fraction of lifetime left, from 1 down to 0.
func (t Toast) Progress() float64 {
	if t.full <= 0 {
		return 0
	}
	return float64(t.remaining) / float64(t.full)
}

// ClassNames returns the full class list for the rendered element.
func (t Toast) ClassNames() []string {
	names := make([]string, 0, 4+len(t.classes))
	names = append(names, "toast", t.kind.String())
	if t.paused {
		names = append(names, "paused")
	}
	if t.Closing() {
		names = append(names, "toast-closing")
	} else {
		names = append(names, "toast-loading")
	}
	return append(names, t.classes...)
}
