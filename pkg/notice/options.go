package notice

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTickQuantum     = 100 * time.Millisecond
	DefaultLifetime        = 3 * time.Second
	DefaultBufferSize      = 64
	defaultSubscriberQueue = 4
)

type options struct {
	quantum         time.Duration
	defaultLifetime time.Duration
	bufferSize      int
	newID           func() string
	clock           func() time.Time
	newTicker       TickerFunc
	logger          *slog.Logger
}

func defaultOptions() options {
	return options{
		quantum:         DefaultTickQuantum,
		defaultLifetime: DefaultLifetime,
		bufferSize:      DefaultBufferSize,
		newID:           uuid.NewString,
		clock:           time.Now,
		newTicker:       NewTicker,
		logger:          slog.Default(),
	}
}

// Option configures a Scheduler.
type Option func(*options)

// WithTickQuantum sets the period of the shared timer and the lifetime each
// Tick consumes.
func WithTickQuantum(d time.Duration) Option {
	return func(o *options) {
		o.quantum = d
	}
}

// WithDefaultLifetime sets the lifetime of records spawned without one.
func WithDefaultLifetime(d time.Duration) Option {
	return func(o *options) {
		o.defaultLifetime = d
	}
}

// WithBufferSize sets how many dispatched actions may queue before Dispatch blocks.
func WithBufferSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.bufferSize = n
		}
	}
}

// WithIDGenerator replaces the uuid based id generator.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithClock replaces time.Now for spawn timestamps.
func WithClock(fn func() time.Time) Option {
	return func(o *options) {
		if fn != nil {
			o.clock = fn
		}
	}
}

// WithTickerFunc replaces the timer factory. Tests use it to drive ticks by hand.
func WithTickerFunc(fn TickerFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.newTicker = fn
		}
	}
}

// WithLogger sets the logger. Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
