package notice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/toastkit/pkg/broadcast"
	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/statemachine"
)

// Timer states and events.
const (
	TimerIdle    = statemachine.StringState("idle")
	TimerRunning = statemachine.StringState("running")

	timerActivate   = statemachine.StringEvent("activate")
	timerDeactivate = statemachine.StringEvent("deactivate")
)

// Snapshot is published to subscribers after every transition and on
// mount and unmount.
type Snapshot[T Record[T]] struct {
	Items   Collection[T]
	Action  ActionKind // zero for mount and unmount snapshots
	Mounted bool
}

// Scheduler owns one collection while mounted, ages it with a single shared
// timer and renders it through a Renderer.
//
// All state transitions run on one event loop goroutine; dispatches from any
// goroutine are queued to it in order.
type Scheduler[T Record[T], V any] struct {
	renderer Renderer[T, V]
	opts     options
	log      *slog.Logger

	mu      sync.Mutex
	mounted bool
	actions chan Action[T]
	cancel  context.CancelFunc
	done    chan struct{}

	store        atomic.Pointer[Store[T]]
	timerRunning atomic.Bool

	observers observerSet[T]

	snapshots *broadcast.MemoryBroadcaster[Snapshot[T]]
}

// NewScheduler validates the options and returns an unmounted Scheduler.
func NewScheduler[T Record[T], V any](renderer Renderer[T, V], opts ...Option) (*Scheduler[T, V], error) {
	if renderer == nil {
		return nil, ErrNilRenderer
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.quantum <= 0 {
		return nil, ErrInvalidQuantum
	}
	if o.defaultLifetime < 0 {
		return nil, ErrInvalidLifetime
	}

	return &Scheduler[T, V]{
		renderer: renderer,
		opts:     o,
		log:      o.logger.With(logger.Component("notice.scheduler")),
		snapshots: broadcast.NewMemoryBroadcaster[Snapshot[T]](
			defaultSubscriberQueue,
			broadcast.WithReplayLatest(),
			broadcast.WithKeepLatest(),
		),
	}, nil
}

// Start mounts the scheduler with a fresh empty collection and starts the
// event loop. It returns immediately. Cancelling ctx unmounts, like Stop.
func (s *Scheduler[T, V]) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mounted {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	store := NewStore[T]()
	actions := make(chan Action[T], s.opts.bufferSize)
	done := make(chan struct{})

	s.store.Store(store)
	s.actions = actions
	s.cancel = cancel
	s.done = done
	s.mounted = true

	s.publish(ctx, Snapshot[T]{Items: store.State(), Mounted: true})
	s.log.LogAttrs(ctx, slog.LevelInfo, "scheduler mounted",
		logger.Duration(s.opts.quantum),
		slog.Duration("default_lifetime", s.opts.defaultLifetime),
	)

	go s.run(ctx, store, actions, done)
	return nil
}

// Stop unmounts the scheduler: the loop exits, the timer is released and the
// collection is discarded. It blocks until the loop has exited, so calling it
// from an Observer, or from anything else running on the loop goroutine,
// deadlocks.
func (s *Scheduler[T, V]) Stop() error {
	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return ErrNotStarted
	}
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	<-done
	return nil
}

// Mounted reports whether the scheduler currently owns a collection.
func (s *Scheduler[T, V]) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mounted
}

// TimerRunning reports whether the shared timer is currently acquired.
func (s *Scheduler[T, V]) TimerRunning() bool {
	return s.timerRunning.Load()
}

// Manager returns the dispatch handle bound to this scheduler. It stays valid
// across remounts and is a no-op while unmounted.
func (s *Scheduler[T, V]) Manager() Manager[T] {
	return Manager[T]{d: s}
}

// State returns the current collection; empty while unmounted.
func (s *Scheduler[T, V]) State() Collection[T] {
	if store := s.store.Load(); store != nil {
		return store.State()
	}
	return Collection[T]{}
}

// Observe registers fn to run on the event loop after every transition.
// Observers must not dispatch synchronously, and must not call Stop: Stop
// waits for the event loop to exit, which cannot happen while an observer
// is still running on it.
func (s *Scheduler[T, V]) Observe(fn Observer[T]) (unsubscribe func()) {
	return s.observers.add(fn)
}

// Subscribe streams collection snapshots until ctx is cancelled. The latest
// snapshot is delivered first; a slow subscriber skips stale snapshots.
func (s *Scheduler[T, V]) Subscribe(ctx context.Context) broadcast.Subscriber[Snapshot[T]] {
	return s.snapshots.Subscribe(ctx)
}

// Render renders the current collection.
func (s *Scheduler[T, V]) Render(ctx context.Context) ([]V, error) {
	return s.RenderCollection(ctx, s.State())
}

// RenderCollection renders every record of c in order, handing each the
// callbacks bound to its id. A record whose rendering fails or panics is
// skipped; the failures are joined into the returned error. Rendering never
// changes state.
func (s *Scheduler[T, V]) RenderCollection(ctx context.Context, c Collection[T]) ([]V, error) {
	m := s.Manager()
	views := make([]V, 0, c.Len())
	var errs []error

	for _, item := range c.items {
		view, err := s.renderOne(ctx, item, m.Handlers(item.ID()))
		if err != nil {
			s.log.LogAttrs(ctx, slog.LevelWarn, "render failed",
				logger.NoticeID(item.ID()),
				logger.Error(err),
			)
			errs = append(errs, fmt.Errorf("render %s: %w", item.ID(), err))
			continue
		}
		views = append(views, view)
	}

	return views, errors.Join(errs...)
}

func (s *Scheduler[T, V]) renderOne(ctx context.Context, item T, h Handlers) (view V, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrRendererPanic, r)
		}
	}()
	return s.renderer.Render(ctx, item, h)
}

func (s *Scheduler[T, V]) spawn(item T) string {
	id := s.opts.newID()
	if !s.dispatch(NewAction(id, item, s.opts.clock(), s.opts.defaultLifetime)) {
		return ""
	}
	return id
}

// dispatch queues a for the event loop. It reports false when the scheduler
// is not mounted or unmounts before accepting the action.
func (s *Scheduler[T, V]) dispatch(a Action[T]) bool {
	s.mu.Lock()
	if !s.mounted {
		s.mu.Unlock()
		return false
	}
	actions, done := s.actions, s.done
	s.mu.Unlock()

	select {
	case actions <- a:
		return true
	case <-done:
		return false
	}
}

func (s *Scheduler[T, V]) attached() bool {
	return s.Mounted()
}

func (s *Scheduler[T, V]) run(ctx context.Context, store *Store[T], actions <-chan Action[T], done chan struct{}) {
	defer close(done)

	var ticker Ticker
	var tickC <-chan time.Time

	timer := statemachine.MustNew(TimerIdle,
		statemachine.WithTransition(TimerIdle, TimerRunning, timerActivate,
			statemachine.WithAction(func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
				ticker = s.opts.newTicker(s.opts.quantum)
				tickC = ticker.C()
				return nil
			}),
		),
		statemachine.WithTransition(TimerRunning, TimerIdle, timerDeactivate,
			statemachine.WithAction(func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
				releaseTicker(&ticker, &tickC)
				return nil
			}),
		),
		statemachine.WithTransitionHook(func(ctx context.Context, from, to statemachine.State, _ statemachine.Event) {
			s.timerRunning.Store(to == TimerRunning)
			s.log.LogAttrs(ctx, slog.LevelDebug, "timer transition",
				slog.String("from", from.Name()),
				logger.State(to.Name()),
			)
		}),
	)

	defer func() {
		releaseTicker(&ticker, &tickC)
		s.timerRunning.Store(false)
		s.unmount(done)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case a := <-actions:
			s.apply(ctx, store, timer, a)
		case <-tickC:
			s.apply(ctx, store, timer, TickAction[T](s.opts.quantum))
		}
	}
}

func (s *Scheduler[T, V]) apply(ctx context.Context, store *Store[T], timer *statemachine.SimpleStateMachine, a Action[T]) {
	tr := store.Apply(a)

	if a.Kind != ActionTick {
		attrs := []slog.Attr{
			logger.Action(a.Kind.String()),
			logger.Count(tr.Next.Len()),
		}
		if rec, ok := tr.Next.Get(a.ID); ok {
			attrs = append(attrs, recordAttr(rec))
		} else {
			attrs = append(attrs, logger.NoticeID(a.ID))
		}
		s.log.LogAttrs(ctx, slog.LevelDebug, "action applied", attrs...)
	}

	var err error
	switch {
	case !tr.Next.IsEmpty() && timer.Is(TimerIdle):
		err = timer.Fire(ctx, timerActivate, nil)
	case tr.Next.IsEmpty() && timer.Is(TimerRunning):
		err = timer.Fire(ctx, timerDeactivate, nil)
	}
	if err != nil {
		s.log.LogAttrs(ctx, slog.LevelError, "timer transition failed", logger.Error(err))
	}

	s.observers.notify(tr)

	s.publish(ctx, Snapshot[T]{Items: tr.Next, Action: a.Kind, Mounted: true})
}

// unmount runs on loop exit, after the loop context is cancelled.
func (s *Scheduler[T, V]) unmount(done chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != done {
		return
	}
	s.mounted = false
	s.cancel = nil
	s.actions = nil
	s.store.Store(nil)

	// publishing under the lock keeps this ahead of a following mount snapshot
	s.publish(context.Background(), Snapshot[T]{})
	s.log.LogAttrs(context.Background(), slog.LevelInfo, "scheduler unmounted")
}

func (s *Scheduler[T, V]) publish(ctx context.Context, snap Snapshot[T]) {
	_ = s.snapshots.Broadcast(ctx, broadcast.Message[Snapshot[T]]{Data: snap})
}

func releaseTicker(ticker *Ticker, tickC *<-chan time.Time) {
	if *ticker != nil {
		(*ticker).Stop()
		*ticker = nil
	}
	*tickC = nil
}

// recordAttr groups the id of rec with its remaining lifetime, when the
// record type exposes one.
func recordAttr[T Record[T]](rec T) slog.Attr {
	attrs := []slog.Attr{logger.NoticeID(rec.ID())}
	if r, ok := any(rec).(interface{ Remaining() time.Duration }); ok {
		attrs = append(attrs, logger.Remaining(r.Remaining()))
	}
	return logger.Group("record", attrs...)
}
