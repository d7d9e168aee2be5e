package notice_test

import (
	"strconv"
	"sync"
	"time"

	"github.com/dmitrymomot/toastkit/pkg/notice"
)

// item is a minimal Record used across the package tests.
type item struct {
	id          string
	label       string
	lifetime    time.Duration
	lifetimeSet bool
	remaining   time.Duration
	full        time.Duration
	paused      bool
	spawnedAt   time.Time
}

func newItem(label string) item {
	return item{label: label}
}

func (i item) withLifetime(d time.Duration) item {
	i.lifetime = d
	i.lifetimeSet = true
	return i
}

func (i item) ID() string { return i.id }

func (i item) Alive() bool { return i.remaining > 0 }

func (i item) Paused() bool { return i.paused }

func (i item) Remaining() time.Duration { return i.remaining }

func (i item) Spawn(id string, at time.Time, defaultLifetime time.Duration) item {
	l := defaultLifetime
	if i.lifetimeSet {
		l = i.lifetime
	}
	l = max(l, 0)
	i.id = id
	i.spawnedAt = at
	i.remaining = l
	i.full = l
	i.paused = false
	return i
}

func (i item) Tick(elapsed time.Duration) item {
	i.remaining = max(i.remaining-elapsed, 0)
	return i
}

func (i item) Pause() item {
	i.paused = true
	return i
}

func (i item) Resume() item {
	i.paused = false
	i.remaining = i.full
	return i
}

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

const quantum = 100 * time.Millisecond

func spawn(c notice.Collection[item], id string, it item) notice.Collection[item] {
	return notice.Reduce(c, notice.NewAction(id, it, epoch, notice.DefaultLifetime))
}

func ticks(c notice.Collection[item], n int) notice.Collection[item] {
	for range n {
		c = notice.Reduce(c, notice.TickAction[item](quantum))
	}
	return c
}

func mustGet(c notice.Collection[item], id string) item {
	it, ok := c.Get(id)
	if !ok {
		panic("record " + id + " not found")
	}
	return it
}

// fakeTickers hands out manually driven tickers.
type fakeTickers struct {
	mu      sync.Mutex
	created int
	current *fakeTicker
}

type fakeTicker struct {
	ch      chan time.Time
	mu      sync.Mutex
	stopped bool
}

func (t *fakeTicker) C() <-chan time.Time { return t.ch }

func (t *fakeTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

func (f *fakeTickers) New(time.Duration) notice.Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created++
	f.current = &fakeTicker{ch: make(chan time.Time)}
	return f.current
}

// fire delivers one tick to the active ticker and reports whether the event
// loop accepted it.
func (f *fakeTickers) fire() bool {
	f.mu.Lock()
	t := f.current
	f.mu.Unlock()
	if t == nil {
		return false
	}

	t.mu.Lock()
	stopped := t.stopped
	t.mu.Unlock()
	if stopped {
		return false
	}

	select {
	case t.ch <- epoch:
		return true
	case <-time.After(time.Second):
		return false
	}
}

func (f *fakeTickers) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.created
}

func (f *fakeTickers) activeStopped() bool {
	f.mu.Lock()
	t := f.current
	f.mu.Unlock()
	if t == nil {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// sequentialIDs returns an id generator yielding n1, n2, ...
func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return "n" + strconv.Itoa(n)
	}
}
