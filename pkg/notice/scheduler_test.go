package notice_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/notice"
)

const (
	waitFor = time.Second
	pollInt = 5 * time.Millisecond
)

func labelRenderer() notice.Renderer[item, string] {
	return notice.RendererFunc[item, string](func(_ context.Context, it item, h notice.Handlers) (string, error) {
		return fmt.Sprintf("%s:%s", h.ID, it.label), nil
	})
}

func newTestScheduler(t *testing.T, tickers *fakeTickers, opts ...notice.Option) *notice.Scheduler[item, string] {
	t.Helper()
	base := []notice.Option{
		notice.WithTickerFunc(tickers.New),
		notice.WithIDGenerator(sequentialIDs()),
		notice.WithClock(func() time.Time { return epoch }),
		notice.WithDefaultLifetime(time.Second),
	}
	s, err := notice.NewScheduler(labelRenderer(), append(base, opts...)...)
	require.NoError(t, err)
	return s
}

func startScheduler(t *testing.T, s *notice.Scheduler[item, string]) {
	t.Helper()
	require.NoError(t, s.Start(context.Background()))
	t.Cleanup(func() { _ = s.Stop() })
}

func TestNewScheduler_Validation(t *testing.T) {
	t.Parallel()

	_, err := notice.NewScheduler[item, string](nil)
	assert.ErrorIs(t, err, notice.ErrNilRenderer)

	_, err = notice.NewScheduler(labelRenderer(), notice.WithTickQuantum(0))
	assert.ErrorIs(t, err, notice.ErrInvalidQuantum)

	_, err = notice.NewScheduler(labelRenderer(), notice.WithDefaultLifetime(-time.Second))
	assert.ErrorIs(t, err, notice.ErrInvalidLifetime)
}

func TestScheduler_Lifecycle(t *testing.T) {
	t.Parallel()

	tickers := &fakeTickers{}
	s := newTestScheduler(t, tickers)

	assert.False(t, s.Mounted())
	assert.ErrorIs(t, s.Stop(), notice.ErrNotStarted)

	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.Mounted())
	assert.ErrorIs(t, s.Start(context.Background()), notice.ErrAlreadyStarted)

	id := s.Manager().Spawn(newItem("hello"))
	require.Eventually(t, func() bool { return s.State().Has(id) }, waitFor, pollInt)

	require.NoError(t, s.Stop())
	assert.False(t, s.Mounted())
	assert.True(t, s.State().IsEmpty(), "unmount discards the collection")
	assert.False(t, s.TimerRunning())
	assert.True(t, tickers.activeStopped(), "timer released on unmount")

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()
	assert.True(t, s.State().IsEmpty(), "remount starts empty")
}

func TestScheduler_ContextCancelUnmounts(t *testing.T) {
	t.Parallel()

	tickers := &fakeTickers{}
	s := newTestScheduler(t, tickers)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	s.Manager().Spawn(newItem("x"))
	require.Eventually(t, s.TimerRunning, waitFor, pollInt)

	cancel()
	require.Eventually(t, func() bool { return !s.Mounted() }, waitFor, pollInt)
	assert.True(t, tickers.activeStopped())
	assert.False(t, s.Manager().Attached())
}

func TestScheduler_TimerStateMachine(t *testing.T) {
	t.Parallel()

	tickers := &fakeTickers{}
	s := newTestScheduler(t, tickers)
	startScheduler(t, s)
	m := s.Manager()

	assert.False(t, s.TimerRunning(), "empty collection keeps the timer idle")
	assert.Zero(t, tickers.count())

	first := m.Spawn(newItem("a"))
	require.Eventually(t, s.TimerRunning, waitFor, pollInt)
	assert.Equal(t, 1, tickers.count())

	second := m.Spawn(newItem("b"))
	require.Eventually(t, func() bool { return s.State().Len() == 2 }, waitFor, pollInt)
	assert.Equal(t, 1, tickers.count(), "one shared timer for all records")

	m.Close(first)
	m.Close(second)
	require.Eventually(t, func() bool { return !s.TimerRunning() }, waitFor, pollInt)
	assert.True(t, tickers.activeStopped())

	m.Spawn(newItem("c"))
	require.Eventually(t, s.TimerRunning, waitFor, pollInt)
	assert.Equal(t, 2, tickers.count(), "timer reacquired when non-empty again")
}

func TestScheduler_TicksExpireRecords(t *testing.T) {
	t.Parallel()

	tickers := &fakeTickers{}
	s := newTestScheduler(t, tickers)
	startScheduler(t, s)

	id := s.Manager().Spawn(newItem("short").withLifetime(300 * time.Millisecond))
	require.Eventually(t, s.TimerRunning, waitFor, pollInt)

	require.True(t, tickers.fire())
	require.True(t, tickers.fire())
	require.Eventually(t, func() bool {
		rec, ok := s.State().Get(id)
		return ok && rec.Remaining() == 100*time.Millisecond
	}, waitFor, pollInt)

	require.True(t, tickers.fire())
	require.Eventually(t, func() bool { return s.State().IsEmpty() }, waitFor, pollInt)
	require.Eventually(t, func() bool { return !s.TimerRunning() }, waitFor, pollInt)
}

func TestScheduler_PauseResume(t *testing.T) {
	t.Parallel()

	tickers := &fakeTickers{}
	s := newTestScheduler(t, tickers)
	startScheduler(t, s)
	m := s.Manager()

	id := m.Spawn(newItem("hover"))
	require.Eventually(t, s.TimerRunning, waitFor, pollInt)

	m.Pause(id)
	require.Eventually(t, func() bool {
		rec, ok := s.State().Get(id)
		return ok && rec.Paused()
	}, waitFor, pollInt)

	for range 3 {
		require.True(t, tickers.fire())
	}
	m.Resume(id)
	require.Eventually(t, func() bool {
		rec, ok := s.State().Get(id)
		return ok && !rec.Paused() && rec.Remaining() == time.Second
	}, waitFor, pollInt)
	require.True(t, tickers.fire())

	require.Eventually(t, func() bool {
		rec, ok := s.State().Get(id)
		return ok && rec.Remaining() == 900*time.Millisecond
	}, waitFor, pollInt)
}

func TestScheduler_Observe(t *testing.T) {
	t.Parallel()

	tickers := &fakeTickers{}
	s := newTestScheduler(t, tickers)

	var mu sync.Mutex
	var kinds []notice.ActionKind
	unsubscribe := s.Observe(func(tr notice.Transition[item]) {
		mu.Lock()
		defer mu.Unlock()
		kinds = append(kinds, tr.Action.Kind)
	})
	startScheduler(t, s)

	id := s.Manager().Spawn(newItem("x"))
	require.Eventually(t, s.TimerRunning, waitFor, pollInt)
	require.True(t, tickers.fire())
	s.Manager().Close(id)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(kinds) == 3
	}, waitFor, pollInt)

	unsubscribe()
	s.Manager().Spawn(newItem("y"))
	require.Eventually(t, func() bool { return s.State().Len() == 1 }, waitFor, pollInt)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []notice.ActionKind{notice.ActionNew, notice.ActionTick, notice.ActionClose}, kinds)
}

func TestScheduler_Subscribe(t *testing.T) {
	t.Parallel()

	tickers := &fakeTickers{}
	s := newTestScheduler(t, tickers)
	startScheduler(t, s)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sub := s.Subscribe(ctx)

	next := func() notice.Snapshot[item] {
		select {
		case msg := <-sub.Receive(ctx):
			return msg.Data
		case <-time.After(waitFor):
			t.Fatal("no snapshot received")
			return notice.Snapshot[item]{}
		}
	}

	mounted := next()
	assert.True(t, mounted.Mounted)
	assert.True(t, mounted.Items.IsEmpty())

	id := s.Manager().Spawn(newItem("x"))
	snap := next()
	assert.Equal(t, notice.ActionNew, snap.Action)
	assert.True(t, snap.Items.Has(id))

	require.NoError(t, s.Stop())
	for {
		snap = next()
		if !snap.Mounted {
			break
		}
	}
	assert.True(t, snap.Items.IsEmpty())
}

func TestScheduler_Render(t *testing.T) {
	t.Parallel()

	tickers := &fakeTickers{}
	s := newTestScheduler(t, tickers)
	startScheduler(t, s)
	m := s.Manager()

	a := m.Spawn(newItem("first"))
	b := m.Spawn(newItem("second"))
	require.Eventually(t, func() bool { return s.State().Len() == 2 }, waitFor, pollInt)

	views, err := s.Render(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{a + ":first", b + ":second"}, views)
}

func TestScheduler_RenderHandlers(t *testing.T) {
	t.Parallel()

	var captured sync.Map
	renderer := notice.RendererFunc[item, string](func(_ context.Context, it item, h notice.Handlers) (string, error) {
		captured.Store(h.ID, h)
		return it.label, nil
	})

	tickers := &fakeTickers{}
	s, err := notice.NewScheduler(renderer,
		notice.WithTickerFunc(tickers.New),
		notice.WithIDGenerator(sequentialIDs()),
	)
	require.NoError(t, err)
	startScheduler(t, s)

	id := s.Manager().Spawn(newItem("x"))
	require.Eventually(t, func() bool { return s.State().Has(id) }, waitFor, pollInt)

	_, err = s.Render(context.Background())
	require.NoError(t, err)
	v, ok := captured.Load(id)
	require.True(t, ok)
	h := v.(notice.Handlers)

	h.OnMouseEnter()
	require.Eventually(t, func() bool {
		rec, _ := s.State().Get(id)
		return rec.Paused()
	}, waitFor, pollInt)

	h.OnMouseLeave()
	require.Eventually(t, func() bool {
		rec, _ := s.State().Get(id)
		return !rec.Paused()
	}, waitFor, pollInt)

	h.OnClose()
	require.Eventually(t, func() bool { return !s.State().Has(id) }, waitFor, pollInt)

	require.NoError(t, s.Stop())
	assert.NotPanics(t, h.OnClose, "handlers outlive the mount as no-ops")
}

func TestScheduler_RenderFailureIsolation(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	renderer := notice.RendererFunc[item, string](func(_ context.Context, it item, _ notice.Handlers) (string, error) {
		switch it.label {
		case "bad":
			return "", boom
		case "panic":
			panic("renderer exploded")
		}
		return it.label, nil
	})

	tickers := &fakeTickers{}
	s, err := notice.NewScheduler(renderer,
		notice.WithTickerFunc(tickers.New),
		notice.WithIDGenerator(sequentialIDs()),
	)
	require.NoError(t, err)
	startScheduler(t, s)

	m := s.Manager()
	m.Spawn(newItem("ok"))
	m.Spawn(newItem("bad"))
	m.Spawn(newItem("panic"))
	m.Spawn(newItem("fine"))
	require.Eventually(t, func() bool { return s.State().Len() == 4 }, waitFor, pollInt)
	before := s.State()

	views, err := s.Render(context.Background())
	assert.Equal(t, []string{"ok", "fine"}, views)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, notice.ErrRendererPanic)
	assert.Equal(t, before, s.State(), "rendering failures never touch state")
}

func TestScheduler_DispatchOrdering(t *testing.T) {
	t.Parallel()

	tickers := &fakeTickers{}
	s := newTestScheduler(t, tickers, notice.WithBufferSize(1))
	startScheduler(t, s)
	m := s.Manager()

	var wg sync.WaitGroup
	var spawned atomic.Int64
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.Spawn(newItem("c")) != "" {
				spawned.Add(1)
			}
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool { return s.State().Len() == 20 }, waitFor, pollInt)
	assert.EqualValues(t, 20, spawned.Load())
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestScheduler_ActionLog(t *testing.T) {
	t.Parallel()

	var logs lockedBuffer
	log := slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := newTestScheduler(t, &fakeTickers{}, notice.WithLogger(log))
	startScheduler(t, s)
	m := s.Manager()

	id := m.Spawn(newItem("logged"))
	m.Pause(id)
	m.Close(id)
	require.Eventually(t, func() bool { return s.State().IsEmpty() }, waitFor, pollInt)

	out := logs.String()
	assert.Contains(t, out, `"action":"pause","count":1,"record":{"notice_id":"n1","remaining":1000000000}`)
	assert.Contains(t, out, `"action":"close","count":0,"notice_id":"n1"`)
}
