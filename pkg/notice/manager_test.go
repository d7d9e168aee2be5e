package notice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/notice"
)

func TestManager_ZeroValueIsNoop(t *testing.T) {
	t.Parallel()

	var m notice.Manager[item]
	assert.False(t, m.Attached())
	assert.Empty(t, m.Spawn(newItem("x")))
	assert.NotPanics(t, func() {
		m.Close("x")
		m.Pause("x")
		m.Resume("x")
		h := m.Handlers("x")
		h.OnClose()
		h.OnMouseEnter()
		h.OnMouseLeave()
	})
}

func TestManager_DetachedScheduler(t *testing.T) {
	t.Parallel()

	tickers := &fakeTickers{}
	s := newTestScheduler(t, tickers)
	m := s.Manager()

	assert.False(t, m.Attached())
	assert.Empty(t, m.Spawn(newItem("x")), "spawning before mount is ignored")

	startScheduler(t, s)
	assert.True(t, m.Attached(), "handles obtained before mount bind on mount")

	id := m.Spawn(newItem("x"))
	assert.NotEmpty(t, id)
	require.Eventually(t, func() bool { return s.State().Has(id) }, time.Second, 5*time.Millisecond)
}

func TestManager_Context(t *testing.T) {
	t.Parallel()

	tickers := &fakeTickers{}
	s := newTestScheduler(t, tickers)
	startScheduler(t, s)

	ctx := notice.WithManager(context.Background(), s.Manager())
	m := notice.ManagerFromContext[item](ctx)
	assert.True(t, m.Attached())

	id := m.Spawn(newItem("from ctx"))
	require.Eventually(t, func() bool { return s.State().Has(id) }, time.Second, 5*time.Millisecond)

	missing := notice.ManagerFromContext[item](context.Background())
	assert.False(t, missing.Attached())
	assert.Empty(t, missing.Spawn(newItem("lost")))
}
