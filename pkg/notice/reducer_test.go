package notice_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/notice"
)

func TestReduce_Scenarios(t *testing.T) {
	t.Parallel()

	scenarioA := func() notice.Collection[item] {
		return spawn(notice.Collection[item]{}, "a", newItem("T").withLifetime(time.Second))
	}

	t.Run("A: spawn on empty collection", func(t *testing.T) {
		t.Parallel()
		c := scenarioA()
		require.Equal(t, 1, c.Len())

		rec := mustGet(c, "a")
		assert.Equal(t, time.Second, rec.Remaining())
		assert.False(t, rec.Paused())
		assert.Equal(t, epoch, rec.spawnedAt)
	})

	t.Run("B: ten ticks remove a one second record", func(t *testing.T) {
		t.Parallel()
		c := ticks(scenarioA(), 9)
		assert.Equal(t, 100*time.Millisecond, mustGet(c, "a").Remaining())

		c = ticks(c, 1)
		assert.True(t, c.IsEmpty())
	})

	t.Run("C: paused record does not age", func(t *testing.T) {
		t.Parallel()
		c := notice.Reduce(scenarioA(), notice.PauseAction[item]("a"))
		c = ticks(c, 5)
		assert.Equal(t, time.Second, mustGet(c, "a").Remaining())
	})

	t.Run("D: continue restarts from full lifetime", func(t *testing.T) {
		t.Parallel()
		c := ticks(scenarioA(), 4)
		c = notice.Reduce(c, notice.PauseAction[item]("a"))
		c = ticks(c, 5)
		c = notice.Reduce(c, notice.ContinueAction[item]("a"))
		c = ticks(c, 3)

		rec := mustGet(c, "a")
		assert.Equal(t, 700*time.Millisecond, rec.Remaining())
		assert.False(t, rec.Paused())
	})

	t.Run("E: closing an unknown id changes nothing", func(t *testing.T) {
		t.Parallel()
		before := scenarioA()
		after := notice.Reduce(before, notice.CloseAction[item]("nonexistent-id"))
		assert.Equal(t, before, after)
	})

	t.Run("F: close keeps relative order", func(t *testing.T) {
		t.Parallel()
		c := spawn(notice.Collection[item]{}, "A", newItem("first"))
		c = spawn(c, "B", newItem("second"))
		c = spawn(c, "C", newItem("third"))

		c = notice.Reduce(c, notice.CloseAction[item]("A"))
		assert.Equal(t, []string{"B", "C"}, c.IDs())
	})
}

func TestReduce_New(t *testing.T) {
	t.Parallel()

	t.Run("default lifetime applies when unset", func(t *testing.T) {
		t.Parallel()
		c := spawn(notice.Collection[item]{}, "x", newItem("x"))
		assert.Equal(t, notice.DefaultLifetime, mustGet(c, "x").Remaining())
	})

	t.Run("appends newest last", func(t *testing.T) {
		t.Parallel()
		c := spawn(notice.Collection[item]{}, "1", newItem("one"))
		c = spawn(c, "2", newItem("two"))
		assert.Equal(t, []string{"1", "2"}, c.IDs())
	})

	t.Run("duplicate id is ignored", func(t *testing.T) {
		t.Parallel()
		c := spawn(notice.Collection[item]{}, "dup", newItem("first"))
		c = spawn(c, "dup", newItem("second"))
		require.Equal(t, 1, c.Len())
		assert.Equal(t, "first", mustGet(c, "dup").label)
	})

	t.Run("empty id is ignored", func(t *testing.T) {
		t.Parallel()
		c := spawn(notice.Collection[item]{}, "", newItem("anon"))
		assert.True(t, c.IsEmpty())
	})

	t.Run("negative lifetime is clamped and dropped on next tick", func(t *testing.T) {
		t.Parallel()
		c := spawn(notice.Collection[item]{}, "neg", newItem("neg").withLifetime(-time.Second))
		require.Equal(t, 1, c.Len())
		assert.Zero(t, mustGet(c, "neg").Remaining())

		assert.True(t, ticks(c, 1).IsEmpty())
	})
}

func TestReduce_Properties(t *testing.T) {
	t.Parallel()

	base := func() notice.Collection[item] {
		c := spawn(notice.Collection[item]{}, "a", newItem("a").withLifetime(time.Second))
		return spawn(c, "b", newItem("b").withLifetime(2*time.Second))
	}

	t.Run("ids stay unique", func(t *testing.T) {
		t.Parallel()
		c := base()
		actions := []notice.Action[item]{
			notice.NewAction("a", newItem("again"), epoch, time.Second),
			notice.TickAction[item](quantum),
			notice.NewAction("c", newItem("c"), epoch, time.Second),
			notice.NewAction("b", newItem("again"), epoch, time.Second),
			notice.PauseAction[item]("c"),
			notice.ContinueAction[item]("c"),
		}
		for _, a := range actions {
			c = notice.Reduce(c, a)
			seen := map[string]bool{}
			for _, id := range c.IDs() {
				require.False(t, seen[id], "duplicate id %s after %s", id, a.Kind)
				seen[id] = true
			}
		}
	})

	t.Run("close is idempotent", func(t *testing.T) {
		t.Parallel()
		once := notice.Reduce(base(), notice.CloseAction[item]("a"))
		twice := notice.Reduce(once, notice.CloseAction[item]("a"))
		assert.Equal(t, once, twice)
	})

	t.Run("paused lifetime is frozen", func(t *testing.T) {
		t.Parallel()
		c := ticks(base(), 3)
		c = notice.Reduce(c, notice.PauseAction[item]("b"))
		frozen := mustGet(c, "b").Remaining()
		for range 50 {
			c = ticks(c, 1)
			assert.Equal(t, frozen, mustGet(c, "b").Remaining())
		}
	})

	t.Run("countdown is monotonic until removal", func(t *testing.T) {
		t.Parallel()
		c := base()
		prev := mustGet(c, "b").Remaining()
		for c.Has("b") {
			c = ticks(c, 1)
			if rec, ok := c.Get("b"); ok {
				assert.LessOrEqual(t, rec.Remaining(), prev)
				assert.Positive(t, rec.Remaining())
				prev = rec.Remaining()
			}
		}
		assert.Equal(t, quantum, prev)
	})

	t.Run("continue resets even at full lifetime", func(t *testing.T) {
		t.Parallel()
		c := notice.Reduce(base(), notice.ContinueAction[item]("a"))
		assert.Equal(t, time.Second, mustGet(c, "a").Remaining())
	})

	t.Run("continue revives a paused record at zero", func(t *testing.T) {
		t.Parallel()
		c := spawn(notice.Collection[item]{}, "z", newItem("z").withLifetime(0))
		c = notice.Reduce(c, notice.PauseAction[item]("z"))
		c = ticks(c, 3)
		require.True(t, c.Has("z"), "paused records are kept")

		c = notice.Reduce(c, notice.ContinueAction[item]("z"))
		assert.False(t, mustGet(c, "z").Paused())
		assert.True(t, ticks(c, 1).IsEmpty())
	})

	t.Run("input collection is never modified", func(t *testing.T) {
		t.Parallel()
		c := base()
		snapshot := c.Items()

		_ = notice.Reduce(c, notice.TickAction[item](quantum))
		_ = notice.Reduce(c, notice.PauseAction[item]("a"))
		_ = notice.Reduce(c, notice.CloseAction[item]("b"))

		assert.Equal(t, snapshot, c.Items())
	})

	t.Run("unknown ids and kinds are ignored", func(t *testing.T) {
		t.Parallel()
		c := base()
		assert.Equal(t, c, notice.Reduce(c, notice.PauseAction[item]("missing")))
		assert.Equal(t, c, notice.Reduce(c, notice.ContinueAction[item]("missing")))
		assert.Equal(t, c, notice.Reduce(c, notice.Action[item]{Kind: 0}))
	})
}

func TestActionKind_String(t *testing.T) {
	t.Parallel()

	tests := map[notice.ActionKind]string{
		notice.ActionNew:      "new",
		notice.ActionClose:    "close",
		notice.ActionTick:     "tick",
		notice.ActionPause:    "pause",
		notice.ActionContinue: "continue",
		notice.ActionKind(99): "unknown",
	}
	for kind, want := range tests {
		assert.Equal(t, want, kind.String())
	}
}

func TestCollection(t *testing.T) {
	t.Parallel()

	a := newItem("a").Spawn("a", epoch, time.Second)
	b := newItem("b").Spawn("b", epoch, time.Second)
	anon := newItem("anon")

	c := notice.NewCollection(a, b, a, anon)
	assert.Equal(t, []string{"a", "b"}, c.IDs())
	assert.True(t, c.Has("b"))
	assert.False(t, c.Has("anon"))

	items := c.Items()
	items[0] = b
	assert.Equal(t, "a", c.Items()[0].ID(), "Items returns a copy")

	_, ok := c.Get("missing")
	assert.False(t, ok)

	var zero notice.Collection[item]
	assert.True(t, zero.IsEmpty())
	assert.Empty(t, zero.Items())
}
