package notice

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type stub struct{ id string }

func (r stub) ID() string { return r.id }

func (r stub) Alive() bool { return true }

func (r stub) Paused() bool { return false }

func (r stub) Spawn(id string, _ time.Time, _ time.Duration) stub { return stub{id: id} }

func (r stub) Tick(time.Duration) stub { return r }

func (r stub) Pause() stub { return r }

func (r stub) Resume() stub { return r }

func TestObserverSet(t *testing.T) {
	t.Parallel()

	t.Run("notifies in registration order and removes once", func(t *testing.T) {
		var set observerSet[stub]
		var calls []string
		set.add(func(Transition[stub]) { calls = append(calls, "a") })
		removeB := set.add(func(Transition[stub]) { calls = append(calls, "b") })
		set.add(func(Transition[stub]) { calls = append(calls, "c") })
		set.add(nil)()

		set.notify(Transition[stub]{})
		removeB()
		removeB()
		set.notify(Transition[stub]{})

		assert.Equal(t, []string{"a", "b", "c", "a", "c"}, calls)
	})

	t.Run("removal during notify does not disturb the running pass", func(t *testing.T) {
		var set observerSet[stub]
		var calls []string
		var removeSecond func()
		set.add(func(Transition[stub]) {
			calls = append(calls, "first")
			removeSecond()
		})
		removeSecond = set.add(func(Transition[stub]) { calls = append(calls, "second") })

		set.notify(Transition[stub]{})
		set.notify(Transition[stub]{})

		assert.Equal(t, []string{"first", "second", "first"}, calls)
	})

	t.Run("concurrent add and remove", func(t *testing.T) {
		var set observerSet[stub]
		var wg sync.WaitGroup
		for range 20 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				set.add(func(Transition[stub]) {})()
			}()
			go func() {
				defer wg.Done()
				set.notify(Transition[stub]{})
			}()
		}
		wg.Wait()
		assert.Empty(t, set.entries)
	})
}
