package notice

import "sync"

// Observer is notified after every applied action.
type Observer[T Record[T]] func(Transition[T])

type observerEntry[T Record[T]] struct {
	id uint64
	fn Observer[T]
}

// observerSet is an ordered observer registry safe for concurrent use.
type observerSet[T Record[T]] struct {
	mu      sync.RWMutex
	entries []observerEntry[T]
	nextID  uint64
}

// add registers fn and returns an idempotent function that removes it.
func (o *observerSet[T]) add(fn Observer[T]) (remove func()) {
	if fn == nil {
		return func() {}
	}

	o.mu.Lock()
	o.nextID++
	id := o.nextID
	o.entries = append(o.entries, observerEntry[T]{id: id, fn: fn})
	o.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			o.mu.Lock()
			defer o.mu.Unlock()
			for i, e := range o.entries {
				if e.id == id {
					o.entries = append(o.entries[:i:i], o.entries[i+1:]...)
					return
				}
			}
		})
	}
}

// notify calls every observer registered at call time, in registration order.
// Removal rebuilds the slice, so the entries read here are never mutated.
func (o *observerSet[T]) notify(tr Transition[T]) {
	o.mu.RLock()
	entries := o.entries
	o.mu.RUnlock()
	for _, e := range entries {
		e.fn(tr)
	}
}
