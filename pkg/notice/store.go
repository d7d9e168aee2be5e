package notice

import "sync"

// Transition describes one applied action.
type Transition[T Record[T]] struct {
	Action Action[T]
	Prev   Collection[T]
	Next   Collection[T]
}

// Activated reports whether the collection went from empty to non-empty.
func (t Transition[T]) Activated() bool {
	return t.Prev.IsEmpty() && !t.Next.IsEmpty()
}

// Drained reports whether the collection went from non-empty to empty.
func (t Transition[T]) Drained() bool {
	return !t.Prev.IsEmpty() && t.Next.IsEmpty()
}

// Added returns records present in Next but not in Prev.
func (t Transition[T]) Added() []T {
	return difference(t.Next, t.Prev)
}

// Removed returns records present in Prev but not in Next.
func (t Transition[T]) Removed() []T {
	return difference(t.Prev, t.Next)
}

func difference[T Record[T]](a, b Collection[T]) []T {
	var out []T
	for _, item := range a.items {
		if !b.Has(item.ID()) {
			out = append(out, item)
		}
	}
	return out
}

// Store holds a Collection and applies actions to it one at a time.
//
// Observers run synchronously after each Apply, in subscription order, and
// must not call Apply on the same store.
type Store[T Record[T]] struct {
	applyMu   sync.Mutex
	mu        sync.RWMutex
	state     Collection[T]
	observers observerSet[T]
}

// NewStore returns a store seeded with initial (deduplicated by id).
func NewStore[T Record[T]](initial ...T) *Store[T] {
	return &Store[T]{state: NewCollection(initial...)}
}

// Apply reduces a against the current state, publishes the result and
// notifies observers.
func (s *Store[T]) Apply(a Action[T]) Transition[T] {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	s.mu.Lock()
	prev := s.state
	next := Reduce(prev, a)
	s.state = next
	s.mu.Unlock()

	tr := Transition[T]{Action: a, Prev: prev, Next: next}
	s.observers.notify(tr)
	return tr
}

// State returns the current collection.
func (s *Store[T]) State() Collection[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store[T]) Subscribe(fn Observer[T]) (unsubscribe func()) {
	return s.observers.add(fn)
}
