package notice

// Reduce computes the collection that results from applying a to c.
//
// It is pure and total: unknown ids, duplicate spawns and unknown action
// kinds leave the collection unchanged, and c itself is never modified.
func Reduce[T Record[T]](c Collection[T], a Action[T]) Collection[T] {
	switch a.Kind {
	case ActionNew:
		if a.ID == "" || c.Has(a.ID) {
			return c
		}
		items := make([]T, 0, len(c.items)+1)
		items = append(items, c.items...)
		items = append(items, a.Item.Spawn(a.ID, a.At, a.Lifetime))
		return Collection[T]{items: items}

	case ActionClose:
		i := c.index(a.ID)
		if i < 0 {
			return c
		}
		items := make([]T, 0, len(c.items)-1)
		items = append(items, c.items[:i]...)
		items = append(items, c.items[i+1:]...)
		return Collection[T]{items: items}

	case ActionTick:
		return tick(c, a)

	case ActionPause:
		return c.update(a.ID, func(r T) T { return r.Pause() })

	case ActionContinue:
		return c.update(a.ID, func(r T) T { return r.Resume() })

	default:
		return c
	}
}

// tick keeps paused records as they are, ages alive ones and drops every
// record that is (or just became) out of lifetime.
func tick[T Record[T]](c Collection[T], a Action[T]) Collection[T] {
	items := make([]T, 0, len(c.items))
	for _, r := range c.items {
		switch {
		case r.Paused():
			items = append(items, r)
		case r.Alive():
			if next := r.Tick(a.Elapsed); next.Alive() {
				items = append(items, next)
			}
		}
	}
	return Collection[T]{items: items}
}
