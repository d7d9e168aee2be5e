package notice

// Collection is an immutable, ordered set of live records, oldest first,
// with unique ids. The zero value is an empty collection.
type Collection[T Record[T]] struct {
	items []T
}

// NewCollection builds a collection from items in order. Records with an empty
// id or an id seen earlier are skipped.
func NewCollection[T Record[T]](items ...T) Collection[T] {
	c := Collection[T]{items: make([]T, 0, len(items))}
	for _, item := range items {
		if item.ID() == "" || c.Has(item.ID()) {
			continue
		}
		c.items = append(c.items, item)
	}
	return c
}

func (c Collection[T]) Len() int {
	return len(c.items)
}

func (c Collection[T]) IsEmpty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the records in insertion order.
func (c Collection[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// IDs returns the record ids in insertion order.
func (c Collection[T]) IDs() []string {
	ids := make([]string, len(c.items))
	for i, item := range c.items {
		ids[i] = item.ID()
	}
	return ids
}

// Get returns the record with the given id.
func (c Collection[T]) Get(id string) (T, bool) {
	if i := c.index(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

func (c Collection[T]) Has(id string) bool {
	return c.index(id) >= 0
}

func (c Collection[T]) index(id string) int {
	for i, item := range c.items {
		if item.ID() == id {
			return i
		}
	}
	return -1
}

// update returns a collection where the record with the given id is replaced
// by fn(record). An unknown id returns c unchanged.
func (c Collection[T]) update(id string, fn func(T) T) Collection[T] {
	i := c.index(id)
	if i < 0 {
		return c
	}
	items := c.Items()
	items[i] = fn(items[i])
	return Collection[T]{items: items}
}
