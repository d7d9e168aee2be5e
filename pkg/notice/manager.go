package notice

// dispatcher is implemented by a mounted collection owner.
type dispatcher[T Record[T]] interface {
	spawn(item T) string
	dispatch(a Action[T]) bool
	attached() bool
}

// Manager is the dispatch handle handed to UI code. It only submits actions;
// it never touches state.
//
// The zero value, and any Manager whose scheduler is not mounted, turns every
// call into a no-op. Managers are small values and safe to copy and share.
type Manager[T Record[T]] struct {
	d dispatcher[T]
}

// Spawn submits a New action for item and returns the id it will carry,
// or "" when detached.
func (m Manager[T]) Spawn(item T) string {
	if m.d == nil {
		return ""
	}
	return m.d.spawn(item)
}

// Close removes the record with the given id.
func (m Manager[T]) Close(id string) {
	m.send(CloseAction[T](id))
}

// Pause freezes the countdown of the record with the given id.
func (m Manager[T]) Pause(id string) {
	m.send(PauseAction[T](id))
}

// Resume restarts the countdown of the record with the given id from its full lifetime.
func (m Manager[T]) Resume(id string) {
	m.send(ContinueAction[T](id))
}

// Attached reports whether the handle is bound to a mounted scheduler.
func (m Manager[T]) Attached() bool {
	return m.d != nil && m.d.attached()
}

// Handlers returns the pointer callbacks for the record with the given id.
func (m Manager[T]) Handlers(id string) Handlers {
	return Handlers{
		ID:           id,
		OnClose:      func() { m.Close(id) },
		OnMouseEnter: func() { m.Pause(id) },
		OnMouseLeave: func() { m.Resume(id) },
	}
}

func (m Manager[T]) send(a Action[T]) {
	if m.d != nil && a.ID != "" {
		m.d.dispatch(a)
	}
}
