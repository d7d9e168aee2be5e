package menu

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/toastkit/pkg/logger"
	"github.com/dmitrymomot/toastkit/pkg/notice"
)

// Menu is an ordered list of entries plus an open/closed flag. Entries are
// added and removed through the same reducer that drives toasts, restricted to
// New and Close. All methods are safe for concurrent use.
type Menu struct {
	store *notice.Store[Entry]
	open  atomic.Bool
	newID func() string
	clock func() time.Time
	log   *slog.Logger
	seed  []Entry
}

// Option configures a Menu.
type Option func(*Menu)

// WithIDGenerator replaces the uuid based id generator.
func WithIDGenerator(fn func() string) Option {
	return func(m *Menu) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Menu) {
		if l != nil {
			m.log = l
		}
	}
}

// WithEntries seeds the menu with entries in order.
func WithEntries(entries ...Entry) Option {
	return func(m *Menu) {
		m.seed = append(m.seed, entries...)
	}
}

// New creates a closed menu.
func New(opts ...Option) *Menu {
	m := &Menu{
		store: notice.NewStore[Entry](),
		newID: uuid.NewString,
		clock: time.Now,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.With(logger.Component("menu"))

	for _, e := range m.seed {
		m.Add(e)
	}
	m.seed = nil
	return m
}

// Add appends e and returns its id.
func (m *Menu) Add(e Entry) string {
	id := m.newID()
	m.store.Apply(notice.NewAction(id, e, m.clock(), 0))
	m.log.LogAttrs(context.Background(), slog.LevelDebug, "menu entry added", logger.NoticeID(id))
	return id
}

// Remove deletes the entry with the given id. Unknown ids are ignored.
func (m *Menu) Remove(id string) {
	tr := m.store.Apply(notice.CloseAction[Entry](id))
	if len(tr.Removed()) > 0 {
		m.log.LogAttrs(context.Background(), slog.LevelDebug, "menu entry removed", logger.NoticeID(id))
	}
}

// Entries returns the entries in insertion order.
func (m *Menu) Entries() []Entry {
	return m.store.State().Items()
}

// Len returns the number of entries.
func (m *Menu) Len() int {
	return m.store.State().Len()
}

// IsOpen reports whether the menu is expanded.
func (m *Menu) IsOpen() bool {
	return m.open.Load()
}

// SetOpen opens or closes the menu.
func (m *Menu) SetOpen(open bool) {
	m.open.Store(open)
}

// Toggle flips the open flag and returns the new value.
func (m *Menu) Toggle() bool {
	for {
		cur := m.open.Load()
		if m.open.CompareAndSwap(cur, !cur) {
			return !cur
		}
	}
}

// Observe registers fn for every entry change.
func (m *Menu) Observe(fn notice.Observer[Entry]) (unsubscribe func()) {
	return m.store.Subscribe(fn)
}
