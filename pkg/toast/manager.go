package toast

import (
	"context"

	"github.com/dmitrymomot/toastkit/pkg/notice"
)

// Manager adds toast shortcuts to the generic dispatch handle. Like the
// handle it wraps, its zero value is a no-op.
type Manager struct {
	notice.Manager[Toast]
}

// NewManager wraps a handle obtained from a toast scheduler.
func NewManager(m notice.Manager[Toast]) Manager {
	return Manager{Manager: m}
}

// Show spawns a toast and returns its id, or "" when no scheduler is mounted.
func (m Manager) Show(kind Kind, title, body string, opts ...Option) string {
	return m.Spawn(New(kind, title, body, opts...))
}

func (m Manager) Info(title, body string, opts ...Option) string {
	return m.Show(KindInfo, title, body, opts...)
}

func (m Manager) Warning(title, body string, opts ...Option) string {
	return m.Show(KindWarning, title, body, opts...)
}

func (m Manager) Error(title, body string, opts ...Option) string {
	return m.Show(KindError, title, body, opts...)
}

// WithManager stores m in ctx.
func WithManager(ctx context.Context, m Manager) context.Context {
	return notice.WithManager(ctx, m.Manager)
}

// FromContext returns the Manager stored in ctx, or a no-op Manager.
func FromContext(ctx context.Context) Manager {
	return Manager{Manager: notice.ManagerFromContext[Toast](ctx)}
}
