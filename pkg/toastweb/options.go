package toastweb

import (
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/dmitrymomot/toastkit/pkg/menu"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger. Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithSpawnLimit throttles POST /toasts to r requests per second with the
// given burst. Excess requests get 429.
func WithSpawnLimit(r rate.Limit, burst int) Option {
	return func(h *Handler) {
		if r > 0 && burst > 0 {
			h.limiter = rate.NewLimiter(r, burst)
		}
	}
}

// WithPosition sets the corner the toast container is anchored to.
func WithPosition(p toast.Position) Option {
	return func(h *Handler) {
		if p.Valid() {
			h.position = p
		}
	}
}

// WithMenu mounts the menu routes.
func WithMenu(m *menu.Menu) Option {
	return func(h *Handler) {
		h.menu = m
	}
}
