package toastweb

import (
	"time"

	"github.com/dmitrymomot/toastkit/pkg/sanitizer"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

// SpawnRequest is the JSON body of POST /toasts.
type SpawnRequest struct {
	Kind       string   `json:"kind" validate:"max=16"`
	Title      string   `json:"title" validate:"required_without=Body,max=120"`
	Body       string   `json:"body" validate:"max=1000"`
	LifetimeMS *int     `json:"lifetime_ms,omitempty" validate:"omitempty,max=600000"`
	Classes    []string `json:"classes,omitempty" validate:"max=8,dive,max=64"`
}

// SpawnResponse is returned with 202 Accepted.
type SpawnResponse struct {
	ID string `json:"id"`
}

var (
	cleanTitle = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.SingleLine, sanitizer.Truncate(120))
	cleanBody  = sanitizer.Compose(sanitizer.RemoveControlChars, sanitizer.Trim, sanitizer.Truncate(1000))
)

// Toast converts the request into an unspawned toast. Text is cleaned of
// control characters and classes are reduced to safe class names. Unknown
// kinds become info and a negative lifetime is clamped to zero on spawn.
func (r SpawnRequest) Toast() toast.Toast {
	opts := []toast.Option{toast.WithClasses(sanitizer.ClassList(r.Classes)...)}
	if r.LifetimeMS != nil {
		opts = append(opts, toast.WithLifetime(time.Duration(*r.LifetimeMS)*time.Millisecond))
	}
	return toast.New(toast.ParseKind(r.Kind), cleanTitle(r.Title), cleanBody(r.Body), opts...)
}
