package toast

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/toastkit/pkg/notice"
)

// DefaultBasePath is where the toast action endpoints are mounted.
const DefaultBasePath = "/toasts"

// ContainerID is the element id of the toast container.
const ContainerID = "toasts"

// HTMLRenderer renders toasts as templ components wired to Datastar actions:
// a click closes the toast, hovering pauses it and leaving resumes it.
type HTMLRenderer struct {
	basePath string
}

// HTMLOption configures an HTMLRenderer.
type HTMLOption func(*HTMLRenderer)

// WithBasePath sets the path prefix of the close, pause and resume endpoints.
func WithBasePath(path string) HTMLOption {
	return func(r *HTMLRenderer) {
		if path != "" {
			r.basePath = strings.TrimRight(path, "/")
		}
	}
}

// NewHTMLRenderer creates an HTMLRenderer.
func NewHTMLRenderer(opts ...HTMLOption) *HTMLRenderer {
	r := &HTMLRenderer{basePath: DefaultBasePath}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render implements notice.Renderer.
func (r *HTMLRenderer) Render(_ context.Context, t Toast, h notice.Handlers) (templ.Component, error) {
	id := h.ID
	if id == "" {
		id = t.ID()
	}
	role := "status"
	if t.Kind() == KindError {
		role = "alert"
	}

	var b strings.Builder
	b.WriteString(`<div id="toast-`)
	b.WriteString(templ.EscapeString(id))
	b.WriteString(`" class="`)
	b.WriteString(templ.EscapeString(strings.Join(t.ClassNames(), " ")))
	b.WriteString(`" role="`)
	b.WriteString(role)
	b.WriteString(`"`)
	r.writeAction(&b, "data-on:click", id, "close")
	r.writeAction(&b, "data-on:mouseenter", id, "pause")
	r.writeAction(&b, "data-on:mouseleave", id, "resume")
	b.WriteString(`>`)
	if t.Title() != "" {
		b.WriteString(`<div class="toast-title">`)
		b.WriteString(templ.EscapeString(t.Title()))
		b.WriteString(`</div>`)
	}
	if t.Body() != "" {
		b.WriteString(`<div class="toast-body">`)
		b.WriteString(templ.EscapeString(t.Body()))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)

	html := b.String()
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, html)
		return err
	}), nil
}

func (r *HTMLRenderer) writeAction(b *strings.Builder, attr, id, verb string) {
	b.WriteString(" ")
	b.WriteString(attr)
	b.WriteString(`="`)
	b.WriteString(templ.EscapeString("@post('" + r.basePath + "/" + id + "/" + verb + "')"))
	b.WriteString(`"`)
}

// List renders views one after another without a wrapper. It is the payload
// for patching the inside of an existing container.
func List(views []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, v := range views {
			if err := v.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// Container wraps views in the positioned toast container.
func Container(views []templ.Component, pos Position) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="`+ContainerID+`" class="toasts `+pos.Class()+`" aria-live="polite">`); err != nil {
			return err
		}
		if err := List(views).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
