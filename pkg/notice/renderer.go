package notice

import "context"

// Handlers are the callbacks a rendered record wires to pointer events.
// Each is bound to the record's id and may be called from any goroutine other
// than the event loop; after the scheduler unmounts they do nothing. Called from
// an Observer they can block on a full action queue, like any dispatch.
type Handlers struct {
	ID           string
	OnClose      func()
	OnMouseEnter func()
	OnMouseLeave func()
}

// Renderer turns one live record into a view.
type Renderer[T Record[T], V any] interface {
	Render(ctx context.Context, item T, h Handlers) (V, error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc[T Record[T], V any] func(ctx context.Context, item T, h Handlers) (V, error)

func (f RendererFunc[T, V]) Render(ctx context.Context, item T, h Handlers) (V, error) {
	return f(ctx, item, h)
}
