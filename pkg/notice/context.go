package notice

import "context"

type managerKey[T Record[T]] struct{}

// WithManager returns a context carrying m.
func WithManager[T Record[T]](ctx context.Context, m Manager[T]) context.Context {
	return context.WithValue(ctx, managerKey[T]{}, m)
}

// ManagerFromContext returns the Manager stored by WithManager, or the no-op
// zero Manager when there is none.
func ManagerFromContext[T Record[T]](ctx context.Context) Manager[T] {
	if ctx == nil {
		return Manager[T]{}
	}
	m, _ := ctx.Value(managerKey[T]{}).(Manager[T])
	return m
}
