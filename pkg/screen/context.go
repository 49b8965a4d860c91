package screen

import "context"

type contextKey struct{}

// WithContext stores screen metrics in the context
func WithContext(ctx context.Context, m Metrics) context.Context {
	return context.WithValue(ctx, contextKey{}, m)
}

// FromContext retrieves screen metrics from the context.
// The boolean is false when no metrics were stored.
func FromContext(ctx context.Context) (Metrics, bool) {
	if ctx == nil {
		return Metrics{}, false
	}
	m, ok := ctx.Value(contextKey{}).(Metrics)
	return m, ok
}
