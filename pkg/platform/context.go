package platform

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// WithContext stores a descriptor in the context
func WithContext(ctx context.Context, d Descriptor) context.Context {
	return context.WithValue(ctx, contextKey{}, d)
}

// FromContext retrieves the descriptor stored by WithContext or Middleware.
// The boolean is false when the request was not classified.
func FromContext(ctx context.Context) (Descriptor, bool) {
	if ctx == nil {
		return Descriptor{}, false
	}
	d, ok := ctx.Value(contextKey{}).(Descriptor)
	return d, ok
}

// LoggerExtractor returns a ContextExtractor for the logger that adds the
// classified device as a "device" group.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		d, ok := FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		attrs := []any{slog.String("type", string(d.Type))}
		if d.Vendor != "" {
			attrs = append(attrs, slog.String("vendor", d.Vendor))
		}
		if d.Model != "" {
			attrs = append(attrs, slog.String("model", d.Model))
		}
		return slog.Group("device", attrs...), true
	}
}
