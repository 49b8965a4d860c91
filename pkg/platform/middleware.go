package platform

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/screen"
	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	log      *slog.Logger
	defaults screen.Metrics
}

// WithLogger sets the logger used for debug output. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if l != nil {
			c.log = l
		}
	}
}

// WithScreenDefaults sets the metrics used when neither the context nor
// the request carries screen metrics.
func WithScreenDefaults(m screen.Metrics) MiddlewareOption {
	return func(c *middlewareConfig) { c.defaults = m }
}

// Middleware classifies every request and stores the descriptor in the
// request context (see FromContext). Screen metrics come from the context
// when screen.Middleware ran first, otherwise from the request's Client
// Hints. Unclassified requests pass through with nothing stored.
// A nil classifier uses Default().
func Middleware(c *Classifier, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	if c == nil {
		c = Default()
	}
	cfg := &middlewareConfig{
		log:      logger.Discard(),
		defaults: screen.Default,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	log := cfg.log.With(logger.Component("platform"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			ua, err := useragent.Parse(r.UserAgent())
			if errors.Is(err, useragent.ErrEmptyUserAgent) {
				log.DebugContext(ctx, "request without user agent")
				next.ServeHTTP(w, r)
				return
			}

			m, ok := screen.FromContext(ctx)
			if !ok {
				m = screen.FromRequest(r, cfg.defaults)
			}

			rule, ok := c.Match(ua, m)
			if !ok {
				log.DebugContext(ctx, "device not classified",
					logger.UserAgent(ua.String()),
					logger.Screen(m.PixelDensity, m.Width),
				)
				next.ServeHTTP(w, r)
				return
			}

			d := rule.Describe(ua.String())
			log.DebugContext(ctx, "device classified",
				logger.Rule(rule.Name),
				slog.String("device", d.String()),
			)
			next.ServeHTTP(w, r.WithContext(WithContext(ctx, d)))
		})
	}
}
