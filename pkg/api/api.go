package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/devicekit/pkg/httpserver"
	"github.com/dmitrymomot/devicekit/pkg/logger"
	"github.com/dmitrymomot/devicekit/pkg/platform"
	"github.com/dmitrymomot/devicekit/pkg/requestid"
	"github.com/dmitrymomot/devicekit/pkg/screen"
)

// Option configures the API handler.
type Option func(*options)

type options struct {
	log      *slog.Logger
	defaults screen.Metrics
	checks   []httpserver.Check
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithScreenDefaults sets the metrics assumed when a client sends no
// Client Hints and a classify request omits them.
func WithScreenDefaults(m screen.Metrics) Option {
	return func(o *options) { o.defaults = m }
}

// WithHealthChecks turns /health into a readiness probe.
func WithHealthChecks(checks ...httpserver.Check) Option {
	return func(o *options) { o.checks = append(o.checks, checks...) }
}

type api struct {
	classifier *platform.Classifier
	log        *slog.Logger
	defaults   screen.Metrics
}

// New returns the HTTP handler of the classification service:
//
//	GET  /health       liveness or readiness probe
//	GET  /v1/device    classifies the calling client
//	POST /v1/classify  classifies a user agent given in the body
//	GET  /v1/rules     lists the classifier's rules in evaluation order
//
// A nil classifier uses platform.Default().
func New(c *platform.Classifier, opts ...Option) http.Handler {
	o := &options{
		log:      logger.Discard(),
		defaults: screen.Default,
	}
	for _, opt := range opts {
		opt(o)
	}
	if c == nil {
		c = platform.Default()
	}

	a := &api{
		classifier: c,
		log:        o.log.With(logger.Component("api")),
		defaults:   o.defaults,
	}

	r := chi.NewRouter()
	r.Get("/health", httpserver.HealthHandler(o.log, o.checks...))

	r.Route("/v1", func(r chi.Router) {
		r.Use(requestid.Middleware)
		r.Use(screen.Middleware(o.defaults))
		r.Use(platform.Middleware(c,
			platform.WithLogger(o.log),
			platform.WithScreenDefaults(o.defaults),
		))

		r.Get("/device", a.device)
		r.Post("/classify", a.classify)
		r.Get("/rules", a.rules)
	})

	return r
}
