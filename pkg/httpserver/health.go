package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/devicekit/pkg/logger"
)

// Check reports whether a dependency is ready.
type Check func(ctx context.Context) error

// HealthHandler serves a JSON health probe. Without checks it is a liveness
// probe answering {"status":"alive"}. With checks it answers
// {"status":"ready"}, or 503 with {"status":"not_ready"} when any check fails.
func HealthHandler(log *slog.Logger, checks ...Check) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "alive", http.StatusOK
		if len(checks) > 0 {
			status = "ready"
			for _, check := range checks {
				if err := check(r.Context()); err != nil {
					log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
					status, code = "not_ready", http.StatusServiceUnavailable
					break
				}
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
	}
}
