package screen

import "net/http"

// Middleware extracts screen metrics from Client Hints, falling back to
// defaults, and stores them in the request context. It also advertises the
// hints it understands via the Accept-CH response header.
func Middleware(defaults Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("Accept-CH", acceptCH)
			w.Header().Add("Vary", acceptCH)
			ctx := WithContext(r.Context(), FromRequest(r, defaults))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
