// Package screen models the display signals a client reports about itself:
// device pixel ratio and viewport width in CSS pixels.
//
// Browsers expose these through HTTP Client Hints. FromRequest reads the
// Sec-CH-DPR and Sec-CH-Viewport-Width headers (and their legacy DPR and
// Viewport-Width names), and Middleware stores the result in the request
// context and advertises the hints with Accept-CH so that supporting
// browsers start sending them.
//
// # Usage
//
//	var cfg screen.Config
//	config.MustLoad(&cfg)
//
//	mux := http.NewServeMux()
//	handler := screen.Middleware(cfg.Defaults())(mux)
//
//	// later, in a handler
//	m, ok := screen.FromContext(r.Context())
//
// # Error Handling
//
// The package does not return errors. Missing or malformed hints are
// replaced field by field with the supplied defaults.
package screen
