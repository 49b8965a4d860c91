// Package platform classifies a client device as desktop, mobile, tablet or
// bot, with an optional vendor and model, from a parsed user agent and the
// client's screen metrics.
//
// # Architecture
//
// A Classifier holds an ordered slice of Rules. Each Rule pairs a Test with
// a Describe function producing a Descriptor. A Test is a tagged variant:
// either a list of case-insensitive patterns (any one matching the raw user
// agent is enough) or a Predicate over the parsed user agent and
// screen.Metrics.
//
// Evaluation walks the rules front to back and stops at the first Test that
// passes; rules are never combined. Order is therefore part of the
// classification logic and is kept in a slice, not a map. The built-in
// table (rules.go) lists, in order:
//
//  1. crawlers (Googlebot)
//  2. vendor phones with model extraction (Huawei)
//  3. known tablet lines (Nexus 7-10, iPad, Kindle Fire, Silk, "tablet")
//  4. iPhone / iPod, excluding UAs that only say "like iPhone"
//  5. known phone lines (Nexus 0-6, Galaxy Nexus)
//  6. a "mobile" UA token on a phone-sized viewport
//  7. phone-only browsers (BlackBerry, Bada, Windows Phone)
//  8. RIM and KFAPWI tablets
//  9. Android: major version >= 3 is a tablet, anything else a phone
//  10. macOS, Windows and Linux on a 1x screen 1024-1920 px wide
//
// A request that matches nothing is not an error: Classify returns
// (Descriptor{}, false) and callers treat it as an unknown device.
//
// # Usage
//
//	ua, _ := useragent.Parse(r.UserAgent())
//	m := screen.FromRequest(r, screen.Default)
//
//	if d, ok := platform.Classify(ua, m); ok && d.Type == platform.TypeTablet {
//	    // serve tablet layout
//	}
//
// Site-specific signatures can be prepended to the built-in table, either in
// code or from YAML with LoadRules:
//
//	c := platform.New(platform.WithRules(platform.Rule{
//	    Name:     "acme-kiosk",
//	    Test:     platform.Patterns(`acmekiosk/\d+`),
//	    Describe: platform.Static(platform.Descriptor{Type: platform.TypeTablet, Vendor: "Acme"}),
//	}))
//
// # HTTP
//
// Middleware classifies each request and stores the Descriptor in the
// request context; FromContext reads it back and LoggerExtractor adds it to
// log records produced by the logger package.
//
//	r := chi.NewRouter()
//	r.Use(screen.Middleware(screen.Default))
//	r.Use(platform.Middleware(platform.Default(), platform.WithLogger(log)))
//
// # Concurrency
//
// A Classifier and the built-in table are read-only after construction and
// may be shared by any number of goroutines.
package platform
