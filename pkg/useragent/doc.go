// Package useragent provides fast and memory-efficient parsing of HTTP
// User-Agent strings into the browser and operating system signals used by
// device classification.
//
// It identifies:
//   - Operating system and version – Windows, macOS, iOS, Android, Linux,
//     ChromeOS, Windows Phone, BlackBerry, Bada
//   - Browser name and version – Chrome, Safari, Firefox, Edge, Silk,
//     BlackBerry, IE Mobile, …
//
// Device categories (desktop, mobile, tablet, bot) are not decided here; the
// platform package classifies a parsed UserAgent together with screen
// metrics.
//
// Parsing is performed with plain-string look-ups and pre-compiled regular
// expressions over a lower-cased copy of the input. Version extraction only
// runs for the pattern that matched.
//
// # Architecture
//
// Parse lower-cases the input once and runs two ordered pattern tables:
// osPatterns (os.go) and browserPatterns (browser.go). The first entry that
// matches wins, so more specific platforms are listed before broader ones
// (Windows Phone before Windows, iOS before macOS, Android before Linux).
// Public constants live in constants.go and sentinel errors in errors.go.
//
// # Usage
//
//	ua, err := useragent.Parse(r.UserAgent())
//	if errors.Is(err, useragent.ErrEmptyUserAgent) {
//	    // no header; ua is still usable and reports unknown values
//	}
//
//	if ua.OSName() == useragent.OSAndroid {
//	    log.Printf("android %s", ua.OSVersion())
//	}
//
//	if ua.Test(regexp.MustCompile(`(?i)googlebot`)) {
//	    // raw-string pattern checks are case-sensitive unless the pattern says otherwise
//	}
//
// # Error Handling
//
// Parse returns ErrEmptyUserAgent for an empty input. Unrecognized browsers
// and operating systems are not errors; they are reported as BrowserUnknown
// and OSUnknown.
package useragent
