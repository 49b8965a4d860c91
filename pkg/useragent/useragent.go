package useragent

import (
	"regexp"
	"strings"
)

// UserAgent is a parsed user agent string. It exposes the raw string, the
// detected browser and the detected operating system. The zero value is an
// empty, unknown user agent.
type UserAgent struct {
	raw string

	os          string
	osVersion   string
	browserName string
	browserVer  string
}

// String returns the raw user agent string
func (ua UserAgent) String() string { return ua.raw }

// Test reports whether the pattern matches the raw user agent string.
// A nil pattern never matches.
func (ua UserAgent) Test(pattern *regexp.Regexp) bool {
	if pattern == nil {
		return false
	}
	return pattern.MatchString(ua.raw)
}

// OSName returns the operating system name (see the OS* constants)
func (ua UserAgent) OSName() string { return ua.os }

// OSVersion returns the operating system version in dotted form,
// or an empty string when the UA does not report one.
func (ua UserAgent) OSVersion() string { return ua.osVersion }

// OSInfo returns the operating system name and version
func (ua UserAgent) OSInfo() OS {
	return OS{Name: ua.os, Version: ua.osVersion}
}

// BrowserName returns the browser name (see the Browser* constants)
func (ua UserAgent) BrowserName() string { return ua.browserName }

// BrowserVersion returns the browser version
func (ua UserAgent) BrowserVersion() string { return ua.browserVer }

// BrowserInfo returns the browser name and version
func (ua UserAgent) BrowserInfo() Browser {
	return Browser{Name: ua.browserName, Version: ua.browserVer}
}

// IsUnknown returns true if neither the browser nor the OS was recognized
func (ua UserAgent) IsUnknown() bool {
	return (ua.os == "" || ua.os == OSUnknown) &&
		(ua.browserName == "" || ua.browserName == BrowserUnknown)
}

// Parse parses a user agent string. An empty string yields ErrEmptyUserAgent
// together with a usable unknown UserAgent, so callers that do not care about
// the distinction can ignore the error.
func Parse(ua string) (UserAgent, error) {
	if ua == "" {
		return New("", OS{Name: OSUnknown}, Browser{Name: BrowserUnknown}), ErrEmptyUserAgent
	}

	lowerUA := strings.ToLower(ua)
	return New(ua, ParseOS(lowerUA), ParseBrowser(lowerUA)), nil
}

// New creates a UserAgent from already extracted components
func New(ua string, os OS, browser Browser) UserAgent {
	return UserAgent{
		raw:         ua,
		os:          os.Name,
		osVersion:   os.Version,
		browserName: browser.Name,
		browserVer:  browser.Version,
	}
}
