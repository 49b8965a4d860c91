package useragent

import (
	"regexp"
	"strings"
)

// Browser represents browser information
type Browser struct {
	Name    string
	Version string
}

// BrowserPattern defines a pattern for detecting a browser.
// A pattern matches when any of Keywords is present, every entry of
// Requires is present and none of Excludes is.
type BrowserPattern struct {
	Name     string
	Keywords []string
	Requires []string
	Excludes []string
	Regex    *regexp.Regexp
}

// Extract version from a user agent string using a regex
func extractVersion(ua string, regex *regexp.Regexp) string {
	if regex == nil {
		return ""
	}
	matches := regex.FindStringSubmatch(ua)
	if len(matches) > 1 {
		version := matches[1]
		// Limit version length to avoid excessively long versions
		if len(version) > 20 {
			version = version[:20]
		}
		return version
	}
	return ""
}

func containsAny(ua string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(ua, keyword) {
			return true
		}
	}
	return false
}

// matchPattern checks if the UA string matches a browser pattern
func matchPattern(ua string, pattern BrowserPattern) bool {
	if !containsAny(ua, pattern.Keywords) {
		return false
	}
	for _, required := range pattern.Requires {
		if !strings.Contains(ua, required) {
			return false
		}
	}
	return !containsAny(ua, pattern.Excludes)
}

// Browser detection patterns in order of checking priority.
// Platform-bound browsers come first: their UAs embed Safari/Chrome
// compatibility tokens that would otherwise shadow them.
var browserPatterns = []BrowserPattern{
	{
		Name:     BrowserWindowsPhone,
		Keywords: []string{"windows phone", "windowsphone"},
		Regex:    regexp.MustCompile(`iemobile[/\s]([\d.]+)`),
	},
	{
		Name:     BrowserBlackBerry,
		Keywords: []string{"blackberry", "bb10", "rim tablet"},
		Regex:    regexp.MustCompile(`version/([\d.]+)`),
	},
	{
		Name:     BrowserBada,
		Keywords: []string{"bada"},
		Regex:    regexp.MustCompile(`dolfin/([\d.]+)`),
	},
	{
		Name:     BrowserSilk,
		Keywords: []string{"silk/"},
		Regex:    regexp.MustCompile(`silk/([\d.]+)`),
	},
	{
		Name:     BrowserEdge,
		Keywords: []string{"edg/", "edge/"},
		Regex:    regexp.MustCompile(`(?:edge|edg)[/ ]([\d.]+)`),
	},
	{
		Name:     BrowserSamsung,
		Keywords: []string{"samsungbrowser"},
		Regex:    regexp.MustCompile(`samsungbrowser[/\s]([\d.]+)`),
	},
	{
		Name:     BrowserUC,
		Keywords: []string{"ucbrowser"},
		Regex:    regexp.MustCompile(`ucbrowser[/\s]([\d.]+)`),
	},
	{
		Name:     BrowserHuawei,
		Keywords: []string{"huaweibrowser"},
		Regex:    regexp.MustCompile(`huaweibrowser[/\s]([\d.]+)`),
	},
	{
		Name:     BrowserYandex,
		Keywords: []string{"yabrowser", "yandexbrowser"},
		Regex:    regexp.MustCompile(`(?:yabrowser|yandexbrowser)[/\s]([\d.]+)`),
	},
	{
		Name:     BrowserOpera,
		Keywords: []string{"opr/", "opera"},
		Regex:    regexp.MustCompile(`(?:opr|opera)[/\s]([\d.]+)`),
	},
	{
		Name:     BrowserChrome,
		Keywords: []string{"chrome", "crios"},
		Regex:    regexp.MustCompile(`(?:chrome|crios)[/\s]([\d.]+)`),
	},
	{
		Name:     BrowserFirefox,
		Keywords: []string{"firefox", "fxios"},
		Regex:    regexp.MustCompile(`(?:firefox|fxios)[/\s]([\d.]+)`),
	},
	{
		Name:     BrowserSafari,
		Keywords: []string{"safari"},
		Excludes: []string{"chrome", "firefox"},
		Regex:    regexp.MustCompile(`version[/\s]([\d.]+)`),
	},
	{
		Name:     BrowserIE,
		Keywords: []string{"msie"},
		Regex:    regexp.MustCompile(`msie ([\d.]+)`),
	},
}

// ParseBrowser parses the browser information from a lower-cased user agent string
func ParseBrowser(lowerUA string) Browser {
	// IE 11 drops the "msie" token and only reports Trident
	if strings.Contains(lowerUA, "trident/") && !strings.Contains(lowerUA, "msie") &&
		!strings.Contains(lowerUA, "windows phone") {
		return Browser{
			Name:    BrowserIE,
			Version: "11.0",
		}
	}

	for _, pattern := range browserPatterns {
		if matchPattern(lowerUA, pattern) {
			return Browser{
				Name:    pattern.Name,
				Version: extractVersion(lowerUA, pattern.Regex),
			}
		}
	}

	return Browser{
		Name:    BrowserUnknown,
		Version: "",
	}
}
