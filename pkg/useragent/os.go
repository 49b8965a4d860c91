package useragent

import (
	"regexp"
	"strings"
)

// OS represents operating system information
type OS struct {
	Name    string
	Version string
}

// keywordSet optimizes keyword lookups using map structure for O(1) access
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

type osPattern struct {
	name     string
	keywords keywordSet
	version  *regexp.Regexp
}

// OS detection in order of checking priority.
// Windows Phone precedes Windows, iOS precedes macOS ("like Mac OS X"),
// and Android precedes Linux since Android UAs carry the "linux" token.
var osPatterns = []osPattern{
	{
		name:     OSWindowsPhone,
		keywords: newKeywordSet("windows phone"),
		version:  regexp.MustCompile(`windows phone(?: os)? ([\d.]+)`),
	},
	{
		name:     OSWindows,
		keywords: newKeywordSet("windows"),
		version:  regexp.MustCompile(`windows nt ([\d.]+)`),
	},
	{
		name:     OSiOS,
		keywords: newKeywordSet("iphone", "ipad", "ipod"),
		version:  regexp.MustCompile(`os ([\d_]+) like mac os x`),
	},
	{
		name:     OSMacOS,
		keywords: newKeywordSet("macintosh", "mac os x"),
		version:  regexp.MustCompile(`mac os x ([\d_.]+)`),
	},
	{
		name:     OSAndroid,
		keywords: newKeywordSet("android"),
		version:  regexp.MustCompile(`android[\s/-]?([\d.]+)`),
	},
	{
		name:     OSBlackBerry,
		keywords: newKeywordSet("blackberry", "bb10", "rim tablet"),
		version:  regexp.MustCompile(`version/([\d.]+)`),
	},
	{
		name:     OSBada,
		keywords: newKeywordSet("bada"),
		version:  regexp.MustCompile(`bada/([\d.]+)`),
	},
	{
		name:     OSChromeOS,
		keywords: newKeywordSet("cros ", "chromeos", "chrome os"),
		version:  regexp.MustCompile(`cros \S+ ([\d.]+)`),
	},
	{
		name:     OSLinux,
		keywords: newKeywordSet("linux", "ubuntu", "debian", "fedora", "mint", "x11"),
	},
}

// ParseOS identifies the operating system and its version using keyword
// matching. Versions reported with underscores (iOS, macOS) are normalized
// to dotted form.
func ParseOS(lowerUA string) OS {
	if lowerUA == "" {
		return OS{Name: OSUnknown}
	}

	for _, p := range osPatterns {
		if !p.keywords.contains(lowerUA) {
			continue
		}
		var version string
		if p.version != nil {
			version = strings.ReplaceAll(extractVersion(lowerUA, p.version), "_", ".")
		}
		return OS{Name: p.name, Version: version}
	}

	return OS{Name: OSUnknown}
}
