package platform

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/devicekit/pkg/screen"
)

// Screen thresholds of the mobile and desktop heuristics. Widths between
// mobileMaxWidth and desktopMinWidth match neither.
const (
	mobileMaxWidth  = 768
	desktopMinWidth = 1024
	desktopMaxWidth = 1920
)

var (
	huaweiNovaPattern  = regexp.MustCompile(`(?i)(can-l01)`)
	iDevicePattern     = regexp.MustCompile(`(?i)ipod|iphone`)
	likeIDevicePattern = regexp.MustCompile(`(?i)like (ipod|iphone)`)
	iDeviceModel       = regexp.MustCompile(`(?i)(ipod|iphone)`)
	mobileTokenPattern = regexp.MustCompile(`(?i)[^-]mobi|mobile`)
)

// defaultRules is the built-in rule table. Order is significant: the first
// matching rule wins, so specific signatures (bots, vendor models, tablets)
// precede the broad mobile, OS-version and desktop heuristics that would
// otherwise mask them. The slice is never mutated after package init.
var defaultRules = []Rule{
	{
		Name:     "googlebot",
		Test:     Patterns(`googlebot`),
		Describe: Static(Descriptor{Type: TypeBot, Vendor: "Google"}),
	},
	{
		Name: "huawei",
		Test: Patterns(`huawei`),
		Describe: func(raw string) Descriptor {
			d := Descriptor{Type: TypeMobile, Vendor: "Huawei"}
			if _, ok := firstMatch(huaweiNovaPattern, raw); ok {
				d.Model = "Nova"
			}
			return d
		},
	},

	// Tablets go before phones: their signatures are more specific.
	{
		Name:     "nexus-tablet",
		Test:     Patterns(`nexus\s*(?:7|8|9|10).*`),
		Describe: Static(Descriptor{Type: TypeTablet, Vendor: "Nexus"}),
	},
	{
		Name:     "ipad",
		Test:     Patterns(`ipad`),
		Describe: Static(Descriptor{Type: TypeTablet, Vendor: "Apple", Model: "iPad"}),
	},
	{
		Name:     "kindle-fire-hd",
		Test:     Patterns(`kftt build`),
		Describe: Static(Descriptor{Type: TypeTablet, Vendor: "Amazon", Model: "Kindle Fire HD 7"}),
	},
	{
		Name:     "amazon-silk",
		Test:     Patterns(`silk`),
		Describe: Static(Descriptor{Type: TypeTablet, Vendor: "Amazon"}),
	},
	{
		Name:     "tablet",
		Test:     Patterns(`tablet`),
		Describe: Static(Descriptor{Type: TypeTablet}),
	},

	{
		Name: "apple-idevice",
		Test: Match(isAppleIDevice),
		Describe: func(raw string) Descriptor {
			d := Descriptor{Type: TypeMobile, Vendor: "Apple"}
			if model, ok := firstMatch(iDeviceModel, raw); ok {
				d.Model = model
			}
			return d
		},
	},
	{
		Name:     "nexus-mobile",
		Test:     Patterns(`nexus\s*[0-6].*`, `galaxy nexus`),
		Describe: Static(Descriptor{Type: TypeMobile, Vendor: "Nexus"}),
	},
	{
		Name:     "mobile",
		Test:     Match(isMobileSized),
		Describe: Static(Descriptor{Type: TypeMobile}),
	},
	{
		Name:     "blackberry",
		Test:     Match(browserNamed("blackberry")),
		Describe: Static(Descriptor{Type: TypeMobile, Vendor: "BlackBerry"}),
	},
	{
		Name:     "bada",
		Test:     Match(browserNamed("bada")),
		Describe: Static(Descriptor{Type: TypeMobile}),
	},
	{
		Name: "windows-phone",
		// exact comparison, not case-folded
		Test:     Match(func(p Parser, _ screen.Metrics) bool { return p.BrowserName() == "windows phone" }),
		Describe: Static(Descriptor{Type: TypeMobile, Vendor: "Microsoft"}),
	},
	{
		Name:     "research-in-motion",
		Test:     Patterns(`RIM`),
		Describe: Static(Descriptor{Type: TypeTablet, Vendor: "BlackBerry"}),
	},
	{
		Name:     "kfapwi",
		Test:     Patterns(`KFAPWI`),
		Describe: Static(Descriptor{Type: TypeTablet}),
	},
	{
		Name: "android-tablet",
		Test: Match(func(p Parser, _ screen.Metrics) bool {
			return osNamed(p, "android") && majorVersion(p.OSVersion()) >= 3
		}),
		Describe: Static(Descriptor{Type: TypeTablet}),
	},
	{
		Name:     "android-mobile",
		Test:     Match(func(p Parser, _ screen.Metrics) bool { return osNamed(p, "android") }),
		Describe: Static(Descriptor{Type: TypeMobile}),
	},

	// Desktop is the fallback for desktop OS families on typical screens.
	{
		Name:     "macos-desktop",
		Test:     Match(desktopOn("macos")),
		Describe: Static(Descriptor{Type: TypeDesktop, Vendor: "Apple"}),
	},
	{
		Name:     "windows-desktop",
		Test:     Match(desktopOn("windows")),
		Describe: Static(Descriptor{Type: TypeDesktop}),
	},
	{
		Name:     "linux-desktop",
		Test:     Match(desktopOn("linux")),
		Describe: Static(Descriptor{Type: TypeDesktop}),
	},
}

// DefaultRules returns a copy of the built-in rule table in evaluation order.
func DefaultRules() []Rule {
	return append([]Rule(nil), defaultRules...)
}

// isAppleIDevice excludes UAs that merely claim iPhone compatibility,
// e.g. Windows Phone's "like iPhone OS".
func isAppleIDevice(p Parser, _ screen.Metrics) bool {
	return p.Test(iDevicePattern) && !p.Test(likeIDevicePattern)
}

// isMobileSized requires both a mobile UA token and a phone-sized viewport.
func isMobileSized(p Parser, m screen.Metrics) bool {
	return p.Test(mobileTokenPattern) &&
		m.Width < mobileMaxWidth && m.EffectiveWidth() < mobileMaxWidth
}

func browserNamed(name string) Predicate {
	return func(p Parser, _ screen.Metrics) bool {
		return strings.EqualFold(p.BrowserName(), name)
	}
}

func osNamed(p Parser, name string) bool {
	return strings.EqualFold(p.OSName(), name)
}

func desktopOn(osName string) Predicate {
	return func(p Parser, m screen.Metrics) bool {
		return osNamed(p, osName) &&
			m.DensityFloor() == 1 &&
			m.WidthBetween(desktopMinWidth, desktopMaxWidth)
	}
}

// majorVersion returns the integer before the first dot, or 0 when the
// version is missing or not numeric.
func majorVersion(version string) int {
	major, _, _ := strings.Cut(version, ".")
	n, err := strconv.Atoi(strings.TrimSpace(major))
	if err != nil {
		return 0
	}
	return n
}
