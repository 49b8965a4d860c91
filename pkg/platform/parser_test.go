package platform_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicekit/pkg/platform"
	"github.com/dmitrymomot/devicekit/pkg/screen"
	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

// stubParser lets tests control browser and OS signals independently of the raw string.
type stubParser struct {
	raw       string
	browser   string
	os        string
	osVersion string
}

func (s stubParser) Test(re *regexp.Regexp) bool { return re.MatchString(s.raw) }
func (s stubParser) BrowserName() string         { return s.browser }
func (s stubParser) OSName() string              { return s.os }
func (s stubParser) OSVersion() string           { return s.osVersion }
func (s stubParser) String() string              { return s.raw }

func metrics(density, width float64) screen.Metrics {
	return screen.Metrics{PixelDensity: density, Width: width}
}

func classify(t *testing.T, raw string, m screen.Metrics) (platform.Descriptor, bool) {
	t.Helper()
	ua, err := useragent.Parse(raw)
	require.NoError(t, err)
	return platform.Classify(ua, m)
}

func matchedRule(t *testing.T, raw string, m screen.Metrics) string {
	t.Helper()
	ua, err := useragent.Parse(raw)
	require.NoError(t, err)
	r, ok := platform.Default().Match(ua, m)
	if !ok {
		return ""
	}
	return r.Name
}
