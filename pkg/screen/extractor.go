package screen

import (
	"math"
	"net/http"
	"strconv"
	"strings"
)

// Client Hints request headers. The Sec-CH-* names are current; DPR and
// Viewport-Width are the legacy names still sent by older Chromium builds.
const (
	HeaderDPR                 = "Sec-CH-DPR"
	HeaderViewportWidth       = "Sec-CH-Viewport-Width"
	HeaderLegacyDPR           = "DPR"
	HeaderLegacyViewportWidth = "Viewport-Width"
)

// acceptCH is advertised in responses so supporting browsers send the hints
// on subsequent requests.
var acceptCH = strings.Join([]string{HeaderDPR, HeaderViewportWidth, HeaderLegacyDPR, HeaderLegacyViewportWidth}, ", ")

// FromRequest extracts screen metrics from Client Hints headers.
// Each missing, malformed or non-positive value falls back to the matching
// field of defaults independently.
func FromRequest(r *http.Request, defaults Metrics) Metrics {
	m := defaults
	if r == nil {
		return m
	}

	if v, ok := headerFloat(r.Header, HeaderDPR, HeaderLegacyDPR); ok {
		m.PixelDensity = v
	}
	if v, ok := headerFloat(r.Header, HeaderViewportWidth, HeaderLegacyViewportWidth); ok {
		m.Width = v
	}
	return m
}

// headerFloat returns the first header among names holding a positive,
// finite number.
func headerFloat(h http.Header, names ...string) (float64, bool) {
	for _, name := range names {
		raw := strings.TrimSpace(h.Get(name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		return v, true
	}
	return 0, false
}
