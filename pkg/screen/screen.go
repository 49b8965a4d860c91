package screen

import "math"

// Metrics holds the display signals reported by a client.
// The values are read-only for the duration of a classification call.
type Metrics struct {
	// PixelDensity is the device pixel ratio (physical pixels per CSS pixel).
	PixelDensity float64 `json:"pixel_density"`
	// Width is the viewport width in CSS pixels.
	Width float64 `json:"width"`
}

// Default is used when a client reports nothing: a plain 1x desktop viewport.
var Default = Metrics{PixelDensity: 1, Width: 1280}

// EffectiveWidth returns the width divided by the pixel density.
// A zero density yields +Inf (or NaN for a zero width), which fails every
// "less than" comparison.
func (m Metrics) EffectiveWidth() float64 {
	return m.Width / m.PixelDensity
}

// DensityFloor returns the pixel density rounded towards zero.
func (m Metrics) DensityFloor() int {
	if math.IsNaN(m.PixelDensity) || math.IsInf(m.PixelDensity, 0) {
		return 0
	}
	return int(math.Trunc(m.PixelDensity))
}

// WidthBetween reports whether min <= Width <= max.
func (m Metrics) WidthBetween(min, max float64) bool {
	return m.Width >= min && m.Width <= max
}
