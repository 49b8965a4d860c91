package screen

// Config holds the fallback metrics used when a client sends no hints.
type Config struct {
	DefaultPixelDensity float64 `env:"SCREEN_DEFAULT_PIXEL_DENSITY" envDefault:"1"`
	DefaultWidth        float64 `env:"SCREEN_DEFAULT_WIDTH" envDefault:"1280"`
}

// Defaults converts the config into fallback metrics. Non-positive values
// are replaced by the package Default.
func (c Config) Defaults() Metrics {
	m := Default
	if c.DefaultPixelDensity > 0 {
		m.PixelDensity = c.DefaultPixelDensity
	}
	if c.DefaultWidth > 0 {
		m.Width = c.DefaultWidth
	}
	return m
}
