package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrInvalidLevel is returned by NewFromConfig for an unparseable LOG_LEVEL.
var ErrInvalidLevel = errors.New("invalid log level")

// Config is the environment-driven logger configuration.
type Config struct {
	Level   string `env:"LOG_LEVEL" envDefault:"info"`
	Format  string `env:"LOG_FORMAT" envDefault:"json"`
	Service string `env:"SERVICE_NAME" envDefault:"devicekit"`
}

// NewFromConfig builds a logger from Config; extra options are applied last.
func NewFromConfig(cfg Config, opts ...Option) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, errors.Join(ErrInvalidLevel, err)
	}

	format := Format(strings.ToLower(cfg.Format))
	if format != FormatJSON && format != FormatText {
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", cfg.Format, FormatJSON, FormatText)
	}

	base := []Option{
		WithLevel(level),
		WithFormat(format),
	}
	if cfg.Service != "" {
		base = append(base, WithAttr(slog.String("service", cfg.Service)))
	}
	return New(append(base, opts...)...), nil
}
