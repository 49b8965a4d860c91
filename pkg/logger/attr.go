package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Rule records the name of the classification rule that matched.
// An empty name returns an empty Attr.
func Rule(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("rule", name)
}

// UserAgent records the raw user agent under the key "user_agent".
// Values are cut at 256 bytes to keep log lines bounded.
func UserAgent(ua string) slog.Attr {
	const limit = 256
	if len(ua) > limit {
		ua = ua[:limit]
	}
	return slog.String("user_agent", ua)
}

// Screen records reported screen metrics under the group "screen".
func Screen(pixelDensity, width float64) slog.Attr {
	return Group("screen",
		slog.Float64("pixel_density", pixelDensity),
		slog.Float64("width", width),
	)
}
