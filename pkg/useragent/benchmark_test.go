package useragent_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

var benchUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1",
	"Mozilla/5.0 (Linux; Android 11; SM-T500) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Safari/537.36",
	"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)",
	"Mozilla/5.0 (BlackBerry; U; BlackBerry 9900; en) AppleWebKit/534.11+ (KHTML, like Gecko) Version/7.1.0.346 Mobile Safari/534.11+",
	"",
}

// Helper variables to avoid compiler optimizations removing the function call
var (
	result useragent.UserAgent
	err    error
)

func BenchmarkParse(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err = useragent.Parse(benchUserAgents[i%len(benchUserAgents)])
	}
}

func BenchmarkParseOS(b *testing.B) {
	lowered := make([]string, len(benchUserAgents))
	for i, ua := range benchUserAgents {
		lowered[i] = strings.ToLower(ua)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = useragent.ParseOS(lowered[i%len(lowered)])
	}
}

func BenchmarkParseBrowser(b *testing.B) {
	lowered := make([]string, len(benchUserAgents))
	for i, ua := range benchUserAgents {
		lowered[i] = strings.ToLower(ua)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = useragent.ParseBrowser(lowered[i%len(lowered)])
	}
}
