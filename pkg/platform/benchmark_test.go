package platform_test

import (
	"testing"

	"github.com/dmitrymomot/devicekit/pkg/platform"
	"github.com/dmitrymomot/devicekit/pkg/useragent"
)

func BenchmarkClassify(b *testing.B) {
	cases := []struct {
		name string
		ua   string
	}{
		{"Googlebot", googlebotUA},
		{"iPhone", iPhoneUA},
		{"AndroidTablet", android4TabUA},
		{"MacDesktop", macUA},
		{"Unmatched", windowsUA},
	}
	m := metrics(1, 1440)

	for _, tc := range cases {
		ua, err := useragent.Parse(tc.ua)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				platform.Classify(ua, m)
			}
		})
	}
}

func BenchmarkParseAndClassify(b *testing.B) {
	m := metrics(3, 375)
	b.ReportAllocs()
	for b.Loop() {
		ua, _ := useragent.Parse(iPhoneUA)
		platform.Classify(ua, m)
	}
}
