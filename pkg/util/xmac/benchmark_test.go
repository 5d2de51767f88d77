package xmac

import (
	"net"
	"testing"
)

func BenchmarkParse(b *testing.B) {
	inputs := []struct {
		name  string
		input string
	}{
		{"upper", "55:EE:75:BF:9C:A1"},
		{"lower", "55:ee:75:bf:9c:a1"},
		{"reject_length", "55:EE:75:BF:9C"},
		{"reject_hex", "GG:EE:75:BF:9C:A1"},
	}

	for _, tc := range inputs {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_, _ = Parse(tc.input)
			}
		})
	}
}

// BenchmarkParse_Stdlib 作为对照：net.ParseMAC 接受更多格式并分配切片。
func BenchmarkParse_Stdlib(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = net.ParseMAC("55:EE:75:BF:9C:A1")
	}
}

func BenchmarkIsCanonical(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_ = IsCanonical("55:EE:75:BF:9C:A1")
	}
}

func BenchmarkCompare(b *testing.B) {
	x := MustParse("55:EE:75:BF:9C:A1")
	y := MustParse("55:EE:75:BF:9C:A2")
	b.ReportAllocs()
	for b.Loop() {
		_ = x.Compare(y)
	}
}
