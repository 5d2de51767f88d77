package xmac

import (
	"regexp"
	"testing"
)

// canonicalPattern 是规范格式的正则表示，仅作为测试基准。
var canonicalPattern = regexp.MustCompile(`^([0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}$`)

func TestIsCanonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"upper", "55:EE:75:BF:9C:A1", true},
		{"lower", "55:ee:75:bf:9c:a1", true},
		{"mixed", "5a:Ee:75:bF:9C:a1", true},
		{"zero", "00:00:00:00:00:00", true},

		{"empty", "", false},
		{"invalid_hex", "GG:EE:75:BF:9C:A1", false},
		{"wide_group", "55EE:75:BF:9C:A1", false},
		{"too_few", "55:EE:75:BF:9C", false},
		{"too_many", "55:EE:75:BF:9C:A1:00", false},
		{"dash", "55-EE-75-BF-9C-A1", false},
		{"mixed_separators", "55:EE-75:BF:9C:A1", false},
		{"surrounding_space", " 55:EE:75:BF:9C:A1 ", false},
		{"hex_prefix", "0x55:EE:75:BF:9C", false},
		{"colon_in_group", "5::EE:75:BF:9C:A1", false},
		{"three_char_group_same_length", "55:EE:75:BF:9CA:1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCanonical(tt.input); got != tt.want {
				t.Errorf("IsCanonical(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if oracle := canonicalPattern.MatchString(tt.input); oracle != tt.want {
				t.Errorf("oracle(%q) = %v, want %v", tt.input, oracle, tt.want)
			}
		})
	}
}

// TestIsHexDigit_AgreesWithDecoder 校验器字符集与解码器字符集必须完全一致。
func TestIsHexDigit_AgreesWithDecoder(t *testing.T) {
	for i := range 256 {
		c := byte(i)
		_, ok := decodeNibble(c)
		if isHexDigit(c) != ok {
			t.Errorf("isHexDigit(%q) = %v, decodeNibble ok = %v", c, isHexDigit(c), ok)
		}
	}
}
