package xmac

// canonicalLen 是规范文本的长度：6 组 × 2 字符 + 5 个冒号。
const canonicalLen = addrLen*2 + addrLen - 1

// separator 是规范文本中唯一允许的分组分隔符。
const separator = ':'

// IsCanonical 报告 s 是否严格符合规范 MAC 地址文本格式。
//
// 等价于正则 ^([0-9A-Fa-f]{2}:){5}[0-9A-Fa-f]{2}$：
// 长度必须为 17，下标 2、5、8、11、14 为冒号，其余位置均为十六进制字符。
// 首尾空白、"0x" 前缀或任何多余字符都会导致返回 false。
func IsCanonical(s string) bool {
	if len(s) != canonicalLen {
		return false
	}
	for i := range canonicalLen {
		c := s[i]
		if i%3 == 2 {
			if c != separator {
				return false
			}
			continue
		}
		if !isHexDigit(c) {
			return false
		}
	}
	return true
}

// isHexDigit 报告 c 是否属于 [0-9A-Fa-f]。
// 校验器独立维护字符集，不复用 decodeNibble，
// 两者不一致时由 assembleOctet 暴露出来。
func isHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9', 'a' <= c && c <= 'f', 'A' <= c && c <= 'F':
		return true
	default:
		return false
	}
}
