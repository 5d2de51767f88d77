package xmac

import (
	"fmt"
	"net"
	"strings"
)

// Parse 解析规范格式的 MAC 地址文本。
//
// 仅接受 [IsCanonical] 认可的格式（如 "55:EE:75:BF:9C:A1"），大小写不敏感。
// 输入不会去除空白。校验失败时返回零值 Addr{} 和包装了 [ErrInvalidFormat] 的错误，
// 不会返回部分结果。对任意输入都不会 panic。
//
// 解析结果的第 i 个字节对应文本中从左数第 i 组，
// 每组第一个字符为高半字节：组 "AB" 得到 0xAB。
func Parse(s string) (Addr, error) {
	if s == "" {
		return Addr{}, fmt.Errorf("%w: empty input", ErrInvalidFormat)
	}
	if !IsCanonical(s) {
		return Addr{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	var addr Addr
	for i, group := range splitGroups(s) {
		addr.bytes[i] = assembleOctet(group)
	}
	return addr, nil
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xmac.MustParse(%q): %v", s, err))
	}
	return addr
}

// ParseBytes 从字节切片创建 MAC 地址。
// 切片长度必须为 6，字节原样保存。
func ParseBytes(b []byte) (Addr, error) {
	if len(b) != addrLen {
		return Addr{}, fmt.Errorf("%w: expected 6 bytes, got %d", ErrInvalidLength, len(b))
	}
	var addr Addr
	copy(addr.bytes[:], b)
	return addr, nil
}

// FromHardwareAddr 从 [net.HardwareAddr] 创建 MAC 地址。
// 长度必须为 6 字节，EUI-64 等其他长度返回 [ErrInvalidLength]。
func FromHardwareAddr(hw net.HardwareAddr) (Addr, error) {
	return ParseBytes([]byte(hw))
}

// splitGroups 将已通过 [IsCanonical] 校验的文本按冒号切分为 6 组。
// 对未校验的输入行为未定义，只能由 Parse 在校验之后调用。
func splitGroups(s string) [addrLen]string {
	var groups [addrLen]string
	i := 0
	for group := range strings.SplitSeq(s, string(separator)) {
		groups[i] = group
		i++
	}
	return groups
}

// assembleOctet 将两字符分组组合为一个字节：高半字节在前。
//
// 分组已通过语法校验，解码必然成功。解码失败意味着校验器与解码器的
// 字符集不一致，是内部缺陷，直接 panic 以免产出错误字节。
func assembleOctet(group string) byte {
	high, okHigh := decodeNibble(group[0])
	low, okLow := decodeNibble(group[1])
	if !okHigh || !okLow {
		panic(fmt.Sprintf("xmac: internal error: validated group %q failed to decode", group))
	}
	return high*16 + low
}

// decodeNibble 将单个十六进制字符解码为 0-15 的半字节值。
// 非十六进制字符返回 (0, false)；A-F 大小写不敏感。
func decodeNibble(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
