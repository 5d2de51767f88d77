package xmac

import "net"

// addrLen 是 EUI-48 地址的字节数。
const addrLen = 6

// Addr 表示 48 位 MAC 地址（EUI-48/MAC-48）。
//
// Addr 是不可变值类型：
//   - 可直接比较（==）和用作 map key，相等即逐字节相等
//   - 任意字节取值都合法，包括全零
//   - 并发安全，无需加锁
//
// 从文本创建使用 [Parse]，从可信字节创建使用 [AddrFrom6]。
type Addr struct {
	bytes [addrLen]byte
}

// AddrFrom6 从 6 字节数组创建 MAC 地址。
// 字节原样保存，不做任何校验。
func AddrFrom6(b [6]byte) Addr {
	return Addr{bytes: b}
}

// Bytes 返回 MAC 地址的 6 个字节，顺序与文本中的分组顺序一致。
// 返回副本，修改不影响原值。
func (a Addr) Bytes() [6]byte {
	return a.bytes
}

// Octet 返回第 i 个字节（0 为最左侧分组）。
// i 超出 [0, 6) 时 panic，与数组越界行为一致。
func (a Addr) Octet(i int) byte {
	return a.bytes[i]
}

// IsZero 报告 a 是否为全零地址（00:00:00:00:00:00）。
func (a Addr) IsZero() bool {
	return a == Addr{}
}

// Compare 比较两个 MAC 地址的字节顺序。
// 返回值：-1 (a < b), 0 (a == b), 1 (a > b)。
// 按网络字节序（大端）比较。
func (a Addr) Compare(b Addr) int {
	for i := range addrLen {
		if a.bytes[i] < b.bytes[i] {
			return -1
		}
		if a.bytes[i] > b.bytes[i] {
			return 1
		}
	}
	return 0
}

// HardwareAddr 返回 [net.HardwareAddr] 表示。
// 返回新分配的切片，修改不影响原值。
func (a Addr) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, addrLen)
	copy(hw, a.bytes[:])
	return hw
}
