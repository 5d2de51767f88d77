// Package xmac 提供 MAC 地址（EUI-48）文本到二进制的严格解析。
//
// xmac 只接受规范文本格式：6 组两位十六进制数字，以冒号分隔，
// 如 "55:EE:75:BF:9C:A1"。大小写均可（组内、组间可混用），
// 不去除空白，不接受 "0x" 前缀、短线或点分隔、无分隔符等变体。
//
// # 快速示例
//
//	addr, err := xmac.Parse("55:EE:75:BF:9C:A1")
//	if err != nil {
//	    // errors.Is(err, xmac.ErrInvalidFormat) 恒为 true
//	}
//	b := addr.Bytes() // [6]byte{0x55, 0xEE, 0x75, 0xBF, 0x9C, 0xA1}
//
// 已持有可信二进制数据时直接包装，不做任何校验：
//
//	addr := xmac.AddrFrom6([6]byte{1, 2, 3, 4, 5, 6})
//
// # 解析流程
//
// [Parse] 是唯一串联各阶段的入口：
//
//  1. 语法校验 [IsCanonical]：整串一次性判定，拒绝即整体失败，无部分结果
//  2. 按冒号切分为 6 组，保持从左到右的顺序
//  3. 每组两个字符逐个解码为半字节（nibble），第一个字符为高半字节
//  4. 6 个字节按顺序写入 [Addr]
//
// 第 3 步的解码失败只可能由校验器与解码器字符集不一致引起，属于内部缺陷，
// 直接 panic 而不是产出错误字节。对任意外部输入 [Parse] 都不会 panic。
//
// # 设计决策
//
//   - 使用 [6]byte 固定数组：值语义、可比较、可作为 map key
//   - 全零地址 00:00:00:00:00:00 是合法值，不赋予"未初始化"语义；
//     是否解析成功以返回的 error 为准
//   - 不提供 Addr 到文本的格式化，也不解释多播、广播、本地管理等位语义
//   - 包内无任何全局可变状态，所有函数并发安全
//
// # 错误处理
//
// 文本输入只有一种错误：[ErrInvalidFormat]，通过 errors.Is 判断。
// 字节切片长度不为 6 时返回 [ErrInvalidLength]。
package xmac
