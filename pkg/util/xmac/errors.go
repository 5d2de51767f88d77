package xmac

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
var (
	// ErrInvalidFormat 表示输入文本不是规范的 MAC 地址格式。
	// 这是文本解析唯一的错误类型，空串、分组数量或宽度错误、
	// 分隔符错误、非十六进制字符都归入此类。
	ErrInvalidFormat = errors.New("xmac: invalid format")

	// ErrInvalidLength 表示字节数据长度不正确（期望 6 字节）。
	ErrInvalidLength = errors.New("xmac: invalid length")

	// ErrNilReceiver 表示在 nil 指针上调用反序列化方法。
	ErrNilReceiver = errors.New("xmac: nil receiver")
)
