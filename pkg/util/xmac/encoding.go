package xmac

import (
	"encoding/json"
	"fmt"
)

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 只接受 [Parse] 认可的规范格式，空输入设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
//
// 配置库（如 koanf 的 mapstructure 钩子）通过此方法把字符串字段解码为 Addr。
func (a *Addr) UnmarshalText(text []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if len(text) == 0 {
		*a = Addr{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// 接受规范格式的 JSON 字符串；空字符串或 null 设置为零值。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) UnmarshalJSON(data []byte) error {
	if a == nil {
		return ErrNilReceiver
	}
	if string(data) == "null" {
		*a = Addr{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return a.UnmarshalText([]byte(s))
}

// Scan 实现 [database/sql.Scanner]。
// 支持 string（规范文本）、[]byte（6 字节二进制或规范文本）、nil 输入。
// 对 nil 接收者返回 [ErrNilReceiver]。
func (a *Addr) Scan(src any) error {
	if a == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*a = Addr{}
		return nil
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		// 6 字节视为 BINARY(6) 列中的原始字节。
		// 规范文本固定 17 字符，不会与之混淆。
		if len(v) == addrLen {
			copy(a.bytes[:], v)
			return nil
		}
		return a.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidFormat, src)
	}
}
