// Package xconf 提供配置文件加载和反序列化，基于 koanf 实现。
//
// xconf 定位为最小化配置加载器：负责文件/字节数据的加载与反序列化，
// 不负责默认值注入和命令行覆盖，这些由调用方完成（先填默认值，再 Unmarshal）。
//
// # 支持的格式
//
//   - YAML（推荐）：.yaml, .yml
//   - JSON：.json
//
// # 反序列化
//
// Unmarshal 使用 koanf 默认的 mapstructure 配置：允许弱类型转换，
// 并对实现 encoding.TextUnmarshaler 的字段类型调用 UnmarshalText。
// 因此 xmac.Addr、xlog.Level 字段可以直接写成字符串：
//
//	type ScanConfig struct {
//	    Exclude []xmac.Addr `koanf:"exclude"`
//	}
//
// 一次性加载可以使用 [Load]：
//
//	cfg := defaultConfig()
//	if err := xconf.Load("xmacctl.yaml", "", &cfg); err != nil {
//	    return err
//	}
package xconf
