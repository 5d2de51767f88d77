// Package xlog 基于 log/slog 的结构化日志库。
//
// # 核心功能
//
//   - Builder 模式配置（输出目标、级别、格式、文件轮转）
//   - 动态级别调整（运行时热更新，派生 Logger 同步生效）
//   - 方法签名强制 context 并只接受 slog.Attr
//   - 内部写入错误回调，失败不扩散到业务调用链
//
// # 创建 Logger
//
// Builder 采用 first-error-wins：遇到第一个配置错误后，后续 Set 操作的结果被忽略，
// 错误在 [Builder.Build] 时返回。
//
//	logger, cleanup, err := xlog.New().
//		SetLevelString("debug").
//		SetFormat("json").
//		SetRotation("/var/log/xmacctl.log", xlog.WithMaxSizeMB(50)).
//		Build()
//	if err != nil {
//		return err
//	}
//	defer cleanup()
//
//	logger.Info(ctx, "scan finished", xlog.Count(42))
//
// # 文件轮转
//
// [Builder.SetRotation] 使用 lumberjack 按文件大小轮转，cleanup 函数负责关闭文件。
//
// # 日志级别
//
// LevelDebug(-4)、LevelInfo(0)、LevelWarn(4)、LevelError(8)。
// 可通过 [ParseLevel] 从字符串解析。Level 实现 encoding.TextUnmarshaler，
// 支持配置文件直接反序列化。
package xlog
