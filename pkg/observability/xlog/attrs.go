package xlog

import (
	"log/slog"
	"time"
)

// 常用属性 Key 常量，保持各命令输出字段一致。
const (
	// KeyError 错误字段的标准 key
	KeyError = "error"

	// KeyDuration 耗时字段的标准 key
	KeyDuration = "duration"

	// KeyCount 计数字段的标准 key
	KeyCount = "count"

	// KeyComponent 组件名称字段的标准 key
	KeyComponent = "component"

	// KeyOperation 操作名称字段的标准 key
	KeyOperation = "operation"

	// KeyInput 原始输入文本字段的标准 key
	KeyInput = "input"

	// KeyFile 输入文件字段的标准 key
	KeyFile = "file"

	// KeyLine 输入行号字段的标准 key
	KeyLine = "line"
)

// Err 创建错误属性
//
// 如果 err 为 nil，返回空属性（会被 slog 忽略）。
//
//	if err != nil {
//	    logger.Error(ctx, "load config failed", xlog.Err(err))
//	}
func Err(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String(KeyError, err.Error())
}

// Duration 创建耗时属性
func Duration(d time.Duration) slog.Attr {
	return slog.String(KeyDuration, d.String())
}

// Component 创建组件名属性
func Component(name string) slog.Attr {
	return slog.String(KeyComponent, name)
}

// Operation 创建操作名属性
func Operation(name string) slog.Attr {
	return slog.String(KeyOperation, name)
}

// Count 创建计数属性
func Count(n int64) slog.Attr {
	return slog.Int64(KeyCount, n)
}

// Input 创建原始输入属性。文本按原样记录（slog 负责转义）。
func Input(s string) slog.Attr {
	return slog.String(KeyInput, s)
}

// File 创建输入文件属性
func File(path string) slog.Attr {
	return slog.String(KeyFile, path)
}

// Line 创建行号属性
func Line(n int) slog.Attr {
	return slog.Int(KeyLine, n)
}
