// xmacctl 是 MAC 地址规范文本的命令行校验与解析工具。
//
// 用法:
//
//	xmacctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-c, --config      配置文件路径（.yaml/.yml/.json）
//	    --log-level   日志级别 (debug/info/warn/error)
//	    --log-format  日志格式 (text/json)
//	-o, --output      输出格式 (text/json)
//
// 命令:
//
//	parse <addr>...   解析地址并输出 6 个字节
//	check <addr>...   仅做格式校验
//	scan [file...]    逐行扫描文件（无参数或 "-" 时读取标准输入）并汇总统计
//
// 只接受规范格式 xx:xx:xx:xx:xx:xx（十六进制，大小写均可）。
//
// 退出码:
//
//	0: 全部输入合法
//	1: 存在非法输入或执行失败
//	2: 参数或配置错误
//
// 示例:
//
//	xmacctl parse 55:EE:75:BF:9C:A1
//	xmacctl -o json check aa:bb:cc:dd:ee:ff 55-EE-75-BF-9C-A1
//	xmacctl -c xmacctl.yaml scan inventory.txt
//	cat macs.txt | xmacctl scan --distinct
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "xmacctl",
		Usage:   "MAC 地址规范文本校验与解析工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "配置文件路径（.yaml/.yml/.json）",
			},
			&cli.StringFlag{
				Name:  flagLogLevel,
				Usage: "日志级别 (debug/info/warn/error)",
			},
			&cli.StringFlag{
				Name:  flagLogFormat,
				Usage: "日志格式 (text/json)",
			},
			&cli.StringFlag{
				Name:    flagOutput,
				Aliases: []string{"o"},
				Usage:   "输出格式 (text/json)",
			},
		},
		Commands: createCommands(),
		Authors: []any{
			"XKit Team",
		},
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一映射退出码。
		ExitErrHandler: func(_ context.Context, cmd *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(errWriter(cmd), err)
			}
		},
	}
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	return exitCode(createApp().Run(ctx, os.Args), os.Stderr)
}

// exitCode 将命令错误映射为退出码，必要时向 w 输出错误信息。
func exitCode(err error, w io.Writer) int {
	if err == nil {
		return 0
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return exitErr.code
	}
	var usageErr *usageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(w, "参数错误: %v\n", usageErr)
		return 2
	}
	// 框架产生的参数错误（未知 flag 等）已由 urfave/cli 输出详情
	if isCLIUsageError(err) {
		return 2
	}
	fmt.Fprintf(w, "错误: %v\n", err)
	return 1
}

// exitError 表示输出已完成、只需设置非零退出码的场景。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// usageError 表示参数或配置错误（退出码 2）。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func newUsageError(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// isCLIUsageError 识别 urfave/cli 及 flag 包产生的参数错误。
func isCLIUsageError(err error) bool {
	msg := err.Error()
	for _, marker := range []string{
		"flag provided but not defined",
		"flag needs an argument",
		"invalid value",
		"No help topic for",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// setupSignalHandler 第一次 SIGINT/SIGTERM 取消 context，第二次强制退出。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}

// outWriter、errWriter、inReader 返回根命令上配置的 IO，便于测试替换。
func outWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

func inReader(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}
