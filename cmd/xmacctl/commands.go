package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xmackit/pkg/observability/xlog"
	"github.com/omeyang/xmackit/pkg/util/xmac"
)

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createParseCommand(),
		createCheckCommand(),
		createScanCommand(),
	}
}

// createParseCommand 创建 parse 子命令。
func createParseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Aliases:   []string{"p"},
		Usage:     "解析 MAC 地址并输出 6 个字节",
		ArgsUsage: "<addr>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return newUsageError("parse 需要至少一个地址参数")
			}
			return withEnv(ctx, cmd, func(ctx context.Context, e *env) error {
				return cmdParse(ctx, e, outWriter(cmd), args)
			})
		},
	}
}

// createCheckCommand 创建 check 子命令。
func createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Aliases:   []string{"c"},
		Usage:     "校验 MAC 地址是否为规范格式",
		ArgsUsage: "<addr>...",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return newUsageError("check 需要至少一个地址参数")
			}
			return withEnv(ctx, cmd, func(ctx context.Context, e *env) error {
				return cmdCheck(ctx, e, outWriter(cmd), args)
			})
		},
	}
}

// createScanCommand 创建 scan 子命令。
func createScanCommand() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Aliases:   []string{"s"},
		Usage:     "逐行扫描文件中的 MAC 地址并汇总统计",
		ArgsUsage: "[file...]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "concurrency",
				Usage: "同时处理的文件数（覆盖 scan.concurrency）",
			},
			&cli.BoolFlag{
				Name:  "distinct",
				Usage: "按字节序列出去重后的地址",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withEnv(ctx, cmd, func(ctx context.Context, e *env) error {
				if cmd.IsSet("concurrency") {
					n := cmd.Int("concurrency")
					if n <= 0 {
						return newUsageError("--concurrency 必须大于 0，当前为 %d", n)
					}
					e.cfg.Scan.Concurrency = n
				}
				return cmdScan(ctx, e, cmd, cmd.Args().Slice(), cmd.Bool("distinct"))
			})
		},
	}
}

// parseResult 单个地址的解析结果。
type parseResult struct {
	Input  string `json:"input"`
	Valid  bool   `json:"valid"`
	Octets []int  `json:"octets,omitempty"`
}

func cmdParse(ctx context.Context, e *env, w io.Writer, args []string) error {
	invalid := 0
	for _, arg := range args {
		res := parseResult{Input: arg}
		addr, err := xmac.Parse(arg)
		if err != nil {
			invalid++
			e.logger.Warn(ctx, "invalid address", xlog.Input(arg), xlog.Err(err))
		} else {
			res.Valid = true
			res.Octets = octetInts(addr)
		}
		if err := writeParseResult(w, e.cfg.Output, res); err != nil {
			return err
		}
	}
	return invalidExit(invalid)
}

func writeParseResult(w io.Writer, output string, res parseResult) error {
	if output == outputJSON {
		return json.NewEncoder(w).Encode(res)
	}
	if !res.Valid {
		_, err := fmt.Fprintf(w, "%s -> invalid\n", res.Input)
		return err
	}
	_, err := fmt.Fprintf(w, "%s -> %s\n", res.Input, octetList(res.Octets))
	return err
}

// checkResult 单个地址的校验结果。
type checkResult struct {
	Input string `json:"input"`
	Valid bool   `json:"valid"`
}

func cmdCheck(ctx context.Context, e *env, w io.Writer, args []string) error {
	invalid := 0
	for _, arg := range args {
		res := checkResult{Input: arg, Valid: xmac.IsCanonical(arg)}
		if !res.Valid {
			invalid++
			e.logger.Debug(ctx, "rejected by grammar", xlog.Input(arg))
		}

		var err error
		switch {
		case e.cfg.Output == outputJSON:
			err = json.NewEncoder(w).Encode(res)
		case res.Valid:
			_, err = fmt.Fprintf(w, "ok      %s\n", arg)
		default:
			_, err = fmt.Fprintf(w, "invalid %s\n", arg)
		}
		if err != nil {
			return err
		}
	}
	return invalidExit(invalid)
}

// invalidExit 存在非法输入时返回退出码 1。
func invalidExit(invalid int) error {
	if invalid > 0 {
		return &exitError{code: 1}
	}
	return nil
}

// octetInts 以整数切片返回地址字节，JSON 中编码为数字数组而非 base64。
func octetInts(a xmac.Addr) []int {
	b := a.Bytes()
	out := make([]int, len(b))
	for i, v := range b {
		out[i] = int(v)
	}
	return out
}

// octetList 输出形如 [0x55 0xEE 0x75 0xBF 0x9C 0xA1] 的字节列表。
func octetList(octets []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range octets {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "0x%02X", v)
	}
	sb.WriteByte(']')
	return sb.String()
}
