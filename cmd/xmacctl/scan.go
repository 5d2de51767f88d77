package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/omeyang/xmackit/pkg/observability/xlog"
	"github.com/omeyang/xmackit/pkg/util/xmac"
)

// stdinName 表示标准输入的文件参数。
const stdinName = "-"

// maxLineSize 单行最大长度，超出视为读取失败。
const maxLineSize = 1 << 20

// scanStats 扫描统计。
type scanStats struct {
	Files    int `json:"files"`
	Lines    int `json:"lines"`
	Valid    int `json:"valid"`
	Invalid  int `json:"invalid"`
	Excluded int `json:"excluded"`
	Distinct int `json:"distinct"`
}

// fileResult 单个输入源的扫描结果。
type fileResult struct {
	stats scanStats
	seen  map[xmac.Addr]struct{}
}

// lineScanner 逐行校验输入，可被多个 goroutine 共享（只读）。
type lineScanner struct {
	exclude map[xmac.Addr]struct{}
	logger  xlog.Logger
}

func newLineScanner(exclude []xmac.Addr, logger xlog.Logger) *lineScanner {
	set := make(map[xmac.Addr]struct{}, len(exclude))
	for _, a := range exclude {
		set[a] = struct{}{}
	}
	return &lineScanner{exclude: set, logger: logger}
}

// scanReader 扫描单个输入源。
// 每行去除首尾空白后处理；空行与 # 开头的注释行不计数。
func (s *lineScanner) scanReader(ctx context.Context, name string, r io.Reader) (fileResult, error) {
	res := fileResult{seen: make(map[xmac.Addr]struct{})}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		lineNo++

		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res.stats.Lines++

		addr, err := xmac.Parse(line)
		if err != nil {
			res.stats.Invalid++
			s.logger.Warn(ctx, "invalid address",
				xlog.File(name), xlog.Line(lineNo), xlog.Input(line))
			continue
		}
		if _, skip := s.exclude[addr]; skip {
			res.stats.Excluded++
			continue
		}
		res.stats.Valid++
		res.seen[addr] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return res, fmt.Errorf("read %s: %w", name, err)
	}
	return res, nil
}

// scanFile 打开并扫描文件，"-" 表示 stdin。
func (s *lineScanner) scanFile(ctx context.Context, name string, stdin io.Reader) (fileResult, error) {
	if name == stdinName {
		return s.scanReader(ctx, name, stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return fileResult{}, err
	}
	defer f.Close()
	return s.scanReader(ctx, name, f)
}

// scanAll 并发扫描所有输入源并合并结果，返回统计与按字节序排列的去重地址。
func (s *lineScanner) scanAll(ctx context.Context, names []string, stdin io.Reader, concurrency int) (scanStats, []xmac.Addr, error) {
	results := make([]fileResult, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, name := range names {
		g.Go(func() error {
			res, err := s.scanFile(gctx, name, stdin)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return scanStats{}, nil, err
	}

	var total scanStats
	seen := make(map[xmac.Addr]struct{})
	for _, r := range results {
		total.Lines += r.stats.Lines
		total.Valid += r.stats.Valid
		total.Invalid += r.stats.Invalid
		total.Excluded += r.stats.Excluded
		maps.Copy(seen, r.seen)
	}
	total.Files = len(names)
	total.Distinct = len(seen)

	distinct := slices.SortedFunc(maps.Keys(seen), xmac.Addr.Compare)
	return total, distinct, nil
}

// scanReport scan 命令的 JSON 输出。
type scanReport struct {
	scanStats
	Addresses [][]int `json:"addresses,omitempty"`
}

func cmdScan(ctx context.Context, e *env, cmd *cli.Command, names []string, listDistinct bool) error {
	if len(names) == 0 {
		names = []string{stdinName}
	}
	if n := countStdin(names); n > 1 {
		return newUsageError("标准输入 %q 只能出现一次", stdinName)
	}

	start := time.Now()
	s := newLineScanner(e.cfg.Scan.Exclude, e.logger)
	stats, distinct, err := s.scanAll(ctx, names, inReader(cmd), e.cfg.Scan.Concurrency)
	if err != nil {
		e.logger.Error(ctx, "scan failed", xlog.Err(err))
		return err
	}
	e.logger.Info(ctx, "scan finished",
		xlog.Count(int64(stats.Lines)),
		xlog.Duration(time.Since(start)))

	if err := writeScanReport(outWriter(cmd), e.cfg.Output, stats, distinct, listDistinct); err != nil {
		return err
	}
	return invalidExit(stats.Invalid)
}

func countStdin(names []string) int {
	n := 0
	for _, name := range names {
		if name == stdinName {
			n++
		}
	}
	return n
}

func writeScanReport(w io.Writer, output string, stats scanStats, distinct []xmac.Addr, listDistinct bool) error {
	if output == outputJSON {
		report := scanReport{scanStats: stats}
		if listDistinct {
			report.Addresses = make([][]int, 0, len(distinct))
			for _, a := range distinct {
				report.Addresses = append(report.Addresses, octetInts(a))
			}
		}
		return json.NewEncoder(w).Encode(report)
	}

	if _, err := fmt.Fprintf(w, "files=%d lines=%d valid=%d invalid=%d excluded=%d distinct=%d\n",
		stats.Files, stats.Lines, stats.Valid, stats.Invalid, stats.Excluded, stats.Distinct); err != nil {
		return err
	}
	if !listDistinct {
		return nil
	}
	for _, a := range distinct {
		if _, err := fmt.Fprintln(w, octetList(octetInts(a))); err != nil {
			return err
		}
	}
	return nil
}
