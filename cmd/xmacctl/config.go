package main

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/xmackit/pkg/config/xconf"
	"github.com/omeyang/xmackit/pkg/observability/xlog"
	"github.com/omeyang/xmackit/pkg/util/xmac"
)

// 全局 flag 名称
const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagOutput    = "output"
)

// 输出格式
const (
	outputText = "text"
	outputJSON = "json"
)

const defaultConcurrency = 4

// Config xmacctl 配置。
// 优先级：命令行 flag > 配置文件 > 默认值。
type Config struct {
	Log    LogConfig  `koanf:"log"`
	Output string     `koanf:"output"`
	Scan   ScanConfig `koanf:"scan"`
}

// LogConfig 日志配置。File 为空时输出到 stderr。
type LogConfig struct {
	Level      xlog.Level `koanf:"level"`
	Format     string     `koanf:"format"`
	File       string     `koanf:"file"`
	MaxSizeMB  int        `koanf:"max_size_mb"`
	MaxBackups int        `koanf:"max_backups"`
	MaxAgeDays int        `koanf:"max_age_days"`
	Compress   bool       `koanf:"compress"`
}

// ScanConfig scan 命令配置。
type ScanConfig struct {
	// Concurrency 同时处理的文件数上限。
	Concurrency int `koanf:"concurrency"`

	// Exclude 不计入统计的地址，如全零占位地址。
	Exclude []xmac.Addr `koanf:"exclude"`
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:      xlog.LevelInfo,
			Format:     "text",
			MaxSizeMB:  xlog.DefaultMaxSizeMB,
			MaxBackups: xlog.DefaultMaxBackups,
			MaxAgeDays: xlog.DefaultMaxAgeDays,
		},
		Output: outputText,
		Scan: ScanConfig{
			Concurrency: defaultConcurrency,
		},
	}
}

// loadConfig 依次应用默认值、配置文件和命令行 flag。
func loadConfig(cmd *cli.Command) (Config, error) {
	cfg := defaultConfig()

	if path := cmd.String(flagConfig); path != "" {
		if err := xconf.Load(path, "", &cfg); err != nil {
			return Config{}, newUsageError("加载配置 %s 失败: %v", path, err)
		}
	}

	if cmd.IsSet(flagLogLevel) {
		level, err := xlog.ParseLevel(cmd.String(flagLogLevel))
		if err != nil {
			return Config{}, newUsageError("%v", err)
		}
		cfg.Log.Level = level
	}
	if cmd.IsSet(flagLogFormat) {
		cfg.Log.Format = cmd.String(flagLogFormat)
	}
	if cmd.IsSet(flagOutput) {
		cfg.Output = cmd.String(flagOutput)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	switch c.Output {
	case "":
		c.Output = outputText
	case outputText, outputJSON:
	default:
		return newUsageError("未知输出格式 %q (可选: text, json)", c.Output)
	}
	if c.Scan.Concurrency <= 0 {
		return newUsageError("scan.concurrency 必须大于 0，当前为 %d", c.Scan.Concurrency)
	}
	return nil
}

// newLogger 按配置构建日志实例。
func newLogger(cmd *cli.Command, cfg LogConfig) (xlog.LoggerWithLevel, func() error, error) {
	b := xlog.New().
		SetOutput(errWriter(cmd)).
		SetLevel(cfg.Level).
		SetFormat(cfg.Format)
	if cfg.File != "" {
		b = b.SetRotation(cfg.File,
			xlog.WithMaxSizeMB(cfg.MaxSizeMB),
			xlog.WithMaxBackups(cfg.MaxBackups),
			xlog.WithMaxAgeDays(cfg.MaxAgeDays),
			xlog.WithCompress(cfg.Compress),
		)
	}
	logger, cleanup, err := b.Build()
	if err != nil {
		return nil, nil, newUsageError("%v", err)
	}
	return logger, cleanup, nil
}

// env 单次命令执行所需的依赖。
type env struct {
	cfg    Config
	logger xlog.Logger
}

// withEnv 加载配置与日志后执行 fn，结束时释放日志资源。
func withEnv(ctx context.Context, cmd *cli.Command, fn func(context.Context, *env) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, cleanup, err := newLogger(cmd, cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	logger.Debug(ctx, "command started",
		xlog.Operation(cmd.Name),
		xlog.Count(int64(cmd.Args().Len())))
	return fn(ctx, &env{cfg: cfg, logger: logger.With(xlog.Component(cmd.Name))})
}
