package xconf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/xmackit/pkg/observability/xlog"
	"github.com/omeyang/xmackit/pkg/util/xmac"
)

// toolConfig 测试用配置结构体，字段类型覆盖 TextUnmarshaler 解码路径。
type toolConfig struct {
	Log  logSection  `koanf:"log"`
	Scan scanSection `koanf:"scan"`
}

type logSection struct {
	Level  xlog.Level `koanf:"level"`
	Format string     `koanf:"format"`
}

type scanSection struct {
	Concurrency int         `koanf:"concurrency"`
	Exclude     []xmac.Addr `koanf:"exclude"`
	Gateway     xmac.Addr   `koanf:"gateway"`
}

const testYAMLContent = `
log:
  level: debug
  format: json
scan:
  concurrency: 8
  gateway: "55:EE:75:BF:9C:A1"
  exclude:
    - "00:00:00:00:00:00"
    - "ff:ff:ff:ff:ff:ff"
`

const testJSONContent = `{
  "log": {"level": "warn", "format": "text"},
  "scan": {"concurrency": "2", "exclude": ["aa:bb:cc:dd:ee:ff"]}
}`

func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestNew_YAML(t *testing.T) {
	path := createTempFile(t, "xmacctl.yaml", testYAMLContent)

	cfg, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.Path())
	assert.Equal(t, FormatYAML, cfg.Format())
	assert.Equal(t, "json", cfg.Client().String("log.format"))
	assert.Equal(t, 8, cfg.Client().Int("scan.concurrency"))

	var tc toolConfig
	require.NoError(t, cfg.Unmarshal("", &tc))
	assert.Equal(t, xlog.LevelDebug, tc.Log.Level)
	assert.Equal(t, xmac.MustParse("55:EE:75:BF:9C:A1"), tc.Scan.Gateway)
	require.Len(t, tc.Scan.Exclude, 2)
	assert.True(t, tc.Scan.Exclude[0].IsZero())
	assert.Equal(t, [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, tc.Scan.Exclude[1].Bytes())
}

func TestNew_JSON(t *testing.T) {
	path := createTempFile(t, "xmacctl.json", testJSONContent)

	var tc toolConfig
	require.NoError(t, Load(path, "", &tc))
	assert.Equal(t, xlog.LevelWarn, tc.Log.Level)
	// 弱类型转换："2" → 2
	assert.Equal(t, 2, tc.Scan.Concurrency)
	require.Len(t, tc.Scan.Exclude, 1)
	assert.Equal(t, xmac.MustParse("AA:BB:CC:DD:EE:FF"), tc.Scan.Exclude[0])
}

func TestNew_Errors(t *testing.T) {
	_, err := New("")
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = New("config.toml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = New(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, ErrLoadFailed)

	bad := createTempFile(t, "bad.yaml", "log: [unterminated")
	_, err = New(bad)
	assert.ErrorIs(t, err, ErrParseFailed)
}

func TestUnmarshal_InvalidAddress(t *testing.T) {
	cfg, err := NewFromBytes([]byte(`scan: {exclude: ["55-EE-75-BF-9C-A1"]}`), FormatYAML)
	require.NoError(t, err)

	var tc toolConfig
	err = cfg.Unmarshal("", &tc)
	require.ErrorIs(t, err, ErrUnmarshalFailed)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestUnmarshal_KeepsDefaults(t *testing.T) {
	cfg, err := NewFromBytes([]byte(`{"log": {"format": "json"}}`), FormatJSON)
	require.NoError(t, err)

	tc := toolConfig{
		Log:  logSection{Level: xlog.LevelInfo, Format: "text"},
		Scan: scanSection{Concurrency: 4},
	}
	require.NoError(t, cfg.Unmarshal("", &tc))
	assert.Equal(t, "json", tc.Log.Format)
	assert.Equal(t, xlog.LevelInfo, tc.Log.Level)
	assert.Equal(t, 4, tc.Scan.Concurrency)
}

func TestUnmarshal_SubPath(t *testing.T) {
	cfg, err := NewFromBytes([]byte(testYAMLContent), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, cfg.Path())

	var scan scanSection
	require.NoError(t, cfg.Unmarshal("scan", &scan))
	assert.Equal(t, 8, scan.Concurrency)
}

func TestNewFromBytes(t *testing.T) {
	cfg, err := NewFromBytes(nil, FormatYAML)
	require.NoError(t, err)
	var tc toolConfig
	require.NoError(t, cfg.Unmarshal("", &tc))
	assert.Equal(t, toolConfig{}, tc)

	_, err = NewFromBytes([]byte("a: 1"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestOptions(t *testing.T) {
	cfg, err := NewFromBytes([]byte(testYAMLContent), FormatYAML, WithDelim("/"), WithTag("koanf"))
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Client().Int("scan/concurrency"))

	o := defaultOptions()
	WithDelim("")(o)
	WithTag("")(o)
	assert.Equal(t, ".", o.Delim)
	assert.Equal(t, "koanf", o.Tag)
}
