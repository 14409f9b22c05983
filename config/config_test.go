package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "/", cfg.PathDelimiter)
	assert.Equal(t, "default", cfg.Output)
	assert.True(t, cfg.Server.MetricsEnabled())
}

func TestParse_MergesOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
pathDelimiter: ":"
output: json
server:
  addr: ":9090"
  readTimeout: 2s
  metrics: false
`))
	require.NoError(t, err)

	assert.Equal(t, ":", cfg.PathDelimiter)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel, "unset fields keep defaults")
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, float64(50), cfg.Server.Rate())
	assert.False(t, cfg.Server.MetricsEnabled())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
	}{
		{name: "bad yaml", yaml: "output: [", errMsg: "failed to parse config"},
		{name: "bad output", yaml: "output: xml", errMsg: "invalid output format"},
		{name: "bad log format", yaml: "logFormat: pretty", errMsg: "invalid log format"},
		{name: "negative rate", yaml: "server:\n  rateLimit: -1", errMsg: "rateLimit cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParse_RateLimit(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want float64
	}{
		{name: "unset keeps default", yaml: "server:\n  addr: \":9090\"\n", want: 50},
		{name: "explicit value", yaml: "server:\n  rateLimit: 5\n", want: 5},
		{name: "zero turns limiting off", yaml: "server:\n  rateLimit: 0\n", want: 0},
		{name: "zero with zero burst", yaml: "server:\n  rateLimit: 0\n  burst: 0\n", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Server.Rate())
		})
	}
}

func TestServerConfig_RateUnset(t *testing.T) {
	var s ServerConfig
	assert.Equal(t, float64(0), s.Rate())
}

func TestValidate_EmptyDelimiter(t *testing.T) {
	cfg := Default()
	cfg.PathDelimiter = ""
	assert.ErrorContains(t, cfg.Validate(), "pathDelimiter cannot be empty")
}

func TestLoad_MissingDefaultFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "failed to read config")
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte("logLevel: debug\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}
