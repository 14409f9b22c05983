// Package config loads urictl settings from a YAML file.
//
// Settings are resolved in three layers: built-in defaults, then the values
// present in .urictl.yaml (or the file given with --config), then command
// line flags applied by the caller. Fields left out of the file keep their
// default.
//
// Example .urictl.yaml:
//
//	pathDelimiter: "/"
//	output: json
//	logLevel: debug
//	logFormat: text
//	server:
//	  addr: ":8080"
//	  rateLimit: 20 # 0 turns rate limiting off
//	  burst: 40
//	  readTimeout: 5s
//	  metrics: true
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jongio/uri-core/uri"
)

// FileName is the config file looked up in the working directory.
const FileName = ".urictl.yaml"

// Config is the full urictl configuration.
type Config struct {
	PathDelimiter string       `yaml:"pathDelimiter"`
	Output        string       `yaml:"output"`
	LogLevel      string       `yaml:"logLevel"`
	LogFormat     string       `yaml:"logFormat"`
	Server        ServerConfig `yaml:"server"`
}

// ServerConfig configures the HTTP parse service.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	RateLimit       *float64      `yaml:"rateLimit"` // requests per second, 0 disables limiting
	Burst           int           `yaml:"burst"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	Metrics         *bool         `yaml:"metrics"`
}

// Rate returns the configured request rate. Zero means limiting is off.
func (s ServerConfig) Rate() float64 {
	if s.RateLimit == nil {
		return 0
	}
	return *s.RateLimit
}

// MetricsEnabled reports whether /metrics should be served.
func (s ServerConfig) MetricsEnabled() bool {
	return s.Metrics == nil || *s.Metrics
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PathDelimiter: uri.DefaultPathDelimiter,
		Output:        "default",
		LogLevel:      "info",
		LogFormat:     "text",
		Server: ServerConfig{
			Addr:            "127.0.0.1:8080",
			RateLimit:       ptr(50.0),
			Burst:           100,
			ReadTimeout:     5 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// Load reads the configuration file at path and merges it over the
// defaults. With an empty path, FileName in the working directory is used and
// a missing file is not an error. An explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = FileName
	}

	// #nosec G304 -- path comes from the user's own --config flag
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML data and merges it over the defaults.
func Parse(data []byte) (*Config, error) {
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg := Default()
	cfg.merge(&file)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func ptr[T any](v T) *T { return &v }

// merge copies every non-zero field of other into c. Pointer fields are
// copied whenever the file sets them, so an explicit zero is kept.
func (c *Config) merge(other *Config) {
	if other.PathDelimiter != "" {
		c.PathDelimiter = other.PathDelimiter
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		c.LogFormat = other.LogFormat
	}

	s := other.Server
	if s.Addr != "" {
		c.Server.Addr = s.Addr
	}
	if s.RateLimit != nil {
		c.Server.RateLimit = s.RateLimit
	}
	if s.Burst != 0 {
		c.Server.Burst = s.Burst
	}
	if s.ReadTimeout != 0 {
		c.Server.ReadTimeout = s.ReadTimeout
	}
	if s.ShutdownTimeout != 0 {
		c.Server.ShutdownTimeout = s.ShutdownTimeout
	}
	if s.Metrics != nil {
		c.Server.Metrics = s.Metrics
	}
}

// Validate checks the configuration for values no component can use.
func (c *Config) Validate() error {
	if c.PathDelimiter == "" {
		return fmt.Errorf("pathDelimiter cannot be empty")
	}

	switch strings.ToLower(c.Output) {
	case "default", "json", "yaml":
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json, yaml)", c.Output)
	}

	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s (valid options: text, json)", c.LogFormat)
	}

	if c.Server.Rate() < 0 {
		return fmt.Errorf("server.rateLimit cannot be negative")
	}
	if c.Server.Rate() > 0 && c.Server.Burst < 1 {
		return fmt.Errorf("server.burst must be at least 1 when rate limiting is enabled")
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr cannot be empty")
	}
	return nil
}
