package config

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is the prefix of environment variables that override the file.
const EnvPrefix = "SCENEDIRECTOR_"

type Config struct {
	InputPath   string    `koanf:"input"`
	OutputPath  string    `koanf:"output"`
	ScenesDir   string    `koanf:"scenes_dir"` // searched when InputPath is empty
	Workers     int       `koanf:"workers"`
	Strict      bool      `koanf:"strict"` // fail the run on error-severity issues
	Fix         bool      `koanf:"fix"`
	ShowStats   bool      `koanf:"show_stats"`
	MetricsFile string    `koanf:"metrics_file"`
	Log         LogConfig `koanf:"log"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Load reads configuration from an optional YAML file, then applies
// SCENEDIRECTOR_* environment variables on top:
//
//	SCENEDIRECTOR_WORKERS    -> workers
//	SCENEDIRECTOR_LOG_LEVEL  -> log.level
//	SCENEDIRECTOR_SHOW_STATS -> show_stats
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}
	return key
}

func applyDefaults(cfg *Config) {
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.ScenesDir == "" {
		cfg.ScenesDir = "input/scenes"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("invalid log format %q (expected json or console)", c.Log.Format)
	}
	return nil
}
