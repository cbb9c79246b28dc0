package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/alexanderramin/fitremind/internal/notify"
)

// EnvPrefix prefixes every environment override, e.g. FITREMIND_DB_PATH.
const EnvPrefix = "FITREMIND_"

// EnvConfigPath names the variable that points at the config file.
const EnvConfigPath = EnvPrefix + "CONFIG"

type Config struct {
	DB     DBConfig     `koanf:"db"`
	Notify NotifyConfig `koanf:"notify"`
	Log    LogConfig    `koanf:"log"`
}

type DBConfig struct {
	Path string `koanf:"path"`
}

type NotifyConfig struct {
	OnStart   bool     `koanf:"on_start"`
	Seed      int64    `koanf:"seed"`
	Templates []string `koanf:"templates"`
}

type LogConfig struct {
	UseCases bool   `koanf:"use_cases"`
	Level    string `koanf:"level"`
}

// Load layers defaults, the YAML file at configPath (if it exists) and
// FITREMIND_* environment variables, in that order. An empty configPath
// falls back to $FITREMIND_CONFIG and then the default location.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(NewDefaultProvider(), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath == "" {
		configPath = os.Getenv(EnvConfigPath)
	}
	if configPath == "" {
		configPath = GetDefaultConfigPath()
	}
	configPath = expandPath(configPath)

	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.DB.Path = expandPath(cfg.DB.Path)
	return &cfg, nil
}

// envKey maps FITREMIND_NOTIFY_ON_START to notify.on_start: the first
// underscore after the prefix separates section from key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if s == "config" {
		return ""
	}
	return strings.Replace(s, "_", ".", 1)
}

func (c *Config) Validate() error {
	if c.DB.Path == "" {
		return fmt.Errorf("db.path is required")
	}
	if c.Notify.Seed < 0 {
		return fmt.Errorf("notify.seed must not be negative")
	}
	for i, t := range c.Notify.Templates {
		if err := notify.ValidateTemplate(t); err != nil {
			return fmt.Errorf("notify.templates[%d]: %w", i, err)
		}
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses log.level ("debug", "info", "warn", "error").
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", c.Log.Level, err)
	}
	return level, nil
}

func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}

	return path
}
