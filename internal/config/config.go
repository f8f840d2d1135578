package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Source kinds.
const (
	SourceNone   = "none"
	SourceYAML   = "yaml"
	SourceSQLite = "sqlite"
)

// Config defines registry configuration.
type Config struct {
	Source  SourceConfig  `yaml:"source"`
	Clock   ClockConfig   `yaml:"clock"`
	Metrics MetricsConfig `yaml:"metrics"`
	Log     LogConfig     `yaml:"log"`
}

// SourceConfig selects where the registry is bulk-loaded from.
type SourceConfig struct {
	Kind string `yaml:"kind"`
	Path string `yaml:"path"`
}

// ClockConfig pins "today" for age computation. Empty means the wall clock.
type ClockConfig struct {
	Today string `yaml:"today"`
}

// MetricsConfig names a Prometheus textfile to write on exit. Empty disables it.
type MetricsConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Source: SourceConfig{
			Kind: SourceNone,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("CITIZENS_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if kind := os.Getenv("CITIZENS_SOURCE_KIND"); kind != "" {
		cfg.Source.Kind = kind
	}
	if path := os.Getenv("CITIZENS_SOURCE_PATH"); path != "" {
		cfg.Source.Path = path
	}
	if today := os.Getenv("CITIZENS_TODAY"); today != "" {
		cfg.Clock.Today = today
	}
	if path := os.Getenv("CITIZENS_METRICS_PATH"); path != "" {
		cfg.Metrics.Path = path
	}
	if level := os.Getenv("CITIZENS_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Today returns the pinned date, if one is configured.
func (c Config) Today() (time.Time, bool, error) {
	if c.Clock.Today == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.DateOnly, c.Clock.Today)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("invalid clock.today: %w", err)
	}
	return t, true, nil
}

func (c Config) validate() error {
	switch c.Source.Kind {
	case SourceNone:
	case SourceYAML, SourceSQLite:
		if c.Source.Path == "" {
			return fmt.Errorf("source.path required for %s source", c.Source.Kind)
		}
	default:
		return fmt.Errorf("invalid source.kind %q", c.Source.Kind)
	}
	if _, _, err := c.Today(); err != nil {
		return err
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
