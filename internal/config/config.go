package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultVersion  = 1
	DefaultLogLevel = "info"

	// Default values for history and display configuration.
	DefaultTimestampFormat = "2006-01-02 15:04:05"
	DefaultPrecision       = -1

	// EnvConfig overrides the config file location.
	EnvConfig = "CALC_CONFIG"
	// EnvLogLevel overrides log_level.
	EnvLogLevel = "CALC_LOG_LEVEL"
	// EnvTimestamps overrides history.timestamps.
	EnvTimestamps = "CALC_TIMESTAMPS"
)

// Config defines user configuration stored in ~/.calc/config.json
// (or a .yaml file pointed to by CALC_CONFIG).
type Config struct {
	Version  int            `json:"version" yaml:"version"`
	LogLevel string         `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	History  *HistoryConfig `json:"history,omitempty" yaml:"history,omitempty"`
	Display  *DisplayConfig `json:"display,omitempty" yaml:"display,omitempty"`
}

// HistoryConfig holds history recording settings.
type HistoryConfig struct {
	// Timestamps controls whether entries are stamped with the wall clock (default false).
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`

	// TimestampFormat is a Go time layout (default "2006-01-02 15:04:05").
	TimestampFormat *string `json:"timestamp_format,omitempty" yaml:"timestamp_format,omitempty"`
}

// TimestampsEnabled returns whether entries carry timestamps (default false).
func (c *HistoryConfig) TimestampsEnabled() bool {
	if c == nil || c.Timestamps == nil {
		return false
	}
	return *c.Timestamps
}

// GetTimestampFormat returns the timestamp layout.
func (c *HistoryConfig) GetTimestampFormat() string {
	if c == nil || c.TimestampFormat == nil || *c.TimestampFormat == "" {
		return DefaultTimestampFormat
	}
	return *c.TimestampFormat
}

// DisplayConfig holds output settings.
type DisplayConfig struct {
	// Precision is the number of decimals printed (default -1 = shortest exact form).
	Precision *int `json:"precision,omitempty" yaml:"precision,omitempty"`

	// Color enables styled output (default true).
	Color *bool `json:"color,omitempty" yaml:"color,omitempty"`
}

// GetPrecision returns the display precision (default -1).
func (c *DisplayConfig) GetPrecision() int {
	if c == nil || c.Precision == nil {
		return DefaultPrecision
	}
	return *c.Precision
}

// ColorEnabled returns whether styled output is enabled (default true).
func (c *DisplayConfig) ColorEnabled() bool {
	if c == nil || c.Color == nil {
		return true
	}
	return *c.Color
}

// Validate checks that display values are within supported ranges.
func (c *DisplayConfig) Validate() error {
	if c == nil || c.Precision == nil {
		return nil
	}
	if *c.Precision < -1 || *c.Precision > 15 {
		return fmt.Errorf("precision must be between -1 and 15, got %d", *c.Precision)
	}
	return nil
}

// Validate checks that history values are usable.
func (c *HistoryConfig) Validate() error {
	if c == nil || c.TimestampFormat == nil {
		return nil
	}
	layout := *c.TimestampFormat
	if strings.TrimSpace(layout) == "" {
		return errors.New("timestamp_format must not be blank")
	}
	ref := time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)
	if ref.Format(layout) == layout {
		return fmt.Errorf("timestamp_format %q contains no time fields", layout)
	}
	return nil
}

// Default returns the default config.
func Default() Config {
	return Config{
		Version:  DefaultVersion,
		LogLevel: DefaultLogLevel,
	}
}

// DefaultPath returns the config path, honouring CALC_CONFIG.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect home directory: %w", err)
	}
	return filepath.Join(home, ".calc", "config.json"), nil
}

// Load reads config from disk and applies defaults for zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config not found: %w", err)
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parse(path, data)
}

// LoadOrDefault reads config from disk, returning defaults if the file doesn't exist.
// Environment overrides are applied in both cases.
func LoadOrDefault(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			if err := applyEnv(&cfg); err != nil {
				return Config{}, err
			}
			if err := cfg.Validate(); err != nil {
				return Config{}, err
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parse(path, data)
}

func parse(path string, data []byte) (Config, error) {
	var cfg Config
	if isYAML(path) {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	} else if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(&cfg)
	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Save writes a config to disk, creating the parent directory.
func Save(path string, cfg Config) error {
	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(cfg)
	} else {
		data, err = json.MarshalIndent(cfg, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// Validate ensures config values are within supported ranges.
func (c Config) Validate() error {
	if c.Version != DefaultVersion {
		return fmt.Errorf("unsupported config version: %d", c.Version)
	}
	switch c.LogLevel {
	case "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("log_level must be one of error, warn, info, debug; got %q", c.LogLevel)
	}
	if err := c.History.Validate(); err != nil {
		return fmt.Errorf("invalid history config: %w", err)
	}
	if err := c.Display.Validate(); err != nil {
		return fmt.Errorf("invalid display config: %w", err)
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = DefaultVersion
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
}

// Env vars override file values.
func applyEnv(cfg *Config) error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvTimestamps); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvTimestamps, err)
		}
		if cfg.History == nil {
			cfg.History = &HistoryConfig{}
		}
		cfg.History.Timestamps = &enabled
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
