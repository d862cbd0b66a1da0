// Package config provides configuration parsing for sysdash.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SYSDASH_"

// Config represents the sysdash configuration.
type Config struct {
	// Log holds log destination settings.
	Log LogConfig `yaml:"log"`

	// Display holds TUI rendering settings.
	Display DisplayConfig `yaml:"display"`

	// Simulation holds metric generator settings.
	Simulation SimulationConfig `yaml:"simulation"`

	// Health holds the thresholds behind the header health badge.
	Health HealthConfig `yaml:"health"`
}

// LogConfig holds log destination settings. The TUI owns the terminal, so
// logs always go to a file.
type LogConfig struct {
	// File is the path for log output.
	File string `yaml:"file" validate:"required"`
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// DisplayConfig holds TUI rendering settings.
type DisplayConfig struct {
	// Theme selects the color theme: "gradient", "ocean", or "mono".
	Theme string `yaml:"theme" validate:"oneof=gradient ocean mono"`
	// Protocol selects how chart images reach the terminal: "auto",
	// "kitty", "iterm2", "unicode", or "none" (sparklines only).
	Protocol string `yaml:"protocol" validate:"oneof=auto kitty iterm2 unicode none"`
	// ChartWidth is the chart surface width in pixels.
	ChartWidth int `yaml:"chart_width" validate:"min=20,max=2000"`
	// ChartHeight is the chart surface height in pixels.
	ChartHeight int `yaml:"chart_height" validate:"min=10,max=1000"`
	// Mouse enables mouse focus on panels.
	Mouse bool `yaml:"mouse"`
}

// SimulationConfig holds metric generator settings.
type SimulationConfig struct {
	// Seed makes the simulated readings reproducible. Zero seeds from the clock.
	Seed uint64 `yaml:"seed"`
}

// ThresholdConfig is a warning/critical percentage pair. A reading strictly
// above a threshold reaches that level.
type ThresholdConfig struct {
	Warning  float64 `yaml:"warning" validate:"min=0,max=100"`
	Critical float64 `yaml:"critical" validate:"min=0,max=100,gtfield=Warning"`
}

// HealthConfig holds per-resource thresholds.
type HealthConfig struct {
	CPU  ThresholdConfig `yaml:"cpu"`
	RAM  ThresholdConfig `yaml:"ram"`
	Disk ThresholdConfig `yaml:"disk"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()

	return &Config{
		Log: LogConfig{
			File:  filepath.Join(home, ".local", "log", "sysdash.log"),
			Level: "info",
		},
		Display: DisplayConfig{
			Theme:       "gradient",
			Protocol:    "auto",
			ChartWidth:  300,
			ChartHeight: 60,
			Mouse:       true,
		},
		Health: HealthConfig{
			CPU:  ThresholdConfig{Warning: 70, Critical: 90},
			RAM:  ThresholdConfig{Warning: 80, Critical: 95},
			Disk: ThresholdConfig{Warning: 85, Critical: 95},
		},
	}
}

// DefaultPath returns ~/.config/sysdash/config.yaml.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "sysdash", "config.yaml")
}

// ResolvePath picks the config file: the explicit path if given, then
// $SYSDASH_CONFIG, then DefaultPath.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return p
	}
	return DefaultPath()
}

// Load reads .env files (default ".env"), the YAML file at path, and
// SYSDASH_* overrides, then validates the result.
func Load(path string, envFiles ...string) (*Config, error) {
	if err := loadDotenv(envFiles...); err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// loadDotenv loads env files without overriding variables already set.
// A missing file is not an error.
func loadDotenv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// LoadConfig loads configuration from a YAML file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// ApplyEnv overlays SYSDASH_* variables read through getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := getenv(EnvPrefix + "LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := getenv(EnvPrefix + "THEME"); v != "" {
		c.Display.Theme = v
	}
	if v := getenv(EnvPrefix + "PROTOCOL"); v != "" {
		c.Display.Protocol = v
	}
	if v := getenv(EnvPrefix + "SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		c.Simulation.Seed = seed
	}
	return nil
}

var validate = newValidator()

// newValidator reports fields by their yaml key so errors read like the file.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.Split(f.Tag.Get("yaml"), ",")[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the configuration for required fields and logical consistency.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return c.validateAspect()
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	// Report the first failure, the way a hand-written check would.
	fe := fieldErrs[0]
	key := yamlKey(fe.Namespace())
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", key)
	case "oneof":
		return fmt.Errorf("%s must be one of [%s], got %q", key, fe.Param(), fe.Value())
	case "min":
		return fmt.Errorf("%s must be at least %s, got %v", key, fe.Param(), fe.Value())
	case "max":
		return fmt.Errorf("%s must be at most %s, got %v", key, fe.Param(), fe.Value())
	case "gtfield":
		return fmt.Errorf("%s must be greater than the warning threshold, got %v", key, fe.Value())
	default:
		return fmt.Errorf("%s is invalid", key)
	}
}

// validateAspect rejects chart surfaces taller than they are wide.
func (c *Config) validateAspect() error {
	if c.Display.ChartHeight > c.Display.ChartWidth {
		return fmt.Errorf("display.chart_height (%d) must not exceed display.chart_width (%d)",
			c.Display.ChartHeight, c.Display.ChartWidth)
	}
	return nil
}

// yamlKey drops the root struct name from a validator namespace.
func yamlKey(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

// SlogLevel maps Log.Level onto a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ErrConfigExists is returned by WriteDefault when the target file is
// already present.
var ErrConfigExists = errors.New("config file already exists")

// WriteDefault writes DefaultConfig to path without replacing an existing
// file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := SaveConfig(DefaultConfig(), path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// SaveConfig saves configuration to a YAML file.
func SaveConfig(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
