// Package config provides configuration management for the unitcalc CLI.
// Configuration is loaded from a YAML file with viper-managed defaults and
// environment overrides, the same shape as the teacher's
// cmd/calcmark/config, with TOML's embedded-defaults mechanism swapped for
// viper.SetDefault + viper.Unmarshal. gopkg.in/yaml.v3 is used only to
// marshal the default file in WriteDefault.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/calcmark/unitcalc/unitcat"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure for the unitcalc CLI.
type Config struct {
	// DefaultDegree replaces a bare deg/degree/degrees at lex time.
	DefaultDegree string `mapstructure:"default_degree" yaml:"default_degree"`

	// AllowTrailingOperators drops one dangling trailing operator, for
	// live-typing callers (the REPL).
	AllowTrailingOperators bool `mapstructure:"allow_trailing_operators" yaml:"allow_trailing_operators"`

	// Precision is loaded and written by `config init` (default 16) but is
	// not applied to any computation: decimal.DivisionPrecision keeps the
	// library default.
	Precision int `mapstructure:"precision" yaml:"precision"`

	// Verbose turns on per-stage timing in eval's Result.
	Verbose bool `mapstructure:"verbose" yaml:"verbose"`
}

// DegreeUnit resolves DefaultDegree to a unitcat.Unit, defaulting to
// Celsius if the configured word isn't recognized.
func (c *Config) DegreeUnit() unitcat.Unit {
	switch c.DefaultDegree {
	case "fahrenheit":
		return unitcat.Fahrenheit
	case "kelvin":
		return unitcat.Kelvin
	default:
		return unitcat.Celsius
	}
}

var (
	cfg     *Config
	once    sync.Once
	loadErr error
)

// Load initializes configuration from defaults, ~/.config/unitcalc/config.yaml,
// and UNITCALC_-prefixed environment variables. Safe to call multiple
// times; only loads once.
func Load() (*Config, error) {
	once.Do(func() {
		cfg, loadErr = load()
	})
	return cfg, loadErr
}

// Get returns the loaded configuration. Panics if Load() hasn't been
// called or failed.
func Get() *Config {
	if cfg == nil {
		panic("config.Load() must be called before config.Get()")
	}
	return cfg
}

func load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("config")

	v.SetDefault("default_degree", "celsius")
	v.SetDefault("allow_trailing_operators", false)
	v.SetDefault("precision", 16)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("unitcalc")
	v.AutomaticEnv()

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		xdgDir := filepath.Join(home, ".config", "unitcalc")
		v.AddConfigPath(xdgDir)
		if _, statErr := os.Stat(filepath.Join(xdgDir, "config.yaml")); statErr == nil {
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Reload forces a fresh config load. Use for testing only.
func Reload() (*Config, error) {
	once = sync.Once{}
	cfg = nil
	loadErr = nil
	return Load()
}

// WriteDefault writes a default config.yaml to path, for the
// `unitcalc config init` subcommand. The fields written are exactly
// Config's own defaults, so a fresh install's config file documents itself.
func WriteDefault(path string) error {
	defaults := Config{
		DefaultDegree:          "celsius",
		AllowTrailingOperators: false,
		Precision:              16,
		Verbose:                false,
	}
	out, err := yaml.Marshal(defaults)
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
