// Package config provides configuration management for flakesmith using
// Viper for flexible loading from files, environment variables, and
// command-line flags.
//
// Configuration is read from .flakesmith.yml with FLAKESMITH_ prefixed
// environment variable overrides; flags bound by the commands take
// precedence over both.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the tool's own configuration. It configures the commands,
// not the generated flakes.
type Config struct {
	Build BuildConfig `yaml:"build" mapstructure:"build"`
	Watch WatchConfig `yaml:"watch" mapstructure:"watch"`
	Log   LogConfig   `yaml:"log" mapstructure:"log"`
}

// BuildConfig configures the build command.
type BuildConfig struct {
	// Script is the default flake script path used when the command is
	// invoked without an argument.
	Script string `yaml:"script" mapstructure:"script"`
	// Output overrides the derived output path.
	Output string `yaml:"output" mapstructure:"output"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	// DebounceMS collapses bursts of filesystem events into one rebuild.
	DebounceMS int `yaml:"debounce_ms" mapstructure:"debounce_ms"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load builds a Config from viper's current state and applies defaults.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if config.Build.Script == "" {
		config.Build.Script = viper.GetString("build.script")
	}
	if config.Watch.DebounceMS <= 0 {
		config.Watch.DebounceMS = 300
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}

	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// validate rejects configuration values that would produce surprising
// file operations later.
func validate(c *Config) error {
	for name, path := range map[string]string{
		"build.script": c.Build.Script,
		"build.output": c.Build.Output,
	} {
		if err := validatePath(path); err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log.level %q (expected debug, info, warn or error)", c.Log.Level)
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log.format %q (expected text or json)", c.Log.Format)
	}

	return nil
}

func validatePath(path string) error {
	if path == "" {
		return nil
	}
	if strings.ContainsAny(path, "\x00\n\r") {
		return fmt.Errorf("path contains control characters")
	}
	return nil
}
