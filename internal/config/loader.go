package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. BREAKOUT_BALL_SPEED.
const EnvPrefix = "BREAKOUT_"

// Format is a configuration file format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatForPath picks the decoder from the file extension. YAML is the default.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Decode parses data over cfg, so keys missing from data keep their current value.
func Decode(data []byte, format Format, cfg *BreakoutConfig) error {
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("toml decode: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("yaml unmarshal: %w", err)
		}
	}
	return nil
}

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.{yaml,toml} ->
// ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := Decode(data, FormatForPath(customPath), &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	for _, name := range []string{"breakout.yaml", "breakout.toml"} {
		userCfgPath := userConfigPath(name)
		if userCfgPath == "" {
			break
		}
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultBreakoutConfig()
			if err := Decode(data, FormatForPath(name), &candidate); err == nil {
				return candidate, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		candidate := DefaultBreakoutConfig()
		if err := Decode(data, FormatYAML, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := Decode(defaultBreakoutYAML, FormatYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any BREAKOUT_* environment variables that are set.
func ApplyEnv(cfg *BreakoutConfig) error {
	return ApplyEnvFrom(cfg, nil)
}

// ApplyEnvFrom is ApplyEnv with an explicit environment. A nil map reads the
// process environment.
func ApplyEnvFrom(cfg *BreakoutConfig, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load resolves the full configuration for a game session: file lookup,
// difficulty preset, environment overrides, then validation.
func Load(customPath, preset string) (BreakoutConfig, error) {
	cfg, err := LoadBreakout(customPath)
	if err != nil {
		return cfg, err
	}

	p, err := ParsePreset(preset)
	if err != nil {
		return cfg, err
	}
	ApplyBreakoutPreset(&cfg, p)

	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}
