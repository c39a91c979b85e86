// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/thatcatcamp/tintkit/internal/colorspace"
	"github.com/thatcatcamp/tintkit/internal/palette"
)

// EnvPrefix is prepended to every environment override, e.g.
// TINT_ENGINE_CONTRAST_TARGET for engine.contrast_target
const EnvPrefix = "TINT"

var v *viper.Viper

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults()

	// Environment overrides
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// DataDir is where the config file and theme library live by default
func DataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tintkit"
	}
	return filepath.Join(home, ".tintkit")
}

// setDefaults sets default configuration values
func setDefaults() {
	// Engine defaults
	v.SetDefault("engine.scale_steps", palette.DefaultScaleSteps)
	v.SetDefault("engine.gradient_stops", palette.DefaultGradientStops)
	v.SetDefault("engine.contrast_target", palette.DefaultContrastTarget)
	v.SetDefault("engine.background", "#ffffff")
	v.SetDefault("engine.status_hue_bias", 0.0)
	v.SetDefault("engine.harmony_rule", "triadic")

	// Server defaults
	v.SetDefault("server.http_port", "8080")
	v.SetDefault("server.suggest_rate_limit", 10) // requests per minute per IP
	v.SetDefault("server.hsts", false)            // only behind a TLS-terminating proxy
	v.SetDefault("server.trusted_proxies", []string{})

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", filepath.Join(DataDir(), "themes.db"))

	// Suggestion service defaults
	v.SetDefault("suggest.url", "") // empty disables suggestions
	v.SetDefault("suggest.timeout", "10s")

	// Share token defaults
	v.SetDefault("share.secret", "CHANGE_ME_IN_PRODUCTION_USE_ENV_VAR")
}

// EngineConfig builds a derivation config from the engine.* keys
func EngineConfig() (palette.Config, error) {
	cfg := palette.DefaultConfig()
	if v == nil {
		return cfg, nil
	}

	bg, err := colorspace.Parse(v.GetString("engine.background"))
	if err != nil {
		return cfg, fmt.Errorf("%w: engine.background: %v", palette.ErrInvalidConfig, err)
	}

	cfg.ScaleSteps = v.GetInt("engine.scale_steps")
	cfg.GradientStops = v.GetInt("engine.gradient_stops")
	cfg.ContrastTarget = v.GetFloat64("engine.contrast_target")
	cfg.Background = bg
	cfg.StatusHueBias = v.GetFloat64("engine.status_hue_bias")

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetFloat64 returns a config value as float64
func GetFloat64(key string) float64 {
	if v == nil {
		return 0
	}
	return v.GetFloat64(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetStringSlice returns a config value as a string slice; a plain
// string is split on whitespace
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
