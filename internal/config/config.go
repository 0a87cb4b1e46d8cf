// Package config loads the application configuration from an optional YAML
// file and CHATLINGO_* environment variables. The loaded value is returned to
// the caller and injected into constructors; nothing here is process-global.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DefaultBaseURL = "https://translate.chatlingo.dev"

type Config struct {
	APIKey        string        `mapstructure:"api_key"`
	BaseURL       string        `mapstructure:"base_url"`
	Timeout       time.Duration `mapstructure:"timeout"`
	MaxAttempts   int           `mapstructure:"max_attempts"`
	RetryDelay    time.Duration `mapstructure:"retry_delay"`
	MaxRetryDelay time.Duration `mapstructure:"max_retry_delay"`
}

// Load reads configuration from path (optional; empty means env/defaults only)
// and the environment. Environment variables use the CHATLINGO_ prefix, e.g.
// CHATLINGO_API_KEY.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	// Defaults also register the keys so AutomaticEnv can see them.
	v.SetDefault("api_key", "")
	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("max_attempts", 3)
	v.SetDefault("retry_delay", 500*time.Millisecond)
	v.SetDefault("max_retry_delay", 4*time.Second)

	v.SetEnvPrefix("chatlingo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("api_key is required (set it in the config file or CHATLINGO_API_KEY)")
	}
	if cfg.MaxAttempts < 1 {
		return Config{}, fmt.Errorf("max_attempts must be at least 1, got %d", cfg.MaxAttempts)
	}

	return cfg, nil
}
