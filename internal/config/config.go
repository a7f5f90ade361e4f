// Package config loads tool settings from defaults, an optional config
// file, and environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/JoeyWangTW/model-lookup/internal/cache"
)

// DefaultEndpoint is the public OpenRouter models listing.
const DefaultEndpoint = "https://openrouter.ai/api/v1/models"

// Config holds all settings for the lookup tool.
type Config struct {
	Endpoint    string `mapstructure:"endpoint"`
	CachePath   string `mapstructure:"cache_path"`
	CacheTTL    string `mapstructure:"cache_ttl"`
	HTTPTimeout string `mapstructure:"http_timeout"`
	MaxResults  int    `mapstructure:"max_results"`
	NoCache     bool   `mapstructure:"no_cache"`
	APIKey      string `mapstructure:"api_key"`
	LogLevel    string `mapstructure:"log_level"`
}

// Load reads configuration from file, environment, and defaults.
func Load(cfgFile string) (*Config, error) {
	// A local .env is optional; ignore a missing one.
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("endpoint", DefaultEndpoint)
	v.SetDefault("cache_path", cache.DefaultPath())
	v.SetDefault("cache_ttl", "1h")
	v.SetDefault("http_timeout", "10s")
	v.SetDefault("max_results", 8)
	v.SetDefault("no_cache", false)
	v.SetDefault("api_key", "")
	v.SetDefault("log_level", "info")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/model-lookup")
	}

	// Environment variables
	v.SetEnvPrefix("MODEL_LOOKUP")
	v.AutomaticEnv()

	// The catalog works unauthenticated; a key only raises rate limits.
	_ = v.BindEnv("api_key", "OPENROUTER_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// TTL returns the cache freshness window, defaulting to one hour on a
// malformed value.
func (c *Config) TTL() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil {
		return time.Hour
	}
	return d
}

// Timeout returns the request timeout, defaulting to ten seconds on a
// malformed value.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.HTTPTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}
