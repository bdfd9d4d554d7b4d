// Package config loads headlink settings from an optional YAML file and
// HEADLINK_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultUserAgent mimics a desktop browser; some sites refuse requests
// without one.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Config is the full runtime configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Fetch  FetchConfig  `mapstructure:"fetch"`
	Cache  CacheConfig  `mapstructure:"cache"`
	Server ServerConfig `mapstructure:"server"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// FetchConfig controls title fetching.
type FetchConfig struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	UserAgent   string        `mapstructure:"user_agent"`
	Retries     int           `mapstructure:"retries"`
	Concurrency int           `mapstructure:"concurrency"`
}

// CacheConfig sizes the fetched-title cache used by the HTTP service.
type CacheConfig struct {
	Size int `mapstructure:"size"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SetDefaults registers a default for every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("fetch.timeout", 5*time.Second)
	v.SetDefault("fetch.user_agent", DefaultUserAgent)
	v.SetDefault("fetch.retries", 0)
	v.SetDefault("fetch.concurrency", 4)
	v.SetDefault("cache.size", 512)
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 3000)
}

// Load reads configFile (or ./headlink.yaml when empty and present) and the
// environment into a Config. A missing default config file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("headlink")
	}
	v.SetConfigType("yaml")

	v.SetEnvPrefix("HEADLINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive (got %s)", c.Fetch.Timeout)
	}
	if c.Fetch.Retries < 0 {
		return fmt.Errorf("fetch.retries must not be negative (got %d)", c.Fetch.Retries)
	}
	if c.Fetch.Concurrency < 1 {
		return fmt.Errorf("fetch.concurrency must be at least 1 (got %d)", c.Fetch.Concurrency)
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}
