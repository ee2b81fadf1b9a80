package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Catalog  CatalogConfig
	Cache    CacheConfig
	Matching MatchingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds catalog provider configuration
type CatalogConfig struct {
	Mode           string            `mapstructure:"mode"` // "simulated" or "hybrid"
	Seed           int64             `mapstructure:"seed"`
	StoreTimeout   time.Duration     `mapstructure:"store_timeout"`
	LiveBaseURLs   map[string]string `mapstructure:"live_base_urls"`
	APIKey         string            `mapstructure:"api_key"`
	RequestsPerSec float64           `mapstructure:"requests_per_sec"`
	Burst          int               `mapstructure:"burst"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Type     string        `mapstructure:"type"` // "memory" or "redis"
	RedisURL string        `mapstructure:"redis_url"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// MatchingConfig holds item matcher configuration
type MatchingConfig struct {
	SizeTolerancePct   float64 `mapstructure:"size_tolerance_pct"`
	EnableDebugLogging bool    `mapstructure:"enable_debug_logging"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/cartcompass/")

	v.SetEnvPrefix("CARTCOMPASS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults are enough
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	v.SetDefault("catalog.mode", "simulated")
	v.SetDefault("catalog.seed", 20260120)
	v.SetDefault("catalog.store_timeout", "10s")
	v.SetDefault("catalog.requests_per_sec", 2.0)
	v.SetDefault("catalog.burst", 5)
	v.SetDefault("catalog.api_key", "")

	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.redis_url", "")
	v.SetDefault("cache.ttl", "15m")

	v.SetDefault("matching.size_tolerance_pct", 0.25)
	v.SetDefault("matching.enable_debug_logging", false)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.Mode != "simulated" && config.Catalog.Mode != "hybrid" {
		return fmt.Errorf("catalog mode must be 'simulated' or 'hybrid', got: %s", config.Catalog.Mode)
	}

	if config.Catalog.StoreTimeout <= 0 {
		return fmt.Errorf("catalog store timeout must be positive, got: %s", config.Catalog.StoreTimeout)
	}

	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && config.Cache.RedisURL == "" {
		return fmt.Errorf("Redis URL is required when cache type is 'redis'")
	}

	if config.Matching.SizeTolerancePct <= 0 || config.Matching.SizeTolerancePct > 1 {
		return fmt.Errorf("size tolerance must be in (0, 1], got: %v", config.Matching.SizeTolerancePct)
	}

	return nil
}
