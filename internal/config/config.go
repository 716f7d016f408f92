// Package config loads server settings from defaults, an optional YAML file
// and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	SessionStoreMemory = "memory"
	SessionStoreRedis  = "redis"
)

type Config struct {
	Port        string `yaml:"port"`
	LogLevel    string `yaml:"log_level"`
	Development bool   `yaml:"development"`

	Cache     CacheConfig     `yaml:"cache"`
	Redis     RedisConfig     `yaml:"redis"`
	Session   SessionConfig   `yaml:"session"`
	Latency   LatencyConfig   `yaml:"latency"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`

	SearchTimeout  time.Duration `yaml:"search_timeout"`
	MetricsEnabled bool          `yaml:"metrics_enabled"`
}

type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type SessionConfig struct {
	Store string        `yaml:"store"`
	TTL   time.Duration `yaml:"ttl"`
}

// LatencyConfig holds the simulated backend delays.
type LatencyConfig struct {
	Search  time.Duration `yaml:"search"`
	Details time.Duration `yaml:"details"`
	Payment time.Duration `yaml:"payment"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

func Default() *Config {
	return &Config{
		Port:     "8080",
		LogLevel: "info",
		Cache: CacheConfig{
			Enabled: false,
			TTL:     5 * time.Minute,
		},
		Redis: RedisConfig{
			Host: "localhost",
			Port: "6379",
		},
		Session: SessionConfig{
			Store: SessionStoreMemory,
			TTL:   30 * time.Minute,
		},
		Latency: LatencyConfig{
			Search:  1500 * time.Millisecond,
			Details: 800 * time.Millisecond,
			Payment: 2 * time.Second,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 10,
			Burst:             20,
		},
		SearchTimeout:  5 * time.Second,
		MetricsEnabled: true,
	}
}

// Load reads path when it is non-empty and exists, then applies environment
// overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	c.Port = getEnv("PORT", c.Port)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Development = getEnvBool("DEVELOPMENT", c.Development)

	c.Cache.Enabled = getEnvBool("CACHE_ENABLED", c.Cache.Enabled)
	c.Cache.TTL = getEnvDuration("CACHE_TTL", c.Cache.TTL)

	c.Redis.Host = getEnv("REDIS_HOST", c.Redis.Host)
	c.Redis.Port = getEnv("REDIS_PORT", c.Redis.Port)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Redis.DB = getEnvInt("REDIS_DB", c.Redis.DB)

	c.Session.Store = getEnv("SESSION_STORE", c.Session.Store)
	c.Session.TTL = getEnvDuration("SESSION_TTL", c.Session.TTL)

	c.Latency.Search = getEnvDuration("SEARCH_LATENCY", c.Latency.Search)
	c.Latency.Details = getEnvDuration("DETAILS_LATENCY", c.Latency.Details)
	c.Latency.Payment = getEnvDuration("PAYMENT_LATENCY", c.Latency.Payment)
	c.SearchTimeout = getEnvDuration("SEARCH_TIMEOUT", c.SearchTimeout)

	c.RateLimit.RequestsPerSecond = getEnvFloat("RATE_LIMIT_RPS", c.RateLimit.RequestsPerSecond)
	c.RateLimit.Burst = getEnvInt("RATE_LIMIT_BURST", c.RateLimit.Burst)

	c.MetricsEnabled = getEnvBool("METRICS_ENABLED", c.MetricsEnabled)
}

func (c *Config) Validate() error {
	switch c.Session.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return fmt.Errorf("unknown session store %q", c.Session.Store)
	}
	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("rate limit must be positive")
	}
	if c.Port == "" {
		return errors.New("port is required")
	}
	return nil
}

// NeedsRedis reports whether any component is backed by Redis.
func (c *Config) NeedsRedis() bool {
	return c.Cache.Enabled || c.Session.Store == SessionStoreRedis
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
