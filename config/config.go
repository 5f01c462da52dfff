// Package config loads application configuration for the Parley apps.
package config

import (
	"time"
)

// Config holds the settings shared by both apps. Flags and environment
// variables override file values at the CLI layer.
type Config struct {
	// Addr is the listen address for the web UI.
	Addr string `yaml:"addr" json:"addr"`

	// Provider selects the LLM provider ("groq" or "google").
	Provider string `yaml:"provider" json:"provider"`

	// Model overrides the provider's default model.
	Model string `yaml:"model" json:"model"`

	// Temperature overrides the app's default temperature.
	Temperature *float64 `yaml:"temperature" json:"temperature"`

	// MaxTokens overrides the provider's default response budget.
	MaxTokens int `yaml:"max_tokens" json:"max_tokens"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Cache configures the translation cache (translator app only).
	Cache CacheConfig `yaml:"cache" json:"cache"`
}

// CacheConfig selects and configures the translation cache backend.
type CacheConfig struct {
	// Backend is "none", "memory", or "redis". Empty means none.
	Backend string `yaml:"backend" json:"backend"`

	// TTLSeconds bounds entry lifetime. Zero means no expiration.
	TTLSeconds int `yaml:"ttl_seconds" json:"ttl_seconds"`

	// RedisURL is the connection URL for the redis backend.
	RedisURL string `yaml:"redis_url" json:"redis_url"`

	// KeyPrefix namespaces redis keys.
	KeyPrefix string `yaml:"key_prefix" json:"key_prefix"`
}

// TTL returns the cache TTL as a duration.
func (c CacheConfig) TTL() time.Duration {
	if c.TTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.TTLSeconds) * time.Second
}

// ResolveTemperature returns the temperature for provider calls. A flag
// value of zero or above wins, then the config file value, then the app
// default. Pass a negative flagValue when the flag is unset.
func (c *Config) ResolveTemperature(flagValue, appDefault float64) float64 {
	if flagValue >= 0 {
		return flagValue
	}
	if c.Temperature != nil {
		return *c.Temperature
	}
	return appDefault
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Addr:     "localhost:8080",
		LogLevel: "warn",
	}
}
