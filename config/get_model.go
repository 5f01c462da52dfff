package config

import (
	"fmt"

	"github.com/deepnoodle-ai/parley/cache"
	"github.com/deepnoodle-ai/parley/llm"
	"github.com/deepnoodle-ai/parley/llm/providers/google"
	"github.com/deepnoodle-ai/parley/llm/providers/groq"
)

// GetModel returns an initialized provider for the given configuration. An
// empty model name selects the provider's default; a positive MaxTokens
// overrides the provider's response budget.
func GetModel(cfg *Config) (llm.LLM, error) {
	switch cfg.Provider {
	case "groq":
		opts := []groq.Option{}
		if cfg.Model != "" {
			opts = append(opts, groq.WithModel(cfg.Model))
		}
		if cfg.MaxTokens > 0 {
			opts = append(opts, groq.WithMaxTokens(cfg.MaxTokens))
		}
		return groq.New(opts...), nil

	case "google":
		opts := []google.Option{}
		if cfg.Model != "" {
			opts = append(opts, google.WithModel(cfg.Model))
		}
		if cfg.MaxTokens > 0 {
			opts = append(opts, google.WithMaxTokens(cfg.MaxTokens))
		}
		return google.New(opts...), nil

	default:
		return nil, fmt.Errorf("unsupported provider: %q", cfg.Provider)
	}
}

// GetCache returns the cache selected by the given configuration, or nil
// when caching is disabled.
func GetCache(cfg CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "", "none":
		return nil, nil
	case "memory":
		return cache.NewInMemoryCache(cfg.TTL()), nil
	case "redis":
		return cache.NewRedisCache(cache.RedisConfig{
			URL:       cfg.RedisURL,
			TTL:       cfg.TTL(),
			KeyPrefix: cfg.KeyPrefix,
		})
	default:
		return nil, fmt.Errorf("unsupported cache backend: %q", cfg.Backend)
	}
}
