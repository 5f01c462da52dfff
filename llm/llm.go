// Package llm defines the message model and provider interface used by the
// Parley applications to talk to hosted language models.
package llm

import (
	"context"
	"net/http"
)

// LLM is implemented by each model provider. A provider accepts an ordered
// conversation and returns a single response. Streaming delivery is
// intentionally not part of this interface.
type LLM interface {
	// Name identifies the provider and configured model.
	Name() string

	// Generate a response from the LLM by passing messages.
	Generate(ctx context.Context, messages []*Message, opts ...Option) (*Response, error)
}

// Option is a function that configures LLM calls.
type Option func(*Config)

// Config holds configuration parameters for LLM generation.
type Config struct {
	Model        string
	SystemPrompt string
	MaxTokens    *int
	Temperature  *float64
	Client       *http.Client
}

// Apply applies the given options to the config.
func (c *Config) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// WithModel sets the LLM model for the generation.
func WithModel(model string) Option {
	return func(config *Config) {
		config.Model = model
	}
}

// WithSystemPrompt sets the system prompt.
func WithSystemPrompt(systemPrompt string) Option {
	return func(config *Config) {
		config.SystemPrompt = systemPrompt
	}
}

// WithMaxTokens sets the max tokens.
func WithMaxTokens(maxTokens int) Option {
	return func(config *Config) {
		config.MaxTokens = &maxTokens
	}
}

// WithTemperature sets the temperature.
func WithTemperature(temperature float64) Option {
	return func(config *Config) {
		config.Temperature = &temperature
	}
}

// WithClient sets the HTTP client.
func WithClient(client *http.Client) Option {
	return func(config *Config) {
		config.Client = client
	}
}
