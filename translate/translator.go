// Package translate implements the translation engine behind the translator
// app: prompt construction, an optional cache, and a session history.
package translate

import (
	"context"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/parley/cache"
	"github.com/deepnoodle-ai/parley/llm"
	"github.com/deepnoodle-ai/parley/log"
)

// SystemPrompt instructs the model to return translated text only.
const SystemPrompt = "You are a helpful and highly accurate language translator. " +
	"Your sole purpose is to translate the provided text from any language to the target language. " +
	"Provide only the translated text, do not add any extra explanations or conversational filler. " +
	"If the source language is the same as the target language, simply return the input text as is."

// Translator performs single translations through an LLM provider.
type Translator struct {
	provider    llm.LLM
	cache       cache.Cache
	sourceLang  string
	temperature float64
	logger      log.Logger
}

// Option is a functional option for configuring the Translator.
type Option func(*Translator)

// WithCache sets the translation cache.
func WithCache(c cache.Cache) Option {
	return func(t *Translator) {
		t.cache = c
	}
}

// WithSourceLang sets the assumed source language, used only to bypass
// translation when the target matches it.
func WithSourceLang(lang string) Option {
	return func(t *Translator) {
		t.sourceLang = lang
	}
}

// WithTemperature sets the sampling temperature. Translation defaults to 0
// for deterministic output.
func WithTemperature(temperature float64) Option {
	return func(t *Translator) {
		t.temperature = temperature
	}
}

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(t *Translator) {
		t.logger = logger
	}
}

// New creates a Translator backed by the given provider.
func New(provider llm.LLM, opts ...Option) *Translator {
	t := &Translator{
		provider: provider,
		logger:   log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Result is the outcome of a single translation.
type Result struct {
	Input      string
	Output     string
	TargetLang string
	Cached     bool
}

// Translate translates text into the target language. Empty input is an
// error. Translating into the source language returns the input unchanged
// without a provider call.
func (t *Translator) Translate(ctx context.Context, text, targetLang string) (*Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("no text provided")
	}
	if targetLang == "" {
		return nil, fmt.Errorf("no target language provided")
	}

	if t.sourceLang != "" && strings.EqualFold(t.sourceLang, targetLang) {
		return &Result{Input: text, Output: text, TargetLang: targetLang}, nil
	}

	key := cache.Key(text, targetLang)
	if t.cache != nil {
		if cached, ok := t.cache.Get(key); ok {
			t.logger.Debug("translation cache hit", "target_lang", targetLang)
			return &Result{Input: text, Output: cached, TargetLang: targetLang, Cached: true}, nil
		}
	}

	prompt := fmt.Sprintf("Translate the following text to %s: %s", targetLang, text)
	response, err := t.provider.Generate(ctx,
		llm.NewSingleUserMessage(prompt),
		llm.WithSystemPrompt(SystemPrompt),
		llm.WithTemperature(t.temperature),
	)
	if err != nil {
		return nil, fmt.Errorf("translation failed: %w", err)
	}
	output := strings.TrimSpace(response.Text())
	if output == "" {
		return nil, fmt.Errorf("empty translation from provider %s", t.provider.Name())
	}

	if t.cache != nil {
		// Cache set errors degrade to provider calls next time
		_ = t.cache.Set(key, output)
	}

	t.logger.Info("translated text",
		"target_lang", targetLang,
		"provider", t.provider.Name(),
		"input_tokens", response.Usage.InputTokens,
		"output_tokens", response.Usage.OutputTokens,
	)
	return &Result{Input: text, Output: output, TargetLang: targetLang}, nil
}
