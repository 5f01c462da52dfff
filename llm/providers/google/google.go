// Package google implements the LLM interface against the Gemini API using
// the Google GenAI SDK.
package google

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/deepnoodle-ai/parley/llm"
	"github.com/deepnoodle-ai/parley/retry"
	"google.golang.org/genai"
)

const ProviderName = "google"

var (
	DefaultModel         = ModelGemini20Flash
	DefaultMaxTokens     = 4096
	DefaultMaxRetries    = 3
	DefaultRetryBaseWait = 1 * time.Second
)

var _ llm.LLM = &Provider{}

type Provider struct {
	client        *genai.Client
	apiKey        string
	model         string
	maxTokens     int
	maxRetries    int
	retryBaseWait time.Duration
	mutex         sync.Mutex
}

func New(opts ...Option) *Provider {
	var apiKey string
	if value := os.Getenv("GEMINI_API_KEY"); value != "" {
		apiKey = value
	} else if value := os.Getenv("GOOGLE_API_KEY"); value != "" {
		apiKey = value
	}
	p := &Provider{
		apiKey:        apiKey,
		model:         DefaultModel,
		maxTokens:     DefaultMaxTokens,
		maxRetries:    DefaultMaxRetries,
		retryBaseWait: DefaultRetryBaseWait,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) initClient(ctx context.Context) (*genai.Client, error) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.client != nil {
		return p.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  p.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google genai client: %v", err)
	}
	p.client = client
	return p.client, nil
}

func (p *Provider) Name() string {
	return ProviderName
}

func (p *Provider) Generate(ctx context.Context, messages []*llm.Message, opts ...llm.Option) (*llm.Response, error) {
	if _, err := p.initClient(ctx); err != nil {
		return nil, err
	}

	config := &llm.Config{}
	config.Apply(opts...)

	model := config.Model
	if model == "" {
		model = p.model
	}
	maxTokens := p.maxTokens
	if config.MaxTokens != nil {
		maxTokens = *config.MaxTokens
	}

	contents, err := messagesToContents(messages)
	if err != nil {
		return nil, err
	}
	genConfig := buildGenerateConfig(config, maxTokens)

	var result *llm.Response
	err = retry.Do(ctx, func() error {
		resp, err := p.client.Models.GenerateContent(ctx, model, contents, genConfig)
		if err != nil {
			return fmt.Errorf("error generating content: %w", wrapError(err))
		}
		var convErr error
		result, convErr = convertResponse(resp, model)
		if convErr != nil {
			return fmt.Errorf("error converting response: %w", convErr)
		}
		return nil
	}, retry.WithMaxRetries(p.maxRetries), retry.WithBaseWait(p.retryBaseWait))

	if err != nil {
		return nil, err
	}
	return result, nil
}
