// Package groq implements the LLM interface against the Groq API, which
// exposes OpenAI-compatible chat completions.
package groq

import (
	"context"
	"fmt"
	"os"

	"github.com/deepnoodle-ai/parley/llm"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const ProviderName = "groq"

var (
	DefaultModel      = ModelLlama38B
	DefaultEndpoint   = "https://api.groq.com/openai/v1"
	DefaultMaxTokens  = 4096
	DefaultMaxRetries = 3
)

var _ llm.LLM = &Provider{}

type Provider struct {
	model     string
	maxTokens int
	options   []option.RequestOption
	client    openai.Client
}

func New(opts ...Option) *Provider {
	p := &Provider{}
	p.options = append(p.options,
		option.WithAPIKey(os.Getenv("GROQ_API_KEY")),
		option.WithBaseURL(DefaultEndpoint),
		option.WithMaxRetries(DefaultMaxRetries),
	)
	for _, opt := range opts {
		opt(p)
	}
	if p.model == "" {
		p.model = DefaultModel
	}
	if p.maxTokens == 0 {
		p.maxTokens = DefaultMaxTokens
	}
	p.client = openai.NewClient(p.options...)
	return p
}

func (p *Provider) Name() string {
	return fmt.Sprintf("%s-%s", ProviderName, p.model)
}

func (p *Provider) Generate(ctx context.Context, messages []*llm.Message, opts ...llm.Option) (*llm.Response, error) {
	config := &llm.Config{}
	config.Apply(opts...)

	if err := validateMessages(messages); err != nil {
		return nil, err
	}

	model := config.Model
	if model == "" {
		model = p.model
	}
	maxTokens := p.maxTokens
	if config.MaxTokens != nil {
		maxTokens = *config.MaxTokens
	}

	params := openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(model),
		Messages:  convertMessages(config.SystemPrompt, messages),
		MaxTokens: openai.Int(int64(maxTokens)),
	}
	if config.Temperature != nil {
		params.Temperature = openai.Float(*config.Temperature)
	}

	completion, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("error generating completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("empty response from groq")
	}
	choice := completion.Choices[0]

	return &llm.Response{
		ID:         completion.ID,
		Model:      completion.Model,
		StopReason: string(choice.FinishReason),
		Role:       llm.Assistant,
		Message:    *llm.NewAssistantMessage(choice.Message.Content),
		Usage: llm.Usage{
			InputTokens:  int(completion.Usage.PromptTokens),
			OutputTokens: int(completion.Usage.CompletionTokens),
		},
	}, nil
}

func validateMessages(messages []*llm.Message) error {
	if len(messages) == 0 {
		return fmt.Errorf("no messages provided")
	}
	for i, message := range messages {
		if len(message.Content) == 0 {
			return fmt.Errorf("empty message detected (index %d)", i)
		}
	}
	return nil
}

func convertMessages(systemPrompt string, messages []*llm.Message) []openai.ChatCompletionMessageParamUnion {
	var msgs []openai.ChatCompletionMessageParamUnion
	if systemPrompt != "" {
		msgs = append(msgs, openai.SystemMessage(systemPrompt))
	}
	for _, message := range messages {
		switch message.Role {
		case llm.System:
			msgs = append(msgs, openai.SystemMessage(message.CompleteText()))
		case llm.Assistant:
			msgs = append(msgs, openai.AssistantMessage(message.CompleteText()))
		default:
			msgs = append(msgs, openai.UserMessage(message.CompleteText()))
		}
	}
	return msgs
}
