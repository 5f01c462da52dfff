package translate

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/deepnoodle-ai/parley/cache"
	"github.com/deepnoodle-ai/parley/llm"
	"github.com/stretchr/testify/require"
)

// fakeProvider returns canned responses and records calls.
type fakeProvider struct {
	calls     int
	response  string
	err       error
	lastOpts  *llm.Config
	lastInput string
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Generate(ctx context.Context, messages []*llm.Message, opts ...llm.Option) (*llm.Response, error) {
	p.calls++
	config := &llm.Config{}
	config.Apply(opts...)
	p.lastOpts = config
	if len(messages) > 0 {
		p.lastInput = messages[len(messages)-1].Text()
	}
	if p.err != nil {
		return nil, p.err
	}
	return &llm.Response{
		ID:      fmt.Sprintf("resp-%d", p.calls),
		Role:    llm.Assistant,
		Message: *llm.NewAssistantMessage(p.response),
	}, nil
}

func TestTranslate(t *testing.T) {
	provider := &fakeProvider{response: "Hallo Welt"}
	translator := New(provider)

	result, err := translator.Translate(context.Background(), "Hello world", "German")
	require.NoError(t, err)
	require.Equal(t, "Hallo Welt", result.Output)
	require.Equal(t, "German", result.TargetLang)
	require.False(t, result.Cached)

	require.Equal(t, SystemPrompt, provider.lastOpts.SystemPrompt)
	require.Equal(t, "Translate the following text to German: Hello world", provider.lastInput)
	require.NotNil(t, provider.lastOpts.Temperature)
	require.Equal(t, 0.0, *provider.lastOpts.Temperature)
}

func TestTranslateEmptyInput(t *testing.T) {
	provider := &fakeProvider{response: "x"}
	translator := New(provider)

	_, err := translator.Translate(context.Background(), "   ", "German")
	require.Error(t, err)
	require.Equal(t, 0, provider.calls)

	_, err = translator.Translate(context.Background(), "hello", "")
	require.Error(t, err)
	require.Equal(t, 0, provider.calls)
}

func TestTranslateSourceLangPassthrough(t *testing.T) {
	provider := &fakeProvider{response: "should not be used"}
	translator := New(provider, WithSourceLang("English"))

	result, err := translator.Translate(context.Background(), "Hello", "english")
	require.NoError(t, err)
	require.Equal(t, "Hello", result.Output)
	require.Equal(t, 0, provider.calls)
}

func TestTranslateCaching(t *testing.T) {
	provider := &fakeProvider{response: "Bonjour"}
	translator := New(provider, WithCache(cache.NewInMemoryCache(0)))

	first, err := translator.Translate(context.Background(), "Hello", "French")
	require.NoError(t, err)
	require.False(t, first.Cached)
	require.Equal(t, 1, provider.calls)

	second, err := translator.Translate(context.Background(), "Hello", "French")
	require.NoError(t, err)
	require.True(t, second.Cached)
	require.Equal(t, "Bonjour", second.Output)
	require.Equal(t, 1, provider.calls)

	// Different target language misses the cache
	_, err = translator.Translate(context.Background(), "Hello", "German")
	require.NoError(t, err)
	require.Equal(t, 2, provider.calls)
}

func TestTranslateProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("boom")}
	translator := New(provider)

	_, err := translator.Translate(context.Background(), "Hello", "German")
	require.Error(t, err)
	require.Contains(t, err.Error(), "boom")
}
