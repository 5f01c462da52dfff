package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/deepnoodle-ai/parley/llm"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	calls          int
	response       string
	err            error
	lastTranscript []*llm.Message
	lastConfig     *llm.Config
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Generate(ctx context.Context, messages []*llm.Message, opts ...llm.Option) (*llm.Response, error) {
	p.calls++
	p.lastTranscript = messages
	config := &llm.Config{}
	config.Apply(opts...)
	p.lastConfig = config
	if p.err != nil {
		return nil, p.err
	}
	return &llm.Response{
		Role:    llm.Assistant,
		Message: *llm.NewAssistantMessage(p.response),
	}, nil
}

func TestAsk(t *testing.T) {
	provider := &fakeProvider{response: "It is Saturday."}
	session := NewSession(provider)

	reply, err := session.Ask(context.Background(), "What day is it?")
	require.NoError(t, err)
	require.Equal(t, "It is Saturday.", reply)

	messages := session.Messages()
	require.Len(t, messages, 2)
	require.Equal(t, llm.User, messages[0].Role)
	require.Equal(t, "What day is it?", messages[0].Text())
	require.Equal(t, llm.Assistant, messages[1].Role)

	// The transcript ends with the question exactly once
	require.Len(t, provider.lastTranscript, 1)
	require.Equal(t, "What day is it?", provider.lastTranscript[0].Text())
}

func TestAskMultiTurnTranscript(t *testing.T) {
	provider := &fakeProvider{response: "reply"}
	session := NewSession(provider)

	_, err := session.Ask(context.Background(), "first")
	require.NoError(t, err)
	_, err = session.Ask(context.Background(), "second")
	require.NoError(t, err)

	// Second call sees the full conversation plus the new question
	require.Len(t, provider.lastTranscript, 3)
	require.Equal(t, "first", provider.lastTranscript[0].Text())
	require.Equal(t, llm.Assistant, provider.lastTranscript[1].Role)
	require.Equal(t, "second", provider.lastTranscript[2].Text())
}

func TestAskEmptyQuestion(t *testing.T) {
	provider := &fakeProvider{response: "x"}
	session := NewSession(provider)

	_, err := session.Ask(context.Background(), "   ")
	require.Error(t, err)
	require.Equal(t, 0, provider.calls)
	require.Empty(t, session.Messages())
}

func TestAskProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("boom")}
	session := NewSession(provider)

	_, err := session.Ask(context.Background(), "hello")
	require.Error(t, err)

	// The question stays in the log; no assistant reply is appended
	messages := session.Messages()
	require.Len(t, messages, 1)
	require.Equal(t, llm.User, messages[0].Role)
}

func TestSystemPromptIncludesDate(t *testing.T) {
	provider := &fakeProvider{response: "x"}
	session := NewSession(provider, WithClock(func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}))

	prompt := session.SystemPrompt()
	require.Contains(t, prompt, "Current date is 2025-06-15.")

	_, err := session.Ask(context.Background(), "hi")
	require.NoError(t, err)
	require.Equal(t, prompt, provider.lastConfig.SystemPrompt)
}

func TestTemperature(t *testing.T) {
	provider := &fakeProvider{response: "x"}
	session := NewSession(provider)
	require.Equal(t, DefaultTemperature, session.Temperature())

	session.SetTemperature(0.2)
	require.Equal(t, 0.2, session.Temperature())

	session.SetTemperature(1.7)
	require.Equal(t, 1.0, session.Temperature())

	session.SetTemperature(-0.5)
	require.Equal(t, 0.0, session.Temperature())

	session.SetTemperature(0.4)
	_, err := session.Ask(context.Background(), "hi")
	require.NoError(t, err)
	require.NotNil(t, provider.lastConfig.Temperature)
	require.Equal(t, 0.4, *provider.lastConfig.Temperature)
}

func TestClear(t *testing.T) {
	provider := &fakeProvider{response: "x"}
	session := NewSession(provider)

	_, err := session.Ask(context.Background(), "hello")
	require.NoError(t, err)
	require.NotEmpty(t, session.Messages())

	session.Clear()
	require.Empty(t, session.Messages())
	require.NotEmpty(t, session.ID())
}
