// Package chat implements the conversational session behind the chatbot
// app: an append-only message log and transcript assembly for provider calls.
package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/deepnoodle-ai/parley/llm"
	"github.com/deepnoodle-ai/parley/log"
	"github.com/google/uuid"
)

// WelcomeMessage is shown when a session starts or is cleared. It is never
// included in the transcript sent to the model.
const WelcomeMessage = "Hello! How can I assist you today?"

// DefaultTemperature is the initial creativity setting.
const DefaultTemperature = 0.7

const systemPromptFormat = "You are a friendly and helpful chatbot. " +
	"Your responses should be concise and direct. Current date is %s."

// Session is an in-memory, append-only conversation with an LLM provider.
// It lives only for the lifetime of the process.
type Session struct {
	id          string
	provider    llm.LLM
	temperature float64
	logger      log.Logger
	now         func() time.Time

	mu       sync.RWMutex
	messages []*llm.Message
}

// Option is a functional option for configuring a Session.
type Option func(*Session)

// WithTemperature sets the initial temperature.
func WithTemperature(temperature float64) Option {
	return func(s *Session) {
		s.temperature = clampTemperature(temperature)
	}
}

// WithLogger sets the logger.
func WithLogger(logger log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithClock overrides the clock used for the dated system prompt.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// NewSession creates an empty chat session backed by the given provider.
func NewSession(provider llm.LLM, opts ...Option) *Session {
	s := &Session{
		id:          uuid.New().String(),
		provider:    provider,
		temperature: DefaultTemperature,
		logger:      log.NewNullLogger(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Temperature returns the current temperature.
func (s *Session) Temperature() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.temperature
}

// SetTemperature updates the temperature used for subsequent requests,
// clamped to [0, 1].
func (s *Session) SetTemperature(temperature float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.temperature = clampTemperature(temperature)
}

// Messages returns a snapshot of the conversation, oldest first. The welcome
// message is not part of the conversation.
func (s *Session) Messages() []*llm.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*llm.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Clear resets the session to its welcome state.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
}

// SystemPrompt returns the dated system prompt for the next request.
func (s *Session) SystemPrompt() string {
	return fmt.Sprintf(systemPromptFormat, s.now().Format("2006-01-02"))
}

// Ask appends the question to the log, sends the full transcript to the
// provider, appends the assistant reply, and returns the reply text. On a
// provider error the question remains in the log and no reply is appended.
func (s *Session) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("no question provided")
	}

	s.mu.Lock()
	s.messages = append(s.messages, llm.NewUserMessage(question))
	transcript := make([]*llm.Message, len(s.messages))
	copy(transcript, s.messages)
	temperature := s.temperature
	s.mu.Unlock()

	response, err := s.provider.Generate(ctx, transcript,
		llm.WithSystemPrompt(s.SystemPrompt()),
		llm.WithTemperature(temperature),
	)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	reply := response.Text()

	s.mu.Lock()
	s.messages = append(s.messages, llm.NewAssistantMessage(reply))
	s.mu.Unlock()

	s.logger.Info("chat turn completed",
		"session_id", s.id,
		"provider", s.provider.Name(),
		"input_tokens", response.Usage.InputTokens,
		"output_tokens", response.Usage.OutputTokens,
	)
	return reply, nil
}

func clampTemperature(temperature float64) float64 {
	if temperature < 0 {
		return 0
	}
	if temperature > 1 {
		return 1
	}
	return temperature
}
