package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deepnoodle-ai/parley/llm"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler func(w http.ResponseWriter, body map[string]any)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		handler(w, body)
	}))
}

func completionJSON(text string) string {
	return `{
		"id": "chatcmpl-123",
		"object": "chat.completion",
		"model": "llama3-8b-8192",
		"choices": [{
			"index": 0,
			"message": {"role": "assistant", "content": ` + mustMarshal(text) + `},
			"finish_reason": "stop"
		}],
		"usage": {"prompt_tokens": 12, "completion_tokens": 7, "total_tokens": 19}
	}`
}

func mustMarshal(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}

func TestGenerate(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, body map[string]any) {
		require.Equal(t, "llama3-8b-8192", body["model"])
		messages, ok := body["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 2)
		first, ok := messages[0].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "system", first["role"])
		w.Write([]byte(completionJSON("Hallo Welt")))
	})
	defer server.Close()

	provider := New(
		WithAPIKey("test-key"),
		WithEndpoint(server.URL),
		WithMaxRetries(0),
	)

	response, err := provider.Generate(context.Background(),
		llm.NewSingleUserMessage("Translate the following text to German: Hello world"),
		llm.WithSystemPrompt("You are a helpful and highly accurate language translator."),
		llm.WithTemperature(0),
	)
	require.NoError(t, err)
	require.Equal(t, "chatcmpl-123", response.ID)
	require.Equal(t, "Hallo Welt", response.Text())
	require.Equal(t, "stop", response.StopReason)
	require.Equal(t, llm.Assistant, response.Role)
	require.Equal(t, 12, response.Usage.InputTokens)
	require.Equal(t, 7, response.Usage.OutputTokens)
}

func TestGenerateValidation(t *testing.T) {
	provider := New(WithAPIKey("test-key"))

	_, err := provider.Generate(context.Background(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no messages")

	_, err = provider.Generate(context.Background(), []*llm.Message{{Role: llm.User}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty message")
}

func TestGenerateModelOverride(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, body map[string]any) {
		require.Equal(t, "llama-3.1-8b-instant", body["model"])
		w.Write([]byte(completionJSON("ok")))
	})
	defer server.Close()

	provider := New(
		WithAPIKey("test-key"),
		WithEndpoint(server.URL),
		WithMaxRetries(0),
	)

	_, err := provider.Generate(context.Background(),
		llm.NewSingleUserMessage("hi"),
		llm.WithModel(ModelLlama318BInstant),
	)
	require.NoError(t, err)
}

func TestGenerateSendsConfiguredLimits(t *testing.T) {
	server := newTestServer(t, func(w http.ResponseWriter, body map[string]any) {
		require.Equal(t, float64(512), body["max_tokens"])
		require.Equal(t, 0.3, body["temperature"])
		w.Write([]byte(completionJSON("ok")))
	})
	defer server.Close()

	provider := New(
		WithAPIKey("test-key"),
		WithEndpoint(server.URL),
		WithMaxRetries(0),
		WithMaxTokens(512),
	)

	_, err := provider.Generate(context.Background(),
		llm.NewSingleUserMessage("hi"),
		llm.WithTemperature(0.3),
	)
	require.NoError(t, err)
}

func TestName(t *testing.T) {
	provider := New(WithModel(ModelLlama38B))
	require.Equal(t, "groq-llama3-8b-8192", provider.Name())
}
