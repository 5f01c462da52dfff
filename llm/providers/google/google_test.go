package google

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/deepnoodle-ai/parley/llm"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

// requireGoogleAPIKey skips the test if no API key is available
func requireGoogleAPIKey(t *testing.T) {
	if os.Getenv("GOOGLE_API_KEY") == "" && os.Getenv("GEMINI_API_KEY") == "" {
		t.Skip("Skipping test: GOOGLE_API_KEY or GEMINI_API_KEY not set")
	}
}

func TestProviderName(t *testing.T) {
	provider := New()
	require.Equal(t, "google", provider.Name())
}

func TestMessagesToContents(t *testing.T) {
	contents, err := messagesToContents([]*llm.Message{
		llm.NewUserMessage("hello"),
		llm.NewAssistantMessage("hi, how can I help?"),
		llm.NewUserMessage("what day is it?"),
	})
	require.NoError(t, err)
	require.Len(t, contents, 3)
	require.Equal(t, genai.RoleUser, contents[0].Role)
	require.Equal(t, genai.RoleModel, contents[1].Role)
	require.Equal(t, genai.RoleUser, contents[2].Role)
	require.Equal(t, "hi, how can I help?", contents[1].Parts[0].Text)
}

func TestMessagesToContentsValidation(t *testing.T) {
	_, err := messagesToContents(nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no messages")

	_, err = messagesToContents([]*llm.Message{{Role: llm.User}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty message")
}

func TestBuildGenerateConfig(t *testing.T) {
	config := &llm.Config{}
	config.Apply(llm.WithTemperature(0.7), llm.WithSystemPrompt("be brief"))

	genConfig := buildGenerateConfig(config, 2048)
	require.Equal(t, int32(2048), genConfig.MaxOutputTokens)
	require.NotNil(t, genConfig.Temperature)
	require.InDelta(t, 0.7, float64(*genConfig.Temperature), 0.0001)
	require.NotNil(t, genConfig.SystemInstruction)
	require.Equal(t, "be brief", genConfig.SystemInstruction.Parts[0].Text)
}

func TestConvertResponse(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		ResponseID: "resp-1",
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Role:  genai.RoleModel,
				Parts: []*genai.Part{{Text: "Hello!"}},
			},
			FinishReason: genai.FinishReasonStop,
		}},
		UsageMetadata: &genai.GenerateContentResponseUsageMetadata{
			PromptTokenCount:     10,
			CandidatesTokenCount: 3,
		},
	}

	result, err := convertResponse(resp, ModelGemini20Flash)
	require.NoError(t, err)
	require.Equal(t, "resp-1", result.ID)
	require.Equal(t, ModelGemini20Flash, result.Model)
	require.Equal(t, "stop", result.StopReason)
	require.Equal(t, "Hello!", result.Text())
	require.Equal(t, 10, result.Usage.InputTokens)
	require.Equal(t, 3, result.Usage.OutputTokens)
}

func TestConvertResponseEmpty(t *testing.T) {
	_, err := convertResponse(nil, ModelGemini20Flash)
	require.Error(t, err)

	_, err = convertResponse(&genai.GenerateContentResponse{}, ModelGemini20Flash)
	require.Error(t, err)
}

func TestProviderBasicGenerate(t *testing.T) {
	requireGoogleAPIKey(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	provider := New()
	response, err := provider.Generate(ctx,
		llm.NewSingleUserMessage("respond with \"hello\""),
	)
	require.NoError(t, err)
	require.NotNil(t, response)
	require.Equal(t, llm.Assistant, response.Role)
	require.Contains(t, strings.ToLower(response.Text()), "hello")
}
