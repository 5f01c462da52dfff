package google

import (
	"fmt"

	"github.com/deepnoodle-ai/parley/llm"
	"google.golang.org/genai"
)

// messagesToContents converts Parley messages to genai content. Google uses
// "user" and "model" roles instead of "user" and "assistant".
func messagesToContents(messages []*llm.Message) ([]*genai.Content, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("no messages provided")
	}
	contents := make([]*genai.Content, 0, len(messages))
	for i, message := range messages {
		if len(message.Content) == 0 {
			return nil, fmt.Errorf("empty message detected (index %d)", i)
		}
		role := genai.RoleUser
		if message.Role == llm.Assistant {
			role = genai.RoleModel
		}
		var parts []*genai.Part
		for _, content := range message.Content {
			if content.Type == llm.ContentTypeText {
				parts = append(parts, &genai.Part{Text: content.Text})
			}
		}
		contents = append(contents, &genai.Content{Role: role, Parts: parts})
	}
	return contents, nil
}

// buildGenerateConfig builds the genai generation config from the call config.
func buildGenerateConfig(config *llm.Config, maxTokens int) *genai.GenerateContentConfig {
	genConfig := &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	}
	if config.Temperature != nil {
		genConfig.Temperature = genai.Ptr(float32(*config.Temperature))
	}
	if config.SystemPrompt != "" {
		genConfig.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: config.SystemPrompt}},
		}
	}
	return genConfig
}

// convertResponse converts a genai response to a Parley LLM response.
func convertResponse(resp *genai.GenerateContentResponse, model string) (*llm.Response, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from google genai")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return nil, fmt.Errorf("no content in response")
	}

	message := &llm.Message{Role: llm.Assistant}
	for _, part := range candidate.Content.Parts {
		if part.Text != "" {
			message.WithText(part.Text)
		}
	}

	var usage llm.Usage
	if resp.UsageMetadata != nil {
		usage = llm.Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}

	stopReason := "other"
	switch candidate.FinishReason {
	case genai.FinishReasonStop:
		stopReason = "stop"
	case genai.FinishReasonMaxTokens:
		stopReason = "max_tokens"
	}

	return &llm.Response{
		ID:         resp.ResponseID,
		Model:      model,
		StopReason: stopReason,
		Role:       llm.Assistant,
		Message:    *message,
		Usage:      usage,
	}, nil
}
