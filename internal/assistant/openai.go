// Package assistant talks to an OpenAI-compatible chat model to suggest goals.
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Dias221467/waseela/internal/models"
	"github.com/Dias221467/waseela/pkg/logger"
	"github.com/sashabaranov/go-openai"
)

const systemPrompt = `You are a goal-setting coach. Turn the user's description into one SMART goal.
Reply with a JSON object only, using exactly these keys:
"specific" (string), "measurable" (string), "achievable" (string), "relevant" (string),
"timeBoundDays" (integer number of days to reach the goal).`

var ErrEmptyReply = errors.New("assistant returned no suggestion")

type OpenAIAssistant struct {
	client *openai.Client
	model  string
}

// NewOpenAIAssistant builds a client for the given key and model. An empty
// baseURL targets the public OpenAI API.
func NewOpenAIAssistant(apiKey, model, baseURL string) *OpenAIAssistant {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	logger.Log.WithField("model", model).Info("Initializing goal-suggestion assistant")
	return &OpenAIAssistant{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// SuggestGoal asks the model for a SMART goal in the domain described by prompt.
func (a *OpenAIAssistant) SuggestGoal(ctx context.Context, prompt string) (*models.GoalSuggestion, error) {
	req := openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := a.client.CreateChatCompletion(ctx, req)
	if err != nil {
		logger.Log.WithError(err).Error("Assistant API call failed")
		return nil, fmt.Errorf("assistant API call failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyReply
	}

	logger.Log.WithField("finish_reason", resp.Choices[0].FinishReason).Debug("Received suggestion from assistant")
	return ParseSuggestion(resp.Choices[0].Message.Content)
}

// ParseSuggestion decodes a model reply, tolerating a surrounding markdown code fence.
func ParseSuggestion(content string) (*models.GoalSuggestion, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyReply
	}

	var s models.GoalSuggestion
	if err := json.Unmarshal([]byte(content), &s); err != nil {
		return nil, fmt.Errorf("failed to decode suggestion: %w", err)
	}
	return &s, nil
}
