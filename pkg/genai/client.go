// Package genai provides the generative-text provider client for the
// portfolio gateway. It speaks the OpenAI chat-completions API; the base
// URL is overridable so any compatible endpoint can serve it.
package genai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

// ErrEmptyCompletion is returned when the provider answers with no choices.
var ErrEmptyCompletion = errors.New("provider returned no completion")

// Client produces one reply for one prompt. Implementations must be safe
// for concurrent use; a single Client lives for the process lifetime.
type Client interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

// OpenAIClient is the production Client backed by go-openai.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// Ensure OpenAIClient implements Client at compile time.
var _ Client = (*OpenAIClient)(nil)

// NewClient creates an OpenAIClient. baseURL may be empty to use the
// provider default; model must be a chat-completions model name.
func NewClient(apiKey, baseURL, model string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// GenerateReply sends a single-turn chat completion and returns the text
// of the first choice. No retries: any transport or provider error is
// returned as-is for the caller to classify.
func (c *OpenAIClient) GenerateReply(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}
