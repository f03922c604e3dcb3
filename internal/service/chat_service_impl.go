package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rudra/portfolio-gateway/pkg/genai"
)

// ErrChatUnavailable is returned when no generative-text credential was
// configured at startup. The capability never changes at runtime.
var ErrChatUnavailable = errors.New("chat provider not configured")

// personaPrompt frames every visitor message for the portfolio assistant.
const personaPrompt = "Role: Rudra's Portfolio AI. Style: Cyberpunk/Neo-Brutalist. User: %s. Keep it short."

// chatServiceImpl is the production implementation of ChatService.
type chatServiceImpl struct {
	client genai.Client // nil in chat-degraded mode
}

// NewChatService creates a ChatService backed by the given provider client.
// A nil client puts the service in chat-degraded mode: every Reply fails
// with ErrChatUnavailable.
func NewChatService(client genai.Client) ChatService {
	return &chatServiceImpl{client: client}
}

// Reply wraps the visitor message in the portfolio persona prompt and makes
// exactly one provider call. Failures are not retried.
func (s *chatServiceImpl) Reply(ctx context.Context, message string) (string, error) {
	if s.client == nil {
		return "", ErrChatUnavailable
	}
	return s.client.GenerateReply(ctx, fmt.Sprintf(personaPrompt, message))
}
