package service

import "context"

// ChatService defines the business logic behind the chat endpoint.
type ChatService interface {
	// Reply produces one generated reply for one visitor message.
	// It returns an error in chat-degraded mode and on any provider
	// failure; the error never carries provider response detail.
	Reply(ctx context.Context, message string) (string, error)
}
