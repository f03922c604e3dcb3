package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/rudra/portfolio-gateway/internal/model"
	"github.com/rudra/portfolio-gateway/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository // nil in store-degraded mode
}

// NewContactService creates a ContactService backed by the given repository.
// A nil repository puts the service in store-degraded mode: submissions are
// logged and acknowledged but never written.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit logs the submission before any persistence attempt, then writes it
// at most once. The write is never retried; a failed write after the log
// line is accepted data loss.
func (s *contactServiceImpl) Submit(ctx context.Context, msg *model.ContactMessage) (SubmitOutcome, error) {
	msg.Timestamp = time.Now().UTC()
	msg.Read = false

	slog.Info("contact submission",
		"name", msg.Name,
		"email", msg.Email,
		"message", msg.Message,
	)

	if s.repo == nil {
		return SubmittedLogOnly, nil
	}

	if err := s.repo.Save(ctx, msg); err != nil {
		return 0, err
	}
	return SubmittedStored, nil
}
