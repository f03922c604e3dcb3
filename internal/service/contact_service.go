package service

import (
	"context"

	"github.com/rudra/portfolio-gateway/internal/model"
)

// SubmitOutcome tells the handler what happened to an accepted submission.
type SubmitOutcome int

const (
	// SubmittedStored means one ContactMessage row was written.
	SubmittedStored SubmitOutcome = iota
	// SubmittedLogOnly means the store is not configured; the operational
	// log line is the only durable record.
	SubmittedLogOnly
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit logs the submission, stamps Timestamp and Read, and persists
	// it at most once. The outcome is only meaningful when err is nil.
	Submit(ctx context.Context, msg *model.ContactMessage) (SubmitOutcome, error)
}
