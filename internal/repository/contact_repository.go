package repository

import (
	"context"

	"github.com/rudra/portfolio-gateway/internal/model"
)

// ContactRepository defines the persistence interface for contact messages.
// The gateway is write-only over this collection: there is no read, update
// or delete path.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
}
