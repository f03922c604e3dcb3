package model

import "time"

// ContactMessage represents one contact-form submission. When a
// document store is configured it is persisted exactly once as
// submitted; the gateway never reads it back.
type ContactMessage struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
