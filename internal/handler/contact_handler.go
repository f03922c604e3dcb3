package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rudra/portfolio-gateway/internal/model"
	"github.com/rudra/portfolio-gateway/internal/service"
)

// ContactHandler handles contact form submission.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
// All three fields are opaque strings; missing fields pass through empty.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// submitResponse is the JSON body for every contact reply.
type submitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact. The submission is always logged; the
// response message tells the visitor whether it was also stored.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(submitResponse{Success: false, Message: "invalid_json"})
		return
	}

	msg := &model.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}

	outcome, err := h.contactService.Submit(r.Context(), msg)
	if err != nil {
		slog.Error("contact store write failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(submitResponse{Success: false, Message: "Database Write Failed"})
		return
	}

	resp := submitResponse{Success: true}
	switch outcome {
	case service.SubmittedStored:
		resp.Message = "Securely stored"
	case service.SubmittedLogOnly:
		resp.Message = "Message received (store not configured, check logs)"
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
