package handler

import (
	"context"
	"encoding/json"
	"net/http"
)

// Pinger is the slice of the connection pool the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports the gateway status and which capabilities are live.
type HealthHandler struct {
	db          Pinger // nil in store-degraded mode
	chatEnabled bool
}

// NewHealthHandler creates a HealthHandler. db may be nil when no store is
// configured.
func NewHealthHandler(db Pinger, chatEnabled bool) *HealthHandler {
	return &HealthHandler{db: db, chatEnabled: chatEnabled}
}

type healthResponse struct {
	Status string `json:"status"`
	Chat   string `json:"chat"`
	Store  string `json:"store"`
}

// Health handles GET /api/health. Degraded capabilities are reported but do
// not make the gateway unhealthy; only a configured-but-unreachable store does.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Chat: "degraded", Store: "degraded"}
	if h.chatEnabled {
		resp.Chat = "ready"
	}

	status := http.StatusOK
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			resp.Status = "unhealthy"
			resp.Store = "unreachable"
			status = http.StatusServiceUnavailable
		} else {
			resp.Store = "ready"
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}
