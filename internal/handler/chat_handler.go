package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rudra/portfolio-gateway/internal/service"
)

// chatFailedResponse is the fixed body returned on any chat failure,
// degraded mode included. Provider error detail never reaches the caller.
const chatFailedResponse = "⚠️ NEURAL LINK FAILED"

// ChatHandler handles the AI chat endpoint.
type ChatHandler struct {
	chatService service.ChatService
}

// NewChatHandler creates a ChatHandler with the given service.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// chatRequest is the expected JSON body for POST /api/chat.
type chatRequest struct {
	Message string `json:"message"`
}

// chatResponse is the JSON body for every chat reply, success or failure.
type chatResponse struct {
	Response string `json:"response"`
}

// Chat handles POST /api/chat. The message is passed through as-is: it may
// be empty and has no length cap here, any cap is the provider's concern.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	text, err := h.chatService.Reply(r.Context(), req.Message)
	if err != nil {
		slog.Error("chat reply failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(chatResponse{Response: chatFailedResponse})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(chatResponse{Response: text})
}
