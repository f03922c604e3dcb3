package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type mockPinger struct {
	pingErr error
}

func (m *mockPinger) Ping(ctx context.Context) error { return m.pingErr }

func TestHealthHandler_AllReady(t *testing.T) {
	h := NewHealthHandler(&mockPinger{}, true)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Status string `json:"status"`
		Chat   string `json:"chat"`
		Store  string `json:"store"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" || resp.Chat != "ready" || resp.Store != "ready" {
		t.Errorf("unexpected response: %+v", resp)
	}
}

// TestHealthHandler_DegradedIsStillOK verifies missing credentials report
// degraded capabilities without failing the health check.
func TestHealthHandler_DegradedIsStillOK(t *testing.T) {
	h := NewHealthHandler(nil, false)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for degraded capabilities, got %d", rec.Code)
	}

	var resp struct {
		Status string `json:"status"`
		Chat   string `json:"chat"`
		Store  string `json:"store"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "ok" {
		t.Errorf("expected status=ok, got %q", resp.Status)
	}
	if resp.Chat != "degraded" || resp.Store != "degraded" {
		t.Errorf("expected degraded capabilities, got %+v", resp)
	}
}

// TestHealthHandler_StoreUnreachable verifies a configured but failing store
// makes the gateway unhealthy.
func TestHealthHandler_StoreUnreachable(t *testing.T) {
	h := NewHealthHandler(&mockPinger{pingErr: errors.New("connection refused")}, true)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	h.Health(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503 for unreachable store, got %d", rec.Code)
	}
}
