package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bath14971-sudo/dom-car-finder/internal/advisor"
	"github.com/bath14971-sudo/dom-car-finder/pkg/config"
	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
)

type emptyCarLister struct{}

func (emptyCarLister) ListActive(context.Context) ([]models.Car, error) {
	return nil, nil
}

func advisorClient(t *testing.T, upstream string) *advisor.Client {
	t.Helper()
	client, err := advisor.NewClient(config.AdvisorConfig{
		APIKey:  "test-key",
		BaseURL: upstream,
		Model:   "google/gemini-2.5-flash",
	}, emptyCarLister{}, nil)
	if err != nil {
		t.Fatalf("build advisor client: %v", err)
	}
	return client
}

func TestAdvisorChatRelaysStream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"Hello\"}}]}\n"))
		_, _ = w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\" shopper\"}}]}\n"))
		_, _ = w.Write([]byte("data: [DONE]\n"))
	}))
	defer upstream.Close()

	handler := AdvisorChat(advisorClient(t, upstream.URL), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/advisor/chat",
		strings.NewReader(`{"messages":[{"role":"user","content":"hi"}]}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected event stream content type, got %q", ct)
	}
	body := resp.Body.String()
	if !strings.Contains(body, `"content":"Hello"`) || !strings.Contains(body, `"content":" shopper"`) {
		t.Fatalf("expected relayed deltas, got %q", body)
	}
	if !strings.Contains(body, "data: [DONE]") {
		t.Fatalf("expected terminating sentinel, got %q", body)
	}
}

func TestAdvisorChatUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer upstream.Close()

	handler := AdvisorChat(advisorClient(t, upstream.URL), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/advisor/chat",
		strings.NewReader(`{"messages":[{"role":"user","content":"hi"}]}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before first delta, got %d", resp.Code)
	}
}

func TestAdvisorChatRejectsEmptyConversation(t *testing.T) {
	handler := AdvisorChat(advisorClient(t, "http://unused"), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/advisor/chat", strings.NewReader(`{"messages":[]}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
