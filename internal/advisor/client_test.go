package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/bath14971-sudo/dom-car-finder/pkg/config"
	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
)

type stubCarLister struct {
	cars []models.Car
}

func (s stubCarLister) ListActive(context.Context) ([]models.Car, error) {
	return s.cars, nil
}

func testClient(t *testing.T, baseURL string, cars []models.Car) *Client {
	t.Helper()
	client, err := NewClient(config.AdvisorConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "google/gemini-2.5-flash",
	}, stubCarLister{cars: cars}, nil)
	if err != nil {
		t.Fatalf("build client: %v", err)
	}
	return client
}

func TestStreamChatRelaysDeltas(t *testing.T) {
	fuel := "hybrid"
	inventory := []models.Car{{
		Name:     "Toyota Camry",
		Model:    "Camry",
		Year:     2023,
		Price:    decimal.NewFromInt(28000),
		Status:   enums.CarStatusReady,
		FuelType: &fuel,
	}}

	var captured completionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "text/event-stream")
		_, _ = w.Write([]byte("data: {\"choices\":[{\"delta\":{\"content\":\"Hello\"}}]}\n"))
		_, _ = w.Write([]byte("data: [DONE]\n"))
	}))
	defer server.Close()

	client := testClient(t, server.URL, inventory)
	stream, err := client.StreamChat(context.Background(), []ChatMessage{{Role: "user", Content: "any hybrids?"}})
	if err != nil {
		t.Fatalf("stream chat: %v", err)
	}
	defer stream.Close()

	delta, err := stream.Recv()
	if err != nil || delta != "Hello" {
		t.Fatalf("expected 'Hello' delta, got %q err %v", delta, err)
	}

	if !captured.Stream {
		t.Fatal("expected stream flag set")
	}
	if captured.Model != "google/gemini-2.5-flash" {
		t.Fatalf("unexpected model %q", captured.Model)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Fatalf("expected system prompt then user turn, got %+v", captured.Messages)
	}
	prompt := captured.Messages[0].Content
	if !strings.Contains(prompt, "Toyota Camry") || !strings.Contains(prompt, "hybrid") {
		t.Fatalf("expected inventory snapshot in system prompt, got %q", prompt)
	}
	if captured.Messages[1].Content != "any hybrids?" {
		t.Fatalf("unexpected user turn %+v", captured.Messages[1])
	}
}

func TestStreamChatGatewayFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := testClient(t, server.URL, nil)
	_, err := client.StreamChat(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestStreamChatRequiresAPIKey(t *testing.T) {
	client := testClient(t, "http://unused", nil)
	client.cfg.APIKey = ""

	_, err := client.StreamChat(context.Background(), []ChatMessage{{Role: "user", Content: "hi"}})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
