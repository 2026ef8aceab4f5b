package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bath14971-sudo/dom-car-finder/pkg/config"
	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
	"github.com/bath14971-sudo/dom-car-finder/pkg/logger"
)

// ChatMessage is one turn of the advisor conversation.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest is the storefront payload for the advisor endpoint.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}

// CarLister provides the inventory snapshot embedded into the system prompt.
type CarLister interface {
	ListActive(ctx context.Context) ([]models.Car, error)
}

// Client streams chat completions from an OpenAI-compatible gateway.
type Client struct {
	httpClient *http.Client
	cfg        config.AdvisorConfig
	cars       CarLister
	logg       *logger.Logger
}

// NewClient builds an advisor client. The HTTP client carries no timeout
// because the response body is a long-lived stream; cancellation happens
// through the request context and Stream.Close.
func NewClient(cfg config.AdvisorConfig, cars CarLister, logg *logger.Logger) (*Client, error) {
	if cars == nil {
		return nil, fmt.Errorf("car lister is required")
	}
	return &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
		cars:       cars,
		logg:       logg,
	}, nil
}

type completionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// StreamChat posts the conversation to the gateway and returns the delta
// stream. The caller owns the stream and must Close it.
func (c *Client) StreamChat(ctx context.Context, messages []ChatMessage) (*Stream, error) {
	if strings.TrimSpace(c.cfg.APIKey) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "advisor is not configured")
	}

	prompt, err := c.systemPrompt(ctx)
	if err != nil {
		return nil, err
	}

	payload := completionRequest{
		Model:    c.cfg.Model,
		Messages: append([]ChatMessage{{Role: "system", Content: prompt}}, messages...),
		Stream:   true,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode chat request")
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build chat request")
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reach advisor gateway")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		_ = resp.Body.Close()
		if c.logg != nil {
			logCtx := c.logg.WithFields(ctx, map[string]any{
				"status": resp.StatusCode,
				"body":   string(snippet),
			})
			c.logg.Warn(logCtx, "advisor gateway rejected request")
		}
		return nil, pkgerrors.New(pkgerrors.CodeDependency,
			fmt.Sprintf("advisor gateway returned status %d", resp.StatusCode))
	}

	return newStream(resp.Body), nil
}

// systemPrompt embeds the current storefront inventory so the advisor can
// answer with real stock.
func (c *Client) systemPrompt(ctx context.Context) (string, error) {
	cars, err := c.cars.ListActive(ctx)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load inventory snapshot")
	}

	var b strings.Builder
	b.WriteString("You are the Car Plus virtual sales advisor. Help shoppers choose ")
	b.WriteString("a vehicle from the current inventory, answer questions about the ")
	b.WriteString("listed cars, and be honest when nothing matches. Keep replies short.\n\n")
	b.WriteString("Current inventory:\n")
	for _, car := range cars {
		fmt.Fprintf(&b, "- %s (%s, %d): $%s, %s", car.Name, car.Model, car.Year, car.Price.StringFixed(2), car.Status.Label())
		if car.FuelType != nil {
			fmt.Fprintf(&b, ", %s", *car.FuelType)
		}
		if car.Color != nil {
			fmt.Fprintf(&b, ", %s", *car.Color)
		}
		b.WriteString("\n")
	}
	if len(cars) == 0 {
		b.WriteString("(no cars currently listed)\n")
	}
	return b.String(), nil
}
