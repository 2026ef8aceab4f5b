package notifications

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
	"github.com/bath14971-sudo/dom-car-finder/pkg/logger"
	"github.com/bath14971-sudo/dom-car-finder/pkg/outbox/payloads"
)

// Service turns order events into customer email.
type Service struct {
	mailer Mailer
	logg   *logger.Logger
}

// NewService wires the notification dependencies.
func NewService(mailer Mailer, logg *logger.Logger) (*Service, error) {
	if mailer == nil {
		return nil, fmt.Errorf("mailer is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Service{mailer: mailer, logg: logg}, nil
}

// HandleOrderCreated emails the order confirmation for a fresh checkout.
func (s *Service) HandleOrderCreated(ctx context.Context, event *payloads.OrderCreatedEvent) error {
	if event == nil {
		return fmt.Errorf("order created payload is required")
	}
	return s.sendStatusEmail(ctx, event.CustomerEmail, event.OrderID, event.Status, event.TotalAmount)
}

// HandleStatusChanged emails the customer about a workflow transition.
func (s *Service) HandleStatusChanged(ctx context.Context, event *payloads.OrderStatusChangedEvent) error {
	if event == nil {
		return fmt.Errorf("status changed payload is required")
	}
	return s.sendStatusEmail(ctx, event.CustomerEmail, event.OrderID, event.Status, event.TotalAmount)
}

func (s *Service) sendStatusEmail(ctx context.Context, to string, orderID uuid.UUID, status enums.OrderStatus, total decimal.Decimal) error {
	logCtx := s.logg.WithFields(ctx, map[string]any{
		"order_id": orderID.String(),
		"status":   status,
	})

	// No address means nothing deliverable; retrying would never help.
	if strings.TrimSpace(to) == "" {
		s.logg.Warn(logCtx, "order has no customer email, skipping notification")
		return nil
	}

	content := contentFor(status)
	email := Email{
		To:      to,
		Subject: content.Subject,
		HTML:    orderEmailHTML(content.Message, orderID, status, total),
	}
	if err := s.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("send order email: %w", err)
	}

	s.logg.Info(logCtx, "order email sent")
	return nil
}
