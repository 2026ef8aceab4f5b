package notifications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	gcppubsub "cloud.google.com/go/pubsub/v2"
	"github.com/google/uuid"

	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
	"github.com/bath14971-sudo/dom-car-finder/pkg/logger"
	"github.com/bath14971-sudo/dom-car-finder/pkg/outbox"
	"github.com/bath14971-sudo/dom-car-finder/pkg/outbox/payloads"
)

const notificationConsumerName = "notification-worker"

type emailHandler interface {
	HandleOrderCreated(ctx context.Context, event *payloads.OrderCreatedEvent) error
	HandleStatusChanged(ctx context.Context, event *payloads.OrderStatusChangedEvent) error
}

type idempotencyChecker interface {
	CheckAndMarkProcessed(ctx context.Context, consumer string, eventID uuid.UUID) (bool, error)
	Delete(ctx context.Context, consumer string, eventID uuid.UUID) error
}

// Consumer drains order events from Pub/Sub and hands them to the email
// service, honoring Redis idempotency so redeliveries do not double-send.
type Consumer struct {
	handler      emailHandler
	subscription *gcppubsub.Subscriber
	manager      idempotencyChecker
	logg         *logger.Logger
}

// NewConsumer builds the notification consumer. The subscription may be nil
// only when the caller drives Process directly.
func NewConsumer(handler emailHandler, subscription *gcppubsub.Subscriber, manager idempotencyChecker, logg *logger.Logger) (*Consumer, error) {
	if handler == nil {
		return nil, fmt.Errorf("email handler is required")
	}
	if manager == nil {
		return nil, fmt.Errorf("idempotency manager is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}
	return &Consumer{
		handler:      handler,
		subscription: subscription,
		manager:      manager,
		logg:         logg,
	}, nil
}

// Run consumes order events until the context is canceled.
func (c *Consumer) Run(ctx context.Context) error {
	if c.subscription == nil {
		return errors.New("orders subscription is required")
	}
	return c.subscription.Receive(ctx, func(innerCtx context.Context, msg *gcppubsub.Message) {
		if c.process(innerCtx, msg).nack {
			msg.Nack()
			return
		}
		msg.Ack()
	})
}

type processResult struct {
	nack bool
}

func (c *Consumer) process(ctx context.Context, msg *gcppubsub.Message) processResult {
	eventType := enums.OutboxEventType(strings.TrimSpace(msg.Attributes["event_type"]))
	logCtx := c.logg.WithFields(ctx, map[string]any{
		"message_id": msg.ID,
		"event_type": eventType,
	})

	var envelope outbox.PayloadEnvelope
	if err := json.Unmarshal(msg.Data, &envelope); err != nil {
		c.logg.Error(logCtx, "failed to decode envelope", err)
		return processResult{}
	}

	if err := c.Process(ctx, eventType, envelope); err != nil {
		return processResult{nack: true}
	}
	return processResult{}
}

// Process dispatches one decoded envelope. A returned error means the message
// should be redelivered.
func (c *Consumer) Process(ctx context.Context, eventType enums.OutboxEventType, envelope outbox.PayloadEnvelope) error {
	logCtx := c.logg.WithFields(ctx, map[string]any{
		"event_id":   envelope.EventID,
		"event_type": eventType,
	})

	if !eventType.IsValid() {
		c.logg.Info(logCtx, "event not handled by notification consumer")
		return nil
	}

	eventID, err := uuid.Parse(envelope.EventID)
	if err != nil {
		c.logg.Warn(logCtx, "invalid event id, dropping message")
		return nil
	}

	already, err := c.manager.CheckAndMarkProcessed(ctx, notificationConsumerName, eventID)
	if err != nil {
		c.logg.Error(logCtx, "idempotency check failed", err)
		return fmt.Errorf("idempotency check: %w", err)
	}
	if already {
		c.logg.Info(logCtx, "event already processed")
		return nil
	}

	if err := c.dispatch(logCtx, eventType, envelope.Data); err != nil {
		c.logg.Error(logCtx, "notification handling failed", err)
		_ = c.manager.Delete(ctx, notificationConsumerName, eventID)
		return err
	}
	return nil
}

func (c *Consumer) dispatch(ctx context.Context, eventType enums.OutboxEventType, data json.RawMessage) error {
	switch eventType {
	case enums.OutboxEventOrderCreated:
		var payload payloads.OrderCreatedEvent
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("decode order created payload: %w", err)
		}
		return c.handler.HandleOrderCreated(ctx, &payload)
	case enums.OutboxEventOrderStatusChanged:
		var payload payloads.OrderStatusChangedEvent
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("decode status changed payload: %w", err)
		}
		return c.handler.HandleStatusChanged(ctx, &payload)
	default:
		return nil
	}
}
