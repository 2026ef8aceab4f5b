package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgAuth "github.com/bath14971-sudo/dom-car-finder/pkg/auth"
	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
	"github.com/bath14971-sudo/dom-car-finder/pkg/logger"
	"github.com/bath14971-sudo/dom-car-finder/pkg/outbox"
	"github.com/bath14971-sudo/dom-car-finder/pkg/outbox/payloads"
	"github.com/bath14971-sudo/dom-car-finder/pkg/pagination"
)

// Service exposes buyer order history and the admin fulfillment workflow.
type Service interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error)
	GetMine(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error)
	AdminList(ctx context.Context, params pagination.Params) (OrdersPageDTO, error)
	AdminGet(ctx context.Context, orderID uuid.UUID) (*OrderDTO, error)
	UpdateStatus(ctx context.Context, actorID, orderID uuid.UUID, req UpdateStatusRequest) (*OrderDTO, error)
}

type orderRepository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	AdminList(ctx context.Context, params pagination.Params) ([]models.Order, string, int64, error)
	UpdateStatus(tx *gorm.DB, id uuid.UUID, status enums.OrderStatus) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type eventEmitter interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type service struct {
	orders orderRepository
	tx     txRunner
	events eventEmitter
	logg   *logger.Logger
}

// ServiceParams groups dependencies for the orders service.
type ServiceParams struct {
	OrderRepo orderRepository
	Tx        txRunner
	Events    eventEmitter
	Logger    *logger.Logger
}

// NewService builds an orders service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.OrderRepo == nil {
		return nil, fmt.Errorf("order repository is required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	if params.Events == nil {
		return nil, fmt.Errorf("event emitter is required")
	}
	return &service{
		orders: params.OrderRepo,
		tx:     params.Tx,
		events: params.Events,
		logg:   params.Logger,
	}, nil
}

func (s *service) ListMine(ctx context.Context, userID uuid.UUID) ([]OrderDTO, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	return fromModels(orders), nil
}

// GetMine loads one order for the owner. Another user's order surfaces as not
// found rather than forbidden, so order IDs leak nothing.
func (s *service) GetMine(ctx context.Context, userID, orderID uuid.UUID) (*OrderDTO, error) {
	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
	}
	return FromModel(order), nil
}

func (s *service) AdminList(ctx context.Context, params pagination.Params) (OrdersPageDTO, error) {
	orders, nextCursor, total, err := s.orders.AdminList(ctx, params)
	if err != nil {
		return OrdersPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list orders")
	}
	return OrdersPageDTO{
		Items:      fromModels(orders),
		NextCursor: nextCursor,
		Total:      total,
	}, nil
}

func (s *service) AdminGet(ctx context.Context, orderID uuid.UUID) (*OrderDTO, error) {
	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return FromModel(order), nil
}

// UpdateStatus moves the order along the one-directional workflow. The write
// and the status-changed event share one transaction; the email side effect
// rides on that event and never blocks this call.
func (s *service) UpdateStatus(ctx context.Context, actorID, orderID uuid.UUID, req UpdateStatusRequest) (*OrderDTO, error) {
	next, err := enums.ParseOrderStatus(req.Status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"status": "unknown order status"})
	}

	order, err := s.load(ctx, orderID)
	if err != nil {
		return nil, err
	}

	previous := order.Status
	if !previous.CanTransitionTo(next) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict,
			fmt.Sprintf("cannot move order from %s to %s", previous, next)).
			WithDetails(map[string]string{
				"from": previous.String(),
				"to":   next.String(),
			})
	}

	changedAt := time.Now().UTC()
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.orders.UpdateStatus(tx, order.ID, next); err != nil {
			return err
		}
		return s.events.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.OutboxEventOrderStatusChanged,
			AggregateType: enums.OutboxAggregateOrder,
			AggregateID:   order.ID,
			Actor: &outbox.ActorRef{
				UserID: actorID,
				Role:   string(pkgAuth.RoleAdmin),
			},
			Data: payloads.OrderStatusChangedEvent{
				OrderID:       order.ID,
				UserID:        order.UserID,
				PreviousState: previous,
				Status:        next,
				TotalAmount:   order.TotalAmount,
				CustomerName:  order.CustomerName,
				CustomerEmail: order.CustomerEmail,
				ChangedAt:     changedAt,
			},
			OccurredAt: changedAt,
		})
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update order status")
	}

	if s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"order_id": order.ID.String(),
			"from":     previous.String(),
			"to":       next.String(),
		})
		s.logg.Info(logCtx, "order status updated")
	}

	order.Status = next
	order.UpdatedAt = changedAt
	return FromModel(order), nil
}

func (s *service) load(ctx context.Context, orderID uuid.UUID) (*models.Order, error) {
	order, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order")
	}
	return order, nil
}
