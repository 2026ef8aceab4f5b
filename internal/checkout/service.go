package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bath14971-sudo/dom-car-finder/internal/orders"
	pkgAuth "github.com/bath14971-sudo/dom-car-finder/pkg/auth"
	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
	"github.com/bath14971-sudo/dom-car-finder/pkg/logger"
	"github.com/bath14971-sudo/dom-car-finder/pkg/outbox"
	"github.com/bath14971-sudo/dom-car-finder/pkg/outbox/payloads"

	cartpkg "github.com/bath14971-sudo/dom-car-finder/internal/cart"
)

// Service turns a cart into an unpaid pending order.
type Service interface {
	Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*orders.OrderDTO, error)
}

type cartStore interface {
	ListItems(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	ClearTx(tx *gorm.DB, userID uuid.UUID) error
}

type orderCreator interface {
	CreateOrder(tx *gorm.DB, order *models.Order) error
}

type userFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type eventEmitter interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type service struct {
	cart   cartStore
	orders orderCreator
	users  userFinder
	tx     txRunner
	events eventEmitter
	logg   *logger.Logger
}

// ServiceParams groups dependencies for the checkout service.
type ServiceParams struct {
	CartRepo  cartStore
	OrderRepo orderCreator
	UserRepo  userFinder
	Tx        txRunner
	Events    eventEmitter
	Logger    *logger.Logger
}

// NewService builds a checkout service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.CartRepo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if params.OrderRepo == nil {
		return nil, fmt.Errorf("order repository is required")
	}
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	if params.Tx == nil {
		return nil, fmt.Errorf("transaction runner is required")
	}
	if params.Events == nil {
		return nil, fmt.Errorf("event emitter is required")
	}
	return &service{
		cart:   params.CartRepo,
		orders: params.OrderRepo,
		users:  params.UserRepo,
		tx:     params.Tx,
		events: params.Events,
		logg:   params.Logger,
	}, nil
}

// Checkout snapshots the cart into an order, clears the cart, and queues the
// order-created event, all in one transaction.
func (s *service) Checkout(ctx context.Context, userID uuid.UUID, req CheckoutRequest) (*orders.OrderDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load user")
	}

	items, err := s.cart.ListItems(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	if len(items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	lines := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.Car == nil {
			continue
		}
		lines = append(lines, models.OrderItem{
			CarID:    item.CarID,
			Quantity: item.Quantity,
			Price:    item.Car.Price,
		})
	}
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	var notes *string
	if req.Notes != nil {
		if trimmed := strings.TrimSpace(*req.Notes); trimmed != "" {
			notes = &trimmed
		}
	}

	order := models.Order{
		UserID:        userID,
		Status:        enums.OrderStatusPending,
		TotalAmount:   cartpkg.Total(items),
		CustomerName:  user.FullName,
		CustomerEmail: user.Email,
		Phone:         strings.TrimSpace(req.Phone),
		Address:       strings.TrimSpace(req.Address),
		Notes:         notes,
		Items:         lines,
	}

	createdAt := time.Now().UTC()
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.orders.CreateOrder(tx, &order); err != nil {
			return err
		}
		if err := s.cart.ClearTx(tx, userID); err != nil {
			return err
		}
		return s.events.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.OutboxEventOrderCreated,
			AggregateType: enums.OutboxAggregateOrder,
			AggregateID:   order.ID,
			Actor: &outbox.ActorRef{
				UserID: userID,
				Role:   string(pkgAuth.RoleCustomer),
			},
			Data: payloads.OrderCreatedEvent{
				OrderID:       order.ID,
				UserID:        userID,
				Status:        order.Status,
				TotalAmount:   order.TotalAmount,
				CustomerName:  order.CustomerName,
				CustomerEmail: order.CustomerEmail,
				ItemCount:     len(lines),
				CreatedAt:     createdAt,
			},
			OccurredAt: createdAt,
		})
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "place order")
	}

	if s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"order_id":   order.ID.String(),
			"item_count": len(lines),
			"total":      order.TotalAmount.String(),
		})
		s.logg.Info(logCtx, "order placed")
	}

	return orders.FromModel(&order), nil
}
