package checkout

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
	"github.com/bath14971-sudo/dom-car-finder/pkg/outbox"
	"github.com/bath14971-sudo/dom-car-finder/pkg/outbox/payloads"
)

type stubCartStore struct {
	items   []models.CartItem
	cleared bool
}

func (s *stubCartStore) ListItems(_ context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var out []models.CartItem
	for _, item := range s.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *stubCartStore) ClearTx(_ *gorm.DB, userID uuid.UUID) error {
	var kept []models.CartItem
	for _, item := range s.items {
		if item.UserID != userID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.cleared = true
	return nil
}

type stubOrderCreator struct {
	created *models.Order
}

func (s *stubOrderCreator) CreateOrder(_ *gorm.DB, order *models.Order) error {
	order.ID = uuid.New()
	for i := range order.Items {
		order.Items[i].ID = uuid.New()
		order.Items[i].OrderID = order.ID
	}
	s.created = order
	return nil
}

type stubUserFinder struct {
	user *models.User
}

func (s stubUserFinder) FindByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	if s.user != nil && s.user.ID == id {
		return s.user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubTxRunner struct{}

func (stubTxRunner) WithTx(_ context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

type capturingEmitter struct {
	events []outbox.DomainEvent
}

func (c *capturingEmitter) Emit(_ context.Context, _ *gorm.DB, event outbox.DomainEvent) error {
	c.events = append(c.events, event)
	return nil
}

func buildCheckoutService(t *testing.T, cart *stubCartStore, user *models.User) (Service, *stubOrderCreator, *capturingEmitter) {
	t.Helper()
	creator := &stubOrderCreator{}
	emitter := &capturingEmitter{}
	svc, err := NewService(ServiceParams{
		CartRepo:  cart,
		OrderRepo: creator,
		UserRepo:  stubUserFinder{user: user},
		Tx:        stubTxRunner{},
		Events:    emitter,
	})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}
	return svc, creator, emitter
}

func cartLine(userID uuid.UUID, price int64) models.CartItem {
	car := &models.Car{
		ID:       uuid.New(),
		Code:     "C-" + uuid.NewString()[:8],
		Price:    decimal.NewFromInt(price),
		Status:   enums.CarStatusReady,
		IsActive: true,
	}
	return models.CartItem{
		ID:       uuid.New(),
		UserID:   userID,
		CarID:    car.ID,
		Quantity: 1,
		Car:      car,
	}
}

func TestCheckoutPlacesPendingOrder(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "buyer@example.com", FullName: "Buyer One"}
	cart := &stubCartStore{items: []models.CartItem{
		cartLine(user.ID, 22500),
		cartLine(user.ID, 28000),
	}}
	svc, creator, emitter := buildCheckoutService(t, cart, user)

	dto, err := svc.Checkout(context.Background(), user.ID, CheckoutRequest{
		Phone:   "5551234",
		Address: "1 Main Street",
	})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if dto.Status != enums.OrderStatusPending {
		t.Fatalf("expected pending, got %s", dto.Status)
	}
	if !dto.TotalAmount.Equal(decimal.NewFromInt(50500)) {
		t.Fatalf("expected total 50500, got %s", dto.TotalAmount)
	}
	if dto.CustomerName != "Buyer One" || dto.CustomerEmail != "buyer@example.com" {
		t.Fatalf("expected customer fields from account, got %s / %s", dto.CustomerName, dto.CustomerEmail)
	}
	if len(dto.Items) != 2 {
		t.Fatalf("expected 2 line items, got %d", len(dto.Items))
	}
	if !cart.cleared {
		t.Fatal("expected cart cleared")
	}
	if creator.created == nil {
		t.Fatal("expected order persisted")
	}

	if len(emitter.events) != 1 {
		t.Fatalf("expected one event, got %d", len(emitter.events))
	}
	event := emitter.events[0]
	if event.EventType != enums.OutboxEventOrderCreated {
		t.Fatalf("unexpected event type %s", event.EventType)
	}
	payload, ok := event.Data.(payloads.OrderCreatedEvent)
	if !ok {
		t.Fatalf("unexpected payload type %T", event.Data)
	}
	if payload.ItemCount != 2 {
		t.Fatalf("expected item count 2, got %d", payload.ItemCount)
	}
}

func TestCheckoutSnapshotsPrices(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "buyer@example.com", FullName: "Buyer One"}
	line := cartLine(user.ID, 30000)
	cart := &stubCartStore{items: []models.CartItem{line}}
	svc, creator, _ := buildCheckoutService(t, cart, user)

	if _, err := svc.Checkout(context.Background(), user.ID, CheckoutRequest{
		Phone:   "5551234",
		Address: "1 Main Street",
	}); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	// A later catalog price change must not touch the snapshot.
	line.Car.Price = decimal.NewFromInt(99999)
	if !creator.created.Items[0].Price.Equal(decimal.NewFromInt(30000)) {
		t.Fatalf("expected snapshotted price 30000, got %s", creator.created.Items[0].Price)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	user := &models.User{ID: uuid.New(), Email: "buyer@example.com", FullName: "Buyer One"}
	svc, _, emitter := buildCheckoutService(t, &stubCartStore{}, user)

	_, err := svc.Checkout(context.Background(), user.ID, CheckoutRequest{
		Phone:   "5551234",
		Address: "1 Main Street",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(emitter.events) != 0 {
		t.Fatalf("expected no events, got %d", len(emitter.events))
	}
}

func TestCheckoutUnknownUser(t *testing.T) {
	svc, _, _ := buildCheckoutService(t, &stubCartStore{}, nil)

	_, err := svc.Checkout(context.Background(), uuid.New(), CheckoutRequest{
		Phone:   "5551234",
		Address: "1 Main Street",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
