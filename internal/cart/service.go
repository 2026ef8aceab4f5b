package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
)

// Service exposes business rules for cart management.
type Service interface {
	GetCart(ctx context.Context, userID uuid.UUID) (CartDTO, error)
	AddItem(ctx context.Context, userID, carID uuid.UUID) error
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error
	Clear(ctx context.Context, userID uuid.UUID) error
}

type cartRepository interface {
	AddItem(ctx context.Context, userID, carID uuid.UUID) error
	RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (int64, error)
	ListItems(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

type carFinder interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Car, error)
}

type service struct {
	cartRepo cartRepository
	cars     carFinder
}

// ServiceParams groups dependencies for the cart service.
type ServiceParams struct {
	CartRepo cartRepository
	CarRepo  carFinder
}

// NewService builds a cart service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.CartRepo == nil {
		return nil, fmt.Errorf("cart repository is required")
	}
	if params.CarRepo == nil {
		return nil, fmt.Errorf("car repository is required")
	}
	return &service{
		cartRepo: params.CartRepo,
		cars:     params.CarRepo,
	}, nil
}

// GetCart returns the cart lines with their computed total.
func (s *service) GetCart(ctx context.Context, userID uuid.UUID) (CartDTO, error) {
	items, err := s.cartRepo.ListItems(ctx, userID)
	if err != nil {
		return CartDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}

	dtos := make([]CartItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemFromModel(item))
	}

	return CartDTO{
		Items: dtos,
		Total: Total(items),
	}, nil
}

// AddItem ensures the car is on the storefront and adds it to the cart.
func (s *service) AddItem(ctx context.Context, userID, carID uuid.UUID) error {
	if carID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "car id is required")
	}
	if _, err := s.cars.FindActiveByID(ctx, carID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "car not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load car")
	}
	if err := s.cartRepo.AddItem(ctx, userID, carID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "add cart item")
	}
	return nil
}

// RemoveItem drops the cart line if the user owns it.
func (s *service) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) error {
	affected, err := s.cartRepo.RemoveItem(ctx, userID, itemID)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "remove cart item")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")
	}
	return nil
}

// Clear empties the user's cart.
func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "clear cart")
	}
	return nil
}
