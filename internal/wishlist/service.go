package wishlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
)

// Service exposes business rules for wishlist management.
type Service interface {
	GetWishlist(ctx context.Context, userID uuid.UUID) ([]WishlistItemDTO, error)
	GetWishlistIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Toggle(ctx context.Context, userID, carID uuid.UUID) (ToggleResultDTO, error)
}

type wishlistRepository interface {
	Toggle(ctx context.Context, userID, carID uuid.UUID) (bool, error)
	ListItems(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error)
	ListCarIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type carFinder interface {
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Car, error)
}

type service struct {
	wishlistRepo wishlistRepository
	cars         carFinder
}

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	WishlistRepo wishlistRepository
	CarRepo      carFinder
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.WishlistRepo == nil {
		return nil, fmt.Errorf("wishlist repository is required")
	}
	if params.CarRepo == nil {
		return nil, fmt.Errorf("car repository is required")
	}
	return &service{
		wishlistRepo: params.WishlistRepo,
		cars:         params.CarRepo,
	}, nil
}

// GetWishlist returns the user's saved cars.
func (s *service) GetWishlist(ctx context.Context, userID uuid.UUID) ([]WishlistItemDTO, error) {
	items, err := s.wishlistRepo.ListItems(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load wishlist")
	}

	dtos := make([]WishlistItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, itemFromModel(item))
	}
	return dtos, nil
}

// GetWishlistIDs returns the saved car IDs only.
func (s *service) GetWishlistIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.wishlistRepo.ListCarIDs(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load wishlist ids")
	}
	return ids, nil
}

// Toggle ensures the car exists, then flips its saved state.
func (s *service) Toggle(ctx context.Context, userID, carID uuid.UUID) (ToggleResultDTO, error) {
	if carID == uuid.Nil {
		return ToggleResultDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "car id is required")
	}
	if _, err := s.cars.FindActiveByID(ctx, carID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ToggleResultDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "car not found")
		}
		return ToggleResultDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load car")
	}

	saved, err := s.wishlistRepo.Toggle(ctx, userID, carID)
	if err != nil {
		return ToggleResultDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "toggle wishlist item")
	}
	return ToggleResultDTO{CarID: carID, Saved: saved}, nil
}
