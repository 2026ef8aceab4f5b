package wishlist

import (
	"time"

	"github.com/google/uuid"

	"github.com/bath14971-sudo/dom-car-finder/internal/catalog"
	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
)

// ToggleRequest flips the saved state of one car for the user.
type ToggleRequest struct {
	CarID uuid.UUID `json:"car_id" validate:"required"`
}

// ToggleResultDTO reports the state after the toggle.
type ToggleResultDTO struct {
	CarID uuid.UUID `json:"car_id"`
	Saved bool      `json:"saved"`
}

// WishlistItemDTO is a saved car joined with its listing.
type WishlistItemDTO struct {
	ID        uuid.UUID       `json:"id"`
	CarID     uuid.UUID       `json:"car_id"`
	Car       *catalog.CarDTO `json:"car,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func itemFromModel(item models.WishlistItem) WishlistItemDTO {
	return WishlistItemDTO{
		ID:        item.ID,
		CarID:     item.CarID,
		Car:       catalog.FromModel(item.Car),
		CreatedAt: item.CreatedAt,
	}
}
