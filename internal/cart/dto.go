package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bath14971-sudo/dom-car-finder/internal/catalog"
	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
)

// AddItemRequest adds one car to the shopper's cart.
type AddItemRequest struct {
	CarID uuid.UUID `json:"car_id" validate:"required"`
}

// CartItemDTO is a cart line joined with its car.
type CartItemDTO struct {
	ID        uuid.UUID       `json:"id"`
	CarID     uuid.UUID       `json:"car_id"`
	Quantity  int             `json:"quantity"`
	Car       *catalog.CarDTO `json:"car,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

// CartDTO is the full cart with its computed total.
type CartDTO struct {
	Items []CartItemDTO   `json:"items"`
	Total decimal.Decimal `json:"total"`
}

func itemFromModel(item models.CartItem) CartItemDTO {
	return CartItemDTO{
		ID:        item.ID,
		CarID:     item.CarID,
		Quantity:  item.Quantity,
		Car:       catalog.FromModel(item.Car),
		CreatedAt: item.CreatedAt,
	}
}

// Total sums price times quantity over the cart lines. Quantity is fixed at
// one on insert, but historical rows keep whatever they were written with.
func Total(items []models.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if item.Car == nil {
			continue
		}
		total = total.Add(item.Car.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
