package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bath14971-sudo/dom-car-finder/internal/catalog"
	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
)

// OrderItemDTO is a line item with its price frozen at purchase time.
type OrderItemDTO struct {
	ID       uuid.UUID       `json:"id"`
	CarID    uuid.UUID       `json:"car_id"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Car      *catalog.CarDTO `json:"car,omitempty"`
}

// OrderDTO is the transport shape of an order and its lines.
type OrderDTO struct {
	ID            uuid.UUID         `json:"id"`
	UserID        uuid.UUID         `json:"user_id"`
	Status        enums.OrderStatus `json:"status"`
	TotalAmount   decimal.Decimal   `json:"total_amount"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	Phone         string            `json:"phone"`
	Address       string            `json:"address"`
	Notes         *string           `json:"notes,omitempty"`
	Items         []OrderItemDTO    `json:"items"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// OrdersPageDTO is an admin order page with its cursor.
type OrdersPageDTO struct {
	Items      []OrderDTO `json:"items"`
	NextCursor string     `json:"next_cursor,omitempty"`
	Total      int64      `json:"total"`
}

// UpdateStatusRequest moves an order along the fulfillment workflow.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func FromModel(order *models.Order) *OrderDTO {
	if order == nil {
		return nil
	}

	items := make([]OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemDTO{
			ID:       item.ID,
			CarID:    item.CarID,
			Quantity: item.Quantity,
			Price:    item.Price,
			Car:      catalog.FromModel(item.Car),
		})
	}

	return &OrderDTO{
		ID:            order.ID,
		UserID:        order.UserID,
		Status:        order.Status,
		TotalAmount:   order.TotalAmount,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Phone:         order.Phone,
		Address:       order.Address,
		Notes:         order.Notes,
		Items:         items,
		CreatedAt:     order.CreatedAt,
		UpdatedAt:     order.UpdatedAt,
	}
}

func fromModels(orders []models.Order) []OrderDTO {
	out := make([]OrderDTO, 0, len(orders))
	for i := range orders {
		out = append(out, *FromModel(&orders[i]))
	}
	return out
}
