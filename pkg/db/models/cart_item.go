package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem ties a single car to a shopper's cart. Quantity is fixed at one
// per listing since each car is a unique unit.
type CartItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_cart_items_user_car"`
	CarID     uuid.UUID `gorm:"column:car_id;type:uuid;not null;uniqueIndex:idx_cart_items_user_car"`
	Quantity  int       `gorm:"column:quantity;not null;default:1"`
	Car       *Car      `gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
