package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem marks a car a shopper has saved for later.
type WishlistItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_wishlist_items_user_car"`
	CarID     uuid.UUID `gorm:"column:car_id;type:uuid;not null;uniqueIndex:idx_wishlist_items_user_car"`
	Car       *Car      `gorm:"foreignKey:CarID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
