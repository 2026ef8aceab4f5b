package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
)

// Repository encapsulates cart persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a cart repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// AddItem inserts a cart line and ignores duplicates, so adding the same car
// twice leaves exactly one row.
func (r *Repository) AddItem(ctx context.Context, userID, carID uuid.UUID) error {
	if userID == uuid.Nil || carID == uuid.Nil {
		return gorm.ErrInvalidValue
	}

	return r.db.WithContext(ctx).
		Exec(`INSERT INTO cart_items (user_id, car_id) VALUES (?, ?) ON CONFLICT (user_id, car_id) DO NOTHING`, userID, carID).
		Error
}

// RemoveItem deletes the line by id, scoped to the owner.
func (r *Repository) RemoveItem(ctx context.Context, userID, itemID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// ListItems returns the user's cart lines joined with their cars.
func (r *Repository) ListItems(ctx context.Context, userID uuid.UUID) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Car").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Clear drops every line for the user.
func (r *Repository) Clear(ctx context.Context, userID uuid.UUID) error {
	return r.ClearTx(r.db.WithContext(ctx), userID)
}

// ClearTx drops every line for the user inside an existing transaction, so
// checkout can empty the cart atomically with the order insert. A nil tx
// falls back to the repo's own connection.
func (r *Repository) ClearTx(tx *gorm.DB, userID uuid.UUID) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
