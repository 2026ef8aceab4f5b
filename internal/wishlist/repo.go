package wishlist

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
)

// Repository encapsulates wishlist persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a wishlist repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Toggle adds the car to the wishlist, or removes it when already present.
// Returns true when the car ended up saved.
func (r *Repository) Toggle(ctx context.Context, userID, carID uuid.UUID) (bool, error) {
	if userID == uuid.Nil || carID == uuid.Nil {
		return false, gorm.ErrInvalidValue
	}

	insert := r.db.WithContext(ctx).
		Exec(`INSERT INTO wishlist_items (user_id, car_id) VALUES (?, ?) ON CONFLICT (user_id, car_id) DO NOTHING`, userID, carID)
	if insert.Error != nil {
		return false, insert.Error
	}
	if insert.RowsAffected > 0 {
		return true, nil
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND car_id = ?", userID, carID).
		Delete(&models.WishlistItem{}).
		Error
	return false, err
}

// ListItems returns the user's saved cars, newest first.
func (r *Repository) ListItems(ctx context.Context, userID uuid.UUID) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
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

// ListCarIDs returns only the saved car IDs, for badge state on listings.
func (r *Repository) ListCarIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&models.WishlistItem{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("car_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}
