package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	"github.com/bath14971-sudo/dom-car-finder/pkg/pagination"
)

// Repository encapsulates car persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a catalog repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListActive returns every active listing, newest first. The storefront filter
// engine runs over this list in memory.
func (r *Repository) ListActive(ctx context.Context) ([]models.Car, error) {
	var cars []models.Car
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").Order("id DESC").
		Find(&cars).Error
	if err != nil {
		return nil, err
	}
	return cars, nil
}

// FindByID loads a listing regardless of its active flag.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).First(&car, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

// FindActiveByID loads a listing visible to the storefront.
func (r *Repository) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Car, error) {
	var car models.Car
	if err := r.db.WithContext(ctx).First(&car, "id = ? AND is_active = ?", id, true).Error; err != nil {
		return nil, err
	}
	return &car, nil
}

// IncrementViewers bumps the view counter without touching updated_at.
func (r *Repository) IncrementViewers(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&models.Car{}).
		Where("id = ?", id).
		UpdateColumn("viewers", gorm.Expr("viewers + 1")).
		Error
}

// Create inserts a new listing.
func (r *Repository) Create(ctx context.Context, car *models.Car) error {
	return r.db.WithContext(ctx).Create(car).Error
}

// Save persists the full listing state.
func (r *Repository) Save(ctx context.Context, car *models.Car) error {
	return r.db.WithContext(ctx).Save(car).Error
}

// Delete hard-removes a listing. Cart and wishlist rows cascade with it.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Car{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// AdminList pages through the full inventory including inactive listings.
func (r *Repository) AdminList(ctx context.Context, params pagination.Params) ([]models.Car, string, int64, error) {
	normalizedLimit := pagination.NormalizeLimit(params.Limit)
	decodedCursor, err := pagination.ParseCursor(strings.TrimSpace(params.Cursor))
	if err != nil {
		return nil, "", 0, err
	}

	query := r.db.WithContext(ctx).Model(&models.Car{})
	if decodedCursor != nil {
		query = query.Where("(created_at < ?) OR (created_at = ? AND id < ?)",
			decodedCursor.CreatedAt, decodedCursor.CreatedAt, decodedCursor.ID)
	}

	var cars []models.Car
	err = query.
		Order("created_at DESC").Order("id DESC").
		Limit(pagination.LimitWithBuffer(params.Limit)).
		Find(&cars).Error
	if err != nil {
		return nil, "", 0, err
	}

	nextCursor := ""
	if len(cars) > normalizedLimit {
		cars = cars[:normalizedLimit]
		last := cars[len(cars)-1]
		nextCursor = pagination.EncodeCursor(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Car{}).Count(&total).Error; err != nil {
		return nil, "", 0, err
	}

	return cars, nextCursor, total, nil
}
