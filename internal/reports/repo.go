package reports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
)

// OrderSummaryRow is the minimal projection the report aggregation needs.
type OrderSummaryRow struct {
	ID          uuid.UUID         `gorm:"column:id"`
	Status      enums.OrderStatus `gorm:"column:status"`
	TotalAmount decimal.Decimal   `gorm:"column:total_amount"`
	CreatedAt   time.Time         `gorm:"column:created_at"`
}

// Repository reads order projections for the admin dashboard.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a reports repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// ListSummaries returns one row per order. Aggregation happens in the service
// so the report math stays database agnostic.
func (r *Repository) ListSummaries(ctx context.Context) ([]OrderSummaryRow, error) {
	var rows []OrderSummaryRow
	err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Select("id", "status", "total_amount", "created_at").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Recent returns the latest orders with their lines.
func (r *Repository) Recent(ctx context.Context, limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Car").
		Order("created_at DESC").Order("id DESC").
		Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
