package checkout

import (
	"gorm.io/gorm"

	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
)

// Repository persists orders produced by checkout.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a checkout repository bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateOrder inserts the order and its line items inside the transaction. A
// nil tx falls back to the repo's own connection.
func (r *Repository) CreateOrder(tx *gorm.DB, order *models.Order) error {
	if tx == nil {
		tx = r.db
	}
	return tx.Create(order).Error
}
