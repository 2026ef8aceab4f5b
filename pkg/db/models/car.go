package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
)

// Car represents a vehicle listing in the dealership inventory.
type Car struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code        string          `gorm:"column:code;not null;uniqueIndex"`
	Name        string          `gorm:"column:name;not null"`
	Model       string          `gorm:"column:model;not null"`
	Year        int             `gorm:"column:year;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Status      enums.CarStatus `gorm:"column:status;type:text;not null;default:'ready'"`
	Viewers     int             `gorm:"column:viewers;not null;default:0"`
	Image       *string         `gorm:"column:image"`
	Images      pq.StringArray  `gorm:"column:images;type:text[]"`
	BodyType    *string         `gorm:"column:body_type"`
	TaxStatus   *string         `gorm:"column:tax_status"`
	Condition   *string         `gorm:"column:condition"`
	FuelType    *string         `gorm:"column:fuel_type"`
	Color       *string         `gorm:"column:color"`
	Description pq.StringArray  `gorm:"column:description;type:text[]"`
	IsActive    bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
