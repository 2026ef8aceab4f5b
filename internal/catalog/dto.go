package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
)

// CarDTO is the storefront transport shape of a listing.
type CarDTO struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Model       string          `json:"model"`
	Year        int             `json:"year"`
	Price       decimal.Decimal `json:"price"`
	Status      enums.CarStatus `json:"status"`
	StatusLabel string          `json:"status_label"`
	Viewers     int             `json:"viewers"`
	Image       *string         `json:"image,omitempty"`
	Images      []string        `json:"images"`
	BodyType    *string         `json:"body_type,omitempty"`
	TaxStatus   *string         `json:"tax_status,omitempty"`
	Condition   *string         `json:"condition,omitempty"`
	FuelType    *string         `json:"fuel_type,omitempty"`
	Color       *string         `json:"color,omitempty"`
	Description []string        `json:"description"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// CarsPageDTO is an admin inventory page with its cursor.
type CarsPageDTO struct {
	Items      []CarDTO `json:"items"`
	NextCursor string   `json:"next_cursor,omitempty"`
	Total      int64    `json:"total"`
}

// ListQuery carries the storefront browse parameters.
type ListQuery struct {
	Query    string
	Category string
	Sort     string
	YearMin  *int
	YearMax  *int
	FuelType *string
	Color    *string
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
}

// CreateCarRequest is the admin payload for a new listing.
type CreateCarRequest struct {
	Code        string          `json:"code" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Model       string          `json:"model" validate:"required"`
	Year        int             `json:"year" validate:"required,gte=1900,lte=2100"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status" validate:"required"`
	Image       *string         `json:"image"`
	Images      []string        `json:"images"`
	BodyType    *string         `json:"body_type"`
	TaxStatus   *string         `json:"tax_status"`
	Condition   *string         `json:"condition"`
	FuelType    *string         `json:"fuel_type"`
	Color       *string         `json:"color"`
	Description []string        `json:"description"`
}

// UpdateCarRequest mutates a listing; nil fields are left untouched.
type UpdateCarRequest struct {
	Name        *string          `json:"name"`
	Model       *string          `json:"model"`
	Year        *int             `json:"year" validate:"omitempty,gte=1900,lte=2100"`
	Price       *decimal.Decimal `json:"price"`
	Status      *string          `json:"status"`
	Image       *string          `json:"image"`
	Images      []string         `json:"images"`
	BodyType    *string          `json:"body_type"`
	TaxStatus   *string          `json:"tax_status"`
	Condition   *string          `json:"condition"`
	FuelType    *string          `json:"fuel_type"`
	Color       *string          `json:"color"`
	Description []string         `json:"description"`
	IsActive    *bool            `json:"is_active"`
}

func FromModel(car *models.Car) *CarDTO {
	if car == nil {
		return nil
	}

	return &CarDTO{
		ID:          car.ID,
		Code:        car.Code,
		Name:        car.Name,
		Model:       car.Model,
		Year:        car.Year,
		Price:       car.Price,
		Status:      car.Status,
		StatusLabel: car.Status.Label(),
		Viewers:     car.Viewers,
		Image:       car.Image,
		Images:      append([]string{}, car.Images...),
		BodyType:    car.BodyType,
		TaxStatus:   car.TaxStatus,
		Condition:   car.Condition,
		FuelType:    car.FuelType,
		Color:       car.Color,
		Description: append([]string{}, car.Description...),
		IsActive:    car.IsActive,
		CreatedAt:   car.CreatedAt,
		UpdatedAt:   car.UpdatedAt,
	}
}

func fromModels(cars []models.Car) []CarDTO {
	out := make([]CarDTO, 0, len(cars))
	for i := range cars {
		out = append(out, *FromModel(&cars[i]))
	}
	return out
}
