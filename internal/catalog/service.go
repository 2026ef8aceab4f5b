package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/bath14971-sudo/dom-car-finder/pkg/db"
	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
	"github.com/bath14971-sudo/dom-car-finder/pkg/logger"
	"github.com/bath14971-sudo/dom-car-finder/pkg/pagination"
)

// Service exposes the storefront catalog and the admin inventory operations.
type Service interface {
	ListCars(ctx context.Context, query ListQuery) ([]CarDTO, error)
	GetCar(ctx context.Context, id uuid.UUID) (*CarDTO, error)
	CreateCar(ctx context.Context, req CreateCarRequest) (*CarDTO, error)
	UpdateCar(ctx context.Context, id uuid.UUID, req UpdateCarRequest) (*CarDTO, error)
	DeleteCar(ctx context.Context, id uuid.UUID) error
	AdminListCars(ctx context.Context, params pagination.Params) (CarsPageDTO, error)
	AdminGetCar(ctx context.Context, id uuid.UUID) (*CarDTO, error)
}

type carRepository interface {
	ListActive(ctx context.Context) ([]models.Car, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Car, error)
	FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Car, error)
	IncrementViewers(ctx context.Context, id uuid.UUID) error
	Create(ctx context.Context, car *models.Car) error
	Save(ctx context.Context, car *models.Car) error
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
	AdminList(ctx context.Context, params pagination.Params) ([]models.Car, string, int64, error)
}

type service struct {
	cars carRepository
	logg *logger.Logger
}

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	CarRepo carRepository
	Logger  *logger.Logger
}

// NewService builds a catalog service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.CarRepo == nil {
		return nil, fmt.Errorf("car repository is required")
	}
	return &service{
		cars: params.CarRepo,
		logg: params.Logger,
	}, nil
}

// ListCars fetches the active inventory and evaluates the filter engine over
// it server-side. Malformed filter inputs impose no constraint.
func (s *service) ListCars(ctx context.Context, query ListQuery) ([]CarDTO, error) {
	cars, err := s.cars.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list cars")
	}

	criteria := DefaultCriteria()
	criteria.YearMin = query.YearMin
	criteria.YearMax = query.YearMax
	criteria.FuelType = query.FuelType
	criteria.Color = query.Color
	if query.PriceMin != nil {
		criteria.PriceMin = *query.PriceMin
	}
	if query.PriceMax != nil {
		criteria.PriceMax = *query.PriceMax
	}

	sortOption, err := enums.ParseSortOption(query.Sort)
	if err != nil {
		sortOption = enums.SortNewest
	}

	filtered := Filter(cars, query.Query, query.Category, criteria)
	return fromModels(Sort(filtered, sortOption)), nil
}

// GetCar loads a storefront-visible listing and bumps its view counter. The
// counter write is best effort and never fails the read.
func (s *service) GetCar(ctx context.Context, id uuid.UUID) (*CarDTO, error) {
	car, err := s.cars.FindActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "car not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load car")
	}

	if err := s.cars.IncrementViewers(ctx, id); err != nil {
		if s.logg != nil {
			s.logg.Warn(s.logg.WithCarID(ctx, id.String()), "viewer count increment failed")
		}
	} else {
		car.Viewers++
	}

	return FromModel(car), nil
}

func (s *service) CreateCar(ctx context.Context, req CreateCarRequest) (*CarDTO, error) {
	status, err := enums.ParseCarStatus(req.Status)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"status": "must be one of ready, onroad, luxury, plate"})
	}
	if req.Price.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"price": "must not be negative"})
	}

	car := &models.Car{
		Code:        req.Code,
		Name:        req.Name,
		Model:       req.Model,
		Year:        req.Year,
		Price:       req.Price,
		Status:      status,
		Image:       req.Image,
		Images:      pq.StringArray(req.Images),
		BodyType:    req.BodyType,
		TaxStatus:   req.TaxStatus,
		Condition:   req.Condition,
		FuelType:    req.FuelType,
		Color:       req.Color,
		Description: pq.StringArray(req.Description),
		IsActive:    true,
	}

	if err := s.cars.Create(ctx, car); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "inventory code already in use")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create car")
	}

	return FromModel(car), nil
}

func (s *service) UpdateCar(ctx context.Context, id uuid.UUID, req UpdateCarRequest) (*CarDTO, error) {
	car, err := s.cars.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "car not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load car")
	}

	if req.Status != nil {
		status, err := enums.ParseCarStatus(*req.Status)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"status": "must be one of ready, onroad, luxury, plate"})
		}
		car.Status = status
	}
	if req.Price != nil {
		if req.Price.IsNegative() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"price": "must not be negative"})
		}
		car.Price = *req.Price
	}
	if req.Name != nil {
		car.Name = *req.Name
	}
	if req.Model != nil {
		car.Model = *req.Model
	}
	if req.Year != nil {
		car.Year = *req.Year
	}
	if req.Image != nil {
		car.Image = req.Image
	}
	if req.Images != nil {
		car.Images = pq.StringArray(req.Images)
	}
	if req.BodyType != nil {
		car.BodyType = req.BodyType
	}
	if req.TaxStatus != nil {
		car.TaxStatus = req.TaxStatus
	}
	if req.Condition != nil {
		car.Condition = req.Condition
	}
	if req.FuelType != nil {
		car.FuelType = req.FuelType
	}
	if req.Color != nil {
		car.Color = req.Color
	}
	if req.Description != nil {
		car.Description = pq.StringArray(req.Description)
	}
	if req.IsActive != nil {
		car.IsActive = *req.IsActive
	}

	if err := s.cars.Save(ctx, car); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "update car")
	}

	return FromModel(car), nil
}

func (s *service) DeleteCar(ctx context.Context, id uuid.UUID) error {
	affected, err := s.cars.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "delete car")
	}
	if affected == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, "car not found")
	}
	return nil
}

func (s *service) AdminListCars(ctx context.Context, params pagination.Params) (CarsPageDTO, error) {
	cars, nextCursor, total, err := s.cars.AdminList(ctx, params)
	if err != nil {
		return CarsPageDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list inventory")
	}
	return CarsPageDTO{
		Items:      fromModels(cars),
		NextCursor: nextCursor,
		Total:      total,
	}, nil
}

func (s *service) AdminGetCar(ctx context.Context, id uuid.UUID) (*CarDTO, error) {
	car, err := s.cars.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "car not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load car")
	}
	return FromModel(car), nil
}
