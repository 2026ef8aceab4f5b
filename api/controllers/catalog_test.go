package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bath14971-sudo/dom-car-finder/internal/catalog"
	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
	"github.com/bath14971-sudo/dom-car-finder/pkg/pagination"
)

type stubCatalogService struct {
	listQuery catalog.ListQuery
	cars      []catalog.CarDTO
	car       *catalog.CarDTO
	err       error
}

func (s *stubCatalogService) ListCars(_ context.Context, query catalog.ListQuery) ([]catalog.CarDTO, error) {
	s.listQuery = query
	return s.cars, s.err
}

func (s *stubCatalogService) GetCar(context.Context, uuid.UUID) (*catalog.CarDTO, error) {
	return s.car, s.err
}

func (s *stubCatalogService) CreateCar(context.Context, catalog.CreateCarRequest) (*catalog.CarDTO, error) {
	return s.car, s.err
}

func (s *stubCatalogService) UpdateCar(context.Context, uuid.UUID, catalog.UpdateCarRequest) (*catalog.CarDTO, error) {
	return s.car, s.err
}

func (s *stubCatalogService) DeleteCar(context.Context, uuid.UUID) error {
	return s.err
}

func (s *stubCatalogService) AdminListCars(context.Context, pagination.Params) (catalog.CarsPageDTO, error) {
	return catalog.CarsPageDTO{Items: s.cars}, s.err
}

func (s *stubCatalogService) AdminGetCar(context.Context, uuid.UUID) (*catalog.CarDTO, error) {
	return s.car, s.err
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestListCarsParsesFilters(t *testing.T) {
	svc := &stubCatalogService{cars: []catalog.CarDTO{{ID: uuid.New()}}}
	handler := ListCars(svc, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/api/cars?query=civic&category=ready&sort=price-asc&year_min=2020&year_max=2024&fuel_type=hybrid&price_max=30000", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.listQuery.Query != "civic" || svc.listQuery.Category != "ready" || svc.listQuery.Sort != "price-asc" {
		t.Fatalf("unexpected query %+v", svc.listQuery)
	}
	if svc.listQuery.YearMin == nil || *svc.listQuery.YearMin != 2020 {
		t.Fatalf("expected year_min 2020, got %+v", svc.listQuery.YearMin)
	}
	if svc.listQuery.YearMax == nil || *svc.listQuery.YearMax != 2024 {
		t.Fatalf("expected year_max 2024, got %+v", svc.listQuery.YearMax)
	}
	if svc.listQuery.FuelType == nil || *svc.listQuery.FuelType != "hybrid" {
		t.Fatalf("expected fuel_type hybrid, got %+v", svc.listQuery.FuelType)
	}
	if svc.listQuery.PriceMax == nil || !svc.listQuery.PriceMax.Equal(decimal.NewFromInt(30000)) {
		t.Fatalf("expected price_max 30000, got %+v", svc.listQuery.PriceMax)
	}
	if svc.listQuery.PriceMin != nil {
		t.Fatalf("expected unset price_min, got %+v", svc.listQuery.PriceMin)
	}
}

func TestListCarsRejectsBadYear(t *testing.T) {
	handler := ListCars(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/cars?year_min=twenty", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetCarNotFound(t *testing.T) {
	svc := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeNotFound, "car not found")}
	handler := GetCar(svc, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/cars/x", nil), "id", uuid.NewString())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestGetCarInvalidID(t *testing.T) {
	handler := GetCar(&stubCatalogService{}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/cars/nope", nil), "id", "nope")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestGetCarSuccess(t *testing.T) {
	car := &catalog.CarDTO{ID: uuid.New(), Name: "Toyota Camry"}
	handler := GetCar(&stubCatalogService{car: car}, nil)

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/cars/x", nil), "id", car.ID.String())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data catalog.CarDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.ID != car.ID {
		t.Fatalf("unexpected car id %s", envelope.Data.ID)
	}
}
