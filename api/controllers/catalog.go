package controllers

import (
	"net/http"

	"github.com/bath14971-sudo/dom-car-finder/api/responses"
	"github.com/bath14971-sudo/dom-car-finder/api/validators"
	"github.com/bath14971-sudo/dom-car-finder/internal/catalog"
	"github.com/bath14971-sudo/dom-car-finder/pkg/logger"
)

// ListCars serves the storefront browse endpoint with filtering and sorting.
func ListCars(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		values := r.URL.Query()

		query := catalog.ListQuery{
			Query:    values.Get("query"),
			Category: values.Get("category"),
			Sort:     values.Get("sort"),
			FuelType: validators.QueryString(values, "fuel_type"),
			Color:    validators.QueryString(values, "color"),
		}

		var err error
		if query.YearMin, err = validators.QueryInt(values, "year_min"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if query.YearMax, err = validators.QueryInt(values, "year_max"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if query.PriceMin, err = validators.QueryDecimal(values, "price_min"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if query.PriceMax, err = validators.QueryDecimal(values, "price_max"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cars, err := svc.ListCars(r.Context(), query)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, cars)
	}
}

// GetCar serves one storefront listing and counts the view.
func GetCar(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		car, err := svc.GetCar(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, car)
	}
}
