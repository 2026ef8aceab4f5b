package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
)

// DefaultPriceCeiling bounds the price range filter when the caller does not
// supply an upper limit.
var DefaultPriceCeiling = decimal.NewFromInt(100000)

// Criteria holds the storefront filter dimensions. Unset fields impose no
// constraint; all set fields combine with AND.
type Criteria struct {
	YearMin  *int
	YearMax  *int
	FuelType *string
	Color    *string
	PriceMin decimal.Decimal
	PriceMax decimal.Decimal
}

// DefaultCriteria returns the unconstrained criteria with the standard price
// bounds applied.
func DefaultCriteria() Criteria {
	return Criteria{
		PriceMin: decimal.Zero,
		PriceMax: DefaultPriceCeiling,
	}
}

// Filter returns the subset of cars matching the search string, category, and
// criteria. The input slice is never mutated and relative order is preserved.
func Filter(cars []models.Car, query, category string, criteria Criteria) []models.Car {
	needle := strings.ToLower(strings.TrimSpace(query))

	matched := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if !matchesQuery(car, needle) {
			continue
		}
		if !matchesCategory(car, category) {
			continue
		}
		if !criteria.matches(car) {
			continue
		}
		matched = append(matched, car)
	}
	return matched
}

// Sort orders the cars by the given option. The result is a new slice; ties
// keep the relative order of the input (stable sort). The newest option is the
// input order itself, which the repository already returns newest first.
func Sort(cars []models.Car, option enums.SortOption) []models.Car {
	out := make([]models.Car, len(cars))
	copy(out, cars)

	switch option {
	case enums.SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.LessThan(out[j].Price)
		})
	case enums.SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price.GreaterThan(out[j].Price)
		})
	case enums.SortYearDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Year > out[j].Year
		})
	case enums.SortYearAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Year < out[j].Year
		})
	}
	return out
}

func matchesQuery(car models.Car, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(car.Name), needle) ||
		strings.Contains(strings.ToLower(car.Model), needle) ||
		strings.Contains(strings.ToLower(car.Code), needle)
}

// matchesCategory treats anything that is not a valid status as the "all"
// sentinel, so a malformed category imposes no constraint.
func matchesCategory(car models.Car, category string) bool {
	status := enums.CarStatus(category)
	if !status.IsValid() {
		return true
	}
	return car.Status == status
}

func (c Criteria) matches(car models.Car) bool {
	if c.YearMin != nil && car.Year < *c.YearMin {
		return false
	}
	if c.YearMax != nil && car.Year > *c.YearMax {
		return false
	}
	if c.FuelType != nil && !matchesExact(car.FuelType, *c.FuelType) {
		return false
	}
	if c.Color != nil && !matchesExact(car.Color, *c.Color) {
		return false
	}
	if c.PriceMin.IsPositive() && car.Price.LessThan(c.PriceMin) {
		return false
	}
	if c.PriceMax.IsPositive() && car.Price.GreaterThan(c.PriceMax) {
		return false
	}
	return true
}

func matchesExact(field *string, want string) bool {
	if strings.TrimSpace(want) == "" {
		return true
	}
	return field != nil && *field == want
}
