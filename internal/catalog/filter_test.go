package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
)

func testCar(name, model, code string, year int, price int64, status enums.CarStatus) models.Car {
	return models.Car{
		ID:     uuid.New(),
		Code:   code,
		Name:   name,
		Model:  model,
		Year:   year,
		Price:  decimal.NewFromInt(price),
		Status: status,
	}
}

func carIDs(cars []models.Car) []string {
	ids := make([]string, 0, len(cars))
	for _, car := range cars {
		ids = append(ids, car.Code)
	}
	return ids
}

func assertOrder(t *testing.T, cars []models.Car, want ...string) {
	t.Helper()
	got := carIDs(cars)
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestFilterIdentityCase(t *testing.T) {
	cars := []models.Car{
		testCar("Toyota Camry SE", "Camry", "C1", 2020, 28000, enums.CarStatusReady),
		testCar("Honda Civic EX", "Civic", "C2", 2018, 22500, enums.CarStatusOnRoad),
	}

	out := Filter(cars, "", "all", Criteria{})
	assertOrder(t, out, "C1", "C2")
}

func TestFilterFreeTextSearch(t *testing.T) {
	cars := []models.Car{
		testCar("Toyota Camry SE", "Camry", "C1", 2020, 28000, enums.CarStatusReady),
		testCar("Honda Civic EX", "Civic", "C2", 2018, 22500, enums.CarStatusReady),
	}

	out := Filter(cars, "civic", "all", Criteria{})
	assertOrder(t, out, "C2")

	out = Filter(cars, "C1", "all", Criteria{})
	assertOrder(t, out, "C1")

	out = Filter(cars, "CAMRY", "all", Criteria{})
	assertOrder(t, out, "C1")
}

func TestFilterCategory(t *testing.T) {
	cars := []models.Car{
		testCar("A", "A", "C1", 2020, 1000, enums.CarStatusReady),
		testCar("B", "B", "C2", 2020, 1000, enums.CarStatusLuxury),
	}

	assertOrder(t, Filter(cars, "", "luxury", Criteria{}), "C2")
	assertOrder(t, Filter(cars, "", "all", Criteria{}), "C1", "C2")
	// Malformed category imposes no constraint.
	assertOrder(t, Filter(cars, "", "sedan", Criteria{}), "C1", "C2")
}

func TestFilterYearBoundsInclusive(t *testing.T) {
	cars := []models.Car{
		testCar("A", "A", "C1", 2017, 1000, enums.CarStatusReady),
		testCar("B", "B", "C2", 2019, 1000, enums.CarStatusReady),
		testCar("C", "C", "C3", 2021, 1000, enums.CarStatusReady),
	}

	min, max := 2017, 2019
	assertOrder(t, Filter(cars, "", "all", Criteria{YearMin: &min, YearMax: &max}), "C1", "C2")
	assertOrder(t, Filter(cars, "", "all", Criteria{YearMin: &max}), "C2", "C3")
}

func TestFilterExactMatches(t *testing.T) {
	diesel, petrol, red := "diesel", "petrol", "red"
	cars := []models.Car{
		testCar("A", "A", "C1", 2020, 1000, enums.CarStatusReady),
		testCar("B", "B", "C2", 2020, 1000, enums.CarStatusReady),
	}
	cars[0].FuelType = &diesel
	cars[0].Color = &red
	cars[1].FuelType = &petrol

	assertOrder(t, Filter(cars, "", "all", Criteria{FuelType: &diesel}), "C1")
	assertOrder(t, Filter(cars, "", "all", Criteria{Color: &red}), "C1")
	// A car with no recorded color cannot satisfy a color constraint.
	blue := "blue"
	assertOrder(t, Filter(cars, "", "all", Criteria{Color: &blue}))
}

func TestFilterPriceRange(t *testing.T) {
	cars := []models.Car{
		testCar("A", "A", "C1", 2020, 28000, enums.CarStatusReady),
		testCar("B", "B", "C2", 2018, 22500, enums.CarStatusReady),
		testCar("C", "C", "C3", 2021, 65000, enums.CarStatusReady),
	}

	crit := DefaultCriteria()
	assertOrder(t, Filter(cars, "", "all", crit), "C1", "C2", "C3")

	crit.PriceMin = decimal.NewFromInt(22500)
	crit.PriceMax = decimal.NewFromInt(28000)
	assertOrder(t, Filter(cars, "", "all", crit), "C1", "C2")
}

func TestSortPriceAscExample(t *testing.T) {
	cars := []models.Car{
		testCar("1", "1", "1", 2020, 28000, enums.CarStatusReady),
		testCar("2", "2", "2", 2018, 22500, enums.CarStatusReady),
		testCar("3", "3", "3", 2021, 65000, enums.CarStatusReady),
	}

	filtered := Filter(cars, "", "all", DefaultCriteria())
	assertOrder(t, Sort(filtered, enums.SortPriceAsc), "2", "1", "3")
}

func TestSortReversalWithUniquePrices(t *testing.T) {
	cars := []models.Car{
		testCar("1", "1", "1", 2020, 300, enums.CarStatusReady),
		testCar("2", "2", "2", 2018, 100, enums.CarStatusReady),
		testCar("3", "3", "3", 2021, 200, enums.CarStatusReady),
	}

	asc := Sort(cars, enums.SortPriceAsc)
	desc := Sort(cars, enums.SortPriceDesc)
	for i := range asc {
		if asc[i].Code != desc[len(desc)-1-i].Code {
			t.Fatalf("asc %v is not the reverse of desc %v", carIDs(asc), carIDs(desc))
		}
	}
}

func TestSortStability(t *testing.T) {
	cars := []models.Car{
		testCar("1", "1", "1", 2020, 100, enums.CarStatusReady),
		testCar("2", "2", "2", 2020, 100, enums.CarStatusReady),
		testCar("3", "3", "3", 2020, 100, enums.CarStatusReady),
	}

	assertOrder(t, Sort(cars, enums.SortPriceAsc), "1", "2", "3")
	assertOrder(t, Sort(cars, enums.SortYearDesc), "1", "2", "3")
	assertOrder(t, Sort(cars, enums.SortNewest), "1", "2", "3")
}

func TestSortDoesNotMutateInput(t *testing.T) {
	cars := []models.Car{
		testCar("1", "1", "1", 2020, 300, enums.CarStatusReady),
		testCar("2", "2", "2", 2018, 100, enums.CarStatusReady),
	}

	_ = Sort(cars, enums.SortPriceAsc)
	assertOrder(t, cars, "1", "2")
}

func TestFilterThenSortIdempotent(t *testing.T) {
	cars := []models.Car{
		testCar("1", "1", "1", 2020, 300, enums.CarStatusReady),
		testCar("2", "2", "2", 2018, 100, enums.CarStatusLuxury),
		testCar("3", "3", "3", 2021, 200, enums.CarStatusReady),
	}

	first := Sort(Filter(cars, "", "ready", DefaultCriteria()), enums.SortYearAsc)
	second := Sort(Filter(cars, "", "ready", DefaultCriteria()), enums.SortYearAsc)
	assertOrder(t, first, carIDs(second)...)
}
