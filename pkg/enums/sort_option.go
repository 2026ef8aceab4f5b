package enums

import "fmt"

// SortOption names the inventory orderings exposed to the storefront.
type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortYearDesc  SortOption = "year-desc"
	SortYearAsc   SortOption = "year-asc"
)

var validSortOptions = []SortOption{
	SortNewest,
	SortPriceAsc,
	SortPriceDesc,
	SortYearDesc,
	SortYearAsc,
}

// String implements fmt.Stringer.
func (s SortOption) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortOption.
func (s SortOption) IsValid() bool {
	for _, candidate := range validSortOptions {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortOption converts raw input into a SortOption, defaulting to newest
// for empty input.
func ParseSortOption(value string) (SortOption, error) {
	if value == "" {
		return SortNewest, nil
	}
	for _, candidate := range validSortOptions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort option %q", value)
}
