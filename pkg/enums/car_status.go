package enums

import "fmt"

// CarStatus is the storefront category badge attached to a listing.
type CarStatus string

const (
	CarStatusReady  CarStatus = "ready"
	CarStatusOnRoad CarStatus = "onroad"
	CarStatusLuxury CarStatus = "luxury"
	CarStatusPlate  CarStatus = "plate"
)

var validCarStatuses = []CarStatus{
	CarStatusReady,
	CarStatusOnRoad,
	CarStatusLuxury,
	CarStatusPlate,
}

// CarCategoryAll is the filter sentinel matching every status.
const CarCategoryAll = "all"

// String implements fmt.Stringer.
func (c CarStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CarStatus.
func (c CarStatus) IsValid() bool {
	for _, candidate := range validCarStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// Label returns the storefront display name for the status.
func (c CarStatus) Label() string {
	switch c {
	case CarStatusReady:
		return "Ready to Drive"
	case CarStatusOnRoad:
		return "On the Road"
	case CarStatusLuxury:
		return "Luxury"
	case CarStatusPlate:
		return "With Plate"
	default:
		return string(c)
	}
}

// ParseCarStatus converts raw input into a CarStatus.
func ParseCarStatus(value string) (CarStatus, error) {
	for _, candidate := range validCarStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid car status %q", value)
}
