package validators

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
	"github.com/shopspring/decimal"
)

// QueryInt parses an optional integer query parameter.
func QueryInt(values url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be an integer", key))
	}
	return &parsed, nil
}

// QueryDecimal parses an optional decimal query parameter.
func QueryDecimal(values url.Values, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	parsed, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s must be a number", key))
	}
	return &parsed, nil
}

// QueryString returns a trimmed optional string query parameter.
func QueryString(values url.Values, key string) *string {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil
	}
	return &raw
}
