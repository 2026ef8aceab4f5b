package validators

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type checkoutBody struct {
	Phone   string `json:"phone" validate:"required,min=6"`
	Address string `json:"address" validate:"required,min=5"`
	Notes   string `json:"notes" validate:"max=500"`
}

func TestDecodeJSONBodyValid(t *testing.T) {
	req := httptest.NewRequest("POST", "/checkout", strings.NewReader(`{"phone":"8095551234","address":"123 Main St","notes":""}`))

	var body checkoutBody
	require.NoError(t, DecodeJSONBody(req, &body))
	assert.Equal(t, "8095551234", body.Phone)
}

func TestDecodeJSONBodyUnknownField(t *testing.T) {
	req := httptest.NewRequest("POST", "/checkout", strings.NewReader(`{"phone":"8095551234","address":"123 Main St","extra":true}`))

	var body checkoutBody
	err := DecodeJSONBody(req, &body)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestDecodeJSONBodyFieldErrors(t *testing.T) {
	req := httptest.NewRequest("POST", "/checkout", strings.NewReader(`{"phone":"123","address":"abc"}`))

	var body checkoutBody
	err := DecodeJSONBody(req, &body)
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)

	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Equal(t, "must be at least 6", details["phone"])
	assert.Equal(t, "must be at least 5", details["address"])
}

func TestQueryHelpers(t *testing.T) {
	values := url.Values{}
	values.Set("yearMin", "2015")
	values.Set("priceMax", "45000.50")
	values.Set("color", " Black ")
	values.Set("badYear", "abc")

	year, err := QueryInt(values, "yearMin")
	require.NoError(t, err)
	require.NotNil(t, year)
	assert.Equal(t, 2015, *year)

	missing, err := QueryInt(values, "yearMax")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = QueryInt(values, "badYear")
	require.Error(t, err)

	price, err := QueryDecimal(values, "priceMax")
	require.NoError(t, err)
	require.NotNil(t, price)
	assert.Equal(t, "45000.5", price.String())

	color := QueryString(values, "color")
	require.NotNil(t, color)
	assert.Equal(t, "Black", *color)
	assert.Nil(t, QueryString(values, "fuelType"))
}
