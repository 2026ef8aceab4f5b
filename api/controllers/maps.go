package controllers

import (
	"net/http"
	"strings"

	"github.com/bath14971-sudo/dom-car-finder/api/responses"
	"github.com/bath14971-sudo/dom-car-finder/pkg/config"
	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
	"github.com/bath14971-sudo/dom-car-finder/pkg/logger"
)

// MapsKey hands the browser the maps API key for the dealership locator.
func MapsKey(cfg config.GoogleMapsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimSpace(cfg.APIKey) == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeDependency, "maps key is not configured"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"api_key": cfg.APIKey})
	}
}
