package controllers

import (
	"net/http"

	"github.com/bath14971-sudo/dom-car-finder/api/responses"
	reportsvc "github.com/bath14971-sudo/dom-car-finder/internal/reports"
	"github.com/bath14971-sudo/dom-car-finder/pkg/logger"
)

// AdminReport serves the dashboard aggregation.
func AdminReport(svc reportsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.Report(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, report)
	}
}
