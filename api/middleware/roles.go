package middleware

import (
	"net/http"

	"github.com/bath14971-sudo/dom-car-finder/api/responses"
	"github.com/bath14971-sudo/dom-car-finder/internal/admins"
	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
	"github.com/bath14971-sudo/dom-car-finder/pkg/logger"
)

// RequireAdmin gates back-office routes on an explicit capability decision.
// A pending decision fails closed but surfaces as a dependency error so
// clients can retry; only an explicit denial returns forbidden.
func RequireAdmin(checker admins.Checker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			userID := UserIDFromContext(ctx)
			if userID == "" {
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			decision, err := checker.Check(ctx, userID)
			if err != nil {
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "verify admin access"))
				return
			}

			switch decision {
			case admins.DecisionAuthorized:
				next.ServeHTTP(w, r)
			case admins.DecisionDenied:
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin access required"))
			default:
				responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeDependency, "admin access could not be verified"))
			}
		})
	}
}
