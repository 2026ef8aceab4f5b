package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bath14971-sudo/dom-car-finder/api/middleware"
	"github.com/bath14971-sudo/dom-car-finder/api/validators"
	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
	"github.com/bath14971-sudo/dom-car-finder/pkg/pagination"
)

// requestUserID extracts the authenticated user from the request context.
func requestUserID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid user id")
	}
	return id, nil
}

// pathID parses a UUID route parameter.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid "+name)
	}
	return id, nil
}

// paginationParams reads the cursor page inputs from the query string.
func paginationParams(r *http.Request) (pagination.Params, error) {
	values := r.URL.Query()
	limit, err := validators.QueryInt(values, "limit")
	if err != nil {
		return pagination.Params{}, err
	}

	params := pagination.Params{Cursor: values.Get("cursor")}
	if limit != nil {
		params.Limit = *limit
	}
	return params, nil
}
