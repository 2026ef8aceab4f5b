package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/bath14971-sudo/dom-car-finder/api/middleware"
	cartsvc "github.com/bath14971-sudo/dom-car-finder/internal/cart"
	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
)

type stubCartService struct {
	added   []uuid.UUID
	removed []uuid.UUID
	cart    cartsvc.CartDTO
	err     error
}

func (s *stubCartService) GetCart(context.Context, uuid.UUID) (cartsvc.CartDTO, error) {
	return s.cart, nil
}

func (s *stubCartService) AddItem(_ context.Context, _, carID uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.added = append(s.added, carID)
	return nil
}

func (s *stubCartService) RemoveItem(_ context.Context, _, itemID uuid.UUID) error {
	if s.err != nil {
		return s.err
	}
	s.removed = append(s.removed, itemID)
	return nil
}

func (s *stubCartService) Clear(context.Context, uuid.UUID) error {
	return s.err
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(middleware.WithUserID(req.Context(), uuid.NewString()))
}

func TestAddCartItemCreated(t *testing.T) {
	svc := &stubCartService{}
	handler := AddCartItem(svc, nil)

	carID := uuid.New()
	req := authedRequest(http.MethodPost, "/api/cart/items", `{"car_id":"`+carID.String()+`"}`)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if len(svc.added) != 1 || svc.added[0] != carID {
		t.Fatalf("expected add of %s, got %v", carID, svc.added)
	}
}

func TestAddCartItemRequiresAuth(t *testing.T) {
	handler := AddCartItem(&stubCartService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader(`{"car_id":"`+uuid.NewString()+`"}`))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAddCartItemRejectsMissingCar(t *testing.T) {
	handler := AddCartItem(&stubCartService{}, nil)

	req := authedRequest(http.MethodPost, "/api/cart/items", `{}`)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestRemoveCartItemNotFound(t *testing.T) {
	svc := &stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "cart item not found")}
	handler := RemoveCartItem(svc, nil)

	req := withURLParam(authedRequest(http.MethodDelete, "/api/cart/items/x", ""), "id", uuid.NewString())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
