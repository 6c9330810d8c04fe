package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/casavia/realty-system/internal/api/middleware"
	"github.com/casavia/realty-system/internal/core/domain"
	"github.com/casavia/realty-system/internal/core/ports"
)

type stubPropertyService struct {
	createFn func(domain.Identity, ports.CreatePropertyInput) (*domain.Property, error)
	searchFn func(domain.Identity, ports.PropertySearchFilter) ([]*domain.Property, error)
}

func (s *stubPropertyService) Create(_ context.Context, actor domain.Identity, in ports.CreatePropertyInput) (*domain.Property, error) {
	return s.createFn(actor, in)
}

func (s *stubPropertyService) Get(_ context.Context, _ domain.Identity, _ string) (*domain.Property, error) {
	return nil, domain.ErrPropertyNotFound
}

func (s *stubPropertyService) Search(_ context.Context, actor domain.Identity, filter ports.PropertySearchFilter) ([]*domain.Property, error) {
	return s.searchFn(actor, filter)
}

func (s *stubPropertyService) ListAll(_ context.Context, _ domain.Identity) ([]*domain.Property, error) {
	return nil, nil
}

func (s *stubPropertyService) Update(_ context.Context, _ domain.Identity, _ string, _ ports.UpdatePropertyInput) (*domain.Property, error) {
	return nil, domain.ErrPropertyNotFound
}

func (s *stubPropertyService) Delete(_ context.Context, _ domain.Identity, _ string) error {
	return domain.ErrPropertyNotFound
}

func (s *stubPropertyService) AttachImages(_ context.Context, _ domain.Identity, _ string, _ []ports.ImageUpload) ([]string, error) {
	return nil, nil
}

func TestPropertyHandler_Create_ActorForwarded(t *testing.T) {
	actor := domain.NewIdentity(&domain.User{ID: "u7", Email: "o@x.com", Role: domain.RolePropertyOwner})

	svc := &stubPropertyService{createFn: func(got domain.Identity, in ports.CreatePropertyInput) (*domain.Property, error) {
		if got.UserID != "u7" {
			t.Fatalf("actor = %+v, want u7", got)
		}
		if in.Type != domain.TypeHouse || in.Price != 250000 {
			t.Fatalf("input not forwarded: %+v", in)
		}
		return &domain.Property{ID: "p1", OwnerID: got.UserID, Type: in.Type, Status: domain.PropertyAvailable}, nil
	}}
	h := NewPropertyHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/properties",
		`{"address":"1 Main St","city":"Springfield","state":"IL","postal_code":"62701","price":250000,"bedrooms":3,"bathrooms":2,"type":"HOUSE"}`)
	c.Set(middleware.IdentityKey, actor)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestPropertyHandler_Create_RejectsUnknownType(t *testing.T) {
	h := NewPropertyHandler(&stubPropertyService{})

	c, _ := newTestContext(t, http.MethodPost, "/api/properties",
		`{"address":"1 Main St","city":"Springfield","state":"IL","postal_code":"62701","price":1,"type":"CASTLE"}`)

	err := h.Create(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPropertyHandler_Search_QueryFilters(t *testing.T) {
	svc := &stubPropertyService{searchFn: func(_ domain.Identity, filter ports.PropertySearchFilter) ([]*domain.Property, error) {
		if filter.City != "Springfield" || filter.Type != domain.TypeApartment {
			t.Fatalf("filter not bound: %+v", filter)
		}
		if filter.MinPrice != 100000 || filter.MinBedrooms != 2 {
			t.Fatalf("numeric filter not bound: %+v", filter)
		}
		return []*domain.Property{}, nil
	}}
	h := NewPropertyHandler(svc)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/properties?city=Springfield&type=APARTMENT&min_price=100000&min_bedrooms=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
