package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/casavia/realty-system/internal/core/domain"
	"github.com/casavia/realty-system/internal/core/ports"
)

type stubAuthService struct {
	registered *domain.User
	registerFn func(ports.RegisterInput) (*domain.User, error)
	loginFn    func(email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
	if s.registerFn != nil {
		return s.registerFn(in)
	}
	return s.registered, nil
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	if s.loginFn != nil {
		return s.loginFn(email, password)
	}
	return "", nil, domain.ErrInvalidCredentials
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{registerFn: func(in ports.RegisterInput) (*domain.User, error) {
		if in.Email != "alice@x.com" || in.Name != "Alice" {
			t.Fatalf("input not forwarded: %+v", in)
		}
		return &domain.User{ID: "u1", Name: in.Name, Email: in.Email, Role: domain.RoleCustomer}, nil
	}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/register",
		`{"name":"Alice","email":"alice@x.com","password":"hunter2hunter2"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		User *domain.User `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User == nil || resp.User.ID != "u1" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatal("response must not leak password material")
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := map[string]string{
		"missing email":  `{"name":"Alice","password":"hunter2hunter2"}`,
		"bad email":      `{"name":"Alice","email":"nope","password":"hunter2hunter2"}`,
		"short password": `{"name":"Alice","email":"alice@x.com","password":"pw"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestContext(t, http.MethodPost, "/api/users/register", body)
			err := h.Register(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 HTTPError, got %v", err)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{loginFn: func(email, password string) (string, *domain.User, error) {
		if email != "alice@x.com" || password != "hunter2hunter2" {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "tok123", &domain.User{ID: "u1", Email: email, Role: domain.RoleCustomer}, nil
	}}
	h := NewAuthHandler(svc)

	c, rec := newTestContext(t, http.MethodPost, "/api/users/login",
		`{"email":"alice@x.com","password":"hunter2hunter2"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "tok123") {
		t.Fatalf("token missing from body: %s", rec.Body.String())
	}

	c, _ = newTestContext(t, http.MethodPost, "/api/users/login",
		`{"email":"alice@x.com","password":"wrong"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials passthrough, got %v", err)
	}
}
