package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/casavia/realty-system/internal/core/domain"
)

type stubTokens struct {
	subjects map[string]string // raw token -> subject
	err      error
}

func (s *stubTokens) Issue(*domain.User) (string, error) { return "", nil }

func (s *stubTokens) ExtractSubject(token string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if sub, ok := s.subjects[token]; ok {
		return sub, nil
	}
	return "", domain.ErrTokenMalformed
}

func (s *stubTokens) Validate(string, *domain.User) error { return nil }

type stubUsers struct {
	users map[string]*domain.User // by normalized email
}

func (s *stubUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUsers) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUsers) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func runGate(t *testing.T, tokens *stubTokens, users *stubUsers, authHeader string) (domain.Identity, int) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured domain.Identity
	mw := Authenticate(tokens, users, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		captured = Identity(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("gate must never error, got %v", err)
	}
	return captured, rec.Code
}

func alice() *domain.User {
	return &domain.User{ID: "u1", Name: "Alice", Email: "alice@x.com", Role: domain.RoleCustomer}
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := &stubTokens{subjects: map[string]string{"good": "alice@x.com"}}
	users := &stubUsers{users: map[string]*domain.User{"alice@x.com": alice()}}

	id, code := runGate(t, tokens, users, "Bearer good")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if id.IsAnonymous() {
		t.Fatal("expected authenticated identity")
	}
	if id.UserID != "u1" || id.Email != "alice@x.com" || id.Role != domain.RoleCustomer {
		t.Fatalf("identity = %+v", id)
	}
}

func TestAuthenticate_MissingHeaderIsAnonymousNot401(t *testing.T) {
	id, code := runGate(t, &stubTokens{}, &stubUsers{}, "")
	if code != http.StatusOK {
		t.Fatalf("gate must not reject, got %d", code)
	}
	if !id.IsAnonymous() {
		t.Fatalf("expected anonymous, got %+v", id)
	}
}

func TestAuthenticate_BadTokensStayAnonymous(t *testing.T) {
	cases := map[string]error{
		"expired":   domain.ErrTokenExpired,
		"garbage":   domain.ErrTokenMalformed,
		"signature": domain.ErrTokenSignature,
	}
	for name, tokenErr := range cases {
		t.Run(name, func(t *testing.T) {
			id, code := runGate(t, &stubTokens{err: tokenErr}, &stubUsers{}, "Bearer whatever")
			if code != http.StatusOK {
				t.Fatalf("gate must not reject, got %d", code)
			}
			if !id.IsAnonymous() {
				t.Fatalf("expected anonymous, got %+v", id)
			}
		})
	}
}

func TestAuthenticate_NonBearerSchemeIgnored(t *testing.T) {
	id, code := runGate(t, &stubTokens{subjects: map[string]string{"good": "alice@x.com"}}, &stubUsers{}, "Basic good")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !id.IsAnonymous() {
		t.Fatalf("expected anonymous, got %+v", id)
	}
}

func TestAuthenticate_DeletedUserStaysAnonymous(t *testing.T) {
	tokens := &stubTokens{subjects: map[string]string{"good": "ghost@x.com"}}
	id, code := runGate(t, tokens, &stubUsers{users: map[string]*domain.User{}}, "Bearer good")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if !id.IsAnonymous() {
		t.Fatalf("token for deleted user must resolve anonymous, got %+v", id)
	}
}

func TestAuthenticate_DoesNotOverwriteExistingIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	existing := domain.NewIdentity(alice())
	c.Set(IdentityKey, existing)

	tokens := &stubTokens{subjects: map[string]string{"good": "bob@x.com"}}
	users := &stubUsers{users: map[string]*domain.User{"bob@x.com": {ID: "u2", Email: "bob@x.com", Role: domain.RoleAdmin}}}

	mw := Authenticate(tokens, users, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		if got := Identity(c); got.UserID != existing.UserID {
			t.Fatalf("identity overwritten: %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
