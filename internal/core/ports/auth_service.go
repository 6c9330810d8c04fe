package ports

import (
	"context"

	"github.com/casavia/realty-system/internal/core/domain"
)

// RegisterInput carries a registration request. Role is optional; unknown or
// empty roles fall back to CUSTOMER, ADMIN is rejected outright.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	// A wrong password and an unknown email are deliberately
	// indistinguishable: both return domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
