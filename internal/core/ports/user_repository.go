package ports

import (
	"context"

	"github.com/casavia/realty-system/internal/core/domain"
)

// UserRepository is the credential store. Read operations never mutate.
type UserRepository interface {
	// FindByEmail looks a user up by normalized email.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Create persists a new user, failing with domain.ErrUserExists when the
	// email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
