package ports

import (
	"context"

	"github.com/casavia/realty-system/internal/core/domain"
)

// ContactRepository persists public contact messages.
type ContactRepository interface {
	Insert(ctx context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error)
	FindAll(ctx context.Context) ([]*domain.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
}

// ContactService handles the public contact form and its admin surface.
type ContactService interface {
	// Submit accepts an anonymous enquiry.
	Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error)
	// ListAll returns every message. Admin only.
	ListAll(ctx context.Context, actor domain.Identity) ([]*domain.ContactMessage, error)
	// MarkRead flags a message as handled. Admin only.
	MarkRead(ctx context.Context, actor domain.Identity, id string) error
}
