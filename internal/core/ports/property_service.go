package ports

import (
	"context"
	"io"

	"github.com/casavia/realty-system/internal/core/domain"
)

// CreatePropertyInput carries the fields a caller may set when creating a
// listing. The owner is always derived from the authenticated identity and
// never read from the request.
type CreatePropertyInput struct {
	Address     string
	City        string
	State       string
	PostalCode  string
	Price       float64
	Bedrooms    int
	Bathrooms   int
	AreaSqft    float64
	Description string
	Type        domain.PropertyType
	Status      domain.PropertyStatus
}

// UpdatePropertyInput mirrors CreatePropertyInput for full updates.
type UpdatePropertyInput = CreatePropertyInput

// ImageUpload is one uploaded file handed to the service.
type ImageUpload struct {
	Filename string
	Content  io.Reader
}

// PropertyService defines use-case operations for listings. Every operation
// takes the acting identity; authorization is decided here, not in handlers.
type PropertyService interface {
	Create(ctx context.Context, actor domain.Identity, in CreatePropertyInput) (*domain.Property, error)
	Get(ctx context.Context, actor domain.Identity, id string) (*domain.Property, error)
	Search(ctx context.Context, actor domain.Identity, filter PropertySearchFilter) ([]*domain.Property, error)
	// ListAll returns all listings regardless of status. Admin only.
	ListAll(ctx context.Context, actor domain.Identity) ([]*domain.Property, error)
	Update(ctx context.Context, actor domain.Identity, id string, in UpdatePropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, actor domain.Identity, id string) error
	// AttachImages stores the uploads and appends their references to the
	// listing. Ownership-gated like Update.
	AttachImages(ctx context.Context, actor domain.Identity, id string, uploads []ImageUpload) ([]string, error)
}
