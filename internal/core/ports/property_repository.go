package ports

import (
	"context"

	"github.com/casavia/realty-system/internal/core/domain"
)

// PropertySearchFilter carries the query parameters for listing properties.
// A zero field means no constraint on that dimension.
type PropertySearchFilter struct {
	Status       domain.PropertyStatus
	Type         domain.PropertyType
	City         string
	MinPrice     float64
	MaxPrice     float64
	MinBedrooms  int
	MinBathrooms int
}

// PropertyRepository defines persistence operations for listings.
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	FindByID(ctx context.Context, id string) (*domain.Property, error)
	Search(ctx context.Context, filter PropertySearchFilter) ([]*domain.Property, error)
	FindAll(ctx context.Context) ([]*domain.Property, error)
	// Update replaces the mutable fields of the listing. The owner reference
	// is never touched.
	Update(ctx context.Context, p *domain.Property) error
	Delete(ctx context.Context, id string) error
	// AppendImageRefs atomically appends stored file references.
	AppendImageRefs(ctx context.Context, id string, refs []string) error
}
