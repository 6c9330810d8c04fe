package ports

import (
	"context"

	"github.com/casavia/realty-system/internal/core/domain"
)

// BookingRepository defines persistence operations for visit bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	FindByCustomerID(ctx context.Context, customerID string) ([]*domain.Booking, error)
	FindByOwnerID(ctx context.Context, ownerID string) ([]*domain.Booking, error)
	FindAll(ctx context.Context) ([]*domain.Booking, error)
	// UpdateStatus moves the booking from one status to another as a single
	// compare-and-swap: the write only applies if the stored status still
	// equals from, so concurrent transitions serialize at the database.
	// Returns domain.ErrInvalidTransition when the swap misses.
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus, customerNotes, ownerNotes string) (*domain.Booking, error)
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Booking, error)
}
