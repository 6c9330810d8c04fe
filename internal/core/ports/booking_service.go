package ports

import (
	"context"
	"time"

	"github.com/casavia/realty-system/internal/core/domain"
)

// CreateBookingInput carries a customer's visit request. The customer side is
// always the authenticated identity.
type CreateBookingInput struct {
	PropertyID    string
	VisitDate     string
	VisitTime     string
	CustomerNotes string
}

// BookingDetail is the fully resolved view of a booking. Property, owner and
// customer data are loaded eagerly before this value leaves the service layer
// so no partially loaded object ever crosses a component boundary.
type BookingDetail struct {
	ID              string
	Status          domain.BookingStatus
	PaymentStatus   domain.PaymentStatus
	VisitDate       string
	VisitTime       string
	CustomerNotes   string
	OwnerNotes      string
	CreatedAt       time.Time
	PropertyID      string
	PropertyAddress string
	PropertyCity    string
	OwnerID         string
	OwnerName       string
	CustomerID      string
	CustomerName    string
}

// BookingService defines use-case operations for visit bookings.
type BookingService interface {
	Create(ctx context.Context, actor domain.Identity, in CreateBookingInput) (*BookingDetail, error)
	// Get returns the booking if the actor is a participant or an admin.
	Get(ctx context.Context, actor domain.Identity, id string) (*BookingDetail, error)
	ListForCustomer(ctx context.Context, actor domain.Identity) ([]*BookingDetail, error)
	ListForOwner(ctx context.Context, actor domain.Identity) ([]*BookingDetail, error)
	// ListAll returns every booking. Admin only.
	ListAll(ctx context.Context, actor domain.Identity) ([]*BookingDetail, error)
	// UpdateStatus applies a state transition subject to the transition table
	// and the actor's party on the booking.
	UpdateStatus(ctx context.Context, actor domain.Identity, id string, to domain.BookingStatus, notes string) (*BookingDetail, error)
	// ConfirmPayment marks the payment sub-status RECEIVED. Owner-side or
	// admin only.
	ConfirmPayment(ctx context.Context, actor domain.Identity, id string) (*BookingDetail, error)
}
