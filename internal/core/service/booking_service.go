package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/casavia/realty-system/internal/core/domain"
	"github.com/casavia/realty-system/internal/core/policy"
	"github.com/casavia/realty-system/internal/core/ports"
)

// BookingService implements visit-booking use cases: creation, participant
// views and the status state machine.
type BookingService struct {
	bookings   ports.BookingRepository
	properties ports.PropertyRepository
	users      ports.UserRepository
	policy     policy.Engine
	log        zerolog.Logger
}

func NewBookingService(bookings ports.BookingRepository, properties ports.PropertyRepository, users ports.UserRepository, log zerolog.Logger) *BookingService {
	return &BookingService{
		bookings:   bookings,
		properties: properties,
		users:      users,
		policy:     policy.New(),
		log:        log,
	}
}

// Create records a visit request. The customer side is the acting identity
// and the property's owner is denormalized onto the booking so later
// ownership checks need no extra lookup.
func (s *BookingService) Create(ctx context.Context, actor domain.Identity, in ports.CreateBookingInput) (*ports.BookingDetail, error) {
	if err := s.policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	prop, err := s.properties.FindByID(ctx, in.PropertyID)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		PropertyID:      prop.ID,
		PropertyOwnerID: prop.OwnerID,
		CustomerID:      actor.UserID,
		VisitDate:       in.VisitDate,
		VisitTime:       in.VisitTime,
		Status:          domain.BookingPending,
		PaymentStatus:   domain.PaymentPending,
		CustomerNotes:   in.CustomerNotes,
		CreatedAt:       time.Now().UTC(),
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		s.log.Error().Err(err).Str("property_id", in.PropertyID).Msg("failed to create booking")
		return nil, err
	}

	s.log.Info().
		Str("booking_id", created.ID).
		Str("property_id", prop.ID).
		Str("customer_id", actor.UserID).
		Msg("booking created")

	return s.detail(ctx, created)
}

// Get returns the fully resolved booking if the actor is one of its
// participants or an admin.
func (s *BookingService) Get(ctx context.Context, actor domain.Identity, id string) (*ports.BookingDetail, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanViewBooking(actor, booking); err != nil {
		return nil, err
	}
	return s.detail(ctx, booking)
}

func (s *BookingService) ListForCustomer(ctx context.Context, actor domain.Identity) ([]*ports.BookingDetail, error) {
	if err := s.policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	items, err := s.bookings.FindByCustomerID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, items)
}

func (s *BookingService) ListForOwner(ctx context.Context, actor domain.Identity) ([]*ports.BookingDetail, error) {
	if err := s.policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	items, err := s.bookings.FindByOwnerID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, items)
}

func (s *BookingService) ListAll(ctx context.Context, actor domain.Identity) ([]*ports.BookingDetail, error) {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	items, err := s.bookings.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.details(ctx, items)
}

// UpdateStatus applies a state transition. The policy engine decides whether
// the actor's party may perform it; the repository applies it as a
// compare-and-swap on the current status so concurrent updates serialize.
func (s *BookingService) UpdateStatus(ctx context.Context, actor domain.Identity, id string, to domain.BookingStatus, notes string) (*ports.BookingDetail, error) {
	if !domain.ValidBookingStatus(to) {
		return nil, domain.ErrInvalidTransition
	}

	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.AuthorizeTransition(actor, booking, to); err != nil {
		return nil, err
	}

	var customerNotes, ownerNotes string
	if s.policy.BookingParty(actor, booking)&domain.PartyCustomer != 0 {
		customerNotes = notes
	} else {
		ownerNotes = notes
	}

	updated, err := s.bookings.UpdateStatus(ctx, id, booking.Status, to, customerNotes, ownerNotes)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("booking_id", id).
		Str("from", string(booking.Status)).
		Str("to", string(to)).
		Str("actor_id", actor.UserID).
		Msg("booking status updated")

	return s.detail(ctx, updated)
}

// ConfirmPayment flips the payment sub-status to RECEIVED. Owner-side or
// admin only; the customer cannot self-confirm.
func (s *BookingService) ConfirmPayment(ctx context.Context, actor domain.Identity, id string) (*ports.BookingDetail, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanConfirmPayment(actor, booking); err != nil {
		return nil, err
	}

	updated, err := s.bookings.UpdatePaymentStatus(ctx, id, domain.PaymentReceived)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("booking_id", id).Str("actor_id", actor.UserID).Msg("payment confirmed")
	return s.detail(ctx, updated)
}

// detail resolves property, owner and customer data eagerly so the returned
// view is complete before it crosses the service boundary. Missing related
// records degrade to blank names rather than failing the whole view.
func (s *BookingService) detail(ctx context.Context, b *domain.Booking) (*ports.BookingDetail, error) {
	d := &ports.BookingDetail{
		ID:            b.ID,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		VisitDate:     b.VisitDate,
		VisitTime:     b.VisitTime,
		CustomerNotes: b.CustomerNotes,
		OwnerNotes:    b.OwnerNotes,
		CreatedAt:     b.CreatedAt,
		PropertyID:    b.PropertyID,
		OwnerID:       b.PropertyOwnerID,
		CustomerID:    b.CustomerID,
	}

	if prop, err := s.properties.FindByID(ctx, b.PropertyID); err == nil {
		d.PropertyAddress = prop.Address
		d.PropertyCity = prop.City
	}
	if owner, err := s.users.FindByID(ctx, b.PropertyOwnerID); err == nil {
		d.OwnerName = owner.Name
	}
	if customer, err := s.users.FindByID(ctx, b.CustomerID); err == nil {
		d.CustomerName = customer.Name
	}

	return d, nil
}

func (s *BookingService) details(ctx context.Context, items []*domain.Booking) ([]*ports.BookingDetail, error) {
	out := make([]*ports.BookingDetail, 0, len(items))
	for _, b := range items {
		d, err := s.detail(ctx, b)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
