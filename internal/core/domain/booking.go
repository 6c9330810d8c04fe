package domain

import (
	"errors"
	"time"
)

// BookingStatus represents the lifecycle state of a visit booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingRejected  BookingStatus = "REJECTED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// PaymentStatus is the independent payment sub-state of a booking.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentReceived PaymentStatus = "RECEIVED"
)

var ErrBookingNotFound = errors.New("booking not found")
var ErrInvalidTransition = errors.New("invalid status transition")

// Party identifies which side of a booking an identity acts for.
// Values combine as a bitmask.
type Party uint8

const (
	PartyCustomer Party = 1 << iota
	PartyOwner
	PartyAdmin
)

// transitionPolicy defines, per transition, the parties allowed to perform it.
// The admin reset (any state back to PENDING) is handled in TransitionParties.
var transitionPolicy = map[BookingStatus]map[BookingStatus]Party{
	BookingPending: {
		BookingConfirmed: PartyOwner | PartyAdmin,
		BookingRejected:  PartyOwner | PartyAdmin,
		BookingCancelled: PartyCustomer | PartyOwner | PartyAdmin,
	},
	BookingConfirmed: {
		BookingCancelled: PartyCustomer | PartyOwner | PartyAdmin,
		BookingCompleted: PartyOwner | PartyAdmin,
	},
}

// TransitionParties returns the set of parties permitted to move a booking
// from one status to another. A zero result means the transition is not
// defined for any actor.
func TransitionParties(from, to BookingStatus) Party {
	if to == BookingPending {
		return PartyAdmin
	}
	return transitionPolicy[from][to]
}

// ValidBookingStatus reports whether s is an enumerated booking status.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingRejected, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking is a visit request tying a customer to a property. PropertyOwnerID
// is denormalized from the property at creation time; ownership is immutable
// so the copy cannot go stale.
type Booking struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	PropertyID      string        `json:"property_id" bson:"property_id"`
	PropertyOwnerID string        `json:"property_owner_id" bson:"property_owner_id"`
	CustomerID      string        `json:"customer_id" bson:"customer_id"`
	VisitDate       string        `json:"visit_date" bson:"visit_date"`
	VisitTime       string        `json:"visit_time" bson:"visit_time"`
	Status          BookingStatus `json:"status" bson:"status"`
	PaymentStatus   PaymentStatus `json:"payment_status" bson:"payment_status"`
	CustomerNotes   string        `json:"customer_notes,omitempty" bson:"customer_notes,omitempty"`
	OwnerNotes      string        `json:"owner_notes,omitempty" bson:"owner_notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}
