// Package policy is the authorization engine: it maps (identity, resource,
// action) to allow or deny. Role checks and ownership checks both live here
// so every handler and service enforces the same rules.
package policy

import "github.com/casavia/realty-system/internal/core/domain"

// Engine evaluates authorization rules. It is stateless; all inputs arrive
// as arguments, so evaluation is pure and safe under concurrency.
type Engine struct{}

func New() Engine {
	return Engine{}
}

// RequireAuthenticated denies anonymous identities.
func (Engine) RequireAuthenticated(actor domain.Identity) error {
	if actor.IsAnonymous() {
		return domain.ErrUnauthenticated
	}
	return nil
}

// RequireAdmin denies everyone without the ADMIN authority.
func (e Engine) RequireAdmin(actor domain.Identity) error {
	if err := e.RequireAuthenticated(actor); err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// CanModifyProperty allows the recorded owner or an admin. Everyone else is
// denied, distinctly from the listing not existing.
func (e Engine) CanModifyProperty(actor domain.Identity, p *domain.Property) error {
	if err := e.RequireAuthenticated(actor); err != nil {
		return err
	}
	if actor.IsAdmin() || actor.UserID == p.OwnerID {
		return nil
	}
	return domain.ErrForbidden
}

// BookingParty resolves which side(s) of the booking the actor is on. The
// owner reference follows one level of indirection (booking -> property ->
// owner), denormalized onto the booking at creation time. Admin is its own
// party and short-circuits every gate that accepts it.
func (Engine) BookingParty(actor domain.Identity, b *domain.Booking) domain.Party {
	var p domain.Party
	if actor.IsAdmin() {
		p |= domain.PartyAdmin
	}
	if actor.UserID != "" && actor.UserID == b.CustomerID {
		p |= domain.PartyCustomer
	}
	if actor.UserID != "" && actor.UserID == b.PropertyOwnerID {
		p |= domain.PartyOwner
	}
	return p
}

// CanViewBooking allows either participant or an admin.
func (e Engine) CanViewBooking(actor domain.Identity, b *domain.Booking) error {
	if err := e.RequireAuthenticated(actor); err != nil {
		return err
	}
	if e.BookingParty(actor, b) == 0 {
		return domain.ErrForbidden
	}
	return nil
}

// AuthorizeTransition decides whether the actor may move the booking to the
// requested status. An undefined transition fails with ErrInvalidTransition
// regardless of who asks; a defined transition attempted by the wrong party
// fails with ErrForbidden.
func (e Engine) AuthorizeTransition(actor domain.Identity, b *domain.Booking, to domain.BookingStatus) error {
	if err := e.RequireAuthenticated(actor); err != nil {
		return err
	}
	allowed := domain.TransitionParties(b.Status, to)
	if allowed == 0 {
		return domain.ErrInvalidTransition
	}
	if e.BookingParty(actor, b)&allowed == 0 {
		return domain.ErrForbidden
	}
	return nil
}

// CanConfirmPayment gates the payment sub-status with the same
// ownership-or-admin rule as the parent booking.
func (e Engine) CanConfirmPayment(actor domain.Identity, b *domain.Booking) error {
	if err := e.RequireAuthenticated(actor); err != nil {
		return err
	}
	if e.BookingParty(actor, b)&(domain.PartyOwner|domain.PartyAdmin) == 0 {
		return domain.ErrForbidden
	}
	return nil
}
