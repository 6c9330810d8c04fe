package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/casavia/realty-system/internal/core/domain"
	"github.com/casavia/realty-system/internal/core/ports"
)

// --- users ---

type stubUserRepo struct {
	users map[string]*domain.User // keyed by normalized email
	seq   int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrUserExists
	}
	r.seq++
	copy := cloneUser(user)
	copy.ID = "u" + strconv.Itoa(r.seq)
	r.users[copy.Email] = cloneUser(copy)
	return copy, nil
}

// --- properties ---

type stubPropertyRepo struct {
	props map[string]*domain.Property
	seq   int
}

func newStubPropertyRepo() *stubPropertyRepo {
	return &stubPropertyRepo{props: make(map[string]*domain.Property)}
}

func cloneProperty(p *domain.Property) *domain.Property {
	clone := *p
	clone.ImageRefs = append([]string(nil), p.ImageRefs...)
	return &clone
}

func (r *stubPropertyRepo) Create(_ context.Context, p *domain.Property) (*domain.Property, error) {
	r.seq++
	copy := cloneProperty(p)
	copy.ID = "p" + strconv.Itoa(r.seq)
	r.props[copy.ID] = cloneProperty(copy)
	return copy, nil
}

func (r *stubPropertyRepo) FindByID(_ context.Context, id string) (*domain.Property, error) {
	if p, ok := r.props[id]; ok {
		return cloneProperty(p), nil
	}
	return nil, domain.ErrPropertyNotFound
}

func (r *stubPropertyRepo) Search(_ context.Context, filter ports.PropertySearchFilter) ([]*domain.Property, error) {
	var out []*domain.Property
	for _, p := range r.props {
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.City != "" && p.City != filter.City {
			continue
		}
		out = append(out, cloneProperty(p))
	}
	return out, nil
}

func (r *stubPropertyRepo) FindAll(_ context.Context) ([]*domain.Property, error) {
	var out []*domain.Property
	for _, p := range r.props {
		out = append(out, cloneProperty(p))
	}
	return out, nil
}

func (r *stubPropertyRepo) Update(_ context.Context, p *domain.Property) error {
	if _, ok := r.props[p.ID]; !ok {
		return domain.ErrPropertyNotFound
	}
	r.props[p.ID] = cloneProperty(p)
	return nil
}

func (r *stubPropertyRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.props[id]; !ok {
		return domain.ErrPropertyNotFound
	}
	delete(r.props, id)
	return nil
}

func (r *stubPropertyRepo) AppendImageRefs(_ context.Context, id string, refs []string) error {
	p, ok := r.props[id]
	if !ok {
		return domain.ErrPropertyNotFound
	}
	p.ImageRefs = append(p.ImageRefs, refs...)
	return nil
}

// --- bookings ---

type stubBookingRepo struct {
	bookings map[string]*domain.Booking
	seq      int
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{bookings: make(map[string]*domain.Booking)}
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	clone := *b
	return &clone
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.seq++
	copy := cloneBooking(b)
	copy.ID = "b" + strconv.Itoa(r.seq)
	r.bookings[copy.ID] = cloneBooking(copy)
	return copy, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	if b, ok := r.bookings[id]; ok {
		return cloneBooking(b), nil
	}
	return nil, domain.ErrBookingNotFound
}

func (r *stubBookingRepo) FindByCustomerID(_ context.Context, customerID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.CustomerID == customerID {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (r *stubBookingRepo) FindByOwnerID(_ context.Context, ownerID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.PropertyOwnerID == ownerID {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (r *stubBookingRepo) FindAll(_ context.Context) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		out = append(out, cloneBooking(b))
	}
	return out, nil
}

func (r *stubBookingRepo) UpdateStatus(_ context.Context, id string, from, to domain.BookingStatus, customerNotes, ownerNotes string) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.Status != from {
		return nil, domain.ErrInvalidTransition
	}
	b.Status = to
	if customerNotes != "" {
		b.CustomerNotes = customerNotes
	}
	if ownerNotes != "" {
		b.OwnerNotes = ownerNotes
	}
	return cloneBooking(b), nil
}

func (r *stubBookingRepo) UpdatePaymentStatus(_ context.Context, id string, status domain.PaymentStatus) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	b.PaymentStatus = status
	return cloneBooking(b), nil
}

// --- contact messages ---

type stubContactRepo struct {
	messages map[string]*domain.ContactMessage
	seq      int
}

func newStubContactRepo() *stubContactRepo {
	return &stubContactRepo{messages: make(map[string]*domain.ContactMessage)}
}

func (r *stubContactRepo) Insert(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
	r.seq++
	clone := *m
	clone.ID = "m" + strconv.Itoa(r.seq)
	stored := clone
	r.messages[clone.ID] = &stored
	return &clone, nil
}

func (r *stubContactRepo) FindAll(_ context.Context) ([]*domain.ContactMessage, error) {
	var out []*domain.ContactMessage
	for _, m := range r.messages {
		clone := *m
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubContactRepo) MarkRead(_ context.Context, id string) error {
	m, ok := r.messages[id]
	if !ok {
		return domain.ErrMessageNotFound
	}
	m.Read = true
	return nil
}

// --- file store ---

type stubFileStore struct {
	stored []string
}

func (s *stubFileStore) Store(_ context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, content); err != nil {
		return "", err
	}
	ref := fmt.Sprintf("stored-%d-%s", len(s.stored), filename)
	s.stored = append(s.stored, ref)
	return ref, nil
}

// --- login limiter ---

type stubLimiter struct {
	failures map[string]int
	max      int
}

func newStubLimiter(max int) *stubLimiter {
	return &stubLimiter{failures: make(map[string]int), max: max}
}

func (l *stubLimiter) TooMany(_ context.Context, email string) (bool, error) {
	return l.failures[email] >= l.max, nil
}

func (l *stubLimiter) RecordFailure(_ context.Context, email string) error {
	l.failures[email]++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, email string) error {
	delete(l.failures, email)
	return nil
}
