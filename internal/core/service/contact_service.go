package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/casavia/realty-system/internal/core/domain"
	"github.com/casavia/realty-system/internal/core/policy"
	"github.com/casavia/realty-system/internal/core/ports"
)

// ContactService handles the public contact form and its admin surface.
type ContactService struct {
	repo   ports.ContactRepository
	policy policy.Engine
	log    zerolog.Logger
}

func NewContactService(repo ports.ContactRepository, log zerolog.Logger) *ContactService {
	return &ContactService{repo: repo, policy: policy.New(), log: log}
}

// Submit accepts an anonymous enquiry. This is the one write any caller may
// perform without authenticating.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (*domain.ContactMessage, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" || strings.TrimSpace(message) == "" {
		return nil, domain.ErrInvalidMessage
	}

	m := &domain.ContactMessage{
		Name:       strings.TrimSpace(name),
		Email:      domain.NormalizeEmail(email),
		Message:    message,
		ReceivedAt: time.Now().UTC(),
	}

	saved, err := s.repo.Insert(ctx, m)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("message_id", saved.ID).Msg("contact message received")
	return saved, nil
}

func (s *ContactService) ListAll(ctx context.Context, actor domain.Identity) ([]*domain.ContactMessage, error) {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

func (s *ContactService) MarkRead(ctx context.Context, actor domain.Identity, id string) error {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return err
	}
	return s.repo.MarkRead(ctx, id)
}
