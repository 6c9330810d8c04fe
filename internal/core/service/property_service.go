package service

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/casavia/realty-system/internal/core/domain"
	"github.com/casavia/realty-system/internal/core/policy"
	"github.com/casavia/realty-system/internal/core/ports"
)

// PropertyService implements listing use cases with ownership enforcement.
type PropertyService struct {
	repo   ports.PropertyRepository
	files  ports.FileStore
	policy policy.Engine
	log    zerolog.Logger
}

func NewPropertyService(repo ports.PropertyRepository, files ports.FileStore, log zerolog.Logger) *PropertyService {
	return &PropertyService{repo: repo, files: files, policy: policy.New(), log: log}
}

// Create stores a new listing owned by the acting identity. The owner
// reference is derived server-side; nothing in the input can override it.
func (s *PropertyService) Create(ctx context.Context, actor domain.Identity, in ports.CreatePropertyInput) (*domain.Property, error) {
	if err := s.policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}

	status := in.Status
	if !domain.ValidPropertyStatus(status) {
		status = domain.PropertyAvailable
	}

	now := time.Now().UTC()
	prop := &domain.Property{
		OwnerID:     actor.UserID,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		PostalCode:  in.PostalCode,
		Price:       in.Price,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		AreaSqft:    in.AreaSqft,
		Description: in.Description,
		Type:        in.Type,
		Status:      status,
		CreatedAt:   now,
	}

	created, err := s.repo.Create(ctx, prop)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create property")
		return nil, err
	}

	s.log.Info().Str("property_id", created.ID).Str("owner_id", actor.UserID).Msg("property created")
	return created, nil
}

func (s *PropertyService) Get(ctx context.Context, actor domain.Identity, id string) (*domain.Property, error) {
	if err := s.policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

// Search lists properties matching the filter. Non-admin callers only ever
// see AVAILABLE listings regardless of the status they ask for.
func (s *PropertyService) Search(ctx context.Context, actor domain.Identity, filter ports.PropertySearchFilter) ([]*domain.Property, error) {
	if err := s.policy.RequireAuthenticated(actor); err != nil {
		return nil, err
	}
	if !actor.IsAdmin() {
		filter.Status = domain.PropertyAvailable
	}
	return s.repo.Search(ctx, filter)
}

// ListAll returns every listing in every status. Admin only.
func (s *PropertyService) ListAll(ctx context.Context, actor domain.Identity) ([]*domain.Property, error) {
	if err := s.policy.RequireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.FindAll(ctx)
}

// Update replaces the mutable fields of a listing the actor owns (or any
// listing for an admin). The owner reference is never updated.
func (s *PropertyService) Update(ctx context.Context, actor domain.Identity, id string, in ports.UpdatePropertyInput) (*domain.Property, error) {
	prop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanModifyProperty(actor, prop); err != nil {
		return nil, err
	}

	prop.Address = in.Address
	prop.City = in.City
	prop.State = in.State
	prop.PostalCode = in.PostalCode
	prop.Price = in.Price
	prop.Bedrooms = in.Bedrooms
	prop.Bathrooms = in.Bathrooms
	prop.AreaSqft = in.AreaSqft
	prop.Description = in.Description
	if domain.ValidPropertyType(in.Type) {
		prop.Type = in.Type
	}
	if domain.ValidPropertyStatus(in.Status) {
		prop.Status = in.Status
	}
	prop.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, prop); err != nil {
		return nil, err
	}

	s.log.Info().Str("property_id", id).Str("actor_id", actor.UserID).Msg("property updated")
	return prop, nil
}

func (s *PropertyService) Delete(ctx context.Context, actor domain.Identity, id string) error {
	prop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.policy.CanModifyProperty(actor, prop); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("property_id", id).Str("actor_id", actor.UserID).Msg("property deleted")
	return nil
}

// AttachImages stores each upload and appends the returned references to the
// listing. Gated by the same ownership rule as Update.
func (s *PropertyService) AttachImages(ctx context.Context, actor domain.Identity, id string, uploads []ports.ImageUpload) ([]string, error) {
	prop, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.policy.CanModifyProperty(actor, prop); err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(uploads))
	for _, up := range uploads {
		ref, err := s.files.Store(ctx, filepath.Base(up.Filename), up.Content)
		if err != nil {
			s.log.Error().Err(err).Str("property_id", id).Str("filename", up.Filename).Msg("failed to store image")
			return nil, err
		}
		refs = append(refs, ref)
	}
	if len(refs) == 0 {
		return refs, nil
	}

	if err := s.repo.AppendImageRefs(ctx, id, refs); err != nil {
		return nil, err
	}

	s.log.Info().Str("property_id", id).Int("count", len(refs)).Msg("images attached")
	return refs, nil
}
