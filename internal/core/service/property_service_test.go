package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/casavia/realty-system/internal/core/domain"
	"github.com/casavia/realty-system/internal/core/ports"
)

func ownerIdentity(id string) domain.Identity {
	return domain.NewIdentity(&domain.User{ID: id, Email: id + "@x.com", Role: domain.RolePropertyOwner})
}

func customerIdentity(id string) domain.Identity {
	return domain.NewIdentity(&domain.User{ID: id, Email: id + "@x.com", Role: domain.RoleCustomer})
}

func adminIdentity(id string) domain.Identity {
	return domain.NewIdentity(&domain.User{ID: id, Email: id + "@x.com", Role: domain.RoleAdmin})
}

func sampleInput() ports.CreatePropertyInput {
	return ports.CreatePropertyInput{
		Address: "1 Main St", City: "Springfield", State: "IL", PostalCode: "62701",
		Price: 250000, Bedrooms: 3, Bathrooms: 2, Type: domain.TypeHouse,
	}
}

func TestPropertyService_Create_OwnerDerivedFromActor(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, &stubFileStore{}, zerolog.Nop())

	prop, err := svc.Create(context.Background(), ownerIdentity("owner1"), sampleInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if prop.OwnerID != "owner1" {
		t.Fatalf("owner = %q, want owner1", prop.OwnerID)
	}
	if prop.Status != domain.PropertyAvailable {
		t.Fatalf("status = %s, want AVAILABLE default", prop.Status)
	}
}

func TestPropertyService_Create_AnonymousDenied(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), &stubFileStore{}, zerolog.Nop())
	if _, err := svc.Create(context.Background(), domain.Anonymous, sampleInput()); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestPropertyService_Update_OwnershipEnforced(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, &stubFileStore{}, zerolog.Nop())

	prop, err := svc.Create(context.Background(), ownerIdentity("owner1"), sampleInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	in := sampleInput()
	in.City = "Shelbyville"

	if _, err := svc.Update(context.Background(), customerIdentity("other"), prop.ID, in); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("non-owner update: expected ErrForbidden, got %v", err)
	}

	updated, err := svc.Update(context.Background(), ownerIdentity("owner1"), prop.ID, in)
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.City != "Shelbyville" {
		t.Fatalf("city = %q, want Shelbyville", updated.City)
	}
	if updated.OwnerID != "owner1" {
		t.Fatalf("update must not change owner, got %q", updated.OwnerID)
	}
}

func TestPropertyService_Delete_OwnershipOrAdmin(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, &stubFileStore{}, zerolog.Nop())

	prop, err := svc.Create(context.Background(), ownerIdentity("owner1"), sampleInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), customerIdentity("other"), prop.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("stranger delete: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), adminIdentity("admin1"), prop.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), prop.ID); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected property gone, got %v", err)
	}
}

func TestPropertyService_Search_NonAdminSeesAvailableOnly(t *testing.T) {
	repo := newStubPropertyRepo()
	svc := NewPropertyService(repo, &stubFileStore{}, zerolog.Nop())

	if _, err := svc.Create(context.Background(), ownerIdentity("owner1"), sampleInput()); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	sold := sampleInput()
	sold.Status = domain.PropertySold
	if _, err := svc.Create(context.Background(), ownerIdentity("owner1"), sold); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	results, err := svc.Search(context.Background(), customerIdentity("cust1"), ports.PropertySearchFilter{Status: domain.PropertySold})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	for _, p := range results {
		if p.Status != domain.PropertyAvailable {
			t.Fatalf("non-admin search returned status %s", p.Status)
		}
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 available listing, got %d", len(results))
	}

	all, err := svc.Search(context.Background(), adminIdentity("admin1"), ports.PropertySearchFilter{Status: domain.PropertySold})
	if err != nil {
		t.Fatalf("admin search failed: %v", err)
	}
	if len(all) != 1 || all[0].Status != domain.PropertySold {
		t.Fatalf("admin search by SOLD returned %d results", len(all))
	}
}

func TestPropertyService_ListAll_AdminOnly(t *testing.T) {
	svc := NewPropertyService(newStubPropertyRepo(), &stubFileStore{}, zerolog.Nop())

	if _, err := svc.ListAll(context.Background(), customerIdentity("cust1")); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.ListAll(context.Background(), adminIdentity("admin1")); err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
}

func TestPropertyService_AttachImages(t *testing.T) {
	repo := newStubPropertyRepo()
	files := &stubFileStore{}
	svc := NewPropertyService(repo, files, zerolog.Nop())

	prop, err := svc.Create(context.Background(), ownerIdentity("owner1"), sampleInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	uploads := []ports.ImageUpload{
		{Filename: "front.jpg", Content: strings.NewReader("jpegbytes")},
		{Filename: "back.png", Content: strings.NewReader("pngbytes")},
	}

	if _, err := svc.AttachImages(context.Background(), customerIdentity("other"), prop.ID, uploads); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("stranger upload: expected ErrForbidden, got %v", err)
	}

	refs, err := svc.AttachImages(context.Background(), ownerIdentity("owner1"), prop.ID, uploads)
	if err != nil {
		t.Fatalf("owner upload failed: %v", err)
	}
	if len(refs) != 2 {
		t.Fatalf("expected 2 refs, got %d", len(refs))
	}

	stored, err := repo.FindByID(context.Background(), prop.ID)
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if len(stored.ImageRefs) != 2 {
		t.Fatalf("expected refs persisted on listing, got %v", stored.ImageRefs)
	}
}
