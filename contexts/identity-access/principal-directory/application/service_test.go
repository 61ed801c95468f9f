package application

import (
	"context"
	"errors"
	"testing"

	"ideabazaar/contexts/identity-access/principal-directory/adapters/memory"
	"ideabazaar/contexts/identity-access/principal-directory/domain/entities"
	domainerrors "ideabazaar/contexts/identity-access/principal-directory/domain/errors"
)

func newService(seed []entities.Principal) Service {
	store := memory.NewStore(seed)
	return Service{Repo: store, Clock: store, IDGen: store}
}

func TestRegisterDefaultsToBasicClient(t *testing.T) {
	service := newService(nil)

	principal, err := service.Register(context.Background(), RegisterCommand{
		Username: "first_buyer",
		Email:    "buyer@example.com",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if principal.Role != entities.RoleClient || principal.Tier != entities.TierBasic {
		t.Fatalf("expected client/basic defaults, got %s/%s", principal.Role, principal.Tier)
	}
	if !principal.IsActive {
		t.Fatal("expected new principal active")
	}
	if principal.PrincipalID == "" {
		t.Fatal("expected generated principal id")
	}
}

func TestRegisterValidation(t *testing.T) {
	service := newService(nil)

	_, err := service.Register(context.Background(), RegisterCommand{Email: "x@example.com"})
	if !errors.Is(err, domainerrors.ErrInvalidPrincipal) {
		t.Fatalf("expected invalid principal for missing username, got %v", err)
	}
	_, err = service.Register(context.Background(), RegisterCommand{Username: "x", Email: "x@example.com", Role: "admin"})
	if !errors.Is(err, domainerrors.ErrUnknownRole) {
		t.Fatalf("expected unknown role, got %v", err)
	}
	_, err = service.Register(context.Background(), RegisterCommand{Username: "x", Email: "x@example.com", Tier: "platinum"})
	if !errors.Is(err, domainerrors.ErrUnknownTier) {
		t.Fatalf("expected unknown tier, got %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service := newService(nil)

	_, err := service.Register(context.Background(), RegisterCommand{Username: "one", Email: "dup@example.com"})
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err = service.Register(context.Background(), RegisterCommand{Username: "two", Email: "dup@example.com"})
	if !errors.Is(err, domainerrors.ErrDuplicatePrincipal) {
		t.Fatalf("expected duplicate principal, got %v", err)
	}
}

func TestAuthorizeListingCreationFailsClosed(t *testing.T) {
	service := newService([]entities.Principal{
		{PrincipalID: "client-1", Username: "buyer", Email: "b@example.com", Role: entities.RoleClient, Tier: entities.TierGuru, IsActive: true},
		{PrincipalID: "creator-basic", Username: "starter", Email: "s@example.com", Role: entities.RoleCreator, Tier: entities.TierBasic, IsActive: true},
		{PrincipalID: "creator-dormant", Username: "gone", Email: "g@example.com", Role: entities.RoleCreator, Tier: entities.TierGuru, IsActive: false},
		{PrincipalID: "creator-ok", Username: "maker", Email: "m@example.com", Role: entities.RoleCreator, Tier: entities.TierInventor, IsActive: true},
	})

	if err := service.AuthorizeListingCreation(context.Background(), "missing"); !errors.Is(err, domainerrors.ErrPrincipalNotFound) {
		t.Fatalf("expected not found for unknown principal, got %v", err)
	}
	if err := service.AuthorizeListingCreation(context.Background(), "client-1"); !errors.Is(err, domainerrors.ErrCreationNotAllowed) {
		t.Fatalf("expected denial for client role, got %v", err)
	}
	if err := service.AuthorizeListingCreation(context.Background(), "creator-basic"); !errors.Is(err, domainerrors.ErrCreationNotAllowed) {
		t.Fatalf("expected denial for basic tier, got %v", err)
	}
	if err := service.AuthorizeListingCreation(context.Background(), "creator-dormant"); !errors.Is(err, domainerrors.ErrPrincipalInactive) {
		t.Fatalf("expected inactive denial, got %v", err)
	}
	if err := service.AuthorizeListingCreation(context.Background(), "creator-ok"); err != nil {
		t.Fatalf("expected inventor creator allowed, got %v", err)
	}
}

func TestChangeTierUnlocksCreation(t *testing.T) {
	service := newService([]entities.Principal{
		{PrincipalID: "creator-1", Username: "maker", Email: "m@example.com", Role: entities.RoleCreator, Tier: entities.TierBasic, IsActive: true},
	})

	if err := service.AuthorizeListingCreation(context.Background(), "creator-1"); !errors.Is(err, domainerrors.ErrCreationNotAllowed) {
		t.Fatalf("expected basic tier denied, got %v", err)
	}

	principal, err := service.ChangeTier(context.Background(), "creator-1", entities.TierGuru)
	if err != nil {
		t.Fatalf("change tier failed: %v", err)
	}
	if principal.Tier != entities.TierGuru {
		t.Fatalf("expected guru tier, got %s", principal.Tier)
	}

	if err := service.AuthorizeListingCreation(context.Background(), "creator-1"); err != nil {
		t.Fatalf("expected creation allowed after upgrade, got %v", err)
	}

	_, err = service.ChangeTier(context.Background(), "creator-1", "platinum")
	if !errors.Is(err, domainerrors.ErrUnknownTier) {
		t.Fatalf("expected unknown tier, got %v", err)
	}
}
