package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ideabazaar/contexts/identity-access/principal-directory/domain/entities"
	domainerrors "ideabazaar/contexts/identity-access/principal-directory/domain/errors"
	"ideabazaar/contexts/identity-access/principal-directory/ports"
)

type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

type RegisterCommand struct {
	Username string
	Email    string
	Role     entities.Role
	Tier     entities.Tier
}

// Register creates a directory account. Role defaults to client and tier to
// basic, mirroring self-service signup.
func (s Service) Register(ctx context.Context, cmd RegisterCommand) (entities.Principal, error) {
	username := strings.TrimSpace(cmd.Username)
	email := strings.TrimSpace(cmd.Email)
	if username == "" || email == "" {
		return entities.Principal{}, domainerrors.ErrInvalidPrincipal
	}
	role := cmd.Role
	if role == "" {
		role = entities.RoleClient
	}
	if !entities.IsValidRole(role) {
		return entities.Principal{}, domainerrors.ErrUnknownRole
	}
	tier := cmd.Tier
	if tier == "" {
		tier = entities.TierBasic
	}
	if !entities.IsValidTier(tier) {
		return entities.Principal{}, domainerrors.ErrUnknownTier
	}

	principalID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Principal{}, err
	}
	now := s.now()
	principal := entities.Principal{
		PrincipalID: principalID,
		Username:    username,
		Email:       email,
		Role:        role,
		Tier:        tier,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.CreatePrincipal(ctx, principal); err != nil {
		return entities.Principal{}, err
	}

	resolveLogger(s.Logger).Info("principal registered",
		"event", "principal_registered",
		"module", "identity-access/principal-directory",
		"layer", "application",
		"principal_id", principal.PrincipalID,
		"role", principal.Role,
		"tier", principal.Tier,
	)
	return principal, nil
}

func (s Service) GetPrincipal(ctx context.Context, principalID string) (entities.Principal, error) {
	if strings.TrimSpace(principalID) == "" {
		return entities.Principal{}, domainerrors.ErrInvalidPrincipal
	}
	return s.Repo.GetPrincipal(ctx, strings.TrimSpace(principalID))
}

// ChangeTier moves a principal to a new subscription tier.
func (s Service) ChangeTier(ctx context.Context, principalID string, tier entities.Tier) (entities.Principal, error) {
	if strings.TrimSpace(principalID) == "" {
		return entities.Principal{}, domainerrors.ErrInvalidPrincipal
	}
	if !entities.IsValidTier(tier) {
		return entities.Principal{}, domainerrors.ErrUnknownTier
	}
	principal, err := s.Repo.GetPrincipal(ctx, strings.TrimSpace(principalID))
	if err != nil {
		return entities.Principal{}, err
	}
	principal.Tier = tier
	principal.UpdatedAt = s.now()
	if err := s.Repo.UpdatePrincipal(ctx, principal); err != nil {
		return entities.Principal{}, err
	}

	resolveLogger(s.Logger).Info("principal tier changed",
		"event", "principal_tier_changed",
		"module", "identity-access/principal-directory",
		"layer", "application",
		"principal_id", principal.PrincipalID,
		"tier", principal.Tier,
	)
	return principal, nil
}

// AuthorizeListingCreation fails closed: unknown, inactive, non-creator, and
// basic-tier principals are all denied.
func (s Service) AuthorizeListingCreation(ctx context.Context, principalID string) error {
	principal, err := s.GetPrincipal(ctx, principalID)
	if err != nil {
		return err
	}
	if !principal.IsActive {
		return domainerrors.ErrPrincipalInactive
	}
	if !principal.CanCreateListings() {
		return domainerrors.ErrCreationNotAllowed
	}
	return nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
