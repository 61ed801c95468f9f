package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "ideabazaar/contexts/marketplace-core/listing-exchange/application"
	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
)

type CreateListingCommand struct {
	CreatorID    string
	Kind         entities.ListingKind
	Title        string
	Description  string
	Category     string
	Price        float64
	Tags         []string
	ImageURL     string
	DeliveryTime string
	Plan         entities.BusinessPlan
	IsPublished  bool
}

type CreateListingResult struct {
	Listing entities.Listing
}

type CreateListingUseCase struct {
	Listings   ports.ListingRepository
	Authorizer ports.CreatorAuthorizer
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

// Execute creates one catalog listing for an authorized creator. Services
// must carry a delivery time; the plan sections only apply to ideas.
func (u CreateListingUseCase) Execute(ctx context.Context, cmd CreateListingCommand) (CreateListingResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if err := validateCreate(cmd); err != nil {
		return CreateListingResult{}, err
	}

	if err := u.Authorizer.AuthorizeCreator(ctx, cmd.CreatorID); err != nil {
		logger.Warn("listing creation denied",
			"event", "create_listing_denied",
			"module", "marketplace-core/listing-exchange",
			"layer", "application",
			"creator_id", cmd.CreatorID,
		)
		return CreateListingResult{}, err
	}

	listingID, err := u.IDGen.NewID(ctx)
	if err != nil {
		return CreateListingResult{}, err
	}
	now := u.now()

	listing := entities.Listing{
		ListingID:    listingID,
		Kind:         cmd.Kind,
		Title:        strings.TrimSpace(cmd.Title),
		Description:  cmd.Description,
		Category:     cmd.Category,
		Price:        cmd.Price,
		CreatorID:    cmd.CreatorID,
		IsPublished:  cmd.IsPublished,
		Tags:         cmd.Tags,
		ImageURL:     cmd.ImageURL,
		DeliveryTime: cmd.DeliveryTime,
		Plan:         cmd.Plan,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if listing.Kind == entities.ListingKindService {
		listing.Plan = entities.BusinessPlan{}
	} else {
		listing.DeliveryTime = ""
	}

	if err := u.Listings.CreateListing(ctx, listing); err != nil {
		logger.Error("create listing failed",
			"event", "create_listing_failed",
			"module", "marketplace-core/listing-exchange",
			"layer", "application",
			"creator_id", cmd.CreatorID,
			"error", err.Error(),
		)
		return CreateListingResult{}, err
	}

	logger.Info("listing created",
		"event", "listing_created",
		"module", "marketplace-core/listing-exchange",
		"layer", "application",
		"listing_id", listing.ListingID,
		"kind", listing.Kind,
		"creator_id", listing.CreatorID,
		"published", listing.IsPublished,
	)
	return CreateListingResult{Listing: listing}, nil
}

func (u CreateListingUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}

func validateCreate(cmd CreateListingCommand) error {
	if !entities.IsValidKind(cmd.Kind) {
		return domainerrors.ErrInvalidListingRequest
	}
	if cmd.CreatorID == "" ||
		strings.TrimSpace(cmd.Title) == "" ||
		strings.TrimSpace(cmd.Description) == "" ||
		strings.TrimSpace(cmd.Category) == "" {
		return domainerrors.ErrInvalidListingRequest
	}
	if cmd.Price <= 0 {
		return domainerrors.ErrInvalidListingRequest
	}
	if cmd.Kind == entities.ListingKindService && strings.TrimSpace(cmd.DeliveryTime) == "" {
		return domainerrors.ErrInvalidListingRequest
	}
	return nil
}
