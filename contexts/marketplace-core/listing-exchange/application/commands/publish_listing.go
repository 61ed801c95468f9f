package commands

import (
	"context"
	"log/slog"

	application "ideabazaar/contexts/marketplace-core/listing-exchange/application"
	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
)

type PublishListingCommand struct {
	Kind      entities.ListingKind
	ListingID string
	CreatorID string
}

type PublishListingResult struct {
	Listing entities.Listing
}

type PublishListingUseCase struct {
	Listings ports.ListingRepository
	Clock    ports.Clock
	Logger   *slog.Logger
}

// Execute flips a draft to published. Only the owning creator may publish,
// and publishing twice is rejected so the catalog timestamp stays honest.
func (u PublishListingUseCase) Execute(ctx context.Context, cmd PublishListingCommand) (PublishListingResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if !entities.IsValidKind(cmd.Kind) {
		return PublishListingResult{}, domainerrors.ErrInvalidItemType
	}
	if cmd.ListingID == "" || cmd.CreatorID == "" {
		return PublishListingResult{}, domainerrors.ErrInvalidListingRequest
	}

	listing, err := u.Listings.GetListing(ctx, cmd.Kind, cmd.ListingID)
	if err != nil {
		return PublishListingResult{}, err
	}
	if listing.CreatorID != cmd.CreatorID {
		return PublishListingResult{}, domainerrors.ErrNotListingOwner
	}
	if listing.IsPublished {
		return PublishListingResult{}, domainerrors.ErrAlreadyPublished
	}

	listing.IsPublished = true
	if u.Clock != nil {
		listing.UpdatedAt = u.Clock.Now().UTC()
	}
	if err := u.Listings.UpdateListing(ctx, listing); err != nil {
		return PublishListingResult{}, err
	}

	logger.Info("listing published",
		"event", "listing_published",
		"module", "marketplace-core/listing-exchange",
		"layer", "application",
		"listing_id", listing.ListingID,
		"creator_id", listing.CreatorID,
	)
	return PublishListingResult{Listing: listing}, nil
}
