package queries

import (
	"context"
	"errors"
	"log/slog"

	application "ideabazaar/contexts/marketplace-core/listing-exchange/application"
	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
)

type GetListingQuery struct {
	Kind      entities.ListingKind
	ListingID string
}

type GetListingResult struct {
	Listing entities.Listing
}

type GetListingUseCase struct {
	Listings ports.ListingRepository
	Logger   *slog.Logger
}

// Execute resolves one catalog listing. Unpublished listings are reported as
// not found so drafts never leak to buyers.
func (u GetListingUseCase) Execute(ctx context.Context, query GetListingQuery) (GetListingResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if !entities.IsValidKind(query.Kind) || query.ListingID == "" {
		return GetListingResult{}, domainerrors.ErrInvalidListingRequest
	}

	listing, err := u.Listings.GetListing(ctx, query.Kind, query.ListingID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrListingNotFound) {
			logger.Error("get listing failed",
				"event", "get_listing_failed",
				"module", "marketplace-core/listing-exchange",
				"layer", "application",
				"listing_id", query.ListingID,
				"error", err.Error(),
			)
		}
		return GetListingResult{}, err
	}
	if !listing.IsVisible() {
		return GetListingResult{}, domainerrors.ErrListingNotFound
	}
	return GetListingResult{Listing: listing}, nil
}
