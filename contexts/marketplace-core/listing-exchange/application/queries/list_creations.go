package queries

import (
	"context"
	"log/slog"

	application "ideabazaar/contexts/marketplace-core/listing-exchange/application"
	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
)

type ListCreationsQuery struct {
	CreatorID string
}

// ListCreationsResult splits a creator's own listings by kind, drafts
// included.
type ListCreationsResult struct {
	Ideas    []entities.Listing
	Services []entities.Listing
}

type ListCreationsUseCase struct {
	Listings ports.ListingRepository
	Logger   *slog.Logger
}

func (u ListCreationsUseCase) Execute(ctx context.Context, query ListCreationsQuery) (ListCreationsResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if query.CreatorID == "" {
		return ListCreationsResult{}, domainerrors.ErrInvalidListingRequest
	}

	items, err := u.Listings.ListListingsByCreator(ctx, query.CreatorID)
	if err != nil {
		logger.Error("list creations failed",
			"event", "list_creations_failed",
			"module", "marketplace-core/listing-exchange",
			"layer", "application",
			"creator_id", query.CreatorID,
			"error", err.Error(),
		)
		return ListCreationsResult{}, err
	}

	result := ListCreationsResult{}
	for _, item := range items {
		if item.Kind == entities.ListingKindIdea {
			result.Ideas = append(result.Ideas, item)
		} else {
			result.Services = append(result.Services, item)
		}
	}
	return result, nil
}
