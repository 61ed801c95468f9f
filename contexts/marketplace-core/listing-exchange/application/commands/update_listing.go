package commands

import (
	"context"
	"log/slog"
	"strings"

	application "ideabazaar/contexts/marketplace-core/listing-exchange/application"
	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
)

// UpdateListingCommand patches mutable listing fields. Nil pointers mean
// "leave unchanged".
type UpdateListingCommand struct {
	Kind         entities.ListingKind
	ListingID    string
	CreatorID    string
	Title        *string
	Description  *string
	Category     *string
	Price        *float64
	Tags         []string
	ImageURL     *string
	DeliveryTime *string
	Plan         *entities.BusinessPlan
}

type UpdateListingResult struct {
	Listing entities.Listing
}

type UpdateListingUseCase struct {
	Listings ports.ListingRepository
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (u UpdateListingUseCase) Execute(ctx context.Context, cmd UpdateListingCommand) (UpdateListingResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if !entities.IsValidKind(cmd.Kind) {
		return UpdateListingResult{}, domainerrors.ErrInvalidItemType
	}
	if cmd.ListingID == "" || cmd.CreatorID == "" {
		return UpdateListingResult{}, domainerrors.ErrInvalidListingRequest
	}

	listing, err := u.Listings.GetListing(ctx, cmd.Kind, cmd.ListingID)
	if err != nil {
		return UpdateListingResult{}, err
	}
	if listing.CreatorID != cmd.CreatorID {
		return UpdateListingResult{}, domainerrors.ErrNotListingOwner
	}

	if cmd.Title != nil {
		if strings.TrimSpace(*cmd.Title) == "" {
			return UpdateListingResult{}, domainerrors.ErrInvalidListingRequest
		}
		listing.Title = strings.TrimSpace(*cmd.Title)
	}
	if cmd.Description != nil {
		listing.Description = *cmd.Description
	}
	if cmd.Category != nil {
		listing.Category = *cmd.Category
	}
	if cmd.Price != nil {
		if *cmd.Price <= 0 {
			return UpdateListingResult{}, domainerrors.ErrInvalidListingRequest
		}
		listing.Price = *cmd.Price
	}
	if cmd.Tags != nil {
		listing.Tags = cmd.Tags
	}
	if cmd.ImageURL != nil {
		listing.ImageURL = *cmd.ImageURL
	}
	if cmd.DeliveryTime != nil && listing.Kind == entities.ListingKindService {
		listing.DeliveryTime = *cmd.DeliveryTime
	}
	if cmd.Plan != nil && listing.Kind == entities.ListingKindIdea {
		listing.Plan = *cmd.Plan
	}
	if u.Clock != nil {
		listing.UpdatedAt = u.Clock.Now().UTC()
	}

	if err := u.Listings.UpdateListing(ctx, listing); err != nil {
		return UpdateListingResult{}, err
	}

	logger.Info("listing updated",
		"event", "listing_updated",
		"module", "marketplace-core/listing-exchange",
		"layer", "application",
		"listing_id", listing.ListingID,
		"creator_id", listing.CreatorID,
	)
	return UpdateListingResult{Listing: listing}, nil
}
