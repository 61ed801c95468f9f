package commands

import (
	"context"
	"errors"
	"testing"

	"ideabazaar/contexts/marketplace-core/listing-exchange/adapters/memory"
	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
)

func allowAll() ports.CreatorAuthorizer {
	return ports.CreatorAuthorizerFunc(func(context.Context, string) error { return nil })
}

func denyAll() ports.CreatorAuthorizer {
	return ports.CreatorAuthorizerFunc(func(context.Context, string) error {
		return domainerrors.ErrCreatorNotAuthorized
	})
}

func TestCreateListingScrubsKindSpecificFields(t *testing.T) {
	store := memory.NewStore(nil, nil)
	useCase := CreateListingUseCase{
		Listings:   store,
		Authorizer: allowAll(),
		Clock:      store,
		IDGen:      store,
	}

	idea, err := useCase.Execute(context.Background(), CreateListingCommand{
		CreatorID:    "creator-1",
		Kind:         entities.ListingKindIdea,
		Title:        "  Solar Charging Kiosk  ",
		Description:  "Off-grid device charging for events.",
		Category:     "Sustainability",
		Price:        950,
		DeliveryTime: "1 week",
		Plan:         entities.BusinessPlan{ExecutiveSummary: "Charging as a service."},
	})
	if err != nil {
		t.Fatalf("create idea failed: %v", err)
	}
	if idea.Listing.Title != "Solar Charging Kiosk" {
		t.Fatalf("expected trimmed title, got %q", idea.Listing.Title)
	}
	if idea.Listing.DeliveryTime != "" {
		t.Fatalf("expected delivery time cleared on idea, got %q", idea.Listing.DeliveryTime)
	}
	if idea.Listing.Plan.ExecutiveSummary == "" {
		t.Fatal("expected plan kept on idea")
	}

	svc, err := useCase.Execute(context.Background(), CreateListingCommand{
		CreatorID:    "creator-1",
		Kind:         entities.ListingKindService,
		Title:        "Pitch Deck Review",
		Description:  "Slide by slide feedback.",
		Category:     "Consulting",
		Price:        150,
		DeliveryTime: "3 days",
		Plan:         entities.BusinessPlan{ExecutiveSummary: "should vanish"},
	})
	if err != nil {
		t.Fatalf("create service failed: %v", err)
	}
	if svc.Listing.Plan != (entities.BusinessPlan{}) {
		t.Fatalf("expected plan cleared on service, got %+v", svc.Listing.Plan)
	}
	if svc.Listing.DeliveryTime != "3 days" {
		t.Fatalf("expected delivery time kept on service, got %q", svc.Listing.DeliveryTime)
	}
}

func TestCreateListingValidation(t *testing.T) {
	store := memory.NewStore(nil, nil)
	useCase := CreateListingUseCase{
		Listings:   store,
		Authorizer: allowAll(),
		Clock:      store,
		IDGen:      store,
	}

	cases := []CreateListingCommand{
		{Kind: "bundle", CreatorID: "creator-1", Title: "x", Description: "y", Category: "Technology", Price: 10},
		{Kind: entities.ListingKindIdea, Title: "x", Description: "y", Category: "Technology", Price: 10},
		{Kind: entities.ListingKindIdea, CreatorID: "creator-1", Title: "  ", Description: "y", Category: "Technology", Price: 10},
		{Kind: entities.ListingKindIdea, CreatorID: "creator-1", Title: "x", Description: "y", Category: "Technology", Price: 0},
		{Kind: entities.ListingKindService, CreatorID: "creator-1", Title: "x", Description: "y", Category: "Design", Price: 10},
	}
	for i, cmd := range cases {
		if _, err := useCase.Execute(context.Background(), cmd); !errors.Is(err, domainerrors.ErrInvalidListingRequest) {
			t.Fatalf("case %d: expected invalid listing request, got %v", i, err)
		}
	}
}

func TestCreateListingDeniedByAuthorizer(t *testing.T) {
	store := memory.NewStore(nil, nil)
	useCase := CreateListingUseCase{
		Listings:   store,
		Authorizer: denyAll(),
		Clock:      store,
		IDGen:      store,
	}

	_, err := useCase.Execute(context.Background(), CreateListingCommand{
		CreatorID:   "client-1",
		Kind:        entities.ListingKindIdea,
		Title:       "Side Project",
		Description: "d",
		Category:    "Technology",
		Price:       50,
	})
	if !errors.Is(err, domainerrors.ErrCreatorNotAuthorized) {
		t.Fatalf("expected creator not authorized, got %v", err)
	}

	owned, err := store.ListListingsByCreator(context.Background(), "client-1")
	if err != nil {
		t.Fatalf("list creations failed: %v", err)
	}
	if len(owned) != 0 {
		t.Fatalf("expected nothing stored after denial, got %d listings", len(owned))
	}
}

func TestUpdateListingOwnershipAndPatch(t *testing.T) {
	store := memory.NewStore([]entities.Listing{{
		ListingID:   "svc-1",
		Kind:        entities.ListingKindService,
		Title:       "Logo Design",
		Description: "d",
		Category:    "Design",
		Price:       600,
		CreatorID:   "creator-2",
		IsPublished: true,
	}}, nil)
	useCase := UpdateListingUseCase{Listings: store, Clock: store}

	newPrice := 750.0
	newDelivery := "4 days"
	result, err := useCase.Execute(context.Background(), UpdateListingCommand{
		Kind:         entities.ListingKindService,
		ListingID:    "svc-1",
		CreatorID:    "creator-2",
		Price:        &newPrice,
		DeliveryTime: &newDelivery,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if result.Listing.Price != 750 || result.Listing.DeliveryTime != "4 days" {
		t.Fatalf("patch not applied: %+v", result.Listing)
	}
	if result.Listing.Title != "Logo Design" {
		t.Fatalf("expected untouched title, got %q", result.Listing.Title)
	}

	_, err = useCase.Execute(context.Background(), UpdateListingCommand{
		Kind:      entities.ListingKindService,
		ListingID: "svc-1",
		CreatorID: "creator-1",
		Price:     &newPrice,
	})
	if !errors.Is(err, domainerrors.ErrNotListingOwner) {
		t.Fatalf("expected not listing owner, got %v", err)
	}

	badPrice := -10.0
	_, err = useCase.Execute(context.Background(), UpdateListingCommand{
		Kind:      entities.ListingKindService,
		ListingID: "svc-1",
		CreatorID: "creator-2",
		Price:     &badPrice,
	})
	if !errors.Is(err, domainerrors.ErrInvalidListingRequest) {
		t.Fatalf("expected invalid listing request, got %v", err)
	}
}

func TestPublishListingTransitions(t *testing.T) {
	store := memory.NewStore([]entities.Listing{{
		ListingID:   "idea-1",
		Kind:        entities.ListingKindIdea,
		Title:       "Draft Idea",
		Description: "d",
		Category:    "Technology",
		Price:       100,
		CreatorID:   "creator-1",
	}}, nil)
	useCase := PublishListingUseCase{Listings: store, Clock: store}

	result, err := useCase.Execute(context.Background(), PublishListingCommand{
		Kind:      entities.ListingKindIdea,
		ListingID: "idea-1",
		CreatorID: "creator-1",
	})
	if err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if !result.Listing.IsPublished {
		t.Fatal("expected listing published")
	}

	_, err = useCase.Execute(context.Background(), PublishListingCommand{
		Kind:      entities.ListingKindIdea,
		ListingID: "idea-1",
		CreatorID: "creator-1",
	})
	if !errors.Is(err, domainerrors.ErrAlreadyPublished) {
		t.Fatalf("expected already published, got %v", err)
	}
}
