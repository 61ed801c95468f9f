package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"ideabazaar/contexts/marketplace-core/listing-exchange/adapters/memory"
	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
)

func catalogFixture() []entities.Listing {
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	return []entities.Listing{
		{ListingID: "idea-a", Kind: entities.ListingKindIdea, Title: "Delivery Robots", Category: "Technology", Price: 100, Rating: 3.5, SalesCount: 7, CreatorID: "creator-1", IsPublished: true, CreatedAt: base},
		{ListingID: "idea-b", Kind: entities.ListingKindIdea, Title: "Smart Mirror", Category: "Technology", Price: 300, Rating: 4.8, SalesCount: 2, CreatorID: "creator-1", IsPublished: true, CreatedAt: base.Add(1 * time.Hour)},
		{ListingID: "idea-c", Kind: entities.ListingKindIdea, Title: "Language Exchange", Category: "Technology", Price: 200, Rating: 4.1, SalesCount: 9, CreatorID: "creator-2", IsPublished: true, CreatedAt: base.Add(2 * time.Hour), Tags: []string{"Language", "Community"}},
		{ListingID: "idea-d", Kind: entities.ListingKindIdea, Title: "Drone Inspections", Category: "Technology", Price: 500, Rating: 2.9, SalesCount: 4, CreatorID: "creator-2", IsPublished: true, CreatedAt: base.Add(3 * time.Hour)},
		{ListingID: "idea-e", Kind: entities.ListingKindIdea, Title: "Vertical Farming", Category: "Technology", Price: 400, Rating: 4.8, SalesCount: 4, CreatorID: "creator-1", IsPublished: true, CreatedAt: base.Add(4 * time.Hour)},
		{ListingID: "idea-f", Kind: entities.ListingKindIdea, Title: "Hidden Draft", Category: "Technology", Price: 50, CreatorID: "creator-1", IsPublished: false, CreatedAt: base.Add(5 * time.Hour)},
		{ListingID: "svc-a", Kind: entities.ListingKindService, Title: "Landing Page Build", Category: "Technology", Price: 250, CreatorID: "creator-2", IsPublished: true, DeliveryTime: "1 week", CreatedAt: base.Add(6 * time.Hour)},
	}
}

func TestListListingsPriceAscendingWithPagination(t *testing.T) {
	store := memory.NewStore(catalogFixture(), nil)
	useCase := ListListingsUseCase{Listings: store}

	result, err := useCase.Execute(context.Background(), ListListingsQuery{
		Kind:     entities.ListingKindIdea,
		Page:     1,
		PerPage:  2,
		Category: "Technology",
		SortBy:   SortByPrice,
		Order:    "asc",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Pagination.Total != 5 || result.Pagination.Pages != 3 {
		t.Fatalf("expected total 5 over 3 pages, got %+v", result.Pagination)
	}
	if !result.Pagination.HasNext || result.Pagination.HasPrev {
		t.Fatalf("unexpected pagination flags: %+v", result.Pagination)
	}
	if len(result.Items) != 2 || result.Items[0].Price != 100 || result.Items[1].Price != 200 {
		t.Fatalf("unexpected first page: %+v", result.Items)
	}

	// Concatenating every page reproduces the full sorted set.
	var prices []float64
	for page := 1; page <= result.Pagination.Pages; page++ {
		chunk, err := useCase.Execute(context.Background(), ListListingsQuery{
			Kind:     entities.ListingKindIdea,
			Page:     page,
			PerPage:  2,
			Category: "Technology",
			SortBy:   SortByPrice,
			Order:    "asc",
		})
		if err != nil {
			t.Fatalf("list page %d failed: %v", page, err)
		}
		if len(chunk.Items) > 2 {
			t.Fatalf("page %d exceeds per_page: %d items", page, len(chunk.Items))
		}
		for _, item := range chunk.Items {
			prices = append(prices, item.Price)
		}
	}
	want := []float64{100, 200, 300, 400, 500}
	if len(prices) != len(want) {
		t.Fatalf("expected %d items across pages, got %d", len(want), len(prices))
	}
	for i, price := range want {
		if prices[i] != price {
			t.Fatalf("position %d: expected price %v, got %v", i, price, prices[i])
		}
	}
}

func TestListListingsRatingIgnoresOrderParameter(t *testing.T) {
	store := memory.NewStore(catalogFixture(), nil)
	useCase := ListListingsUseCase{Listings: store}

	result, err := useCase.Execute(context.Background(), ListListingsQuery{
		Kind:    entities.ListingKindIdea,
		SortBy:  SortByRating,
		Order:   "asc",
		PerPage: 10,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	// Ties on 4.8 break by listing id ascending.
	want := []string{"idea-b", "idea-e", "idea-c", "idea-a", "idea-d"}
	if len(result.Items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(result.Items))
	}
	for i, id := range want {
		if result.Items[i].ListingID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, result.Items[i].ListingID)
		}
	}
}

func TestListListingsSalesAlwaysDescending(t *testing.T) {
	store := memory.NewStore(catalogFixture(), nil)
	useCase := ListListingsUseCase{Listings: store}

	result, err := useCase.Execute(context.Background(), ListListingsQuery{
		Kind:    entities.ListingKindIdea,
		SortBy:  SortBySales,
		Order:   "asc",
		PerPage: 10,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Items[0].ListingID != "idea-c" || result.Items[0].SalesCount != 9 {
		t.Fatalf("expected best seller first, got %s", result.Items[0].ListingID)
	}
}

func TestListListingsDefaultsAndClamps(t *testing.T) {
	store := memory.NewStore(catalogFixture(), nil)
	useCase := ListListingsUseCase{Listings: store}

	result, err := useCase.Execute(context.Background(), ListListingsQuery{
		Kind:     entities.ListingKindIdea,
		Page:     -3,
		PerPage:  500,
		Category: "all",
		SortBy:   "nonsense",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if result.Pagination.Page != 1 || result.Pagination.PerPage != 100 {
		t.Fatalf("expected clamped paging, got %+v", result.Pagination)
	}
	// Unknown sort falls back to newest first across every category.
	if result.Pagination.Total != 5 {
		t.Fatalf("expected 5 published ideas, got %d", result.Pagination.Total)
	}
	if result.Items[0].ListingID != "idea-e" {
		t.Fatalf("expected newest idea first, got %s", result.Items[0].ListingID)
	}

	_, err = useCase.Execute(context.Background(), ListListingsQuery{Kind: "bundle"})
	if !errors.Is(err, domainerrors.ErrInvalidListFilter) {
		t.Fatalf("expected invalid list filter, got %v", err)
	}
}

func TestListListingsSearchIsCaseSensitive(t *testing.T) {
	store := memory.NewStore(catalogFixture(), nil)
	useCase := ListListingsUseCase{Listings: store}

	hit, err := useCase.Execute(context.Background(), ListListingsQuery{
		Kind:   entities.ListingKindIdea,
		Search: "Language",
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if hit.Pagination.Total != 1 || hit.Items[0].ListingID != "idea-c" {
		t.Fatalf("expected title match on idea-c, got %+v", hit.Items)
	}

	miss, err := useCase.Execute(context.Background(), ListListingsQuery{
		Kind:   entities.ListingKindIdea,
		Search: "language",
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if miss.Pagination.Total != 0 {
		t.Fatalf("expected lowercase query to miss, got %d hits", miss.Pagination.Total)
	}

	// "Community" appears only in idea-c's tags; search covers title and
	// description, so it must not surface the listing.
	tagOnly, err := useCase.Execute(context.Background(), ListListingsQuery{
		Kind:   entities.ListingKindIdea,
		Search: "Community",
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if tagOnly.Pagination.Total != 0 {
		t.Fatalf("expected tag-only term to miss, got %d hits", tagOnly.Pagination.Total)
	}
}

func TestGetListingHidesDrafts(t *testing.T) {
	store := memory.NewStore(catalogFixture(), nil)
	useCase := GetListingUseCase{Listings: store}

	_, err := useCase.Execute(context.Background(), GetListingQuery{
		Kind:      entities.ListingKindIdea,
		ListingID: "idea-f",
	})
	if !errors.Is(err, domainerrors.ErrListingNotFound) {
		t.Fatalf("expected draft hidden, got %v", err)
	}

	result, err := useCase.Execute(context.Background(), GetListingQuery{
		Kind:      entities.ListingKindService,
		ListingID: "svc-a",
	})
	if err != nil {
		t.Fatalf("get service failed: %v", err)
	}
	if result.Listing.DeliveryTime != "1 week" {
		t.Fatalf("unexpected listing: %+v", result.Listing)
	}
}

func TestListCreationsSplitsByKind(t *testing.T) {
	store := memory.NewStore(catalogFixture(), nil)
	useCase := ListCreationsUseCase{Listings: store}

	result, err := useCase.Execute(context.Background(), ListCreationsQuery{CreatorID: "creator-2"})
	if err != nil {
		t.Fatalf("list creations failed: %v", err)
	}
	if len(result.Ideas) != 2 || len(result.Services) != 1 {
		t.Fatalf("expected 2 ideas and 1 service, got %d/%d", len(result.Ideas), len(result.Services))
	}
}

func TestRevenueReportRejectsBadMonth(t *testing.T) {
	store := memory.NewStore(nil, nil)
	useCase := RevenueReportUseCase{Ledger: store}

	_, err := useCase.Execute(context.Background(), RevenueReportQuery{Month: "2026-13"})
	if !errors.Is(err, domainerrors.ErrInvalidReportMonth) {
		t.Fatalf("expected invalid report month, got %v", err)
	}
	_, err = useCase.Execute(context.Background(), RevenueReportQuery{Month: "May 2026"})
	if !errors.Is(err, domainerrors.ErrInvalidReportMonth) {
		t.Fatalf("expected invalid report month, got %v", err)
	}
}
