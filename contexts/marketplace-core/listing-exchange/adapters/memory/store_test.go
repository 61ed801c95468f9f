package memory

import (
	"context"
	"testing"
	"time"

	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
)

func TestListListingsPageBeyondRangeIsEmpty(t *testing.T) {
	store := NewStore([]entities.Listing{
		{ListingID: "idea-1", Kind: entities.ListingKindIdea, Category: "Technology", Price: 100, IsPublished: true},
		{ListingID: "idea-2", Kind: entities.ListingKindIdea, Category: "Technology", Price: 200, IsPublished: true},
	}, nil)

	items, total, err := store.ListListings(context.Background(), ports.ListingFilter{
		Kind:    entities.ListingKindIdea,
		Page:    5,
		PerPage: 10,
		SortBy:  "created_at",
		Order:   "desc",
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total 2, got %d", total)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(items))
	}
}

func TestBuildMonthlyReportFiltersByMonthAndStatus(t *testing.T) {
	store := NewStore([]entities.Listing{
		{ListingID: "idea-1", Kind: entities.ListingKindIdea, Category: "Technology", Price: 100, CreatorID: "creator-1", IsPublished: true},
	}, nil)

	may := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	june := time.Date(2026, 6, 2, 0, 0, 0, 0, time.UTC)
	entries := []entities.LedgerEntry{
		{EntryID: "e-1", BuyerID: "b-1", SellerID: "creator-1", Item: entities.ItemRef{Kind: entities.ListingKindIdea, ListingID: "idea-1"}, Amount: 100, CommissionAmount: 10, SellerAmount: 90, Status: entities.LedgerEntryStatusCompleted, CreatedAt: may},
		{EntryID: "e-2", BuyerID: "b-2", SellerID: "creator-1", Item: entities.ItemRef{Kind: entities.ListingKindIdea, ListingID: "idea-1"}, Amount: 200, CommissionAmount: 20, SellerAmount: 180, Status: entities.LedgerEntryStatusCompleted, CreatedAt: may},
		{EntryID: "e-3", BuyerID: "b-3", SellerID: "creator-1", Item: entities.ItemRef{Kind: entities.ListingKindIdea, ListingID: "idea-1"}, Amount: 400, CommissionAmount: 40, SellerAmount: 360, Status: entities.LedgerEntryStatusCompleted, CreatedAt: june},
	}
	for i, entry := range entries {
		event := ports.PurchaseEvent{
			EventID:    entry.EntryID + "-event",
			EventType:  "marketplace.purchase_completed",
			EntryID:    entry.EntryID,
			BuyerID:    entry.BuyerID,
			SellerID:   entry.SellerID,
			ItemKind:   "idea",
			ListingID:  "idea-1",
			Amount:     entry.Amount,
			OccurredAt: entry.CreatedAt,
		}
		if err := store.RecordPurchase(context.Background(), entry, event); err != nil {
			t.Fatalf("record purchase %d failed: %v", i, err)
		}
	}

	report, err := store.BuildMonthlyReport(context.Background(), "2026-05")
	if err != nil {
		t.Fatalf("report failed: %v", err)
	}
	if report.Count != 2 {
		t.Fatalf("expected 2 entries in May, got %d", report.Count)
	}
	if report.TotalAmount != 300 || report.TotalCommission != 30 || report.TotalSeller != 270 {
		t.Fatalf("unexpected totals: %+v", report)
	}

	listing, err := store.GetListingByID(context.Background(), "idea-1")
	if err != nil {
		t.Fatalf("reload listing failed: %v", err)
	}
	if listing.SalesCount != 3 {
		t.Fatalf("expected counter 3 after three purchases, got %d", listing.SalesCount)
	}
}

func TestLedgerEntriesReturnNewestFirst(t *testing.T) {
	store := NewStore([]entities.Listing{
		{ListingID: "idea-1", Kind: entities.ListingKindIdea, Category: "Technology", Price: 100, CreatorID: "creator-1", IsPublished: true},
	}, nil)

	for _, id := range []string{"e-1", "e-2"} {
		entry := entities.LedgerEntry{
			EntryID:   id,
			BuyerID:   "buyer-1",
			SellerID:  "creator-1",
			Item:      entities.ItemRef{Kind: entities.ListingKindIdea, ListingID: "idea-1"},
			Amount:    100,
			Status:    entities.LedgerEntryStatusCompleted,
			CreatedAt: time.Now().UTC(),
		}
		event := ports.PurchaseEvent{EventID: id + "-event", EventType: "marketplace.purchase_completed", EntryID: id, ItemKind: "idea", ListingID: "idea-1", Amount: 100, OccurredAt: entry.CreatedAt}
		if err := store.RecordPurchase(context.Background(), entry, event); err != nil {
			t.Fatalf("record purchase failed: %v", err)
		}
	}

	purchases, err := store.ListEntriesByBuyer(context.Background(), "buyer-1")
	if err != nil {
		t.Fatalf("list purchases failed: %v", err)
	}
	if len(purchases) != 2 || purchases[0].EntryID != "e-2" {
		t.Fatalf("expected newest entry first, got %+v", purchases)
	}

	sales, err := store.ListEntriesBySeller(context.Background(), "creator-1")
	if err != nil {
		t.Fatalf("list sales failed: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("expected 2 sales, got %d", len(sales))
	}
}
