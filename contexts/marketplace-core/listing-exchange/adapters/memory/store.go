package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	application "ideabazaar/contexts/marketplace-core/listing-exchange/application"
	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
	"ideabazaar/internal/shared/events"
)

// Store is an in-memory adapter implementing the listing and ledger ports for
// local runtime and tests. It is not intended as production persistence.
type Store struct {
	mu          sync.RWMutex
	listings    map[string]entities.Listing
	ledger      map[string]entities.LedgerEntry
	ledgerOrder []string
	outbox      map[string]ports.OutboxMessage
	outboxOrder []string
	outboxSent  map[string]time.Time
	sequence    uint64
	logger      *slog.Logger
}

// NewStore seeds the catalog and initializes empty ledger and outbox state.
func NewStore(seedListings []entities.Listing, logger *slog.Logger) *Store {
	listingMap := make(map[string]entities.Listing, len(seedListings))
	for _, listing := range seedListings {
		listingMap[listing.ListingID] = listing
	}
	return &Store{
		listings:    listingMap,
		ledger:      make(map[string]entities.LedgerEntry),
		ledgerOrder: make([]string, 0),
		outbox:      make(map[string]ports.OutboxMessage),
		outboxOrder: make([]string, 0),
		outboxSent:  make(map[string]time.Time),
		logger:      application.ResolveLogger(logger),
	}
}

func (s *Store) ListListings(_ context.Context, filter ports.ListingFilter) ([]entities.Listing, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filtered []entities.Listing
	for _, listing := range s.listings {
		if listing.Kind != filter.Kind || !listing.IsPublished {
			continue
		}
		if filter.Category != "" && listing.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !matchesSearch(listing, filter.Search) {
			continue
		}
		filtered = append(filtered, listing)
	}

	sortListings(filtered, filter.SortBy, filter.Order)
	total := len(filtered)

	start := (filter.Page - 1) * filter.PerPage
	if start > total {
		start = total
	}
	end := start + filter.PerPage
	if end > total {
		end = total
	}
	page := make([]entities.Listing, end-start)
	copy(page, filtered[start:end])
	return page, total, nil
}

func (s *Store) GetListing(_ context.Context, kind entities.ListingKind, listingID string) (entities.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	listing, ok := s.listings[listingID]
	if !ok || listing.Kind != kind {
		return entities.Listing{}, domainerrors.ErrListingNotFound
	}
	return listing, nil
}

func (s *Store) GetListingByID(_ context.Context, listingID string) (entities.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	listing, ok := s.listings[listingID]
	if !ok {
		return entities.Listing{}, domainerrors.ErrListingNotFound
	}
	return listing, nil
}

func (s *Store) ListListingsByCreator(_ context.Context, creatorID string) ([]entities.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var owned []entities.Listing
	for _, listing := range s.listings {
		if listing.CreatorID == creatorID {
			owned = append(owned, listing)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].ListingID < owned[j].ListingID
		}
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	return owned, nil
}

func (s *Store) CreateListing(_ context.Context, listing entities.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.listings[listing.ListingID]; exists {
		return domainerrors.ErrDuplicateListing
	}
	s.listings[listing.ListingID] = listing
	return nil
}

func (s *Store) UpdateListing(_ context.Context, listing entities.Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.listings[listing.ListingID]; !exists {
		return domainerrors.ErrListingNotFound
	}
	s.listings[listing.ListingID] = listing
	return nil
}

// RecordPurchase applies the whole purchase write under one lock: the entry,
// the listing counter, and the outbox row either all land or none do.
func (s *Store) RecordPurchase(_ context.Context, entry entities.LedgerEntry, event ports.PurchaseEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[entry.Item.ListingID]
	if !ok || listing.Kind != entry.Item.Kind || !listing.IsPublished {
		return domainerrors.ErrListingNotFound
	}
	if _, exists := s.ledger[entry.EntryID]; exists {
		return fmt.Errorf("memory: duplicate ledger entry %s", entry.EntryID)
	}

	payload, err := json.Marshal(purchaseEnvelope(event))
	if err != nil {
		return fmt.Errorf("memory: encode purchase event: %w", err)
	}

	listing.SalesCount++
	s.listings[listing.ListingID] = listing
	s.ledger[entry.EntryID] = entry
	s.ledgerOrder = append(s.ledgerOrder, entry.EntryID)
	s.outbox[event.EventID] = ports.OutboxMessage{
		OutboxID:     event.EventID,
		EventType:    event.EventType,
		PartitionKey: event.ListingID,
		Payload:      payload,
		CreatedAt:    event.OccurredAt,
	}
	s.outboxOrder = append(s.outboxOrder, event.EventID)
	return nil
}

func (s *Store) ListEntriesByBuyer(_ context.Context, buyerID string) ([]entities.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectEntries(func(entry entities.LedgerEntry) bool {
		return entry.BuyerID == buyerID
	}), nil
}

func (s *Store) ListEntriesBySeller(_ context.Context, sellerID string) ([]entities.LedgerEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collectEntries(func(entry entities.LedgerEntry) bool {
		return entry.SellerID == sellerID
	}), nil
}

func (s *Store) BuildMonthlyReport(_ context.Context, month string) (ports.RevenueReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	report := ports.RevenueReport{Month: month}
	for _, entryID := range s.ledgerOrder {
		entry := s.ledger[entryID]
		if entry.Status != entities.LedgerEntryStatusCompleted {
			continue
		}
		if entry.CreatedAt.UTC().Format("2006-01") != month {
			continue
		}
		report.Count++
		report.TotalAmount += entry.Amount
		report.TotalCommission += entry.CommissionAmount
		report.TotalSeller += entry.SellerAmount
	}
	return report, nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pending := make([]ports.OutboxMessage, 0, limit)
	for _, outboxID := range s.outboxOrder {
		if _, sent := s.outboxSent[outboxID]; sent {
			continue
		}
		pending = append(pending, s.outbox[outboxID])
		if len(pending) >= limit {
			break
		}
	}
	return pending, nil
}

func (s *Store) MarkOutboxSent(_ context.Context, outboxID string, sentAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.outbox[outboxID]; !ok {
		return fmt.Errorf("memory: unknown outbox row %s", outboxID)
	}
	s.outboxSent[outboxID] = sentAt
	return nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	value := atomic.AddUint64(&s.sequence, 1)
	return fmt.Sprintf("mkt-%d", value), nil
}

// OutboxEvents exposes all outbox rows for tests.
func (s *Store) OutboxEvents() []ports.OutboxMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rows := make([]ports.OutboxMessage, 0, len(s.outboxOrder))
	for _, outboxID := range s.outboxOrder {
		rows = append(rows, s.outbox[outboxID])
	}
	return rows
}

func (s *Store) collectEntries(match func(entities.LedgerEntry) bool) []entities.LedgerEntry {
	entries := make([]entities.LedgerEntry, 0)
	for i := len(s.ledgerOrder) - 1; i >= 0; i-- {
		entry := s.ledger[s.ledgerOrder[i]]
		if match(entry) {
			entries = append(entries, entry)
		}
	}
	return entries
}

// matchesSearch reproduces the catalog's case-sensitive substring match over
// title and description. Tags are display metadata, not a search surface.
func matchesSearch(listing entities.Listing, search string) bool {
	return strings.Contains(listing.Title, search) || strings.Contains(listing.Description, search)
}

func sortListings(listings []entities.Listing, sortBy string, order string) {
	asc := order == "asc"
	sort.Slice(listings, func(i, j int) bool {
		a, b := listings[i], listings[j]
		switch sortBy {
		case "price":
			if a.Price != b.Price {
				if asc {
					return a.Price < b.Price
				}
				return a.Price > b.Price
			}
		case "rating":
			// Rating ignores the order parameter: best first, always.
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
		case "sales", "orders":
			if a.SalesCount != b.SalesCount {
				return a.SalesCount > b.SalesCount
			}
		default:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				if asc {
					return a.CreatedAt.Before(b.CreatedAt)
				}
				return a.CreatedAt.After(b.CreatedAt)
			}
		}
		return a.ListingID < b.ListingID
	})
}

func purchaseEnvelope(event ports.PurchaseEvent) events.Envelope {
	return events.Envelope{
		EventID:        event.EventID,
		EventType:      event.EventType,
		SourceService:  "listing-exchange",
		OccurredAtUTC:  event.OccurredAt.UTC(),
		CorrelationID:  event.EntryID,
		EntityType:     event.ItemKind,
		EntityID:       event.ListingID,
		PayloadVersion: 1,
		Payload: map[string]any{
			"entry_id":   event.EntryID,
			"buyer_id":   event.BuyerID,
			"seller_id":  event.SellerID,
			"item_type":  event.ItemKind,
			"item_id":    event.ListingID,
			"amount":     event.Amount,
			"event_type": event.EventType,
		},
	}
}
