package ports

import (
	"context"
	"time"

	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	"ideabazaar/internal/shared/events"
)

// ListingFilter defines read-side filtering, sorting, and pagination over the
// published catalog. Values arrive pre-validated from the query layer.
type ListingFilter struct {
	Kind     entities.ListingKind
	Page     int
	PerPage  int
	Category string
	Search   string
	SortBy   string
	Order    string
}

// ListingRepository owns listing persistence for both catalog kinds.
type ListingRepository interface {
	// ListListings returns one page of published listings plus the total
	// match count before pagination.
	ListListings(ctx context.Context, filter ListingFilter) ([]entities.Listing, int, error)
	// GetListing resolves by kind + id regardless of publication state;
	// visibility rules live in the application layer.
	GetListing(ctx context.Context, kind entities.ListingKind, listingID string) (entities.Listing, error)
	GetListingByID(ctx context.Context, listingID string) (entities.Listing, error)
	ListListingsByCreator(ctx context.Context, creatorID string) ([]entities.Listing, error)
	CreateListing(ctx context.Context, listing entities.Listing) error
	UpdateListing(ctx context.Context, listing entities.Listing) error
}

// PurchaseEvent is the outbound integration payload persisted to the outbox
// alongside the ledger entry.
type PurchaseEvent struct {
	EventID    string
	EventType  string
	EntryID    string
	BuyerID    string
	SellerID   string
	ItemKind   string
	ListingID  string
	Amount     float64
	OccurredAt time.Time
}

// RevenueReport aggregates completed ledger entries for one calendar month.
type RevenueReport struct {
	Month           string
	Count           int
	TotalAmount     float64
	TotalCommission float64
	TotalSeller     float64
}

// LedgerRepository owns ledger persistence and the purchase write boundary.
type LedgerRepository interface {
	// RecordPurchase must commit the ledger entry, the listing counter
	// increment, and the outbox message in a single transaction.
	RecordPurchase(ctx context.Context, entry entities.LedgerEntry, event PurchaseEvent) error
	ListEntriesByBuyer(ctx context.Context, buyerID string) ([]entities.LedgerEntry, error)
	ListEntriesBySeller(ctx context.Context, sellerID string) ([]entities.LedgerEntry, error)
	BuildMonthlyReport(ctx context.Context, month string) (RevenueReport, error)
}

// OutboxMessage is a row ready to relay from the module outbox.
type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

// OutboxRepository models worker-side outbox polling/acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error
}

// Clock allows deterministic testing of timestamps.
type Clock interface {
	Now() time.Time
}

// IDGenerator abstracts entry/event identifier generation.
type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// EventEnvelope reuses the canonical cross-module envelope.
type EventEnvelope = events.Envelope

// EventPublisher publishes canonical envelopes to a topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

// CreatorAuthorizer answers whether a principal may create listings.
// Implementations return ErrCreatorNotAuthorized from this module's domain
// errors to deny; the directory adapter that backs it is wired in bootstrap.
type CreatorAuthorizer interface {
	AuthorizeCreator(ctx context.Context, creatorID string) error
}

type CreatorAuthorizerFunc func(ctx context.Context, creatorID string) error

func (f CreatorAuthorizerFunc) AuthorizeCreator(ctx context.Context, creatorID string) error {
	return f(ctx, creatorID)
}
