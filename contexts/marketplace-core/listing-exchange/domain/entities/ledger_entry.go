package entities

import (
	"time"

	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
)

// ItemRef is a tagged reference from a ledger entry to the listing it paid
// for. Keeping the kind on the reference lets each store enforce referential
// integrity per variant instead of carrying an untyped pair.
type ItemRef struct {
	Kind      ListingKind
	ListingID string
}

func NewItemRef(kind ListingKind, listingID string) (ItemRef, error) {
	if !IsValidKind(kind) {
		return ItemRef{}, domainerrors.ErrInvalidItemType
	}
	if listingID == "" {
		return ItemRef{}, domainerrors.ErrInvalidPurchaseRequest
	}
	return ItemRef{Kind: kind, ListingID: listingID}, nil
}

type LedgerEntryStatus string

const (
	LedgerEntryStatusPending   LedgerEntryStatus = "pending"
	LedgerEntryStatusCompleted LedgerEntryStatus = "completed"
	LedgerEntryStatusFailed    LedgerEntryStatus = "failed"
	LedgerEntryStatusRefunded  LedgerEntryStatus = "refunded"
)

// LedgerEntry is the immutable record of one purchase and its commission
// split. The purchase flow only ever writes completed entries; refund and
// status-change flows live elsewhere.
type LedgerEntry struct {
	EntryID          string
	BuyerID          string
	SellerID         string
	Item             ItemRef
	Amount           float64
	Currency         string
	CommissionRate   float64
	CommissionAmount float64
	SellerAmount     float64
	PaymentMethod    string
	Status           LedgerEntryStatus
	CreatedAt        time.Time
}
