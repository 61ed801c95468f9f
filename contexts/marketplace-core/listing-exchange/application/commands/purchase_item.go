package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	application "ideabazaar/contexts/marketplace-core/listing-exchange/application"
	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/services"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
)

const (
	purchaseCurrency       = "USD"
	defaultPaymentMethod   = "credit_card"
	purchaseCompletedEvent = "marketplace.purchase_completed"
)

type PurchaseItemCommand struct {
	BuyerID       string
	ItemKind      string
	ListingID     string
	Amount        float64
	PaymentMethod string
}

type PurchaseItemResult struct {
	Entry entities.LedgerEntry
}

// PurchaseItemUseCase coordinates a marketplace purchase: it resolves the
// listing, splits the amount between platform and seller, and hands the entry
// plus its integration event to the ledger in one transactional write.
type PurchaseItemUseCase struct {
	Listings ports.ListingRepository
	Ledger   ports.LedgerRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

func (u PurchaseItemUseCase) Execute(ctx context.Context, cmd PurchaseItemCommand) (PurchaseItemResult, error) {
	logger := application.ResolveLogger(u.Logger)

	if cmd.BuyerID == "" {
		return PurchaseItemResult{}, domainerrors.ErrInvalidPurchaseRequest
	}
	item, err := entities.NewItemRef(entities.ListingKind(cmd.ItemKind), cmd.ListingID)
	if err != nil {
		return PurchaseItemResult{}, err
	}

	listing, err := u.Listings.GetListing(ctx, item.Kind, item.ListingID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrListingNotFound) {
			return PurchaseItemResult{}, domainerrors.ErrListingNotFound
		}
		return PurchaseItemResult{}, err
	}
	// Drafts are invisible to buyers, so an unpublished target reads the
	// same as a missing one.
	if !listing.IsPublished {
		return PurchaseItemResult{}, domainerrors.ErrListingNotFound
	}

	amount := cmd.Amount
	if amount == 0 {
		amount = listing.Price
	}
	split, err := services.SplitAmount(amount, services.DefaultCommissionRate)
	if err != nil {
		return PurchaseItemResult{}, err
	}

	entryID, err := u.IDGen.NewID(ctx)
	if err != nil {
		return PurchaseItemResult{}, err
	}
	eventID, err := u.IDGen.NewID(ctx)
	if err != nil {
		return PurchaseItemResult{}, err
	}
	now := u.now()

	paymentMethod := strings.TrimSpace(cmd.PaymentMethod)
	if paymentMethod == "" {
		paymentMethod = defaultPaymentMethod
	}

	entry := entities.LedgerEntry{
		EntryID:          entryID,
		BuyerID:          cmd.BuyerID,
		SellerID:         listing.CreatorID,
		Item:             item,
		Amount:           amount,
		Currency:         purchaseCurrency,
		CommissionRate:   split.Rate,
		CommissionAmount: split.Commission,
		SellerAmount:     split.Seller,
		PaymentMethod:    paymentMethod,
		Status:           entities.LedgerEntryStatusCompleted,
		CreatedAt:        now,
	}
	event := ports.PurchaseEvent{
		EventID:    eventID,
		EventType:  purchaseCompletedEvent,
		EntryID:    entryID,
		BuyerID:    cmd.BuyerID,
		SellerID:   listing.CreatorID,
		ItemKind:   string(item.Kind),
		ListingID:  item.ListingID,
		Amount:     amount,
		OccurredAt: now,
	}

	if err := u.Ledger.RecordPurchase(ctx, entry, event); err != nil {
		logger.Error("purchase write failed",
			"event", "purchase_failed",
			"module", "marketplace-core/listing-exchange",
			"layer", "application",
			"buyer_id", cmd.BuyerID,
			"listing_id", item.ListingID,
			"error", err.Error(),
		)
		return PurchaseItemResult{}, err
	}

	logger.Info("purchase completed",
		"event", "purchase_completed",
		"module", "marketplace-core/listing-exchange",
		"layer", "application",
		"entry_id", entry.EntryID,
		"buyer_id", entry.BuyerID,
		"seller_id", entry.SellerID,
		"listing_id", item.ListingID,
		"amount", entry.Amount,
		"commission_amount", entry.CommissionAmount,
	)
	return PurchaseItemResult{Entry: entry}, nil
}

func (u PurchaseItemUseCase) now() time.Time {
	if u.Clock == nil {
		return time.Now().UTC()
	}
	return u.Clock.Now().UTC()
}
