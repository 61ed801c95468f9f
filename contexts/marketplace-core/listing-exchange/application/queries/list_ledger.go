package queries

import (
	"context"
	"log/slog"

	application "ideabazaar/contexts/marketplace-core/listing-exchange/application"
	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
)

type ListPurchasesQuery struct {
	BuyerID string
}

type ListPurchasesResult struct {
	Items []entities.LedgerEntry
}

type ListPurchasesUseCase struct {
	Ledger ports.LedgerRepository
	Logger *slog.Logger
}

func (u ListPurchasesUseCase) Execute(ctx context.Context, query ListPurchasesQuery) (ListPurchasesResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if query.BuyerID == "" {
		return ListPurchasesResult{}, domainerrors.ErrInvalidPurchaseRequest
	}
	items, err := u.Ledger.ListEntriesByBuyer(ctx, query.BuyerID)
	if err != nil {
		logger.Error("list purchases failed",
			"event", "list_purchases_failed",
			"module", "marketplace-core/listing-exchange",
			"layer", "application",
			"buyer_id", query.BuyerID,
			"error", err.Error(),
		)
		return ListPurchasesResult{}, err
	}
	return ListPurchasesResult{Items: items}, nil
}

type ListSalesQuery struct {
	SellerID string
}

type ListSalesResult struct {
	Items []entities.LedgerEntry
}

type ListSalesUseCase struct {
	Ledger ports.LedgerRepository
	Logger *slog.Logger
}

func (u ListSalesUseCase) Execute(ctx context.Context, query ListSalesQuery) (ListSalesResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if query.SellerID == "" {
		return ListSalesResult{}, domainerrors.ErrInvalidPurchaseRequest
	}
	items, err := u.Ledger.ListEntriesBySeller(ctx, query.SellerID)
	if err != nil {
		logger.Error("list sales failed",
			"event", "list_sales_failed",
			"module", "marketplace-core/listing-exchange",
			"layer", "application",
			"seller_id", query.SellerID,
			"error", err.Error(),
		)
		return ListSalesResult{}, err
	}
	return ListSalesResult{Items: items}, nil
}
