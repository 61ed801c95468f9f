package listingexchange

import (
	"context"
	"log/slog"

	httpadapter "ideabazaar/contexts/marketplace-core/listing-exchange/adapters/http"
	"ideabazaar/contexts/marketplace-core/listing-exchange/adapters/memory"
	"ideabazaar/contexts/marketplace-core/listing-exchange/application/commands"
	"ideabazaar/contexts/marketplace-core/listing-exchange/application/queries"
	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
)

// Module is the composition surface for the listing exchange.
// Runtime wiring should consume Handler; Store is exposed for tests/inspection.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Listings    ports.ListingRepository
	Ledger      ports.LedgerRepository
	Authorizer  ports.CreatorAuthorizer
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// NewModule wires the exchange use-cases against explicit ports.
func NewModule(deps Dependencies) Module {
	listListings := queries.ListListingsUseCase{
		Listings: deps.Listings,
		Logger:   deps.Logger,
	}
	getListing := queries.GetListingUseCase{
		Listings: deps.Listings,
		Logger:   deps.Logger,
	}
	listCreations := queries.ListCreationsUseCase{
		Listings: deps.Listings,
		Logger:   deps.Logger,
	}
	listPurchases := queries.ListPurchasesUseCase{
		Ledger: deps.Ledger,
		Logger: deps.Logger,
	}
	listSales := queries.ListSalesUseCase{
		Ledger: deps.Ledger,
		Logger: deps.Logger,
	}
	revenueReport := queries.RevenueReportUseCase{
		Ledger: deps.Ledger,
		Logger: deps.Logger,
	}
	createListing := commands.CreateListingUseCase{
		Listings:   deps.Listings,
		Authorizer: deps.Authorizer,
		Clock:      deps.Clock,
		IDGen:      deps.IDGenerator,
		Logger:     deps.Logger,
	}
	updateListing := commands.UpdateListingUseCase{
		Listings: deps.Listings,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	publishListing := commands.PublishListingUseCase{
		Listings: deps.Listings,
		Clock:    deps.Clock,
		Logger:   deps.Logger,
	}
	purchaseItem := commands.PurchaseItemUseCase{
		Listings: deps.Listings,
		Ledger:   deps.Ledger,
		Clock:    deps.Clock,
		IDGen:    deps.IDGenerator,
		Logger:   deps.Logger,
	}

	handler := httpadapter.Handler{
		ListListings:   listListings,
		GetListing:     getListing,
		ListCategories: queries.ListCategoriesUseCase{},
		ListCreations:  listCreations,
		ListPurchases:  listPurchases,
		ListSales:      listSales,
		RevenueReport:  revenueReport,
		CreateListing:  createListing,
		UpdateListing:  updateListing,
		PublishListing: publishListing,
		PurchaseItem:   purchaseItem,
		Logger:         deps.Logger,
	}

	return Module{Handler: handler}
}

// NewInMemoryModule wires the exchange against in-memory adapters. Creation
// is allowed for every principal unless a real authorizer is supplied.
func NewInMemoryModule(seedListings []entities.Listing, logger *slog.Logger) Module {
	return NewInMemoryModuleWithAuthorizer(seedListings, allowAllAuthorizer(), logger)
}

// NewInMemoryModuleWithAuthorizer is the test seam for cross-module
// authorization wiring.
func NewInMemoryModuleWithAuthorizer(
	seedListings []entities.Listing,
	authorizer ports.CreatorAuthorizer,
	logger *slog.Logger,
) Module {
	store := memory.NewStore(seedListings, logger)
	module := NewModule(Dependencies{
		Listings:    store,
		Ledger:      store,
		Authorizer:  authorizer,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}

func allowAllAuthorizer() ports.CreatorAuthorizer {
	return ports.CreatorAuthorizerFunc(func(_ context.Context, _ string) error {
		return nil
	})
}
