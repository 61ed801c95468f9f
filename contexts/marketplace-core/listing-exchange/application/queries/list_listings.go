package queries

import (
	"context"
	"log/slog"

	application "ideabazaar/contexts/marketplace-core/listing-exchange/application"
	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
)

const (
	defaultPerPage = 12
	maxPerPage     = 100

	SortByCreatedAt = "created_at"
	SortByPrice     = "price"
	SortByRating    = "rating"
	SortBySales     = "sales"
	SortByOrders    = "orders"
)

type ListListingsQuery struct {
	Kind     entities.ListingKind
	Page     int
	PerPage  int
	Category string
	Search   string
	SortBy   string
	Order    string
}

// Pagination mirrors the envelope the catalog API returns alongside a page.
type Pagination struct {
	Page    int
	PerPage int
	Total   int
	Pages   int
	HasNext bool
	HasPrev bool
}

type ListListingsResult struct {
	Items      []entities.Listing
	Pagination Pagination
}

type ListListingsUseCase struct {
	Listings ports.ListingRepository
	Logger   *slog.Logger
}

// Execute pages through published listings of one kind. Unknown sort keys fall
// back to created_at, and rating/sales/orders always sort descending; only
// price and created_at honor the order parameter.
func (u ListListingsUseCase) Execute(ctx context.Context, query ListListingsQuery) (ListListingsResult, error) {
	logger := application.ResolveLogger(u.Logger)
	if !entities.IsValidKind(query.Kind) {
		return ListListingsResult{}, domainerrors.ErrInvalidListFilter
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	perPage := query.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	category := query.Category
	if category == "all" {
		category = ""
	}

	filter := ports.ListingFilter{
		Kind:     query.Kind,
		Page:     page,
		PerPage:  perPage,
		Category: category,
		Search:   query.Search,
		SortBy:   normalizeSortBy(query.SortBy),
		Order:    normalizeOrder(query.Order),
	}

	items, total, err := u.Listings.ListListings(ctx, filter)
	if err != nil {
		logger.Error("list listings failed",
			"event", "list_listings_failed",
			"module", "marketplace-core/listing-exchange",
			"layer", "application",
			"kind", query.Kind,
			"error", err.Error(),
		)
		return ListListingsResult{}, err
	}

	pages := (total + perPage - 1) / perPage

	logger.Info("list listings completed",
		"event", "list_listings_completed",
		"module", "marketplace-core/listing-exchange",
		"layer", "application",
		"kind", query.Kind,
		"page", page,
		"items_count", len(items),
		"total", total,
	)

	return ListListingsResult{
		Items: items,
		Pagination: Pagination{
			Page:    page,
			PerPage: perPage,
			Total:   total,
			Pages:   pages,
			HasNext: page < pages,
			HasPrev: page > 1,
		},
	}, nil
}

// normalizeSortBy keeps the catalog's historical behavior: anything outside
// the known keys sorts by creation time.
func normalizeSortBy(sortBy string) string {
	switch sortBy {
	case SortByPrice, SortByRating, SortBySales, SortByOrders:
		return sortBy
	default:
		return SortByCreatedAt
	}
}

func normalizeOrder(order string) string {
	if order == "asc" {
		return "asc"
	}
	return "desc"
}
