package httpadapter

import (
	"context"
	"log/slog"
	"time"

	application "ideabazaar/contexts/marketplace-core/listing-exchange/application"
	"ideabazaar/contexts/marketplace-core/listing-exchange/application/commands"
	"ideabazaar/contexts/marketplace-core/listing-exchange/application/queries"
	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	httptransport "ideabazaar/contexts/marketplace-core/listing-exchange/transport/http"
)

const timestampLayout = "2006-01-02T15:04:05Z"

type Handler struct {
	ListListings   queries.ListListingsUseCase
	GetListing     queries.GetListingUseCase
	ListCategories queries.ListCategoriesUseCase
	ListCreations  queries.ListCreationsUseCase
	ListPurchases  queries.ListPurchasesUseCase
	ListSales      queries.ListSalesUseCase
	RevenueReport  queries.RevenueReportUseCase
	CreateListing  commands.CreateListingUseCase
	UpdateListing  commands.UpdateListingUseCase
	PublishListing commands.PublishListingUseCase
	PurchaseItem   commands.PurchaseItemUseCase
	Logger         *slog.Logger
}

// ListIdeasHandler godoc
// @Summary List published business ideas
// @Description Returns one catalog page of published ideas with filters and sorting.
// @Tags marketplace
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param per_page query int false "Page size (max 100)"
// @Param category query string false "Category filter; 'all' disables it"
// @Param search query string false "Substring match on title and description"
// @Param sort_by query string false "Sort key: created_at, price, rating, sales"
// @Param order query string false "asc or desc; only price and created_at honor it"
// @Success 200 {object} httptransport.ListIdeasResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/business-ideas [get]
func (h Handler) ListIdeasHandler(ctx context.Context, req httptransport.ListListingsRequest) (httptransport.ListIdeasResponse, error) {
	result, err := h.ListListings.Execute(ctx, queries.ListListingsQuery{
		Kind:     entities.ListingKindIdea,
		Page:     req.Page,
		PerPage:  req.PerPage,
		Category: req.Category,
		Search:   req.Search,
		SortBy:   req.SortBy,
		Order:    req.Order,
	})
	if err != nil {
		return httptransport.ListIdeasResponse{}, err
	}
	items := make([]httptransport.IdeaDTO, 0, len(result.Items))
	for _, listing := range result.Items {
		items = append(items, mapIdeaSummary(listing))
	}
	return httptransport.ListIdeasResponse{
		BusinessIdeas: items,
		Pagination:    mapPagination(result.Pagination),
	}, nil
}

// ListServicesHandler godoc
// @Summary List published services
// @Description Returns one catalog page of published freelance services.
// @Tags marketplace
// @Accept json
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param per_page query int false "Page size (max 100)"
// @Param category query string false "Category filter; 'all' disables it"
// @Param search query string false "Substring match on title and description"
// @Param sort_by query string false "Sort key: created_at, price, rating, orders"
// @Param order query string false "asc or desc; only price and created_at honor it"
// @Success 200 {object} httptransport.ListServicesResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/services [get]
func (h Handler) ListServicesHandler(ctx context.Context, req httptransport.ListListingsRequest) (httptransport.ListServicesResponse, error) {
	result, err := h.ListListings.Execute(ctx, queries.ListListingsQuery{
		Kind:     entities.ListingKindService,
		Page:     req.Page,
		PerPage:  req.PerPage,
		Category: req.Category,
		Search:   req.Search,
		SortBy:   req.SortBy,
		Order:    req.Order,
	})
	if err != nil {
		return httptransport.ListServicesResponse{}, err
	}
	items := make([]httptransport.ServiceDTO, 0, len(result.Items))
	for _, listing := range result.Items {
		items = append(items, mapService(listing))
	}
	return httptransport.ListServicesResponse{
		Services:   items,
		Pagination: mapPagination(result.Pagination),
	}, nil
}

// GetIdeaHandler godoc
// @Summary Get business idea detail
// @Description Returns one published idea with its full business plan.
// @Tags marketplace
// @Accept json
// @Produce json
// @Param idea_id path string true "Idea id"
// @Success 200 {object} httptransport.IdeaDTO
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/business-ideas/{idea_id} [get]
func (h Handler) GetIdeaHandler(ctx context.Context, ideaID string) (httptransport.IdeaDTO, error) {
	result, err := h.GetListing.Execute(ctx, queries.GetListingQuery{
		Kind:      entities.ListingKindIdea,
		ListingID: ideaID,
	})
	if err != nil {
		return httptransport.IdeaDTO{}, err
	}
	return mapIdeaDetail(result.Listing), nil
}

// GetServiceHandler godoc
// @Summary Get service detail
// @Description Returns one published service.
// @Tags marketplace
// @Accept json
// @Produce json
// @Param service_id path string true "Service id"
// @Success 200 {object} httptransport.ServiceDTO
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/services/{service_id} [get]
func (h Handler) GetServiceHandler(ctx context.Context, serviceID string) (httptransport.ServiceDTO, error) {
	result, err := h.GetListing.Execute(ctx, queries.GetListingQuery{
		Kind:      entities.ListingKindService,
		ListingID: serviceID,
	})
	if err != nil {
		return httptransport.ServiceDTO{}, err
	}
	return mapService(result.Listing), nil
}

// ListCategoriesHandler godoc
// @Summary List catalog categories
// @Tags marketplace
// @Produce json
// @Success 200 {object} httptransport.ListCategoriesResponse
// @Router /marketplace/categories [get]
func (h Handler) ListCategoriesHandler(ctx context.Context) (httptransport.ListCategoriesResponse, error) {
	result, err := h.ListCategories.Execute(ctx)
	if err != nil {
		return httptransport.ListCategoriesResponse{}, err
	}
	return httptransport.ListCategoriesResponse{Categories: result.Categories}, nil
}

// CreateIdeaHandler godoc
// @Summary Create a business idea listing
// @Tags marketplace
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Authenticated principal id"
// @Param request body httptransport.CreateIdeaRequest true "Idea payload"
// @Success 201 {object} httptransport.IdeaDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/business-ideas [post]
func (h Handler) CreateIdeaHandler(ctx context.Context, userID string, req httptransport.CreateIdeaRequest) (httptransport.IdeaDTO, error) {
	result, err := h.CreateListing.Execute(ctx, commands.CreateListingCommand{
		CreatorID:   userID,
		Kind:        entities.ListingKindIdea,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
		IsPublished: req.IsPublished,
		Plan: entities.BusinessPlan{
			ExecutiveSummary:     req.ExecutiveSummary,
			MarketAnalysis:       req.MarketAnalysis,
			BusinessModel:        req.BusinessModel,
			FinancialProjections: req.FinancialProjections,
			MarketingStrategy:    req.MarketingStrategy,
		},
	})
	if err != nil {
		return httptransport.IdeaDTO{}, err
	}
	return mapIdeaDetail(result.Listing), nil
}

// CreateServiceHandler godoc
// @Summary Create a service listing
// @Tags marketplace
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Authenticated principal id"
// @Param request body httptransport.CreateServiceRequest true "Service payload"
// @Success 201 {object} httptransport.ServiceDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/services [post]
func (h Handler) CreateServiceHandler(ctx context.Context, userID string, req httptransport.CreateServiceRequest) (httptransport.ServiceDTO, error) {
	result, err := h.CreateListing.Execute(ctx, commands.CreateListingCommand{
		CreatorID:    userID,
		Kind:         entities.ListingKindService,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.StartingPrice,
		DeliveryTime: req.DeliveryTime,
		Tags:         req.Tags,
		ImageURL:     req.ImageURL,
		IsPublished:  req.IsPublished,
	})
	if err != nil {
		return httptransport.ServiceDTO{}, err
	}
	return mapService(result.Listing), nil
}

// UpdateIdeaHandler godoc
// @Summary Update a business idea listing
// @Tags marketplace
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Authenticated principal id"
// @Param idea_id path string true "Idea id"
// @Param request body httptransport.UpdateIdeaRequest true "Fields to change"
// @Success 200 {object} httptransport.IdeaDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/business-ideas/{idea_id} [put]
func (h Handler) UpdateIdeaHandler(ctx context.Context, userID string, ideaID string, req httptransport.UpdateIdeaRequest) (httptransport.IdeaDTO, error) {
	cmd := commands.UpdateListingCommand{
		Kind:        entities.ListingKindIdea,
		ListingID:   ideaID,
		CreatorID:   userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
	}
	if req.ExecutiveSummary != nil || req.MarketAnalysis != nil || req.BusinessModel != nil ||
		req.FinancialProjections != nil || req.MarketingStrategy != nil {
		plan := entities.BusinessPlan{}
		if req.ExecutiveSummary != nil {
			plan.ExecutiveSummary = *req.ExecutiveSummary
		}
		if req.MarketAnalysis != nil {
			plan.MarketAnalysis = *req.MarketAnalysis
		}
		if req.BusinessModel != nil {
			plan.BusinessModel = *req.BusinessModel
		}
		if req.FinancialProjections != nil {
			plan.FinancialProjections = *req.FinancialProjections
		}
		if req.MarketingStrategy != nil {
			plan.MarketingStrategy = *req.MarketingStrategy
		}
		cmd.Plan = &plan
	}
	result, err := h.UpdateListing.Execute(ctx, cmd)
	if err != nil {
		return httptransport.IdeaDTO{}, err
	}
	return mapIdeaDetail(result.Listing), nil
}

// UpdateServiceHandler godoc
// @Summary Update a service listing
// @Tags marketplace
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Authenticated principal id"
// @Param service_id path string true "Service id"
// @Param request body httptransport.UpdateServiceRequest true "Fields to change"
// @Success 200 {object} httptransport.ServiceDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/services/{service_id} [put]
func (h Handler) UpdateServiceHandler(ctx context.Context, userID string, serviceID string, req httptransport.UpdateServiceRequest) (httptransport.ServiceDTO, error) {
	result, err := h.UpdateListing.Execute(ctx, commands.UpdateListingCommand{
		Kind:         entities.ListingKindService,
		ListingID:    serviceID,
		CreatorID:    userID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Price:        req.StartingPrice,
		DeliveryTime: req.DeliveryTime,
		Tags:         req.Tags,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		return httptransport.ServiceDTO{}, err
	}
	return mapService(result.Listing), nil
}

// PublishIdeaHandler godoc
// @Summary Publish a draft business idea
// @Tags marketplace
// @Produce json
// @Param X-User-Id header string true "Authenticated principal id"
// @Param idea_id path string true "Idea id"
// @Success 200 {object} httptransport.IdeaDTO
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/business-ideas/{idea_id}/publish [post]
func (h Handler) PublishIdeaHandler(ctx context.Context, userID string, ideaID string) (httptransport.IdeaDTO, error) {
	result, err := h.PublishListing.Execute(ctx, commands.PublishListingCommand{
		Kind:      entities.ListingKindIdea,
		ListingID: ideaID,
		CreatorID: userID,
	})
	if err != nil {
		return httptransport.IdeaDTO{}, err
	}
	return mapIdeaDetail(result.Listing), nil
}

// PublishServiceHandler godoc
// @Summary Publish a draft service
// @Tags marketplace
// @Produce json
// @Param X-User-Id header string true "Authenticated principal id"
// @Param service_id path string true "Service id"
// @Success 200 {object} httptransport.ServiceDTO
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/services/{service_id}/publish [post]
func (h Handler) PublishServiceHandler(ctx context.Context, userID string, serviceID string) (httptransport.ServiceDTO, error) {
	result, err := h.PublishListing.Execute(ctx, commands.PublishListingCommand{
		Kind:      entities.ListingKindService,
		ListingID: serviceID,
		CreatorID: userID,
	})
	if err != nil {
		return httptransport.ServiceDTO{}, err
	}
	return mapService(result.Listing), nil
}

// MyCreationsHandler godoc
// @Summary List the caller's own listings
// @Description Returns the caller's ideas and services, drafts included.
// @Tags marketplace
// @Produce json
// @Param X-User-Id header string true "Authenticated principal id"
// @Success 200 {object} httptransport.MyCreationsResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/my-creations [get]
func (h Handler) MyCreationsHandler(ctx context.Context, userID string) (httptransport.MyCreationsResponse, error) {
	result, err := h.ListCreations.Execute(ctx, queries.ListCreationsQuery{CreatorID: userID})
	if err != nil {
		return httptransport.MyCreationsResponse{}, err
	}
	ideas := make([]httptransport.IdeaDTO, 0, len(result.Ideas))
	for _, listing := range result.Ideas {
		ideas = append(ideas, mapIdeaDetail(listing))
	}
	services := make([]httptransport.ServiceDTO, 0, len(result.Services))
	for _, listing := range result.Services {
		services = append(services, mapService(listing))
	}
	return httptransport.MyCreationsResponse{BusinessIdeas: ideas, Services: services}, nil
}

// PurchaseHandler godoc
// @Summary Purchase a listing
// @Description Records a completed purchase with a 10% platform commission and bumps the listing counter.
// @Tags marketplace
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Authenticated principal id"
// @Param request body httptransport.PurchaseRequest true "Purchase payload"
// @Success 201 {object} httptransport.PurchaseResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/purchase [post]
func (h Handler) PurchaseHandler(ctx context.Context, userID string, req httptransport.PurchaseRequest) (httptransport.PurchaseResponse, error) {
	logger := application.ResolveLogger(h.Logger)
	result, err := h.PurchaseItem.Execute(ctx, commands.PurchaseItemCommand{
		BuyerID:       userID,
		ItemKind:      req.ItemType,
		ListingID:     req.ItemID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		logger.Warn("purchase request rejected",
			"event", "http_purchase_rejected",
			"module", "marketplace-core/listing-exchange",
			"layer", "transport",
			"buyer_id", userID,
			"item_id", req.ItemID,
			"error", err.Error(),
		)
		return httptransport.PurchaseResponse{}, err
	}
	return httptransport.PurchaseResponse{
		Message:     "Purchase completed successfully",
		Transaction: mapEntry(result.Entry),
	}, nil
}

// MyPurchasesHandler godoc
// @Summary List the caller's purchases
// @Tags marketplace
// @Produce json
// @Param X-User-Id header string true "Authenticated principal id"
// @Success 200 {object} httptransport.ListLedgerResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/my-purchases [get]
func (h Handler) MyPurchasesHandler(ctx context.Context, userID string) (httptransport.ListLedgerResponse, error) {
	result, err := h.ListPurchases.Execute(ctx, queries.ListPurchasesQuery{BuyerID: userID})
	if err != nil {
		return httptransport.ListLedgerResponse{}, err
	}
	return httptransport.ListLedgerResponse{Transactions: mapEntries(result.Items)}, nil
}

// MySalesHandler godoc
// @Summary List the caller's sales
// @Tags marketplace
// @Produce json
// @Param X-User-Id header string true "Authenticated principal id"
// @Success 200 {object} httptransport.ListLedgerResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/my-sales [get]
func (h Handler) MySalesHandler(ctx context.Context, userID string) (httptransport.ListLedgerResponse, error) {
	result, err := h.ListSales.Execute(ctx, queries.ListSalesQuery{SellerID: userID})
	if err != nil {
		return httptransport.ListLedgerResponse{}, err
	}
	return httptransport.ListLedgerResponse{Transactions: mapEntries(result.Items)}, nil
}

// RevenueReportHandler godoc
// @Summary Monthly revenue report
// @Description Aggregates completed ledger entries for one YYYY-MM month.
// @Tags marketplace
// @Produce json
// @Param X-User-Id header string true "Authenticated principal id"
// @Param month query string true "Calendar month, YYYY-MM"
// @Success 200 {object} httptransport.RevenueReportResponse
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /marketplace/revenue-report [get]
func (h Handler) RevenueReportHandler(ctx context.Context, month string) (httptransport.RevenueReportResponse, error) {
	result, err := h.RevenueReport.Execute(ctx, queries.RevenueReportQuery{Month: month})
	if err != nil {
		return httptransport.RevenueReportResponse{}, err
	}
	return httptransport.RevenueReportResponse{
		Month:           result.Report.Month,
		TransactionsNum: result.Report.Count,
		TotalAmount:     result.Report.TotalAmount,
		TotalCommission: result.Report.TotalCommission,
		TotalSeller:     result.Report.TotalSeller,
	}, nil
}

func mapPagination(p queries.Pagination) httptransport.PaginationDTO {
	return httptransport.PaginationDTO{
		Page:    p.Page,
		PerPage: p.PerPage,
		Total:   p.Total,
		Pages:   p.Pages,
		HasNext: p.HasNext,
		HasPrev: p.HasPrev,
	}
}

func mapIdeaSummary(listing entities.Listing) httptransport.IdeaDTO {
	return httptransport.IdeaDTO{
		ID:          listing.ListingID,
		Title:       listing.Title,
		Description: listing.Description,
		Category:    listing.Category,
		Price:       listing.Price,
		CreatorID:   listing.CreatorID,
		CreatedAt:   formatTime(listing.CreatedAt),
		IsPublished: listing.IsPublished,
		IsFeatured:  listing.IsFeatured,
		Tags:        tagsOrEmpty(listing.Tags),
		ImageURL:    listing.ImageURL,
		Rating:      listing.Rating,
		ReviewCount: listing.ReviewCount,
		SalesCount:  listing.SalesCount,
	}
}

func mapIdeaDetail(listing entities.Listing) httptransport.IdeaDTO {
	dto := mapIdeaSummary(listing)
	dto.UpdatedAt = formatTime(listing.UpdatedAt)
	dto.ExecutiveSummary = listing.Plan.ExecutiveSummary
	dto.MarketAnalysis = listing.Plan.MarketAnalysis
	dto.BusinessModel = listing.Plan.BusinessModel
	dto.FinancialProjections = listing.Plan.FinancialProjections
	dto.MarketingStrategy = listing.Plan.MarketingStrategy
	return dto
}

func mapService(listing entities.Listing) httptransport.ServiceDTO {
	return httptransport.ServiceDTO{
		ID:            listing.ListingID,
		Title:         listing.Title,
		Description:   listing.Description,
		Category:      listing.Category,
		StartingPrice: listing.Price,
		CreatorID:     listing.CreatorID,
		CreatedAt:     formatTime(listing.CreatedAt),
		UpdatedAt:     formatTime(listing.UpdatedAt),
		IsPublished:   listing.IsPublished,
		IsFeatured:    listing.IsFeatured,
		DeliveryTime:  listing.DeliveryTime,
		Tags:          tagsOrEmpty(listing.Tags),
		ImageURL:      listing.ImageURL,
		Rating:        listing.Rating,
		ReviewCount:   listing.ReviewCount,
		OrdersCount:   listing.SalesCount,
	}
}

func mapEntries(entries []entities.LedgerEntry) []httptransport.LedgerEntryDTO {
	items := make([]httptransport.LedgerEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, mapEntry(entry))
	}
	return items
}

func mapEntry(entry entities.LedgerEntry) httptransport.LedgerEntryDTO {
	return httptransport.LedgerEntryDTO{
		ID:               entry.EntryID,
		BuyerID:          entry.BuyerID,
		SellerID:         entry.SellerID,
		ItemType:         string(entry.Item.Kind),
		ItemID:           entry.Item.ListingID,
		Amount:           entry.Amount,
		Currency:         entry.Currency,
		CommissionRate:   entry.CommissionRate,
		CommissionAmount: entry.CommissionAmount,
		SellerAmount:     entry.SellerAmount,
		PaymentMethod:    entry.PaymentMethod,
		Status:           string(entry.Status),
		CreatedAt:        formatTime(entry.CreatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
