package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"ideabazaar/contexts/marketplace-core/listing-exchange/domain/entities"
	domainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
	"ideabazaar/internal/shared/events"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

// Migrate creates the listing-exchange schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&listingModel{}, &ledgerEntryModel{}, &outboxModel{})
}

func (r *Repository) ListListings(ctx context.Context, filter ports.ListingFilter) ([]entities.Listing, int, error) {
	tx := r.db.WithContext(ctx).
		Model(&listingModel{}).
		Where("kind = ? AND is_published = ?", string(filter.Kind), true)
	if filter.Category != "" {
		tx = tx.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		// LIKE without ILIKE keeps the catalog's case-sensitive match.
		tx = tx.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []listingModel
	if err := tx.Order(orderClause(filter.SortBy, filter.Order)).
		Offset((filter.Page - 1) * filter.PerPage).
		Limit(filter.PerPage).
		Find(&rows).
		Error; err != nil {
		return nil, 0, err
	}

	items := make([]entities.Listing, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, int(total), nil
}

func (r *Repository) GetListing(ctx context.Context, kind entities.ListingKind, listingID string) (entities.Listing, error) {
	var row listingModel
	err := r.db.WithContext(ctx).
		Where("listing_id = ? AND kind = ?", strings.TrimSpace(listingID), string(kind)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Listing{}, domainerrors.ErrListingNotFound
		}
		return entities.Listing{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetListingByID(ctx context.Context, listingID string) (entities.Listing, error) {
	var row listingModel
	err := r.db.WithContext(ctx).
		Where("listing_id = ?", strings.TrimSpace(listingID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Listing{}, domainerrors.ErrListingNotFound
		}
		return entities.Listing{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListListingsByCreator(ctx context.Context, creatorID string) ([]entities.Listing, error) {
	var rows []listingModel
	if err := r.db.WithContext(ctx).
		Where("creator_id = ?", strings.TrimSpace(creatorID)).
		Order("created_at DESC, listing_id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Listing, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) CreateListing(ctx context.Context, listing entities.Listing) error {
	row := listingModelFromEntity(listing)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateListing
		}
		return err
	}
	return nil
}

func (r *Repository) UpdateListing(ctx context.Context, listing entities.Listing) error {
	row := listingModelFromEntity(listing)
	result := r.db.WithContext(ctx).
		Model(&listingModel{}).
		Where("listing_id = ?", row.ListingID).
		Updates(map[string]any{
			"title":                 row.Title,
			"description":           row.Description,
			"category":              row.Category,
			"price":                 row.Price,
			"is_published":          row.IsPublished,
			"is_featured":           row.IsFeatured,
			"tags":                  row.Tags,
			"image_url":             row.ImageURL,
			"rating":                row.Rating,
			"review_count":          row.ReviewCount,
			"sales_count":           row.SalesCount,
			"delivery_time":         row.DeliveryTime,
			"executive_summary":     row.ExecutiveSummary,
			"market_analysis":       row.MarketAnalysis,
			"business_model":        row.BusinessModel,
			"financial_projections": row.FinancialProjections,
			"marketing_strategy":    row.MarketingStrategy,
			"updated_at":            row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrListingNotFound
	}
	return nil
}

// RecordPurchase commits the ledger entry, the listing counter increment, and
// the outbox row in one transaction. The guarded increment doubles as the
// existence check, so a vanished or unpublished listing rolls everything back.
func (r *Repository) RecordPurchase(ctx context.Context, entry entities.LedgerEntry, event ports.PurchaseEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		increment := tx.Model(&listingModel{}).
			Where("listing_id = ? AND kind = ? AND is_published = ?",
				strings.TrimSpace(entry.Item.ListingID), string(entry.Item.Kind), true).
			Update("sales_count", gorm.Expr("sales_count + 1"))
		if increment.Error != nil {
			return increment.Error
		}
		if increment.RowsAffected == 0 {
			return domainerrors.ErrListingNotFound
		}

		row := ledgerEntryModelFromEntity(entry)
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrInvalidPurchaseRequest
			}
			return err
		}

		payload, err := json.Marshal(purchaseEnvelope(event))
		if err != nil {
			return err
		}
		outboxRow := outboxModel{
			OutboxID:     event.EventID,
			EventType:    event.EventType,
			PartitionKey: event.ListingID,
			Payload:      payload,
			Status:       outboxStatusPending,
			CreatedAt:    event.OccurredAt.UTC(),
		}
		return tx.Create(&outboxRow).Error
	})
}

func (r *Repository) ListEntriesByBuyer(ctx context.Context, buyerID string) ([]entities.LedgerEntry, error) {
	return r.listEntries(ctx, "buyer_id = ?", buyerID)
}

func (r *Repository) ListEntriesBySeller(ctx context.Context, sellerID string) ([]entities.LedgerEntry, error) {
	return r.listEntries(ctx, "seller_id = ?", sellerID)
}

func (r *Repository) listEntries(ctx context.Context, cond string, arg string) ([]entities.LedgerEntry, error) {
	var rows []ledgerEntryModel
	if err := r.db.WithContext(ctx).
		Where(cond, strings.TrimSpace(arg)).
		Order("created_at DESC, entry_id ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) BuildMonthlyReport(ctx context.Context, month string) (ports.RevenueReport, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return ports.RevenueReport{}, domainerrors.ErrInvalidReportMonth
	}
	end := start.AddDate(0, 1, 0)

	var agg struct {
		Count           int
		TotalAmount     float64
		TotalCommission float64
		TotalSeller     float64
	}
	err = r.db.WithContext(ctx).
		Model(&ledgerEntryModel{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS total_amount, COALESCE(SUM(commission_amount), 0) AS total_commission, COALESCE(SUM(seller_amount), 0) AS total_seller").
		Where("status = ? AND created_at >= ? AND created_at < ?",
			string(entities.LedgerEntryStatusCompleted), start, end).
		Scan(&agg).
		Error
	if err != nil {
		return ports.RevenueReport{}, err
	}
	return ports.RevenueReport{
		Month:           month,
		Count:           agg.Count,
		TotalAmount:     agg.TotalAmount,
		TotalCommission: agg.TotalCommission,
		TotalSeller:     agg.TotalSeller,
	}, nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      append([]byte(nil), row.Payload...),
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":  outboxStatusSent,
			"sent_at": sentAt.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// orderClause maps the normalized sort key to SQL. Rating and the sales
// counter ignore the requested order and always sort descending.
func orderClause(sortBy string, order string) string {
	direction := "DESC"
	if order == "asc" {
		direction = "ASC"
	}
	switch sortBy {
	case "price":
		return "price " + direction + ", listing_id ASC"
	case "rating":
		return "rating DESC, listing_id ASC"
	case "sales", "orders":
		return "sales_count DESC, listing_id ASC"
	default:
		return "created_at " + direction + ", listing_id ASC"
	}
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

type listingModel struct {
	ListingID            string    `gorm:"column:listing_id;primaryKey"`
	Kind                 string    `gorm:"column:kind;index"`
	Title                string    `gorm:"column:title"`
	Description          string    `gorm:"column:description"`
	Category             string    `gorm:"column:category;index"`
	Price                float64   `gorm:"column:price"`
	CreatorID            string    `gorm:"column:creator_id;index"`
	IsPublished          bool      `gorm:"column:is_published"`
	IsFeatured           bool      `gorm:"column:is_featured"`
	Tags                 string    `gorm:"column:tags"`
	ImageURL             string    `gorm:"column:image_url"`
	Rating               float64   `gorm:"column:rating"`
	ReviewCount          int       `gorm:"column:review_count"`
	SalesCount           int       `gorm:"column:sales_count"`
	DeliveryTime         string    `gorm:"column:delivery_time"`
	ExecutiveSummary     string    `gorm:"column:executive_summary"`
	MarketAnalysis       string    `gorm:"column:market_analysis"`
	BusinessModel        string    `gorm:"column:business_model"`
	FinancialProjections string    `gorm:"column:financial_projections"`
	MarketingStrategy    string    `gorm:"column:marketing_strategy"`
	CreatedAt            time.Time `gorm:"column:created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (listingModel) TableName() string {
	return "marketplace_listings"
}

func listingModelFromEntity(item entities.Listing) listingModel {
	return listingModel{
		ListingID:            strings.TrimSpace(item.ListingID),
		Kind:                 string(item.Kind),
		Title:                strings.TrimSpace(item.Title),
		Description:          item.Description,
		Category:             strings.TrimSpace(item.Category),
		Price:                item.Price,
		CreatorID:            strings.TrimSpace(item.CreatorID),
		IsPublished:          item.IsPublished,
		IsFeatured:           item.IsFeatured,
		Tags:                 encodeTags(item.Tags),
		ImageURL:             strings.TrimSpace(item.ImageURL),
		Rating:               item.Rating,
		ReviewCount:          item.ReviewCount,
		SalesCount:           item.SalesCount,
		DeliveryTime:         strings.TrimSpace(item.DeliveryTime),
		ExecutiveSummary:     item.Plan.ExecutiveSummary,
		MarketAnalysis:       item.Plan.MarketAnalysis,
		BusinessModel:        item.Plan.BusinessModel,
		FinancialProjections: item.Plan.FinancialProjections,
		MarketingStrategy:    item.Plan.MarketingStrategy,
		CreatedAt:            item.CreatedAt.UTC(),
		UpdatedAt:            item.UpdatedAt.UTC(),
	}
}

func (m listingModel) toEntity() entities.Listing {
	return entities.Listing{
		ListingID:    m.ListingID,
		Kind:         entities.ListingKind(m.Kind),
		Title:        m.Title,
		Description:  m.Description,
		Category:     m.Category,
		Price:        m.Price,
		CreatorID:    m.CreatorID,
		IsPublished:  m.IsPublished,
		IsFeatured:   m.IsFeatured,
		Tags:         decodeTags(m.Tags),
		ImageURL:     m.ImageURL,
		Rating:       m.Rating,
		ReviewCount:  m.ReviewCount,
		SalesCount:   m.SalesCount,
		DeliveryTime: m.DeliveryTime,
		Plan: entities.BusinessPlan{
			ExecutiveSummary:     m.ExecutiveSummary,
			MarketAnalysis:       m.MarketAnalysis,
			BusinessModel:        m.BusinessModel,
			FinancialProjections: m.FinancialProjections,
			MarketingStrategy:    m.MarketingStrategy,
		},
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

type ledgerEntryModel struct {
	EntryID          string    `gorm:"column:entry_id;primaryKey"`
	BuyerID          string    `gorm:"column:buyer_id;index"`
	SellerID         string    `gorm:"column:seller_id;index"`
	ItemType         string    `gorm:"column:item_type"`
	ItemID           string    `gorm:"column:item_id"`
	Amount           float64   `gorm:"column:amount"`
	Currency         string    `gorm:"column:currency"`
	CommissionRate   float64   `gorm:"column:commission_rate"`
	CommissionAmount float64   `gorm:"column:commission_amount"`
	SellerAmount     float64   `gorm:"column:seller_amount"`
	PaymentMethod    string    `gorm:"column:payment_method"`
	Status           string    `gorm:"column:status"`
	CreatedAt        time.Time `gorm:"column:created_at;index"`
}

func (ledgerEntryModel) TableName() string {
	return "marketplace_ledger"
}

func ledgerEntryModelFromEntity(item entities.LedgerEntry) ledgerEntryModel {
	return ledgerEntryModel{
		EntryID:          strings.TrimSpace(item.EntryID),
		BuyerID:          strings.TrimSpace(item.BuyerID),
		SellerID:         strings.TrimSpace(item.SellerID),
		ItemType:         string(item.Item.Kind),
		ItemID:           strings.TrimSpace(item.Item.ListingID),
		Amount:           item.Amount,
		Currency:         item.Currency,
		CommissionRate:   item.CommissionRate,
		CommissionAmount: item.CommissionAmount,
		SellerAmount:     item.SellerAmount,
		PaymentMethod:    item.PaymentMethod,
		Status:           string(item.Status),
		CreatedAt:        item.CreatedAt.UTC(),
	}
}

func (m ledgerEntryModel) toEntity() entities.LedgerEntry {
	return entities.LedgerEntry{
		EntryID:  m.EntryID,
		BuyerID:  m.BuyerID,
		SellerID: m.SellerID,
		Item: entities.ItemRef{
			Kind:      entities.ListingKind(m.ItemType),
			ListingID: m.ItemID,
		},
		Amount:           m.Amount,
		Currency:         m.Currency,
		CommissionRate:   m.CommissionRate,
		CommissionAmount: m.CommissionAmount,
		SellerAmount:     m.SellerAmount,
		PaymentMethod:    m.PaymentMethod,
		Status:           entities.LedgerEntryStatus(m.Status),
		CreatedAt:        m.CreatedAt.UTC(),
	}
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status;index"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	SentAt       *time.Time `gorm:"column:sent_at"`
}

func (outboxModel) TableName() string {
	return "marketplace_outbox"
}

// Tags persist as one JSON text column, matching the legacy schema.
func encodeTags(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(encoded)
}

func decodeTags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return []string{}
	}
	return tags
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
