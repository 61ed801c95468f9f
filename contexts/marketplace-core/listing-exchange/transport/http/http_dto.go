package httptransport

// ListListingsRequest carries catalog query parameters after URL decoding.
type ListListingsRequest struct {
	Page     int    `json:"page,omitempty"`
	PerPage  int    `json:"per_page,omitempty"`
	Category string `json:"category,omitempty"`
	Search   string `json:"search,omitempty"`
	SortBy   string `json:"sort_by,omitempty"`
	Order    string `json:"order,omitempty"`
}

// IdeaDTO serializes a business-idea listing. Summary responses omit the
// business-plan sections; detail responses include them.
type IdeaDTO struct {
	ID                   string   `json:"id"`
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Category             string   `json:"category"`
	Price                float64  `json:"price"`
	CreatorID            string   `json:"creator_id"`
	CreatedAt            string   `json:"created_at"`
	UpdatedAt            string   `json:"updated_at,omitempty"`
	IsPublished          bool     `json:"is_published"`
	IsFeatured           bool     `json:"is_featured"`
	Tags                 []string `json:"tags"`
	ImageURL             string   `json:"image_url,omitempty"`
	Rating               float64  `json:"rating"`
	ReviewCount          int      `json:"review_count"`
	SalesCount           int      `json:"sales_count"`
	ExecutiveSummary     string   `json:"executive_summary,omitempty"`
	MarketAnalysis       string   `json:"market_analysis,omitempty"`
	BusinessModel        string   `json:"business_model,omitempty"`
	FinancialProjections string   `json:"financial_projections,omitempty"`
	MarketingStrategy    string   `json:"marketing_strategy,omitempty"`
}

// ServiceDTO serializes a freelance-service listing.
type ServiceDTO struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	StartingPrice float64  `json:"starting_price"`
	CreatorID     string   `json:"creator_id"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at,omitempty"`
	IsPublished   bool     `json:"is_published"`
	IsFeatured    bool     `json:"is_featured"`
	DeliveryTime  string   `json:"delivery_time"`
	Tags          []string `json:"tags"`
	ImageURL      string   `json:"image_url,omitempty"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	OrdersCount   int      `json:"orders_count"`
}

type PaginationDTO struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	Pages   int  `json:"pages"`
	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

type ListIdeasResponse struct {
	BusinessIdeas []IdeaDTO     `json:"business_ideas"`
	Pagination    PaginationDTO `json:"pagination"`
}

type ListServicesResponse struct {
	Services   []ServiceDTO  `json:"services"`
	Pagination PaginationDTO `json:"pagination"`
}

type ListCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type CreateIdeaRequest struct {
	Title                string   `json:"title"`
	Description          string   `json:"description"`
	Category             string   `json:"category"`
	Price                float64  `json:"price"`
	Tags                 []string `json:"tags,omitempty"`
	ImageURL             string   `json:"image_url,omitempty"`
	IsPublished          bool     `json:"is_published,omitempty"`
	ExecutiveSummary     string   `json:"executive_summary,omitempty"`
	MarketAnalysis       string   `json:"market_analysis,omitempty"`
	BusinessModel        string   `json:"business_model,omitempty"`
	FinancialProjections string   `json:"financial_projections,omitempty"`
	MarketingStrategy    string   `json:"marketing_strategy,omitempty"`
}

type CreateServiceRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	StartingPrice float64  `json:"starting_price"`
	DeliveryTime  string   `json:"delivery_time"`
	Tags          []string `json:"tags,omitempty"`
	ImageURL      string   `json:"image_url,omitempty"`
	IsPublished   bool     `json:"is_published,omitempty"`
}

// UpdateIdeaRequest carries a partial update; absent fields are untouched.
type UpdateIdeaRequest struct {
	Title                *string  `json:"title,omitempty"`
	Description          *string  `json:"description,omitempty"`
	Category             *string  `json:"category,omitempty"`
	Price                *float64 `json:"price,omitempty"`
	Tags                 []string `json:"tags,omitempty"`
	ImageURL             *string  `json:"image_url,omitempty"`
	ExecutiveSummary     *string  `json:"executive_summary,omitempty"`
	MarketAnalysis       *string  `json:"market_analysis,omitempty"`
	BusinessModel        *string  `json:"business_model,omitempty"`
	FinancialProjections *string  `json:"financial_projections,omitempty"`
	MarketingStrategy    *string  `json:"marketing_strategy,omitempty"`
}

type UpdateServiceRequest struct {
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Category      *string  `json:"category,omitempty"`
	StartingPrice *float64 `json:"starting_price,omitempty"`
	DeliveryTime  *string  `json:"delivery_time,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	ImageURL      *string  `json:"image_url,omitempty"`
}

type MyCreationsResponse struct {
	BusinessIdeas []IdeaDTO    `json:"business_ideas"`
	Services      []ServiceDTO `json:"services"`
}

type PurchaseRequest struct {
	ItemType      string  `json:"item_type"`
	ItemID        string  `json:"item_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method,omitempty"`
}

type LedgerEntryDTO struct {
	ID               string  `json:"id"`
	BuyerID          string  `json:"buyer_id"`
	SellerID         string  `json:"seller_id"`
	ItemType         string  `json:"item_type"`
	ItemID           string  `json:"item_id"`
	Amount           float64 `json:"amount"`
	Currency         string  `json:"currency"`
	CommissionRate   float64 `json:"commission_rate"`
	CommissionAmount float64 `json:"commission_amount"`
	SellerAmount     float64 `json:"seller_amount"`
	PaymentMethod    string  `json:"payment_method"`
	Status           string  `json:"status"`
	CreatedAt        string  `json:"created_at"`
}

type PurchaseResponse struct {
	Message     string         `json:"message"`
	Transaction LedgerEntryDTO `json:"transaction"`
}

type ListLedgerResponse struct {
	Transactions []LedgerEntryDTO `json:"transactions"`
}

type RevenueReportResponse struct {
	Month           string  `json:"month"`
	TransactionsNum int     `json:"transactions"`
	TotalAmount     float64 `json:"total_amount"`
	TotalCommission float64 `json:"total_commission"`
	TotalSeller     float64 `json:"total_seller"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
