package entities

import "time"

type ListingKind string

const (
	ListingKindIdea    ListingKind = "idea"
	ListingKindService ListingKind = "service"
)

// BusinessPlan holds the long-form plan sections attached to idea listings.
// Service listings leave it zero-valued.
type BusinessPlan struct {
	ExecutiveSummary     string
	MarketAnalysis       string
	BusinessModel        string
	FinancialProjections string
	MarketingStrategy    string
}

// Listing is one sellable catalog item owned by a creator. The two kinds share
// the same shape; the counter tracks sales for ideas and orders for services,
// and DeliveryTime/Plan are kind-specific.
type Listing struct {
	ListingID    string
	Kind         ListingKind
	Title        string
	Description  string
	Category     string
	Price        float64
	CreatorID    string
	IsPublished  bool
	IsFeatured   bool
	Tags         []string
	ImageURL     string
	Rating       float64
	ReviewCount  int
	SalesCount   int
	DeliveryTime string
	Plan         BusinessPlan
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsVisible reports whether buyers may see the listing.
func (l Listing) IsVisible() bool {
	return l.IsPublished
}

func IsValidKind(kind ListingKind) bool {
	switch kind {
	case ListingKindIdea, ListingKindService:
		return true
	default:
		return false
	}
}
