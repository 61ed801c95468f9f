package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	principaldirectory "ideabazaar/contexts/identity-access/principal-directory"
	directoryhttp "ideabazaar/contexts/identity-access/principal-directory/transport/http"
	listingexchange "ideabazaar/contexts/marketplace-core/listing-exchange"
	marketplacedomainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
	"ideabazaar/contexts/marketplace-core/listing-exchange/ports"
	marketplacehttp "ideabazaar/contexts/marketplace-core/listing-exchange/transport/http"
	"ideabazaar/internal/platform/seed"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	principals := principaldirectory.NewInMemoryModule(seed.SamplePrincipals(), nil)
	authorizer := ports.CreatorAuthorizerFunc(func(ctx context.Context, creatorID string) error {
		if err := principals.Service.AuthorizeListingCreation(ctx, creatorID); err != nil {
			return marketplacedomainerrors.ErrCreatorNotAuthorized
		}
		return nil
	})
	marketplace := listingexchange.NewInMemoryModuleWithAuthorizer(seed.SampleListings(), authorizer, nil)
	return New(marketplace, principals, nil, ":0")
}

func doRequest(t *testing.T, s *Server, method string, target string, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}
	recorder := httptest.NewRecorder()
	s.mux.ServeHTTP(recorder, req)
	return recorder
}

func decodeInto(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.NewDecoder(recorder.Body).Decode(target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func TestListIdeasSortedByPriceAscending(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodGet, "/marketplace/business-ideas?sort_by=price&order=asc", "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var resp marketplacehttp.ListIdeasResponse
	decodeInto(t, recorder, &resp)
	if resp.Pagination.Total != 3 {
		t.Fatalf("expected 3 published ideas, got %d", resp.Pagination.Total)
	}
	if len(resp.BusinessIdeas) != 3 || resp.BusinessIdeas[0].Price != 1200 || resp.BusinessIdeas[2].Price != 2000 {
		t.Fatalf("unexpected price order: %+v", resp.BusinessIdeas)
	}
	if resp.BusinessIdeas[0].ExecutiveSummary != "" {
		t.Fatal("expected plan sections omitted from summaries")
	}
	if resp.BusinessIdeas[0].Tags == nil {
		t.Fatal("expected tags serialized as array, not null")
	}
}

func TestListIdeasRejectsNonNumericPage(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodGet, "/marketplace/business-ideas?page=abc", "", nil)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	var resp marketplacehttp.ErrorResponse
	decodeInto(t, recorder, &resp)
	if resp.Code != "invalid_page" {
		t.Fatalf("expected invalid_page code, got %s", resp.Code)
	}
}

func TestGetDraftIdeaReturnsNotFound(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodGet, "/marketplace/business-ideas/idea-4", "", nil)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for draft, got %d", recorder.Code)
	}
	var resp marketplacehttp.ErrorResponse
	decodeInto(t, recorder, &resp)
	if resp.Code != "listing_not_found" {
		t.Fatalf("expected listing_not_found code, got %s", resp.Code)
	}
}

func TestPurchaseRequiresUserHeader(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodPost, "/marketplace/purchase", "", marketplacehttp.PurchaseRequest{
		ItemType: "idea",
		ItemID:   "idea-1",
	})
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", recorder.Code)
	}
	var resp marketplacehttp.ErrorResponse
	decodeInto(t, recorder, &resp)
	if resp.Code != "missing_user" {
		t.Fatalf("expected missing_user code, got %s", resp.Code)
	}
}

func TestPurchaseFlowThroughLedger(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodPost, "/marketplace/purchase", "client-1", marketplacehttp.PurchaseRequest{
		ItemType: "service",
		ItemID:   "svc-2",
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var purchase marketplacehttp.PurchaseResponse
	decodeInto(t, recorder, &purchase)
	if purchase.Message != "Purchase completed successfully" {
		t.Fatalf("unexpected message %q", purchase.Message)
	}
	tx := purchase.Transaction
	if tx.Amount != 600 || tx.CommissionAmount != 60 || tx.SellerAmount != 540 {
		t.Fatalf("unexpected split: %+v", tx)
	}
	if tx.Status != "completed" || tx.Currency != "USD" {
		t.Fatalf("unexpected transaction state: %+v", tx)
	}
	if tx.SellerID != "creator-2" {
		t.Fatalf("expected seller creator-2, got %s", tx.SellerID)
	}

	detail := doRequest(t, server, http.MethodGet, "/marketplace/services/svc-2", "", nil)
	var svc marketplacehttp.ServiceDTO
	decodeInto(t, detail, &svc)
	if svc.OrdersCount != 1 {
		t.Fatalf("expected orders count 1 after purchase, got %d", svc.OrdersCount)
	}

	purchases := doRequest(t, server, http.MethodGet, "/marketplace/my-purchases", "client-1", nil)
	var mine marketplacehttp.ListLedgerResponse
	decodeInto(t, purchases, &mine)
	if len(mine.Transactions) != 1 || mine.Transactions[0].ID != tx.ID {
		t.Fatalf("expected the purchase in buyer history, got %+v", mine.Transactions)
	}

	sales := doRequest(t, server, http.MethodGet, "/marketplace/my-sales", "creator-2", nil)
	var sold marketplacehttp.ListLedgerResponse
	decodeInto(t, sales, &sold)
	if len(sold.Transactions) != 1 {
		t.Fatalf("expected the sale in seller history, got %+v", sold.Transactions)
	}

	month := time.Now().UTC().Format("2006-01")
	report := doRequest(t, server, http.MethodGet, "/marketplace/revenue-report?month="+month, "client-1", nil)
	var revenue marketplacehttp.RevenueReportResponse
	decodeInto(t, report, &revenue)
	if revenue.TransactionsNum != 1 || revenue.TotalCommission != 60 {
		t.Fatalf("unexpected revenue report: %+v", revenue)
	}
}

func TestPurchaseDraftReturnsNotFound(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(t, server, http.MethodPost, "/marketplace/purchase", "client-1", marketplacehttp.PurchaseRequest{
		ItemType: "idea",
		ItemID:   "idea-4",
	})
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for draft purchase, got %d", recorder.Code)
	}
}

func TestCreateIdeaAuthorizationByTier(t *testing.T) {
	server := newTestServer(t)
	body := marketplacehttp.CreateIdeaRequest{
		Title:       "Community Tool Library",
		Description: "Neighborhood equipment sharing.",
		Category:    "Sustainability",
		Price:       400,
	}

	denied := doRequest(t, server, http.MethodPost, "/marketplace/business-ideas", "client-1", body)
	if denied.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for basic client, got %d", denied.Code)
	}
	var resp marketplacehttp.ErrorResponse
	decodeInto(t, denied, &resp)
	if resp.Code != "creator_not_authorized" {
		t.Fatalf("expected creator_not_authorized, got %s", resp.Code)
	}

	allowed := doRequest(t, server, http.MethodPost, "/marketplace/business-ideas", "creator-1", body)
	if allowed.Code != http.StatusCreated {
		t.Fatalf("expected 201 for guru creator, got %d: %s", allowed.Code, allowed.Body.String())
	}
	var created marketplacehttp.IdeaDTO
	decodeInto(t, allowed, &created)
	if created.ID == "" || created.CreatorID != "creator-1" {
		t.Fatalf("unexpected created idea: %+v", created)
	}
}

func TestPrincipalLifecycle(t *testing.T) {
	server := newTestServer(t)

	registered := doRequest(t, server, http.MethodPost, "/principals", "", directoryhttp.RegisterPrincipalRequest{
		Username: "new_creator",
		Email:    "new@example.com",
		Role:     "creator",
	})
	if registered.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", registered.Code, registered.Body.String())
	}
	var principal directoryhttp.PrincipalDTO
	decodeInto(t, registered, &principal)
	if principal.UserType != "creator" || principal.Tier != "basic" {
		t.Fatalf("expected creator/basic, got %s/%s", principal.UserType, principal.Tier)
	}

	upgraded := doRequest(t, server, http.MethodPut, "/principals/"+principal.ID+"/tier", "", directoryhttp.ChangeTierRequest{Tier: "guru"})
	if upgraded.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", upgraded.Code, upgraded.Body.String())
	}
	var changed directoryhttp.PrincipalDTO
	decodeInto(t, upgraded, &changed)
	if changed.Tier != "guru" {
		t.Fatalf("expected guru tier, got %s", changed.Tier)
	}

	missing := doRequest(t, server, http.MethodGet, "/principals/nobody", "", nil)
	if missing.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown principal, got %d", missing.Code)
	}
}
