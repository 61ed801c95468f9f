package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"

	marketplacehttp "ideabazaar/contexts/marketplace-core/listing-exchange/transport/http"
)

func (s *Server) handleListIdeas(w http.ResponseWriter, r *http.Request) {
	req, ok := parseListRequest(w, r)
	if !ok {
		return
	}
	resp, err := s.marketplace.Handler.ListIdeasHandler(r.Context(), req)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListServices(w http.ResponseWriter, r *http.Request) {
	req, ok := parseListRequest(w, r)
	if !ok {
		return
	}
	resp, err := s.marketplace.Handler.ListServicesHandler(r.Context(), req)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetIdea(w http.ResponseWriter, r *http.Request) {
	resp, err := s.marketplace.Handler.GetIdeaHandler(r.Context(), r.PathValue("idea_id"))
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetService(w http.ResponseWriter, r *http.Request) {
	resp, err := s.marketplace.Handler.GetServiceHandler(r.Context(), r.PathValue("service_id"))
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	resp, err := s.marketplace.Handler.ListCategoriesHandler(r.Context())
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateIdea(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req marketplacehttp.CreateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.marketplace.Handler.CreateIdeaHandler(r.Context(), userID, req)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleCreateService(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req marketplacehttp.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.marketplace.Handler.CreateServiceHandler(r.Context(), userID, req)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateIdea(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req marketplacehttp.UpdateIdeaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.marketplace.Handler.UpdateIdeaHandler(r.Context(), userID, r.PathValue("idea_id"), req)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req marketplacehttp.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.marketplace.Handler.UpdateServiceHandler(r.Context(), userID, r.PathValue("service_id"), req)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePublishIdea(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	resp, err := s.marketplace.Handler.PublishIdeaHandler(r.Context(), userID, r.PathValue("idea_id"))
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePublishService(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	resp, err := s.marketplace.Handler.PublishServiceHandler(r.Context(), userID, r.PathValue("service_id"))
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMyCreations(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	resp, err := s.marketplace.Handler.MyCreationsHandler(r.Context(), userID)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePurchase(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req marketplacehttp.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.marketplace.Handler.PurchaseHandler(r.Context(), userID, req)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleMyPurchases(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	resp, err := s.marketplace.Handler.MyPurchasesHandler(r.Context(), userID)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleMySales(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	resp, err := s.marketplace.Handler.MySalesHandler(r.Context(), userID)
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleRevenueReport(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUser(w, r); !ok {
		return
	}
	resp, err := s.marketplace.Handler.RevenueReportHandler(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		writeMarketplaceDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get("X-User-Id")
	if userID == "" {
		writeMarketplaceError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return "", false
	}
	return userID, true
}

func parseListRequest(w http.ResponseWriter, r *http.Request) (marketplacehttp.ListListingsRequest, bool) {
	query := r.URL.Query()
	req := marketplacehttp.ListListingsRequest{
		Category: query.Get("category"),
		Search:   query.Get("search"),
		SortBy:   query.Get("sort_by"),
		Order:    query.Get("order"),
	}
	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			writeMarketplaceError(w, http.StatusBadRequest, "invalid_page", "page must be an integer")
			return marketplacehttp.ListListingsRequest{}, false
		}
		req.Page = page
	}
	if raw := query.Get("per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			writeMarketplaceError(w, http.StatusBadRequest, "invalid_per_page", "per_page must be an integer")
			return marketplacehttp.ListListingsRequest{}, false
		}
		req.PerPage = perPage
	}
	return req, true
}
