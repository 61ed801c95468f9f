package httpserver

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	principaldirectory "ideabazaar/contexts/identity-access/principal-directory"
	directoryerrors "ideabazaar/contexts/identity-access/principal-directory/domain/errors"
	directoryhttp "ideabazaar/contexts/identity-access/principal-directory/transport/http"
	listingexchange "ideabazaar/contexts/marketplace-core/listing-exchange"
	marketplacedomainerrors "ideabazaar/contexts/marketplace-core/listing-exchange/domain/errors"
	marketplacehttp "ideabazaar/contexts/marketplace-core/listing-exchange/transport/http"
	_ "ideabazaar/internal/platform/httpserver/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	addr        string
	marketplace listingexchange.Module
	principals  principaldirectory.Module
}

func New(
	marketplace listingexchange.Module,
	principals principaldirectory.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:         http.NewServeMux(),
		logger:      logger,
		addr:        addr,
		marketplace: marketplace,
		principals:  principals,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /marketplace/business-ideas", s.handleListIdeas)
	s.mux.HandleFunc("POST /marketplace/business-ideas", s.handleCreateIdea)
	s.mux.HandleFunc("GET /marketplace/business-ideas/{idea_id}", s.handleGetIdea)
	s.mux.HandleFunc("PUT /marketplace/business-ideas/{idea_id}", s.handleUpdateIdea)
	s.mux.HandleFunc("POST /marketplace/business-ideas/{idea_id}/publish", s.handlePublishIdea)
	s.mux.HandleFunc("GET /marketplace/services", s.handleListServices)
	s.mux.HandleFunc("POST /marketplace/services", s.handleCreateService)
	s.mux.HandleFunc("GET /marketplace/services/{service_id}", s.handleGetService)
	s.mux.HandleFunc("PUT /marketplace/services/{service_id}", s.handleUpdateService)
	s.mux.HandleFunc("POST /marketplace/services/{service_id}/publish", s.handlePublishService)
	s.mux.HandleFunc("GET /marketplace/categories", s.handleListCategories)
	s.mux.HandleFunc("GET /marketplace/my-creations", s.handleMyCreations)
	s.mux.HandleFunc("POST /marketplace/purchase", s.handlePurchase)
	s.mux.HandleFunc("GET /marketplace/my-purchases", s.handleMyPurchases)
	s.mux.HandleFunc("GET /marketplace/my-sales", s.handleMySales)
	s.mux.HandleFunc("GET /marketplace/revenue-report", s.handleRevenueReport)

	s.mux.HandleFunc("POST /principals", s.handleRegisterPrincipal)
	s.mux.HandleFunc("GET /principals/{principal_id}", s.handleGetPrincipal)
	s.mux.HandleFunc("PUT /principals/{principal_id}/tier", s.handleChangeTier)
}

func writeMarketplaceDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, marketplacedomainerrors.ErrListingNotFound):
		writeMarketplaceError(w, http.StatusNotFound, "listing_not_found", err.Error())
	case errors.Is(err, marketplacedomainerrors.ErrLedgerEntryNotFound):
		writeMarketplaceError(w, http.StatusNotFound, "ledger_entry_not_found", err.Error())
	case errors.Is(err, marketplacedomainerrors.ErrCreatorNotAuthorized):
		writeMarketplaceError(w, http.StatusForbidden, "creator_not_authorized", err.Error())
	case errors.Is(err, marketplacedomainerrors.ErrNotListingOwner):
		writeMarketplaceError(w, http.StatusForbidden, "not_listing_owner", err.Error())
	case errors.Is(err, marketplacedomainerrors.ErrAlreadyPublished):
		writeMarketplaceError(w, http.StatusConflict, "already_published", err.Error())
	case errors.Is(err, marketplacedomainerrors.ErrDuplicateListing):
		writeMarketplaceError(w, http.StatusConflict, "duplicate_listing", err.Error())
	case errors.Is(err, marketplacedomainerrors.ErrInvalidListFilter),
		errors.Is(err, marketplacedomainerrors.ErrInvalidListingRequest),
		errors.Is(err, marketplacedomainerrors.ErrInvalidItemType),
		errors.Is(err, marketplacedomainerrors.ErrInvalidPurchaseRequest),
		errors.Is(err, marketplacedomainerrors.ErrInvalidAmount),
		errors.Is(err, marketplacedomainerrors.ErrInvalidReportMonth):
		writeMarketplaceError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeMarketplaceError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeDirectoryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, directoryerrors.ErrPrincipalNotFound):
		writeDirectoryError(w, http.StatusNotFound, "principal_not_found", err.Error())
	case errors.Is(err, directoryerrors.ErrDuplicatePrincipal):
		writeDirectoryError(w, http.StatusConflict, "duplicate_principal", err.Error())
	case errors.Is(err, directoryerrors.ErrInvalidPrincipal),
		errors.Is(err, directoryerrors.ErrUnknownRole),
		errors.Is(err, directoryerrors.ErrUnknownTier):
		writeDirectoryError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, directoryerrors.ErrPrincipalInactive),
		errors.Is(err, directoryerrors.ErrCreationNotAllowed):
		writeDirectoryError(w, http.StatusForbidden, "forbidden", err.Error())
	default:
		writeDirectoryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeMarketplaceError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, marketplacehttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeDirectoryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, directoryhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
