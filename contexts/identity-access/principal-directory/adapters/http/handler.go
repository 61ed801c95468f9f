package httpadapter

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"ideabazaar/contexts/identity-access/principal-directory/application"
	"ideabazaar/contexts/identity-access/principal-directory/domain/entities"
	httptransport "ideabazaar/contexts/identity-access/principal-directory/transport/http"
)

const timestampLayout = "2006-01-02T15:04:05Z"

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// RegisterHandler godoc
// @Summary Register a principal
// @Tags principals
// @Accept json
// @Produce json
// @Param request body httptransport.RegisterPrincipalRequest true "Registration payload"
// @Success 201 {object} httptransport.PrincipalDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 409 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /principals [post]
func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterPrincipalRequest) (httptransport.PrincipalDTO, error) {
	principal, err := h.Service.Register(ctx, application.RegisterCommand{
		Username: req.Username,
		Email:    req.Email,
		Role:     entities.Role(strings.TrimSpace(req.Role)),
		Tier:     entities.Tier(strings.TrimSpace(req.Tier)),
	})
	if err != nil {
		return httptransport.PrincipalDTO{}, err
	}
	return mapPrincipal(principal), nil
}

// GetPrincipalHandler godoc
// @Summary Get one principal
// @Tags principals
// @Produce json
// @Param principal_id path string true "Principal id"
// @Success 200 {object} httptransport.PrincipalDTO
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /principals/{principal_id} [get]
func (h Handler) GetPrincipalHandler(ctx context.Context, principalID string) (httptransport.PrincipalDTO, error) {
	principal, err := h.Service.GetPrincipal(ctx, strings.TrimSpace(principalID))
	if err != nil {
		return httptransport.PrincipalDTO{}, err
	}
	return mapPrincipal(principal), nil
}

// ChangeTierHandler godoc
// @Summary Change a principal's subscription tier
// @Tags principals
// @Accept json
// @Produce json
// @Param principal_id path string true "Principal id"
// @Param request body httptransport.ChangeTierRequest true "Target tier"
// @Success 200 {object} httptransport.PrincipalDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Failure 500 {object} httptransport.ErrorResponse
// @Router /principals/{principal_id}/tier [put]
func (h Handler) ChangeTierHandler(ctx context.Context, principalID string, req httptransport.ChangeTierRequest) (httptransport.PrincipalDTO, error) {
	principal, err := h.Service.ChangeTier(ctx, strings.TrimSpace(principalID), entities.Tier(strings.TrimSpace(req.Tier)))
	if err != nil {
		return httptransport.PrincipalDTO{}, err
	}
	return mapPrincipal(principal), nil
}

func mapPrincipal(principal entities.Principal) httptransport.PrincipalDTO {
	return httptransport.PrincipalDTO{
		ID:        principal.PrincipalID,
		Username:  principal.Username,
		Email:     principal.Email,
		UserType:  string(principal.Role),
		Tier:      string(principal.Tier),
		IsActive:  principal.IsActive,
		CreatedAt: formatTime(principal.CreatedAt),
		UpdatedAt: formatTime(principal.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(timestampLayout)
}
