package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shareguard/shareguard/pkg/api/middleware"
	"github.com/shareguard/shareguard/pkg/models"
	"github.com/shareguard/shareguard/pkg/share"
	"github.com/shareguard/shareguard/pkg/store"
)

// ShareHandler handles per-account share grant endpoints.
type ShareHandler struct {
	shares *share.Service
	store  store.Store
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(shareService *share.Service, s store.Store) *ShareHandler {
	return &ShareHandler{
		shares: shareService,
		store:  s,
	}
}

// GrantRequest is the request body for PUT /api/v1/files/{id}/shares/{username}.
type GrantRequest struct {
	Permission string     `json:"permission"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// GrantResponse is the API representation of a share grant.
type GrantResponse struct {
	ID         string     `json:"id"`
	FileID     string     `json:"file_id"`
	AccountID  string     `json:"account_id"`
	Permission string     `json:"permission"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Upsert handles PUT /api/v1/files/{id}/shares/{username}.
// Re-granting to the same account replaces the permission and expiry.
func (h *ShareHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	var req GrantRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	target, err := h.store.GetAccount(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			NotFound(w, "Unknown user")
			return
		}
		InternalServerError(w, "Failed to resolve user")
		return
	}

	fileID := chi.URLParam(r, "id")
	grant, err := h.shares.ShareWithAccount(r.Context(), claims.AccountID, fileID, target.ID,
		models.Permission(req.Permission), req.ExpiresAt)
	if err != nil {
		writeShareProblem(w, err)
		return
	}

	WriteJSONOK(w, grantToResponse(grant))
}

// Delete handles DELETE /api/v1/files/{id}/shares/{username}.
// Revoking an absent grant is a 404.
func (h *ShareHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	target, err := h.store.GetAccount(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		if errors.Is(err, models.ErrAccountNotFound) {
			NotFound(w, "Unknown user")
			return
		}
		InternalServerError(w, "Failed to resolve user")
		return
	}

	fileID := chi.URLParam(r, "id")
	if err := h.shares.Unshare(r.Context(), claims.AccountID, fileID, target.ID); err != nil {
		if errors.Is(err, models.ErrGrantNotFound) {
			NotFound(w, "No share grant for that user")
			return
		}
		writeShareProblem(w, err)
		return
	}

	WriteNoContent(w)
}

// List handles GET /api/v1/files/{id}/shares.
// Only the owner may inspect a file's grants and links.
func (h *ShareHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	fileID := chi.URLParam(r, "id")
	grants, links, err := h.shares.ListShares(r.Context(), claims.AccountID, fileID)
	if err != nil {
		writeShareProblem(w, err)
		return
	}

	grantResponses := make([]GrantResponse, 0, len(grants))
	for _, grant := range grants {
		grantResponses = append(grantResponses, grantToResponse(grant))
	}
	linkResponses := make([]LinkResponse, 0, len(links))
	for _, link := range links {
		linkResponses = append(linkResponses, linkToResponse(link))
	}

	WriteJSONOK(w, map[string]any{
		"grants": grantResponses,
		"links":  linkResponses,
	})
}

// writeShareProblem maps share service errors onto problem responses.
func writeShareProblem(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrFileNotFound):
		NotFound(w, "File not found")
	case errors.Is(err, models.ErrAccessDenied):
		Forbidden(w, "Only the owner may manage shares")
	case errors.Is(err, models.ErrAccountNotFound):
		NotFound(w, "Unknown user")
	case errors.Is(err, share.ErrSelfShare):
		UnprocessableEntity(w, "Cannot share a file with its owner")
	case errors.Is(err, share.ErrInvalidPermission):
		UnprocessableEntity(w, "Unknown permission; use view or download")
	case errors.Is(err, share.ErrInvalidExpiry):
		UnprocessableEntity(w, "Expiry must be in the future")
	default:
		InternalServerError(w, "Share operation failed")
	}
}

// grantToResponse converts a ShareGrant to its API representation.
func grantToResponse(grant *models.ShareGrant) GrantResponse {
	return GrantResponse{
		ID:         grant.ID,
		FileID:     grant.FileID,
		AccountID:  grant.AccountID,
		Permission: grant.Permission,
		ExpiresAt:  grant.ExpiresAt,
		CreatedAt:  grant.CreatedAt,
	}
}
