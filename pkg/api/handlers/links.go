package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shareguard/shareguard/pkg/access"
	"github.com/shareguard/shareguard/pkg/api/middleware"
	"github.com/shareguard/shareguard/pkg/files"
	"github.com/shareguard/shareguard/pkg/metrics"
	"github.com/shareguard/shareguard/pkg/models"
	"github.com/shareguard/shareguard/pkg/share"
	"github.com/shareguard/shareguard/pkg/store"
)

// LinkHandler handles share link management and public redemption.
type LinkHandler struct {
	shares  *share.Service
	engine  *access.Engine
	files   *files.Service
	store   store.Store
	metrics *metrics.Metrics
}

// NewLinkHandler creates a new LinkHandler.
func NewLinkHandler(shareService *share.Service, engine *access.Engine, filesService *files.Service, s store.Store, m *metrics.Metrics) *LinkHandler {
	return &LinkHandler{
		shares:  shareService,
		engine:  engine,
		files:   filesService,
		store:   s,
		metrics: m,
	}
}

// CreateLinkRequest is the request body for POST /api/v1/files/{id}/links.
type CreateLinkRequest struct {
	Permission string     `json:"permission"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	OneTimeUse bool       `json:"one_time_use"`
}

// LinkResponse is the API representation of a share link.
// The token is only returned to the owner.
type LinkResponse struct {
	ID         string    `json:"id"`
	FileID     string    `json:"file_id"`
	Token      string    `json:"token"`
	URL        string    `json:"url,omitempty"`
	Permission string    `json:"permission"`
	OneTimeUse bool      `json:"one_time_use"`
	Consumed   bool      `json:"consumed"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
}

// LinkPreviewResponse is the public representation returned when a link
// holder peeks at GET /api/v1/links/{token}. It never exposes the owner.
type LinkPreviewResponse struct {
	FileName    string    `json:"file_name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	Permission  string    `json:"permission"`
	OneTimeUse  bool      `json:"one_time_use"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Create handles POST /api/v1/files/{id}/links.
func (h *LinkHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	var req CreateLinkRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	var expiresAt time.Time
	if req.ExpiresAt != nil {
		expiresAt = *req.ExpiresAt
	}

	fileID := chi.URLParam(r, "id")
	link, err := h.shares.CreateLink(r.Context(), claims.AccountID, fileID,
		models.Permission(req.Permission), expiresAt, req.OneTimeUse)
	if err != nil {
		writeShareProblem(w, err)
		return
	}

	resp := linkToResponse(link)
	resp.URL = linkURL(r, link.Token)
	WriteJSONCreated(w, resp)
}

// List handles GET /api/v1/files/{id}/links.
// Only the owner may enumerate a file's links.
func (h *LinkHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	fileID := chi.URLParam(r, "id")
	_, links, err := h.shares.ListShares(r.Context(), claims.AccountID, fileID)
	if err != nil {
		writeShareProblem(w, err)
		return
	}

	responses := make([]LinkResponse, 0, len(links))
	for _, link := range links {
		resp := linkToResponse(link)
		resp.URL = linkURL(r, link.Token)
		responses = append(responses, resp)
	}
	WriteJSONOK(w, responses)
}

// Delete handles DELETE /api/v1/files/{id}/links/{linkID}.
// Deleting a link is its kill switch; the token stops working immediately.
func (h *LinkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	linkID := chi.URLParam(r, "linkID")
	if err := h.shares.RevokeLink(r.Context(), claims.AccountID, linkID); err != nil {
		if errors.Is(err, models.ErrLinkNotFound) {
			NotFound(w, "Link not found")
			return
		}
		writeShareProblem(w, err)
		return
	}

	WriteNoContent(w)
}

// Peek handles GET /api/v1/links/{token}.
// Shows what the link unlocks without consuming a one-time use.
func (h *LinkHandler) Peek(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	link, err := h.engine.PeekLink(r.Context(), token)
	if err != nil {
		writeLinkProblem(w, err, h.metrics, false)
		return
	}

	file, err := h.store.GetFile(r.Context(), link.FileID)
	if err != nil {
		InternalServerError(w, "Failed to load file")
		return
	}

	WriteJSONOK(w, LinkPreviewResponse{
		FileName:    file.Name,
		Size:        file.Size,
		ContentType: file.ContentType,
		Permission:  link.Permission,
		OneTimeUse:  link.OneTimeUse,
		ExpiresAt:   link.ExpiresAt,
	})
}

// Content handles GET /api/v1/links/{token}/content?action=view|download.
// Redemption is atomic for one-time links; a permission mismatch never
// consumes the link.
func (h *LinkHandler) Content(w http.ResponseWriter, r *http.Request) {
	requested, ok := parseAction(w, r)
	if !ok {
		return
	}

	token := chi.URLParam(r, "token")
	decision, err := h.engine.RedeemLink(r.Context(), token, requested)
	if err != nil {
		writeLinkProblem(w, err, h.metrics, true)
		return
	}

	data, err := h.files.Content(r.Context(), decision.File)
	if err != nil {
		InternalServerError(w, "Failed to read file contents")
		return
	}

	h.metrics.RecordRedemption(metrics.ResultOK)
	h.metrics.RecordDownload(string(decision.Source))
	serveContent(w, decision.File, requested, data)
}

// writeLinkProblem maps link redemption errors onto problem responses.
// Expired and already-used links are 410 Gone; unknown tokens are 404.
func writeLinkProblem(w http.ResponseWriter, err error, m *metrics.Metrics, record bool) {
	switch {
	case errors.Is(err, models.ErrLinkNotFound):
		if record {
			m.RecordRedemption(metrics.ResultNotFound)
		}
		NotFound(w, "Link not found")
	case errors.Is(err, models.ErrLinkExpired):
		if record {
			m.RecordRedemption(metrics.ResultExpired)
		}
		Gone(w, "Link has expired")
	case errors.Is(err, models.ErrLinkAlreadyUsed):
		if record {
			m.RecordRedemption(metrics.ResultUsed)
		}
		Gone(w, "Link has already been used")
	case errors.Is(err, models.ErrAccessDenied):
		if record {
			m.RecordRedemption(metrics.ResultForbidden)
		}
		Forbidden(w, "Link does not allow that action")
	default:
		if record {
			m.RecordRedemption(metrics.ResultError)
		}
		InternalServerError(w, "Link redemption failed")
	}
}

// linkURL builds the public redemption URL for a token from the request.
func linkURL(r *http.Request, token string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/api/v1/links/" + token
}

// linkToResponse converts a ShareLink to its API representation.
func linkToResponse(link *models.ShareLink) LinkResponse {
	return LinkResponse{
		ID:         link.ID,
		FileID:     link.FileID,
		Token:      link.Token,
		Permission: link.Permission,
		OneTimeUse: link.OneTimeUse,
		Consumed:   link.Consumed,
		ExpiresAt:  link.ExpiresAt,
		CreatedAt:  link.CreatedAt,
	}
}
