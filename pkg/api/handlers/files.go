package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shareguard/shareguard/pkg/access"
	"github.com/shareguard/shareguard/pkg/api/middleware"
	"github.com/shareguard/shareguard/pkg/files"
	"github.com/shareguard/shareguard/pkg/metrics"
	"github.com/shareguard/shareguard/pkg/models"
)

// maxUploadBytes bounds the in-memory portion of multipart parsing.
const maxUploadBytes = 128 << 20

// FileHandler handles file upload, listing, metadata, content, and deletion.
type FileHandler struct {
	files   *files.Service
	engine  *access.Engine
	metrics *metrics.Metrics
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(filesService *files.Service, engine *access.Engine, m *metrics.Metrics) *FileHandler {
	return &FileHandler{
		files:   filesService,
		engine:  engine,
		metrics: m,
	}
}

// FileResponse is the API representation of a file.
type FileResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Size        int64     `json:"size"`
	ContentType string    `json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}

// FileListResponse is the response body for GET /api/v1/files.
type FileListResponse struct {
	Owned  []FileResponse `json:"owned"`
	Shared []FileResponse `json:"shared"`
}

// Upload handles POST /api/v1/files (multipart, field "file").
func (h *FileHandler) Upload(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		BadRequest(w, "Invalid multipart request")
		return
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		BadRequest(w, "Missing file field")
		return
	}
	defer part.Close()

	data, err := io.ReadAll(part)
	if err != nil {
		InternalServerError(w, "Failed to read upload")
		return
	}

	name := r.FormValue("name")
	if name == "" {
		name = header.Filename
	}
	if name == "" {
		BadRequest(w, "File name is required")
		return
	}

	file, err := h.files.Upload(r.Context(), claims.AccountID, name, header.Header.Get("Content-Type"), data)
	if err != nil {
		InternalServerError(w, "Upload failed")
		return
	}

	h.metrics.RecordUpload(file.Size)
	WriteJSONCreated(w, fileToResponse(file))
}

// List handles GET /api/v1/files.
// Returns the caller's own files plus files shared with them.
func (h *FileHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	owned, err := h.files.ListOwned(r.Context(), claims.AccountID)
	if err != nil {
		InternalServerError(w, "Failed to list files")
		return
	}
	shared, err := h.files.ListSharedWith(r.Context(), claims.AccountID)
	if err != nil {
		InternalServerError(w, "Failed to list files")
		return
	}

	resp := FileListResponse{
		Owned:  make([]FileResponse, 0, len(owned)),
		Shared: make([]FileResponse, 0, len(shared)),
	}
	for _, file := range owned {
		resp.Owned = append(resp.Owned, fileToResponse(file))
	}
	for _, file := range shared {
		resp.Shared = append(resp.Shared, fileToResponse(file))
	}

	WriteJSONOK(w, resp)
}

// Get handles GET /api/v1/files/{id}.
// Metadata is visible to anyone who could at least view the file.
func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	fileID := chi.URLParam(r, "id")
	decision, err := h.engine.Authorize(r.Context(), claims.AccountID, fileID, models.PermissionView)
	if err != nil {
		writeAccessProblem(w, err)
		return
	}

	WriteJSONOK(w, fileToResponse(decision.File))
}

// Content handles GET /api/v1/files/{id}/content?action=view|download.
// Every byte served goes through the access engine first.
func (h *FileHandler) Content(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	requested, ok := parseAction(w, r)
	if !ok {
		return
	}

	fileID := chi.URLParam(r, "id")
	decision, err := h.engine.Authorize(r.Context(), claims.AccountID, fileID, requested)
	if err != nil {
		writeAccessProblem(w, err)
		return
	}

	data, err := h.files.Content(r.Context(), decision.File)
	if err != nil {
		InternalServerError(w, "Failed to read file contents")
		return
	}

	h.metrics.RecordDownload(string(decision.Source))
	serveContent(w, decision.File, requested, data)
}

// Delete handles DELETE /api/v1/files/{id}.
// Only the owner may delete a file.
func (h *FileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaimsFromContext(r.Context())
	if claims == nil {
		Unauthorized(w, "Authentication required")
		return
	}

	fileID := chi.URLParam(r, "id")
	if err := h.files.Delete(r.Context(), claims.AccountID, fileID); err != nil {
		if errors.Is(err, models.ErrFileNotFound) {
			NotFound(w, "File not found")
			return
		}
		if errors.Is(err, models.ErrAccessDenied) {
			Forbidden(w, "Only the owner may delete a file")
			return
		}
		InternalServerError(w, "Failed to delete file")
		return
	}

	WriteNoContent(w)
}

// serveContent writes file bytes with appropriate headers. Downloads get a
// Content-Disposition attachment; views are served inline.
func serveContent(w http.ResponseWriter, file *models.File, requested models.Permission, data []byte) {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	if requested == models.PermissionDownload {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	} else {
		w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", file.Name))
	}
	_, _ = w.Write(data)
}

// writeAccessProblem maps access engine errors onto problem responses.
func writeAccessProblem(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrFileNotFound):
		NotFound(w, "File not found")
	case errors.Is(err, models.ErrAccessDenied):
		Forbidden(w, "You do not have permission to do that")
	default:
		InternalServerError(w, "Authorization failed")
	}
}

// fileToResponse converts a File to its API representation.
func fileToResponse(file *models.File) FileResponse {
	return FileResponse{
		ID:          file.ID,
		OwnerID:     file.OwnerID,
		Name:        file.Name,
		Size:        file.Size,
		ContentType: file.ContentType,
		CreatedAt:   file.CreatedAt,
	}
}
