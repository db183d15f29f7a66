package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shareguard/shareguard/pkg/models"
)

// decodeJSONBody decodes a JSON request body into the provided pointer.
// Returns true if successful, false if decoding fails (error response is
// written automatically).
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		BadRequest(w, "Invalid request body")
		return false
	}
	return true
}

// parseAction maps an "action" query parameter to a permission.
// An empty action defaults to view. Returns false (with a 400 written)
// for unknown actions.
func parseAction(w http.ResponseWriter, r *http.Request) (models.Permission, bool) {
	switch r.URL.Query().Get("action") {
	case "", "view":
		return models.PermissionView, true
	case "download":
		return models.PermissionDownload, true
	default:
		BadRequest(w, "Unknown action; use view or download")
		return "", false
	}
}
