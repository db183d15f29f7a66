package handlers

import (
	"net/http"

	"github.com/shareguard/shareguard/pkg/store"
)

// AccountHandler handles account listing endpoints.
type AccountHandler struct {
	store store.Store
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(s store.Store) *AccountHandler {
	return &AccountHandler{store: s}
}

// AccountRef identifies an account for the sharing UI.
// Only the ID and username are exposed to non-admin callers.
type AccountRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// List handles GET /api/v1/users.
// Returns id+username pairs so owners can pick a share target.
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.store.ListAccounts(r.Context())
	if err != nil {
		InternalServerError(w, "Failed to list accounts")
		return
	}

	refs := make([]AccountRef, 0, len(accounts))
	for _, account := range accounts {
		if !account.Enabled {
			continue
		}
		refs = append(refs, AccountRef{ID: account.ID, Username: account.Username})
	}

	WriteJSONOK(w, refs)
}
