package handlers

import (
	"net/http"

	"github.com/shareguard/shareguard/pkg/store"
)

// HealthHandler handles liveness and readiness probes.
type HealthHandler struct {
	store store.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s store.Store) *HealthHandler {
	return &HealthHandler{store: s}
}

// Liveness handles GET /health.
// Returns 200 as long as the process is serving requests.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeHealth(w, http.StatusOK, healthyResponse(map[string]string{
		"service": "shareguard",
	}))
}

// Readiness handles GET /health/ready.
// Returns 200 only when the database answers a health check.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Healthcheck(r.Context()); err != nil {
		writeHealth(w, http.StatusServiceUnavailable, unhealthyResponse(err.Error()))
		return
	}
	writeHealth(w, http.StatusOK, healthyResponse(nil))
}
