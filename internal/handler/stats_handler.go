package handlers

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker reports whether a backing dependency is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if h.HealthChecker != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := h.HealthChecker.HealthCheck(ctx); err != nil {
			h.logger.Warn("health check failed", "error", err)
			WriteJSON(w, HealthResponse{Status: "unavailable", Time: time.Now().UTC()}, http.StatusServiceUnavailable)
			return
		}
	}

	WriteJSON(w, HealthResponse{Status: "ok", Time: time.Now().UTC()}, http.StatusOK)
}

func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.GetStats(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, stats, http.StatusOK)
}
