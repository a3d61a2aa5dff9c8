package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mcoot/reversigame/internal/api/response"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness endpoint
type HealthHandler struct {
	store  Pinger
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{store: store, logger: logger}
}

// Get handles GET /api/v1/health. The service itself is up whenever it can
// answer, so the status code stays 200 and the datastore state is reported
// alongside.
func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := response.Health{Status: "ok", Database: "connected"}
	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("health check ping failed", slog.Any("error", err))
		resp.Database = "error"
	}

	response.JSON(w, http.StatusOK, resp)
}
