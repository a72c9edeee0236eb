package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"opternportal/internal/delivery/http/helpers"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthResponse is the response body for GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthController reports liveness and database reachability.
type HealthController struct {
	Logger *slog.Logger
	DB     Pinger
}

// NewHealthController creates a HealthController. db may be nil.
func NewHealthController(logger *slog.Logger, db Pinger) *HealthController {
	return &HealthController{Logger: logger, DB: db}
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} controllers.HealthResponse
// @Failure 500 {object} helpers.ErrorResponse "error.code: internal_error"
// @Router /healthz [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if c.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := c.DB.PingContext(ctx); err != nil {
			c.Logger.ErrorContext(r.Context(), "database ping failed", "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "database unavailable")
			return
		}
	}
	helpers.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
