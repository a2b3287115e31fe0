package handlers

import (
	"context"
	"net/http"
	"time"

	"NOTES_BACK-END/internal/dto"
	"NOTES_BACK-END/internal/utils"
)

// Pinger reports whether the database is reachable. *pgxpool.Pool
// satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check related requests
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthCheck handles basic health check (no database)
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// LivenessCheck handles process liveness check
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /livez [get]
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck handles readiness check (includes database connectivity)
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /readyz [get]
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ready"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
			Status:  "degraded",
			Details: map[string]any{"db": err.Error()},
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Details: map[string]any{"db": "ok"},
	})
}
