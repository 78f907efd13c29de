package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Raymond9734/customer-directory-api/internal/repository"
)

// HealthChecker is implemented by dependencies that can report their health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler handles health check requests
type HealthHandler struct {
	dataset  repository.CustomerRepository
	database HealthChecker
	cache    HealthChecker
	logger   *slog.Logger
}

// NewHealthHandler creates a new health handler. database and cache may be
// nil when they are not configured.
func NewHealthHandler(dataset repository.CustomerRepository, database, cache HealthChecker, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		dataset:  dataset,
		database: database,
		cache:    cache,
		logger:   logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:   "healthy",
		Services: make(map[string]string),
	}

	// Check dataset
	if _, err := h.dataset.List(ctx); err != nil {
		h.logger.Error("dataset health check failed", slog.String("error", err.Error()))
		response.Status = "unhealthy"
		response.Services["dataset"] = "unhealthy"
	} else {
		response.Services["dataset"] = "healthy"
	}

	h.check(ctx, "database", h.database, &response)
	h.check(ctx, "cache", h.cache, &response)

	// Return appropriate status code
	if response.Status == "healthy" {
		respondSuccess(w, response)
	} else {
		respondJSON(w, http.StatusServiceUnavailable, response)
	}
}

func (h *HealthHandler) check(ctx context.Context, name string, checker HealthChecker, response *HealthResponse) {
	if checker == nil {
		response.Services[name] = "not_configured"
		return
	}

	if err := checker.Health(ctx); err != nil {
		h.logger.Error(name+" health check failed", slog.String("error", err.Error()))
		response.Status = "unhealthy"
		response.Services[name] = "unhealthy"
		return
	}
	response.Services[name] = "healthy"
}
