package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter wires the middleware chain and routes
func NewRouter(customerHandler *CustomerHandler, healthHandler *HealthHandler, allowOrigins []string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Apply middleware
	r.Use(RecoveryMiddleware(logger))
	r.Use(LoggingMiddleware(logger))
	r.Use(CORSMiddleware(allowOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, MsgNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
	})

	// Register routes
	r.Get("/health", healthHandler.Health)
	r.Get("/customers", customerHandler.ListCustomers)

	return r
}
