package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Raymond9734/customer-directory-api/internal/models"
)

// Generic messages for non-client errors
const (
	MsgInternal         = "An unexpected error occurred"
	MsgNotFound         = "Resource not found"
	MsgMethodNotAllowed = "Method not allowed"
)

// handleError maps service errors to HTTP responses
func handleError(w http.ResponseWriter, err error, logger *slog.Logger) {
	// Check for custom AppError
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		status := mapErrorCodeToHTTPStatus(appErr.Code)
		respondError(w, status, appErr.Message)
		return
	}

	// Log internal errors but don't expose details to client
	logger.Error("internal server error",
		slog.String("error", err.Error()),
	)
	respondError(w, http.StatusInternalServerError, MsgInternal)
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case models.CodeInvalidPagination, models.CodeUnsupportedSize, models.CodeUnsupportedIndustry:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
