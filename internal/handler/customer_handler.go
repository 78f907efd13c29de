package handler

import (
	"log/slog"
	"net/http"

	"github.com/Raymond9734/customer-directory-api/internal/models"
	"github.com/Raymond9734/customer-directory-api/internal/service"
)

// CustomerHandler handles customer HTTP requests
type CustomerHandler struct {
	customerService service.CustomerService
	logger          *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	params := models.CustomerQueryParams{
		Page:     query.Get("page"),
		Limit:    query.Get("limit"),
		Size:     query.Get("size"),
		Industry: query.Get("industry"),
	}

	result, err := h.customerService.List(r.Context(), params)
	if err != nil {
		handleError(w, err, h.logger)
		return
	}

	respondSuccess(w, result)
}
