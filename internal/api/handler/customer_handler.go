package handler

import (
	"customer-graph-api/internal/api/handler/dto"
	"customer-graph-api/internal/domain/customer"
	"log/slog"
	"net/http"
)

type CustomerHandler struct {
	service customer.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

// GetCustomer handles GET /customer?customerID={customerID}
// @Summary Retrieve a customer
// @Description Looks up a customer by exact, case-sensitive customerID and returns it with all accounts and addresses.
// @Tags Customers
// @Produce json
// @Param customerID query string true "Customer ID" Example(900)
// @Success 200 {object} dto.CustomerResponse "Customer details retrieved"
// @Failure 404 {object} dto.ErrorResponse "Customer not found"
// @Failure 422 {object} dto.ErrorResponse "Missing customerID query parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /customer [get]
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := requiredQueryParam(r, "customerID")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Invalid get customer request", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Calling customer service GetCustomer", slog.String("customerID", customerID))
	domainCustomer, err := h.service.GetCustomer(r.Context(), customerID)
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "Service failed to get customer",
			slog.String("customerID", customerID), slog.Any("error", err))
		respondError(w, err)
		return
	}

	resp := dto.NewCustomerResponse(domainCustomer)
	if err := dto.Validate(resp); err != nil {
		h.logger.ErrorContext(r.Context(), "Customer failed response validation", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer retrieved successfully", slog.String("customerID", resp.CustomerID))
	respondJSON(w, http.StatusOK, resp)
}
