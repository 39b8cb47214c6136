package handler

import (
	"customer-graph-api/internal/api/handler/dto"
	"customer-graph-api/internal/domain/customer"
	"customer-graph-api/internal/pkg/apperrors"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

const (
	detailCustomerNotFound = "Customer not found"
	detailAccountNotFound  = "Account not found"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"detail":"Internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, detail := http.StatusInternalServerError, "Internal server error"
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, customer.ErrAccountNotFound):
		status, detail = http.StatusNotFound, detailAccountNotFound
	case errors.Is(err, customer.ErrNotFound):
		status, detail = http.StatusNotFound, detailCustomerNotFound
	case errors.Is(err, apperrors.ErrNotFound):
		status, detail = http.StatusNotFound, "Resource not found"
	case errors.Is(err, apperrors.ErrInvalidArgument):
		status, detail = http.StatusUnprocessableEntity, err.Error()
		if errors.As(err, &appErr) {
			detail = appErr.Message
		}
	case errors.Is(err, apperrors.ErrValidation):
		slog.Default().Error("Response failed shape validation", "error", err)
		detail = "Response validation failed"
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	respondJSON(w, status, dto.ErrorResponse{Detail: detail})
}

// requiredQueryParam distinguishes an absent parameter from one sent with an
// empty value; only the former is rejected.
func requiredQueryParam(r *http.Request, name string) (string, error) {
	query := r.URL.Query()
	if !query.Has(name) {
		return "", apperrors.NewMissingParameterError(name)
	}
	return query.Get(name), nil
}

// logLevelFor keeps not-found lookups out of the error log.
func logLevelFor(err error) slog.Level {
	if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidArgument) {
		return slog.LevelWarn
	}
	return slog.LevelError
}
