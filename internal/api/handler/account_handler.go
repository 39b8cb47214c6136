package handler

import (
	"context"
	"customer-graph-api/internal/api/handler/dto"
	"customer-graph-api/internal/domain/customer"
	"errors"
	"log/slog"
	"net/http"
)

// AccountQuerier resolves an account through the GraphQL schema.
type AccountQuerier interface {
	Account(ctx context.Context, accountNumber string) (*customer.Account, error)
}

type AccountHandler struct {
	querier AccountQuerier
	logger  *slog.Logger
}

func NewAccountHandler(q AccountQuerier, l *slog.Logger) *AccountHandler {
	if q == nil {
		panic("account querier cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &AccountHandler{
		querier: q,
		logger:  l.With("component", "AccountHandler"),
	}
}

// GetAccount handles GET /graphql-query?accountnumber={accountnumber}
// @Summary Retrieve an account through GraphQL
// @Description Executes the getAccount GraphQL query for the given account number and returns the account as flat JSON.
// @Tags Accounts
// @Produce json
// @Param accountnumber query string true "Account number" Example(779)
// @Success 200 {object} dto.AccountResponse "Account details retrieved"
// @Failure 404 {object} dto.ErrorResponse "Account not found"
// @Failure 422 {object} dto.ErrorResponse "Missing accountnumber query parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /graphql-query [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountNumber, err := requiredQueryParam(r, "accountnumber")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Invalid get account request", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.DebugContext(r.Context(), "Executing getAccount query", slog.String("accountnumber", accountNumber))
	account, err := h.querier.Account(r.Context(), accountNumber)
	if err != nil {
		h.logger.Log(r.Context(), logLevelFor(err), "getAccount query failed",
			slog.String("accountnumber", accountNumber), slog.Any("error", err))
		// Any failed execution is reported as a missing account.
		if !errors.Is(err, customer.ErrAccountNotFound) {
			err = errors.Join(customer.ErrAccountNotFound, err)
		}
		respondError(w, err)
		return
	}

	resp := dto.NewAccountResponse(account)
	if err := dto.Validate(resp); err != nil {
		h.logger.ErrorContext(r.Context(), "Account failed response validation", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Account retrieved successfully", slog.String("accountnumber", resp.AccountNumber))
	respondJSON(w, http.StatusOK, resp)
}
