package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"customer-graph-api/internal/infrastructure/monitoring"
)

const customerNotFound = "Customer not found by repository"

// CustomerService is the single lookup component shared by the REST and the
// GraphQL adapters.
type CustomerService interface {
	GetCustomer(ctx context.Context, customerID string) (*Customer, error)
	GetAccount(ctx context.Context, accountNumber string) (*Account, error)
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo   Repository
	logger *slog.Logger
}

func NewCustomerService(repo Repository, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	return &customerService{
		repo:   repo,
		logger: logger.With(slog.String("component", "customerService")),
	}
}

func (s *customerService) GetCustomer(ctx context.Context, customerID string) (*Customer, error) {
	logger := s.logger.With(slog.String("customerID", customerID))
	logger.DebugContext(ctx, "Attempting to get customer by ID")

	customer, err := s.repo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.InfoContext(ctx, customerNotFound)
			monitoring.RecordLookup(monitoring.EntityCustomer, monitoring.ResultNotFound)
			return nil, ErrNotFound
		}

		logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		monitoring.RecordLookup(monitoring.EntityCustomer, monitoring.ResultError)
		return nil, fmt.Errorf("failed to get customer %q: %w", customerID, err)
	}

	monitoring.RecordLookup(monitoring.EntityCustomer, monitoring.ResultFound)
	logger.DebugContext(ctx, "Successfully retrieved customer", slog.Int("accounts", len(customer.Accounts)))
	return customer, nil
}

func (s *customerService) GetAccount(ctx context.Context, accountNumber string) (*Account, error) {
	logger := s.logger.With(slog.String("accountnumber", accountNumber))
	logger.DebugContext(ctx, "Attempting to get account by number")

	account, err := s.repo.FindAccountByNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			logger.InfoContext(ctx, "Account not found by repository")
			monitoring.RecordLookup(monitoring.EntityAccount, monitoring.ResultNotFound)
			return nil, ErrAccountNotFound
		}

		logger.ErrorContext(ctx, "Repository error finding account", slog.Any("error", err))
		monitoring.RecordLookup(monitoring.EntityAccount, monitoring.ResultError)
		return nil, fmt.Errorf("failed to get account %q: %w", accountNumber, err)
	}

	monitoring.RecordLookup(monitoring.EntityAccount, monitoring.ResultFound)
	logger.DebugContext(ctx, "Successfully retrieved account")
	return account, nil
}
