package dataset

import (
	"context"
	"log/slog"
	"os"

	"customer-graph-api/internal/domain/customer"
	"customer-graph-api/internal/infrastructure/monitoring"
)

// Repository serves lookups from a dataset that is fixed at construction.
// It holds no locks: nothing writes to the slice after NewRepository returns,
// and every result handed out is a copy.
type Repository struct {
	customers []customer.Customer
	logger    *slog.Logger
}

var _ customer.Repository = (*Repository)(nil)

func NewRepository(customers []customer.Customer, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewRepository, using default stderr handler")
	}

	owned := make([]customer.Customer, len(customers))
	for i, c := range customers {
		owned[i] = c.Clone()
	}

	r := &Repository{
		customers: owned,
		logger:    logger.With("component", "DatasetRepository"),
	}

	numCustomers, numAccounts := r.Stats()
	monitoring.RecordDatasetSize(numCustomers, numAccounts)
	r.logger.Info("Dataset ready", "customers", numCustomers, "accounts", numAccounts)
	return r
}

func (r *Repository) FindByID(ctx context.Context, customerID string) (*customer.Customer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := range r.customers {
		if r.customers[i].CustomerID == customerID {
			found := r.customers[i].Clone()
			return &found, nil
		}
	}

	r.logger.DebugContext(ctx, "No customer matched", "customerID", customerID)
	return nil, customer.ErrNotFound
}

func (r *Repository) FindAccountByNumber(ctx context.Context, accountNumber string) (*customer.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := range r.customers {
		for j := range r.customers[i].Accounts {
			if r.customers[i].Accounts[j].AccountNumber == accountNumber {
				found := r.customers[i].Accounts[j].Clone()
				return &found, nil
			}
		}
	}

	r.logger.DebugContext(ctx, "No account matched", "accountnumber", accountNumber)
	return nil, customer.ErrAccountNotFound
}

// Stats returns the number of customers and accounts held.
func (r *Repository) Stats() (customers, accounts int) {
	for _, c := range r.customers {
		accounts += len(c.Accounts)
	}
	return len(r.customers), accounts
}
