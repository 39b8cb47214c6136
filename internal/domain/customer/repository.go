package customer

import (
	"context"
	"fmt"

	"customer-graph-api/internal/pkg/apperrors"
)

var (
	ErrNotFound = fmt.Errorf("customer not found: %w", apperrors.ErrNotFound)

	ErrAccountNotFound = fmt.Errorf("account not found: %w", apperrors.ErrNotFound)
)

// Repository is a read-only view over the customer dataset. Lookups are
// exact and case-sensitive, and when keys repeat the first record in dataset
// order wins.
type Repository interface {
	FindByID(ctx context.Context, customerID string) (*Customer, error)

	FindAccountByNumber(ctx context.Context, accountNumber string) (*Account, error)
}
