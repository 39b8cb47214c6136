package graphql

import (
	"context"
	"errors"
	"log/slog"

	"customer-graph-api/internal/domain/customer"
)

type queryResolver struct {
	svc    customer.CustomerService
	logger *slog.Logger
}

func newQueryResolver(svc customer.CustomerService, logger *slog.Logger) *queryResolver {
	return &queryResolver{svc: svc, logger: logger}
}

// Customer resolves to null when the id is unknown. Only unexpected failures
// are reported in the errors envelope.
func (q *queryResolver) Customer(ctx context.Context, args struct{ CustomerID string }) (*customerResolver, error) {
	c, err := q.svc.GetCustomer(ctx, args.CustomerID)
	if err != nil {
		if errors.Is(err, customer.ErrNotFound) {
			return nil, nil
		}
		q.logger.ErrorContext(ctx, "customer resolver failed", slog.Any("error", err))
		return nil, err
	}
	return &customerResolver{c: c}, nil
}

func (q *queryResolver) Account(ctx context.Context, args struct{ AccountNumber string }) (*accountResolver, error) {
	acc, err := q.svc.GetAccount(ctx, args.AccountNumber)
	if err != nil {
		if errors.Is(err, customer.ErrAccountNotFound) {
			return nil, nil
		}
		q.logger.ErrorContext(ctx, "account resolver failed", slog.Any("error", err))
		return nil, err
	}
	return &accountResolver{a: acc}, nil
}

type customerResolver struct {
	c *customer.Customer
}

func (r *customerResolver) CustomerID() *string { return &r.c.CustomerID }
func (r *customerResolver) Firstname() *string  { return &r.c.FirstName }
func (r *customerResolver) Lastname() *string   { return &r.c.LastName }

func (r *customerResolver) Accounts() *[]*accountResolver {
	out := make([]*accountResolver, len(r.c.Accounts))
	for i := range r.c.Accounts {
		out[i] = &accountResolver{a: &r.c.Accounts[i]}
	}
	return &out
}

type accountResolver struct {
	a *customer.Account
}

func (r *accountResolver) Accountnumber() *string { return &r.a.AccountNumber }
func (r *accountResolver) Paymentstatus() *string { return &r.a.PaymentStatus }

func (r *accountResolver) Address() *[]*addressResolver {
	out := make([]*addressResolver, len(r.a.Address))
	for i := range r.a.Address {
		out[i] = &addressResolver{addr: &r.a.Address[i]}
	}
	return &out
}

type addressResolver struct {
	addr *customer.Address
}

func (r *addressResolver) Addline1() *string { return &r.addr.AddLine1 }
func (r *addressResolver) City() *string     { return &r.addr.City }
