package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"customer-graph-api/internal/domain/customer"

	graphqlgo "github.com/graph-gophers/graphql-go"
	gqlerrors "github.com/graph-gophers/graphql-go/errors"
)

const getAccountOperation = "getAccount"

const getAccountQuery = `
	query getAccount($accountnumber: String!) {
		account(accountnumber: $accountnumber) {
			accountnumber
			paymentstatus
			address {
				addline1
				city
			}
		}
	}
`

var ErrExecution = errors.New("graphql execution failed")

// QueryErrors carries the errors reported by a failed execution.
type QueryErrors []*gqlerrors.QueryError

func (e QueryErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	return fmt.Sprintf("%s (and %d more)", e[0].Error(), len(e)-1)
}

func (e QueryErrors) Unwrap() error { return ErrExecution }

// Executor runs the fixed operations the REST surface delegates to the
// GraphQL schema, so both surfaces go through the same resolvers.
type Executor struct {
	schema *graphqlgo.Schema
}

func NewExecutor(schema *graphqlgo.Schema) *Executor {
	if schema == nil {
		panic("graphql schema cannot be nil")
	}
	return &Executor{schema: schema}
}

// Account executes the named getAccount query. A null result is reported as
// customer.ErrAccountNotFound.
func (e *Executor) Account(ctx context.Context, accountNumber string) (*customer.Account, error) {
	resp := e.schema.Exec(ctx, getAccountQuery, getAccountOperation, map[string]interface{}{
		"accountnumber": accountNumber,
	})
	if len(resp.Errors) > 0 {
		return nil, QueryErrors(resp.Errors)
	}

	var data struct {
		Account *customer.Account `json:"account"`
	}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		return nil, fmt.Errorf("%w: decode response data: %w", ErrExecution, err)
	}
	if data.Account == nil {
		return nil, customer.ErrAccountNotFound
	}
	return data.Account, nil
}
