package graphql

import (
	"fmt"
	"log/slog"

	"customer-graph-api/internal/config"
	"customer-graph-api/internal/domain/customer"

	graphqlgo "github.com/graph-gophers/graphql-go"
)

// Object fields are nullable; only root arguments are required. An unknown
// key resolves to null.
const Schema = `
	schema {
		query: Query
	}

	type Address {
		addline1: String
		city: String
	}

	type Account {
		accountnumber: String
		paymentstatus: String
		address: [Address]
	}

	type Customer {
		customerID: String
		firstname: String
		lastname: String
		accounts: [Account]
	}

	type Query {
		customer(customerID: String!): Customer
		account(accountnumber: String!): Account
	}
`

func NewSchema(svc customer.CustomerService, cfg config.GraphQLConfig, logger *slog.Logger) (*graphqlgo.Schema, error) {
	if svc == nil {
		panic("customer service cannot be nil")
	}
	logger = logger.With("component", "GraphQLSchema")

	opts := []graphqlgo.SchemaOpt{
		graphqlgo.Logger(&panicLogger{logger: logger}),
	}
	if cfg.MaxParallelism > 0 {
		opts = append(opts, graphqlgo.MaxParallelism(cfg.MaxParallelism))
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, graphqlgo.MaxDepth(cfg.MaxDepth))
	}

	schema, err := graphqlgo.ParseSchema(Schema, newQueryResolver(svc, logger), opts...)
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}

	logger.Info("GraphQL schema parsed", "maxParallelism", cfg.MaxParallelism, "maxDepth", cfg.MaxDepth)
	return schema, nil
}
