package dataset

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"customer-graph-api/internal/domain/customer"

	"gopkg.in/yaml.v3"
)

//go:embed fixture.yaml
var embeddedFixture []byte

var ErrInvalidFixture = errors.New("invalid dataset fixture")

type fixture struct {
	Customers []customerRecord `yaml:"customers"`
}

type customerRecord struct {
	CustomerID string          `yaml:"customerID"`
	FirstName  string          `yaml:"firstname"`
	LastName   string          `yaml:"lastname"`
	Accounts   []accountRecord `yaml:"accounts"`
}

type accountRecord struct {
	AccountNumber string          `yaml:"accountnumber"`
	PaymentStatus string          `yaml:"paymentstatus"`
	Address       []addressRecord `yaml:"address"`
}

type addressRecord struct {
	AddLine1 string `yaml:"addline1"`
	City     string `yaml:"city"`
}

// Load reads the dataset from path, or from the embedded fixture when path is
// empty.
func Load(path string, logger *slog.Logger) ([]customer.Customer, error) {
	if path == "" {
		logger.Info("Loading embedded dataset fixture")
		return Parse(bytes.NewReader(embeddedFixture), logger)
	}

	logger.Info("Loading dataset fixture from file", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset fixture %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, logger)
}

func Parse(r io.Reader, logger *slog.Logger) ([]customer.Customer, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var fx fixture
	if err := dec.Decode(&fx); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: document is empty", ErrInvalidFixture)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidFixture, err)
	}

	customers := make([]customer.Customer, 0, len(fx.Customers))
	for _, rec := range fx.Customers {
		customers = append(customers, rec.toDomain())
	}

	if err := validate(customers, logger); err != nil {
		return nil, err
	}
	return customers, nil
}

// validate rejects records without a key. Repeated keys are allowed; lookups
// return the first occurrence, so later duplicates are unreachable.
func validate(customers []customer.Customer, logger *slog.Logger) error {
	seenCustomers := make(map[string]struct{}, len(customers))
	seenAccounts := make(map[string]struct{})

	for i, c := range customers {
		if c.CustomerID == "" {
			return fmt.Errorf("%w: customer #%d has an empty customerID", ErrInvalidFixture, i)
		}
		if _, dup := seenCustomers[c.CustomerID]; dup {
			logger.Warn("Duplicate customerID in dataset, later record is shadowed", "customerID", c.CustomerID)
		}
		seenCustomers[c.CustomerID] = struct{}{}

		for j, acc := range c.Accounts {
			if acc.AccountNumber == "" {
				return fmt.Errorf("%w: customer %s account #%d has an empty accountnumber", ErrInvalidFixture, c.CustomerID, j)
			}
			if _, dup := seenAccounts[acc.AccountNumber]; dup {
				logger.Warn("Duplicate accountnumber in dataset, later record is shadowed",
					"accountnumber", acc.AccountNumber, "customerID", c.CustomerID)
			}
			seenAccounts[acc.AccountNumber] = struct{}{}
		}
	}
	return nil
}

func (r customerRecord) toDomain() customer.Customer {
	accounts := make([]customer.Account, 0, len(r.Accounts))
	for _, acc := range r.Accounts {
		addresses := make([]customer.Address, 0, len(acc.Address))
		for _, addr := range acc.Address {
			addresses = append(addresses, customer.Address{AddLine1: addr.AddLine1, City: addr.City})
		}
		accounts = append(accounts, customer.Account{
			AccountNumber: acc.AccountNumber,
			PaymentStatus: acc.PaymentStatus,
			Address:       addresses,
		})
	}
	return customer.Customer{
		CustomerID: r.CustomerID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Accounts:   accounts,
	}
}
