package dataset

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"customer-graph-api/internal/domain/customer"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadEmbeddedFixture(t *testing.T) {
	customers, err := Load("", discardLogger())
	require.NoError(t, err)

	want := []customer.Customer{
		{
			CustomerID: "900",
			FirstName:  "John",
			LastName:   "Smith",
			Accounts: []customer.Account{
				{
					AccountNumber: "777",
					PaymentStatus: "Paid",
					Address: []customer.Address{
						{AddLine1: "201 Dr", City: "Frisco"},
						{AddLine1: "202 Dr", City: "Dallas"},
					},
				},
				{
					AccountNumber: "778",
					PaymentStatus: "Due",
					Address:       []customer.Address{{AddLine1: "203 Dr", City: "Plano"}},
				},
			},
		},
		{
			CustomerID: "901",
			FirstName:  "Jane",
			LastName:   "Doe",
			Accounts: []customer.Account{
				{
					AccountNumber: "779",
					PaymentStatus: "Paid",
					Address:       []customer.Address{{AddLine1: "204 Dr", City: "Austin"}},
				},
			},
		},
	}

	if diff := cmp.Diff(want, customers); diff != "" {
		t.Fatalf("embedded fixture mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Run("reads an alternative fixture", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "customers.yaml")
		doc := `
customers:
  - customerID: "1"
    firstname: Ada
    lastname: Lovelace
    accounts:
      - accountnumber: "10"
        paymentstatus: Due
        address: []
`
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

		customers, err := Load(path, discardLogger())
		require.NoError(t, err)
		require.Len(t, customers, 1)
		assert.Equal(t, "Ada", customers[0].FirstName)
		require.Len(t, customers[0].Accounts, 1)
		assert.Empty(t, customers[0].Accounts[0].Address)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), discardLogger())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestParseRejectsInvalidFixtures(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty document", doc: ""},
		{name: "malformed yaml", doc: "customers: [unterminated"},
		{name: "unknown field", doc: "customers:\n  - customerID: \"1\"\n    nickname: x\n"},
		{name: "empty customerID", doc: "customers:\n  - firstname: Nobody\n"},
		{
			name: "empty accountnumber",
			doc:  "customers:\n  - customerID: \"1\"\n    accounts:\n      - paymentstatus: Paid\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc), discardLogger())
			assert.ErrorIs(t, err, ErrInvalidFixture)
		})
	}
}

func TestParseKeepsDuplicateKeysInOrder(t *testing.T) {
	doc := `
customers:
  - customerID: "1"
    firstname: First
    accounts:
      - accountnumber: "10"
        paymentstatus: Paid
  - customerID: "1"
    firstname: Second
    accounts:
      - accountnumber: "10"
        paymentstatus: Due
`
	customers, err := Parse(strings.NewReader(doc), discardLogger())
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "First", customers[0].FirstName)
	assert.Equal(t, "Second", customers[1].FirstName)
}
