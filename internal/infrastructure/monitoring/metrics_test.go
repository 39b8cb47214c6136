package monitoring

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordLookup(t *testing.T) {
	Lookup.LookupsTotal.Reset()

	RecordLookup(EntityCustomer, ResultFound)
	RecordLookup(EntityCustomer, ResultFound)
	RecordLookup(EntityAccount, ResultNotFound)

	expected := `
		# HELP customer_graph_lookups_total Total number of dataset lookups by entity and result.
		# TYPE customer_graph_lookups_total counter
		customer_graph_lookups_total{entity="account",result="not_found"} 1
		customer_graph_lookups_total{entity="customer",result="found"} 2
	`
	err := testutil.CollectAndCompare(Lookup.LookupsTotal, strings.NewReader(expected))
	assert.NoError(t, err)
}

func TestRecordDatasetSize(t *testing.T) {
	RecordDatasetSize(2, 3)

	assert.Equal(t, 2.0, testutil.ToFloat64(Dataset.Customers))
	assert.Equal(t, 3.0, testutil.ToFloat64(Dataset.Accounts))
}
