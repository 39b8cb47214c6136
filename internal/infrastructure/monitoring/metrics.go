package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	EntityCustomer = "customer"
	EntityAccount  = "account"

	ResultFound    = "found"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

type LookupMetrics struct {
	LookupsTotal *prometheus.CounterVec
}

type DatasetMetrics struct {
	Customers prometheus.Gauge
	Accounts  prometheus.Gauge
}

var (
	Lookup = LookupMetrics{
		LookupsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_graph_lookups_total",
				Help: "Total number of dataset lookups by entity and result.",
			},
			[]string{"entity", "result"},
		),
	}

	Dataset = DatasetMetrics{
		Customers: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "customer_graph_dataset_customers",
				Help: "Number of customers loaded into the in-memory dataset.",
			},
		),
		Accounts: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "customer_graph_dataset_accounts",
				Help: "Number of accounts loaded into the in-memory dataset.",
			},
		),
	}
)

func RecordLookup(entity, result string) {
	Lookup.LookupsTotal.WithLabelValues(entity, result).Inc()
}

func RecordDatasetSize(customers, accounts int) {
	Dataset.Customers.Set(float64(customers))
	Dataset.Accounts.Set(float64(accounts))
}
