package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the citizen registry.
// Tracks mutation outcomes, registry size and query result sizes.
type Metrics struct {
	Inserts      *prometheus.CounterVec
	Removals     *prometheus.CounterVec
	Queries      *prometheus.CounterVec
	QueryResults *prometheus.HistogramVec
	Size         prometheus.Gauge
}

// New creates the registry metrics and registers them with reg.
// A nil reg leaves them unregistered.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Inserts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "citizens_inserts_total",
			Help: "Total number of insert attempts by result",
		}, []string{"result"}),
		Removals: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "citizens_removals_total",
			Help: "Total number of removal attempts by result",
		}, []string{"result"}),
		Queries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "citizens_queries_total",
			Help: "Total number of queries by kind",
		}, []string{"query"}),
		QueryResults: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "citizens_query_results",
			Help:    "Number of records returned per query",
			Buckets: []float64{0, 1, 5, 10, 50, 100, 500, 1000, 10000},
		}, []string{"query"}),
		Size: factory.NewGauge(prometheus.GaugeOpts{
			Name: "citizens_registered",
			Help: "Current number of registered citizens",
		}),
	}
}

// ObserveInsert records an insert attempt.
func (m *Metrics) ObserveInsert(result string) {
	m.Inserts.WithLabelValues(result).Inc()
}

// ObserveRemove records a removal attempt.
func (m *Metrics) ObserveRemove(result string) {
	m.Removals.WithLabelValues(result).Inc()
}

// ObserveQuery records a query and the size of its result.
func (m *Metrics) ObserveQuery(query string, results int) {
	m.Queries.WithLabelValues(query).Inc()
	m.QueryResults.WithLabelValues(query).Observe(float64(results))
}

// SetSize records the current registry size.
func (m *Metrics) SetSize(n int) {
	m.Size.Set(float64(n))
}
