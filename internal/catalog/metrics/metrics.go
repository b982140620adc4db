package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	CatalogReadsTotal     *prometheus.CounterVec
	CatalogMutationsTotal *prometheus.CounterVec
	LegacyQueryFailures   prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		CatalogReadsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sciport_catalog_reads_total",
			Help: "Total number of catalog read operations by entity",
		}, []string{"entity"}),
		CatalogMutationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "sciport_catalog_mutations_total",
			Help: "Total number of catalog overlay mutations by entity and kind",
		}, []string{"entity", "kind"}),
		LegacyQueryFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "sciport_legacy_query_failures_total",
			Help: "Total number of failed legacy source queries",
		}),
	}
}

func (m *Metrics) IncrementReads(entity string) {
	m.CatalogReadsTotal.WithLabelValues(entity).Inc()
}

func (m *Metrics) IncrementMutations(entity, kind string) {
	m.CatalogMutationsTotal.WithLabelValues(entity, kind).Inc()
}

func (m *Metrics) IncrementQueryFailures() {
	m.LegacyQueryFailures.Inc()
}
