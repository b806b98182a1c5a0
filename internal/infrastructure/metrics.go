package infrastructure

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the loading pipeline.
type Metrics struct {
	LoadsTotal       *prometheus.CounterVec
	ObservationCount prometheus.Histogram
}

// NewMetrics registers the pipeline instruments on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		LoadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ricepulse",
			Name:      "loads_total",
			Help:      "Table loads by result; failures are labelled with the pipeline error type.",
		}, []string{"result", "error_type"}),
		ObservationCount: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ricepulse",
			Name:      "load_observations",
			Help:      "Observations produced per successful load.",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 8),
		}),
	}
}

// RecordLoadSuccess counts a successful load and its observation count.
func (m *Metrics) RecordLoadSuccess(observations int) {
	m.LoadsTotal.WithLabelValues("success", "").Inc()
	m.ObservationCount.Observe(float64(observations))
}

// RecordLoadFailure counts a failed load by error type.
func (m *Metrics) RecordLoadFailure(errorType string) {
	m.LoadsTotal.WithLabelValues("failure", errorType).Inc()
}
