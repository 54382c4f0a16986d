package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the validation module.
type Metrics struct {
	// Validation outcomes by kind and outcome (valid, invalid_format, ...)
	ValidationOutcome *prometheus.CounterVec

	// Parse latency by kind
	ValidationLatency *prometheus.HistogramVec

	// Numbers per batch request
	BatchSize prometheus.Histogram
}

// NewWithRegisterer registers the metrics on reg. Tests pass a fresh
// prometheus.NewRegistry() to avoid duplicate registration.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ValidationOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "swedishid_validations_total",
			Help: "Total identity number validations by kind and outcome",
		}, []string{"kind", "outcome"}),

		ValidationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "swedishid_validation_duration_seconds",
			Help:    "Duration of a single identity number validation",
			Buckets: []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001},
		}, []string{"kind"}),

		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "swedishid_batch_size",
			Help:    "Number of identity numbers per batch request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250},
		}),
	}
}

// IncrementOutcome records one validation outcome.
func (m *Metrics) IncrementOutcome(kind, outcome string) {
	if m != nil {
		m.ValidationOutcome.WithLabelValues(kind, outcome).Inc()
	}
}

// ObserveLatency records the duration of one validation.
func (m *Metrics) ObserveLatency(kind string, d time.Duration) {
	if m != nil {
		m.ValidationLatency.WithLabelValues(kind).Observe(d.Seconds())
	}
}

// ObserveBatchSize records how many numbers a batch carried.
func (m *Metrics) ObserveBatchSize(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}
