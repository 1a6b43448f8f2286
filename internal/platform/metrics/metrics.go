package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. A nil *Metrics
// is valid and records nothing, which keeps tests free of registry setup.
type Metrics struct {
	FigiParses      *prometheus.CounterVec
	ServiceParses   *prometheus.CounterVec
	QuantityParses  *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		FigiParses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "symbology_figi_parses_total",
			Help: "Total FIGI parse attempts by outcome.",
		}, []string{"outcome"}),
		ServiceParses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "symbology_service_parses_total",
			Help: "Total BLPAPI service name parse attempts by outcome.",
		}, []string{"outcome"}),
		QuantityParses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "symbology_quantity_parses_total",
			Help: "Total quantity parse attempts by outcome.",
		}, []string{"outcome"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "symbology_http_request_duration_seconds",
			Help:    "HTTP request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
	}
}

// ObserveFigiParse records one FIGI parse attempt. Outcome is "valid" or the
// stable reason string of the validation failure.
func (m *Metrics) ObserveFigiParse(outcome string) {
	if m == nil {
		return
	}
	m.FigiParses.WithLabelValues(outcome).Inc()
}

// ObserveServiceParse records one service name parse attempt.
func (m *Metrics) ObserveServiceParse(outcome string) {
	if m == nil {
		return
	}
	m.ServiceParses.WithLabelValues(outcome).Inc()
}

// ObserveQuantityParse records one quantity parse attempt.
func (m *Metrics) ObserveQuantityParse(outcome string) {
	if m == nil {
		return
	}
	m.QuantityParses.WithLabelValues(outcome).Inc()
}

// ObserveRequest records the latency of one HTTP request.
func (m *Metrics) ObserveRequest(route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.RequestDuration.WithLabelValues(route, status).Observe(d.Seconds())
}
