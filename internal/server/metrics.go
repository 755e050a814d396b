package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for the HTTP API.
type Metrics struct {
	CounterRequests   *prometheus.CounterVec
	CounterEstimates  *prometheus.CounterVec
	HistRequestMillis prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics creates a Metrics backed by its own registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ironmax",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of handled HTTP requests",
		}, []string{"method", "path", "status"}),
		CounterEstimates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ironmax",
			Subsystem: "api",
			Name:      "estimates_total",
			Help:      "Total number of 1RM estimations, by formula",
		}, []string{"formula"}),
		HistRequestMillis: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ironmax",
			Subsystem: "api",
			Name:      "request_duration_ms",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250},
		}),
	}
}

// Registry exposes the backing registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
