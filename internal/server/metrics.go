package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus collectors exposed on /metrics.
// A dedicated registry is used instead of the global default so that tests
// can construct multiple instances without duplicate registration panics.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	activeRequests prometheus.Gauge
	requestsTotal  prometheus.Counter

	activeOperations  prometheus.Gauge
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewMetrics creates a Metrics instance with all collectors registered.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		activeRequests: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bigcalc_active_requests",
			Help: "Number of HTTP requests currently being served.",
		}),
		requestsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bigcalc_requests_total",
			Help: "Total number of HTTP requests served.",
		}),
		activeOperations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "bigcalc_active_operations",
			Help: "Number of arithmetic operations currently executing.",
		}),
		operationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bigcalc_operations_total",
			Help: "Total number of arithmetic operations by operation and outcome.",
		}, []string{"op", "status"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name: "bigcalc_operation_duration_seconds",
			Help: "Wall-clock duration of arithmetic operations.",
			// Operations range from microseconds (small adds) to minutes
			// (primality on large operands).
			Buckets: prometheus.ExponentialBuckets(0.0001, 10, 8),
		}, []string{"op"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		m.activeRequests,
		m.requestsTotal,
		m.activeOperations,
		m.operationsTotal,
		m.operationDuration,
	)

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveRequests increases the in-flight HTTP request gauge.
func (m *Metrics) IncrementActiveRequests() {
	m.activeRequests.Inc()
	m.requestsTotal.Inc()
}

// DecrementActiveRequests decreases the in-flight HTTP request gauge.
func (m *Metrics) DecrementActiveRequests() {
	m.activeRequests.Dec()
}

// IncrementActiveOperations increases the in-flight operation gauge.
func (m *Metrics) IncrementActiveOperations() {
	m.activeOperations.Inc()
}

// DecrementActiveOperations decreases the in-flight operation gauge.
func (m *Metrics) DecrementActiveOperations() {
	m.activeOperations.Dec()
}

// ObserveOperation records a completed operation with its outcome and
// duration.
func (m *Metrics) ObserveOperation(op, status string, d time.Duration) {
	m.operationsTotal.WithLabelValues(op, status).Inc()
	m.operationDuration.WithLabelValues(op).Observe(d.Seconds())
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
