// Package metrics exposes the service's Prometheus instruments.
// Each Metrics value owns its registry, so tests can create as many as they
// need without colliding on the global default registerer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kitchen"

// Metrics groups the counters and gauges of the service.
type Metrics struct {
	registry       *prometheus.Registry
	ordersCreated  prometheus.Counter
	statusChanges  *prometheus.CounterVec
	apiErrors      *prometheus.CounterVec
	ordersByStatus *prometheus.GaugeVec
}

// New creates and registers every instrument together with the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Orders committed to the store.",
		}),
		statusChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "order_status_changes_total",
			Help:      "Committed status changes by target status.",
		}, []string{"status"}),
		apiErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_errors_total",
			Help:      "Failed API requests by error kind.",
		}, []string{"kind"}),
		ordersByStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "orders_by_status",
			Help:      "Orders per status at the last backlog report.",
		}, []string{"status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ordersCreated,
		m.statusChanges,
		m.apiErrors,
		m.ordersByStatus,
	)

	return m
}

// OrderCreated counts one committed order.
func (m *Metrics) OrderCreated() {
	m.ordersCreated.Inc()
}

// StatusChanged counts one committed status change to status.
func (m *Metrics) StatusChanged(status string) {
	m.statusChanges.WithLabelValues(status).Inc()
}

// APIError counts one failed request. kind is validation, not_found or internal.
func (m *Metrics) APIError(kind string) {
	m.apiErrors.WithLabelValues(kind).Inc()
}

// SetBacklog records how many orders are currently in status.
func (m *Metrics) SetBacklog(status string, count int64) {
	m.ordersByStatus.WithLabelValues(status).Set(float64(count))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
