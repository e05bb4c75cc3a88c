// Package metrics exposes Prometheus instrumentation for the order
// lifecycle core.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OrderMetrics counts order lifecycle activity. A nil *OrderMetrics is a
// valid no-op instance, so callers never have to branch on whether
// instrumentation is wired.
type OrderMetrics struct {
	transitions  *prometheus.CounterVec
	staleCancels prometheus.Counter
}

// NewOrderMetrics registers the order lifecycle collectors with the default
// Prometheus registry. Call once per process.
func NewOrderMetrics() *OrderMetrics {
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "orders",
		Name:      "status_transitions_total",
		Help:      "Total number of committed order status transitions.",
	}, []string{"from", "to"})
	staleCancels := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "storefront",
		Subsystem: "orders",
		Name:      "stale_cancellations_total",
		Help:      "Total number of orders cancelled by the stale-order job.",
	})

	prometheus.MustRegister(transitions, staleCancels)
	return &OrderMetrics{transitions: transitions, staleCancels: staleCancels}
}

// IncTransition records one committed transition between the two states.
func (m *OrderMetrics) IncTransition(from, to string) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(from, to).Inc()
}

// AddStaleCancellations records orders cancelled by the cleanup job.
func (m *OrderMetrics) AddStaleCancellations(count int) {
	if m == nil || count <= 0 {
		return
	}
	m.staleCancels.Add(float64(count))
}

// Handler returns the HTTP handler serving the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
