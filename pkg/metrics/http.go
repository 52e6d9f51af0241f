package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics records request counts and latencies plus session gauges.
type HTTPMetrics struct {
	requests        *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	activeSessions  prometheus.Gauge
	ordersSubmitted prometheus.Counter
}

// NewHTTPMetrics registers the API metrics on the provided registerer.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	if reg == nil {
		return &HTTPMetrics{}
	}
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests served, by route and status.",
	}, []string{"route", "status"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds, by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
	activeSessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "active_sessions",
		Help: "Sessions currently held in memory.",
	})
	ordersSubmitted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_submitted_total",
		Help: "Orders accepted by the billing upstream.",
	})
	reg.MustRegister(requests, duration, activeSessions, ordersSubmitted)
	return &HTTPMetrics{
		requests:        requests,
		duration:        duration,
		activeSessions:  activeSessions,
		ordersSubmitted: ordersSubmitted,
	}
}

// ObserveRequest records one served request.
func (m *HTTPMetrics) ObserveRequest(route, status string, elapsed time.Duration) {
	if m == nil || m.requests == nil {
		return
	}
	m.requests.WithLabelValues(normalizeLabel(route), normalizeLabel(status)).Inc()
	m.duration.WithLabelValues(normalizeLabel(route)).Observe(elapsed.Seconds())
}

// SetActiveSessions reports the current session count.
func (m *HTTPMetrics) SetActiveSessions(n int) {
	if m == nil || m.activeSessions == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}

// IncOrdersSubmitted counts a successful billing submission.
func (m *HTTPMetrics) IncOrdersSubmitted() {
	if m == nil || m.ordersSubmitted == nil {
		return
	}
	m.ordersSubmitted.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
