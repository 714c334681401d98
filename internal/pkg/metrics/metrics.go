package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kartavya"

// Application outcomes
const (
	OutcomeAccepted    = "accepted"
	OutcomeDuplicate   = "duplicate"
	OutcomeInvalid     = "invalid"
	OutcomeFailed      = "failed"
	OutcomeRateLimited = "rate_limited"
)

// Metrics holds every collector the service exports. All methods are safe on
// a nil receiver so components can run without metrics in tests.
type Metrics struct {
	registry *prometheus.Registry

	httpInFlight        prometheus.Gauge
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	sectionFetchFailures *prometheus.CounterVec
	applications         *prometheus.CounterVec
	ogImages             prometheus.Counter
	eventStatusUpdates   *prometheus.CounterVec
}

// New creates the collectors and registers them on a private registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_in_flight_requests",
			Help: "In-flight HTTP requests.",
		}),
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path", "status"}),
		sectionFetchFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "section_fetch_failures_total",
			Help:      "Section reads that failed and rendered as empty.",
		}, []string{"section"}),
		applications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "applications_total",
			Help:      "Application submissions by outcome.",
		}, []string{"outcome"}),
		ogImages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "og_images_total",
			Help:      "Preview images rendered.",
		}),
		eventStatusUpdates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "event_status_updates_total",
			Help:      "Events moved to a new status by the refresher.",
		}, []string{"status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpInFlight,
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.sectionFetchFailures,
		m.applications,
		m.ogImages,
		m.eventStatusUpdates,
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// RequestStarted marks one more request in flight.
func (m *Metrics) RequestStarted() {
	if m == nil {
		return
	}
	m.httpInFlight.Inc()
}

// RequestFinished records a completed request.
func (m *Metrics) RequestFinished(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.httpInFlight.Dec()
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

// SectionFetchFailed counts a failed section read.
func (m *Metrics) SectionFetchFailed(section string) {
	if m == nil {
		return
	}
	m.sectionFetchFailures.WithLabelValues(section).Inc()
}

// ApplicationSubmitted counts a submission outcome.
func (m *Metrics) ApplicationSubmitted(outcome string) {
	if m == nil {
		return
	}
	m.applications.WithLabelValues(outcome).Inc()
}

// OGImageRendered counts a rendered preview image.
func (m *Metrics) OGImageRendered() {
	if m == nil {
		return
	}
	m.ogImages.Inc()
}

// EventStatusesUpdated counts events moved to status.
func (m *Metrics) EventStatusesUpdated(status string, n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.eventStatusUpdates.WithLabelValues(status).Add(float64(n))
}
