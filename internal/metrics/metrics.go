// Package metrics provides the Prometheus collectors for exports and the
// HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alnah/go-scholardraft"
)

const namespace = "scholardraft"

// Export status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Compile-time interface check.
var _ scholardraft.ExportObserver = (*Metrics)(nil)

// Metrics holds the collectors registered on one registry.
type Metrics struct {
	registry *prometheus.Registry

	ExportsTotal        *prometheus.CounterVec
	ExportDuration      *prometheus.HistogramVec
	BibliographyRefs    prometheus.Histogram
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPResponseSize    *prometheus.HistogramVec
	PoolExportersInUse  prometheus.Gauge
}

// New registers all collectors, plus the Go and process collectors, on a
// fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,

		ExportsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "export",
				Name:      "total",
				Help:      "Total number of document exports",
			},
			[]string{"section", "format", "status"},
		),

		ExportDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "export",
				Name:      "duration_seconds",
				Help:      "Document export duration in seconds",
				Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 2.5, 5, 10, 30},
			},
			[]string{"section", "format"},
		),

		BibliographyRefs: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "bibliography",
				Name:      "references",
				Help:      "References per bibliography export",
				Buckets:   []float64{0, 5, 10, 25, 50, 100, 250},
			},
		),

		HTTPRequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),

		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		HTTPResponseSize: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "response_size_bytes",
				Help:      "HTTP response size in bytes",
				Buckets:   prometheus.ExponentialBuckets(100, 10, 6),
			},
			[]string{"method", "path"},
		),

		PoolExportersInUse: f.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "pool",
				Name:      "exporters_in_use",
				Help:      "Exporters currently acquired from the pool",
			},
		),
	}
}

// ObserveExport records one finished export.
func (m *Metrics) ObserveExport(section, format string, d time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	m.ExportsTotal.WithLabelValues(section, format, status).Inc()
	m.ExportDuration.WithLabelValues(section, format).Observe(d.Seconds())
}

// ObserveBibliography records the size of one bibliography export.
func (m *Metrics) ObserveBibliography(references int) {
	m.BibliographyRefs.Observe(float64(references))
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, path string, status int, d time.Duration, size int) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
	if size > 0 {
		m.HTTPResponseSize.WithLabelValues(method, path).Observe(float64(size))
	}
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
