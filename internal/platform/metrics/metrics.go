package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chartadvisor/chart-advisor/internal/domain"
)

const namespace = "chartadvisor"

// Outcome labels for recommendation results.
const (
	OutcomeSuccess           = "success"
	OutcomeInvalidRequest    = "invalid_request"
	OutcomeUpstreamError     = "upstream_error"
	OutcomeBlocked           = "blocked"
	OutcomeAborted           = "aborted"
	OutcomeContractViolation = "contract_violation"
)

// Metrics holds every collector the service records to.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpInFlight        prometheus.Gauge

	recommendationsTotal *prometheus.CounterVec
	chartTypesTotal      *prometheus.CounterVec
	firstChunkLatency    prometheus.Histogram
}

// New registers the collectors on a fresh registry. Go runtime and process
// collectors are included.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewWithRegistry(reg)
}

// NewWithRegistry registers the collectors on reg.
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total HTTP requests processed",
			},
			[]string{"method", "route", "status"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
			},
			[]string{"method", "route"},
		),

		httpInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_in_flight",
				Help:      "Current number of HTTP requests being served",
			},
		),

		recommendationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "recommend",
				Name:      "requests_total",
				Help:      "Recommendation requests by outcome",
			},
			[]string{"outcome"},
		),

		chartTypesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "recommend",
				Name:      "chart_types_total",
				Help:      "Chart types returned by the model",
			},
			[]string{"chart_type"},
		),

		firstChunkLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "recommend",
				Name:      "first_chunk_seconds",
				Help:      "Time from upstream call to the first streamed chunk",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
			},
		),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// RecordOutcome counts one finished recommendation request.
func (m *Metrics) RecordOutcome(outcome string) {
	m.recommendationsTotal.WithLabelValues(outcome).Inc()
}

// RecordChartType counts a chart type the model returned.
func (m *Metrics) RecordChartType(ct domain.ChartType) {
	m.chartTypesTotal.WithLabelValues(ct.String()).Inc()
}

// ObserveFirstChunk records how long the model took to start answering.
func (m *Metrics) ObserveFirstChunk(d time.Duration) {
	m.firstChunkLatency.Observe(d.Seconds())
}
