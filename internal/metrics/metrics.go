// Package metrics provides Prometheus metric collection and exposition.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// AIRecorder is the interface the analysis pipeline uses to record gateway
// call outcomes.
type AIRecorder interface {
	RecordAISuccess(kind string)
	RecordAIFailure(kind string, reason string)
	RecordAILatency(kind string, duration time.Duration)
}

// Recorder is the interface the HTTP layer uses to record request outcomes.
type Recorder interface {
	AIRecorder
	RecordHTTPStatus(method, path string, statusCode int)
	RecordHTTPDuration(method, path string, duration time.Duration)
}

// Collector implements Recorder backed by Prometheus metrics.
type Collector struct {
	aiSuccess    *prometheus.CounterVec
	aiFailure    *prometheus.CounterVec
	aiLatency    *prometheus.HistogramVec
	httpStatus   *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		aiSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "openclo_ai_success_total",
			Help: "Successful AI gateway calls by request kind.",
		}, []string{"kind"}),
		aiFailure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "openclo_ai_failure_total",
			Help: "Failed AI gateway calls by request kind and reason.",
		}, []string{"kind", "reason"}),
		aiLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "openclo_ai_latency_seconds",
			Help:    "AI gateway round-trip latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "openclo_http_requests_total",
			Help: "HTTP responses by method, path and status code.",
		}, []string{"method", "path", "status_code"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "openclo_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
	}

	reg.MustRegister(
		c.aiSuccess,
		c.aiFailure,
		c.aiLatency,
		c.httpStatus,
		c.httpDuration,
	)

	return c
}

// RecordAISuccess records a successful gateway call.
func (c *Collector) RecordAISuccess(kind string) {
	c.aiSuccess.WithLabelValues(kind).Inc()
}

// RecordAIFailure records a failed gateway call with a failure reason.
func (c *Collector) RecordAIFailure(kind string, reason string) {
	c.aiFailure.WithLabelValues(kind, reason).Inc()
}

// RecordAILatency records the round-trip latency of a gateway call.
func (c *Collector) RecordAILatency(kind string, duration time.Duration) {
	c.aiLatency.WithLabelValues(kind).Observe(duration.Seconds())
}

// RecordHTTPStatus records an HTTP response status.
func (c *Collector) RecordHTTPStatus(method, path string, statusCode int) {
	c.httpStatus.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
}

// RecordHTTPDuration records an HTTP request duration.
func (c *Collector) RecordHTTPDuration(method, path string, duration time.Duration) {
	c.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Handler returns the HTTP handler for Prometheus scrapes.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop is a Recorder that discards every observation. Useful in tests.
type Nop struct{}

// RecordAISuccess implements Recorder.
func (Nop) RecordAISuccess(string) {}

// RecordAIFailure implements Recorder.
func (Nop) RecordAIFailure(string, string) {}

// RecordAILatency implements Recorder.
func (Nop) RecordAILatency(string, time.Duration) {}

// RecordHTTPStatus implements Recorder.
func (Nop) RecordHTTPStatus(string, string, int) {}

// RecordHTTPDuration implements Recorder.
func (Nop) RecordHTTPDuration(string, string, time.Duration) {}
