// Package metrics holds the Prometheus instruments for scorebook
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all instruments, registered on its own registry
type Metrics struct {
	reg *prometheus.Registry

	Questions      *prometheus.CounterVec
	Requests       *prometheus.CounterVec
	RequestSeconds *prometheus.HistogramVec
	DatasetRows    prometheus.Gauge
	DatasetLoad    prometheus.Histogram
	Renders        *prometheus.CounterVec
}

// New creates a registry with Go and process collectors plus the scorebook instruments
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		Questions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "scorebook_qa_questions_total",
			Help: "Questions answered, by matched intent (fallback when none matched)",
		}, []string{"intent"}),
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "scorebook_http_requests_total",
			Help: "HTTP requests by method and status code",
		}, []string{"method", "code"}),
		RequestSeconds: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "scorebook_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		DatasetRows: f.NewGauge(prometheus.GaugeOpts{
			Name: "scorebook_dataset_rows",
			Help: "Innings in the loaded dataset",
		}),
		DatasetLoad: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "scorebook_dataset_load_seconds",
			Help:    "Time spent loading the dataset from its source",
			Buckets: []float64{.005, .01, .05, .1, .5, 1, 5},
		}),
		Renders: f.NewCounterVec(prometheus.CounterOpts{
			Name: "scorebook_renders_total",
			Help: "Chart images and workbooks rendered, by artifact and format",
		}, []string{"artifact", "format"}),
	}
}

// ObserveQuestion counts one answered question. All Observe methods are no-ops on a nil *Metrics.
func (m *Metrics) ObserveQuestion(intent string) {
	if m == nil {
		return
	}
	if intent == "" {
		intent = "fallback"
	}
	m.Questions.WithLabelValues(intent).Inc()
}

// ObserveRequest records one served request
func (m *Metrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.RequestSeconds.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveLoad records a dataset load
func (m *Metrics) ObserveLoad(rows int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.DatasetRows.Set(float64(rows))
	m.DatasetLoad.Observe(elapsed.Seconds())
}

// ObserveRender counts one rendered artifact (a chart name or "workbook")
func (m *Metrics) ObserveRender(artifact, format string) {
	if m == nil {
		return
	}
	m.Renders.WithLabelValues(artifact, format).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{Registry: m.reg})
}
