package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the pipeline counters on a private registry so library use
// never touches the global default registerer.
type Metrics struct {
	Registry *prometheus.Registry

	PagesRendered  *prometheus.CounterVec
	RenderFailures *prometheus.CounterVec
	UnsafeValues   prometheus.Counter
	PageBytes      prometheus.Histogram
}

// NewMetrics creates and registers the pipeline metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		PagesRendered: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "factpage_pages_rendered_total",
				Help: "Pages rendered, by renderer",
			},
			[]string{"renderer"},
		),
		RenderFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "factpage_render_failures_total",
				Help: "Pipeline failures, by stage (load, parse, transform, render, write)",
			},
			[]string{"stage"},
		),
		UnsafeValues: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "factpage_unsafe_values_total",
				Help: "Record values interpolated verbatim that contain HTML-significant characters",
			},
		),
		PageBytes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "factpage_render_bytes",
				Help:    "Size of rendered pages in bytes",
				Buckets: prometheus.ExponentialBuckets(1024, 2, 8),
			},
		),
	}
	m.Registry.MustRegister(m.PagesRendered, m.RenderFailures, m.UnsafeValues, m.PageBytes)
	return m
}

// Failed records a failure at stage. Safe on a nil receiver.
func (m *Metrics) Failed(stage string) {
	if m == nil {
		return
	}
	m.RenderFailures.WithLabelValues(stage).Inc()
}

// Rendered records a rendered page. Safe on a nil receiver.
func (m *Metrics) Rendered(renderer string, size int, unsafe int) {
	if m == nil {
		return
	}
	m.PagesRendered.WithLabelValues(renderer).Inc()
	m.PageBytes.Observe(float64(size))
	m.UnsafeValues.Add(float64(unsafe))
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.Registry)
}
