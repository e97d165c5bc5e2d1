package render

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures render metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "extstats").
	Namespace string

	// Subsystem is the metrics subsystem (default: "render").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures render metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "extstats",
		Subsystem: "render",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors for rendering.
//
// Metrics collected:
//   - extstats_render_total: renders by page and status
//   - extstats_render_duration_seconds: render duration by page
//   - extstats_render_bytes: rendered output size
//   - extstats_render_faults_total: malformed trees by fault code
type Metrics struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderBytes    prometheus.Histogram
	faultsTotal    *prometheus.CounterVec
}

// NewMetrics registers the render collectors.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "total",
			Help:        "Total number of page renders",
			ConstLabels: config.ConstLabels,
		}, []string{"page", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "duration_seconds",
			Help:        "Page render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"page"}),

		renderBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "bytes",
			Help:        "Rendered page size in bytes",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1024, 10240, 102400, 1048576, 10485760}, // 1KB to 10MB
		}),

		faultsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "faults_total",
			Help:        "Total number of malformed trees by fault code",
			ConstLabels: config.ConstLabels,
		}, []string{"code"}),
	}
}

func (m *Metrics) observe(page string, size int, d time.Duration) {
	if m == nil {
		return
	}
	m.rendersTotal.WithLabelValues(page, "success").Inc()
	m.renderDuration.WithLabelValues(page).Observe(d.Seconds())
	m.renderBytes.Observe(float64(size))
}

func (m *Metrics) observeFault(page, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rendersTotal.WithLabelValues(page, "error").Inc()
	m.renderDuration.WithLabelValues(page).Observe(d.Seconds())
	m.faultsTotal.WithLabelValues(code).Inc()
}
