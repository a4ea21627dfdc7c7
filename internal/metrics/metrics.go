// Package metrics records scan statistics in Prometheus format.
//
// Metrics live in a private registry and are exported with
// WriteTextfile for the node exporter's textfile collector; there is no
// HTTP endpoint.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the counters for one scan.
type Metrics struct {
	registry *prometheus.Registry

	filesScanned prometheus.Counter
	parseErrors  *prometheus.CounterVec
	drmFiles     prometheus.Counter
	headerBytes  prometheus.Histogram
	formats      *prometheus.CounterVec
	scanDuration prometheus.Gauge
}

// Error kinds used as the "kind" label of the parse error counter.
const (
	KindFormat      = "format"
	KindUnsupported = "unsupported"
	KindIO          = "io"
)

// New creates and registers all metrics.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		filesScanned: factory.NewCounter(prometheus.CounterOpts{
			Name: "asfmeta_files_scanned_total",
			Help: "Total number of files whose header was parsed successfully",
		}),

		parseErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asfmeta_parse_errors_total",
				Help: "Total number of files that failed to parse",
			},
			[]string{"kind"},
		),

		drmFiles: factory.NewCounter(prometheus.CounterOpts{
			Name: "asfmeta_drm_files_total",
			Help: "Total number of files carrying an encryption object",
		}),

		headerBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "asfmeta_header_bytes",
			Help:    "Size of the ASF header object in bytes",
			Buckets: prometheus.ExponentialBuckets(256, 4, 8),
		}),

		formats: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "asfmeta_files_by_format_total",
				Help: "Parsed files by detected format",
			},
			[]string{"format"},
		),

		scanDuration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "asfmeta_scan_duration_seconds",
			Help: "Wall time of the last scan in seconds",
		}),
	}
}

// RecordFile counts a successfully parsed file.
func (m *Metrics) RecordFile(format string, headerSize uint64, drm bool) {
	m.filesScanned.Inc()
	m.formats.WithLabelValues(format).Inc()
	m.headerBytes.Observe(float64(headerSize))
	if drm {
		m.drmFiles.Inc()
	}
}

// RecordError counts a failed file under kind.
func (m *Metrics) RecordError(kind string) {
	m.parseErrors.WithLabelValues(kind).Inc()
}

// SetScanDuration records the wall time of the scan.
func (m *Metrics) SetScanDuration(d time.Duration) {
	m.scanDuration.Set(d.Seconds())
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
// The file is replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return errors.New("metrics: empty textfile path")
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
