// Package metrics exposes Prometheus instrumentation for vault operations.
// Every method is safe to call on a nil *Metrics, so components accept an
// optional instance without branching.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "phantomvault"

// Metrics holds all engine metrics.
type Metrics struct {
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	filesProcessed    *prometheus.CounterVec
	bytesProcessed    *prometheus.CounterVec
	integrityIssues   *prometheus.CounterVec
	lockWaitDuration  prometheus.Histogram
	lockTimeouts      prometheus.Counter
	tempUnlocked      *prometheus.GaugeVec

	gatherer prometheus.Gatherer
}

// NewMetrics creates a metrics instance registered on the default registry.
func NewMetrics() *Metrics {
	return newMetricsWithRegistry(prometheus.DefaultRegisterer, prometheus.DefaultGatherer)
}

// NewMetricsWithRegistry creates a metrics instance on reg, for tests and
// embedders that keep their own registry.
func NewMetricsWithRegistry(reg *prometheus.Registry) *Metrics {
	return newMetricsWithRegistry(reg, reg)
}

func newMetricsWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Total number of vault operations by operation and result",
			},
			[]string{"operation", "result"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Vault operation duration in seconds",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 300},
			},
			[]string{"operation"},
		),
		filesProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "files_processed_total",
				Help:      "Total number of files encrypted or decrypted",
			},
			[]string{"operation"},
		),
		bytesProcessed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bytes_processed_total",
				Help:      "Total plaintext bytes encrypted or decrypted",
			},
			[]string{"operation"},
		),
		integrityIssues: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "integrity_issues_total",
				Help:      "Total number of integrity issues found by validation",
			},
			[]string{"kind", "recoverable"},
		),
		lockWaitDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "profile_lock_wait_seconds",
				Help:      "Time spent waiting for the per-profile lock",
				Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 30},
			},
		),
		lockTimeouts: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "profile_lock_timeouts_total",
				Help:      "Total number of operations that gave up waiting for the profile lock",
			},
		),
		tempUnlocked: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "temporarily_unlocked_folders",
				Help:      "Number of folders currently unlocked with a temporary lifetime",
			},
			[]string{"profile"},
		),
		gatherer: gatherer,
	}
}

// RecordOperation records one finished vault operation.
func (m *Metrics) RecordOperation(operation string, success bool, d time.Duration) {
	if m == nil {
		return
	}
	result := "success"
	if !success {
		result = "failure"
	}
	m.operationsTotal.WithLabelValues(operation, result).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// RecordFiles records files and plaintext bytes handled by an operation.
func (m *Metrics) RecordFiles(operation string, files int, bytes int64) {
	if m == nil {
		return
	}
	if files > 0 {
		m.filesProcessed.WithLabelValues(operation).Add(float64(files))
	}
	if bytes > 0 {
		m.bytesProcessed.WithLabelValues(operation).Add(float64(bytes))
	}
}

// RecordIntegrityIssue counts one issue found by a validation pass.
func (m *Metrics) RecordIntegrityIssue(kind string, recoverable bool) {
	if m == nil {
		return
	}
	r := "false"
	if recoverable {
		r = "true"
	}
	m.integrityIssues.WithLabelValues(kind, r).Inc()
}

// RecordLockWait records the time spent acquiring a profile lock.
func (m *Metrics) RecordLockWait(d time.Duration, timedOut bool) {
	if m == nil {
		return
	}
	m.lockWaitDuration.Observe(d.Seconds())
	if timedOut {
		m.lockTimeouts.Inc()
	}
}

// SetTemporarilyUnlocked sets the number of TEMP_UNLOCKED folders of profile.
func (m *Metrics) SetTemporarilyUnlocked(profile string, n int) {
	if m == nil {
		return
	}
	m.tempUnlocked.WithLabelValues(profile).Set(float64(n))
}

// Handler returns the /metrics HTTP handler for the gatherer the metrics
// were registered on.
func (m *Metrics) Handler() http.Handler {
	if m == nil || m.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
