// Package metrics exposes Prometheus counters for report processing.
//
// Counters live on a private registry so several runners can coexist in one
// process (and in tests). Batch runs are short lived; WriteTextfile dumps
// the registry in the node exporter textfile format instead of serving it.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "reportkit"

// Document statuses.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Stage results.
const (
	ResultApplied = "applied"
	ResultSkipped = "skipped"
)

// Metrics holds the report processing collectors.
type Metrics struct {
	Documents        *prometheus.CounterVec
	Keywords         *prometheus.CounterVec
	Stages           *prometheus.CounterVec
	DocumentDuration prometheus.Histogram

	reg *prometheus.Registry
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		Documents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_total",
			Help:      "Documents processed, by status",
		}, []string{"status"}),

		Keywords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "keywords_total",
			Help:      "Keyword rows classified, by outcome",
		}, []string{"outcome"}),

		Stages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stages_total",
			Help:      "Pipeline stage runs, by stage and result",
		}, []string{"stage", "result"}),

		DocumentDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "document_duration_seconds",
			Help:      "Time to open, transform and save one document",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),

		reg: prometheus.NewRegistry(),
	}
	m.reg.MustRegister(m.Documents, m.Keywords, m.Stages, m.DocumentDuration)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// ObserveStage counts one stage run.
func (m *Metrics) ObserveStage(stage string, applied bool) {
	if m == nil {
		return
	}
	result := ResultSkipped
	if applied {
		result = ResultApplied
	}
	m.Stages.WithLabelValues(stage, result).Inc()
}

// ObserveKeyword counts one classified keyword.
func (m *Metrics) ObserveKeyword(outcome string) {
	if m == nil {
		return
	}
	m.Keywords.WithLabelValues(outcome).Inc()
}

// ObserveDocument counts one processed document and its duration.
func (m *Metrics) ObserveDocument(err error, seconds float64) {
	if m == nil {
		return
	}
	status := StatusOK
	if err != nil {
		status = StatusFailed
	}
	m.Documents.WithLabelValues(status).Inc()
	m.DocumentDuration.Observe(seconds)
}

// WriteTextfile writes the current values to path in the text exposition
// format, replacing the file atomically.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
