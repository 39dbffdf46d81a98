package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := New()

	m.ObserveStage("merge", true)
	m.ObserveStage("merge", false)
	m.ObserveStage("merge", false)
	m.ObserveKeyword("kept_top")
	m.ObserveDocument(nil, 0.2)
	m.ObserveDocument(errors.New("boom"), 0.1)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Stages.WithLabelValues("merge", ResultApplied)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Stages.WithLabelValues("merge", ResultSkipped)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Keywords.WithLabelValues("kept_top")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Documents.WithLabelValues(StatusOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Documents.WithLabelValues(StatusFailed)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.DocumentDuration))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveStage("merge", true)
		m.ObserveKeyword("progressed")
		m.ObserveDocument(nil, 1)
	})
}

func TestIndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.ObserveKeyword("progressed")

	assert.Equal(t, 1.0, testutil.ToFloat64(a.Keywords.WithLabelValues("progressed")))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Keywords.WithLabelValues("progressed")))
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.ObserveDocument(nil, 0.5)

	path := filepath.Join(t.TempDir(), "reportkit.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `reportkit_documents_total{status="ok"} 1`)
}
