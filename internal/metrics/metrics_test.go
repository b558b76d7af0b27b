package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"arraybench/internal/benchmark"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	// Verify all metrics are initialized
	assert.NotNil(t, m.Registry)
	assert.NotNil(t, m.CaseLatency)
	assert.NotNil(t, m.CaseMean)
	assert.NotNil(t, m.CaseStdDev)
	assert.NotNil(t, m.CasesCompleted)
	assert.NotNil(t, m.Iterations)

	// Private registries let several instances coexist.
	assert.NotPanics(t, func() { NewMetrics() })
}

func TestReporter(t *testing.T) {
	m := NewMetrics()
	var _ benchmark.Reporter = m

	c := benchmark.Case{Label: "eye"}
	m.Section("Array creation")
	m.Start(c)
	m.Finish(c, benchmark.Sample{0.001, 0.002, 0.003}, benchmark.Statistic{MeanMs: 2, StdDevMs: 0.8})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CasesCompleted))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Iterations))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CaseMean.WithLabelValues("Array creation", "eye")))
	assert.Equal(t, 0.8, testutil.ToFloat64(m.CaseStdDev.WithLabelValues("Array creation", "eye")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.CaseLatency))

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() == "arraybench_case_latency_seconds" {
			found = true
			h := mf.GetMetric()[0].GetHistogram()
			assert.Equal(t, uint64(3), h.GetSampleCount())
			assert.InDelta(t, 0.006, h.GetSampleSum(), 1e-12)
		}
	}
	assert.True(t, found, "arraybench_case_latency_seconds metric not found")
}

func TestWriteTextfile(t *testing.T) {
	m := NewMetrics()
	c := benchmark.Case{Label: "ones"}
	m.Section("Array creation")
	m.Finish(c, benchmark.Sample{0.5}, benchmark.Statistic{MeanMs: 500})

	path := filepath.Join(t.TempDir(), "textfile", "arraybench.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "arraybench_cases_completed_total 1")
	assert.Contains(t, out, `arraybench_case_mean_milliseconds{case="ones",section="Array creation"} 500`)
	assert.Contains(t, out, "arraybench_case_latency_seconds_bucket")
}
