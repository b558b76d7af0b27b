package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"arraybench/internal/benchmark"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics collects per-case latency while a run is in progress. It satisfies
// benchmark.Reporter and is exported once at the end in the Prometheus text
// format, for node_exporter's textfile collector or a later push.
type Metrics struct {
	Registry *prometheus.Registry

	CaseLatency    *prometheus.HistogramVec
	CaseMean       *prometheus.GaugeVec
	CaseStdDev     *prometheus.GaugeVec
	CasesCompleted prometheus.Counter
	Iterations     prometheus.Counter

	section string
}

// NewMetrics creates the metrics on a private registry.
func NewMetrics() *Metrics {
	m := &Metrics{Registry: prometheus.NewRegistry()}

	m.CaseLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "arraybench_case_latency_seconds",
			Help: "Wall-clock latency of single benchmark iterations",
			// 1µs up to roughly 16s.
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 13),
		},
		[]string{"section", "case"},
	)

	m.CaseMean = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "arraybench_case_mean_milliseconds",
			Help: "Mean latency of a benchmark case",
		},
		[]string{"section", "case"},
	)

	m.CaseStdDev = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "arraybench_case_stddev_milliseconds",
			Help: "Population standard deviation of a benchmark case's latency",
		},
		[]string{"section", "case"},
	)

	m.CasesCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "arraybench_cases_completed_total",
			Help: "Number of benchmark cases measured",
		},
	)

	m.Iterations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "arraybench_iterations_total",
			Help: "Number of timed operation invocations",
		},
	)

	m.Registry.MustRegister(
		m.CaseLatency,
		m.CaseMean,
		m.CaseStdDev,
		m.CasesCompleted,
		m.Iterations,
	)

	return m
}

// Section remembers the section the following cases belong to.
func (m *Metrics) Section(name string) {
	m.section = name
}

// Start is a no-op; only completed cases are recorded.
func (m *Metrics) Start(benchmark.Case) {}

// Finish records the sample and its reduction.
func (m *Metrics) Finish(c benchmark.Case, sample benchmark.Sample, stat benchmark.Statistic) {
	hist := m.CaseLatency.WithLabelValues(m.section, c.Label)
	for _, s := range sample {
		hist.Observe(s)
	}
	m.CaseMean.WithLabelValues(m.section, c.Label).Set(stat.MeanMs)
	m.CaseStdDev.WithLabelValues(m.section, c.Label).Set(stat.StdDevMs)
	m.CasesCompleted.Inc()
	m.Iterations.Add(float64(len(sample)))
}

// WriteTextfile writes every metric to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
