// Package observability holds the Prometheus metrics of the service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// report reconciliation job.
type Metrics struct {
	ReconcileRuns    *prometheus.CounterVec // labels: outcome={success,error}
	ReportsFetched   prometheus.Counter
	RecordsCreated   prometheus.Counter
	ReportFailures   prometheus.Counter
	ReconcileRunning prometheus.Gauge
	RunDuration      prometheus.Histogram
}

// NewMetrics creates and registers all reconciliation metrics with the
// default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.ReconcileRuns,
		m.ReportsFetched,
		m.RecordsCreated,
		m.ReportFailures,
		m.ReconcileRunning,
		m.RunDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReconcileRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "firewatch",
			Name:      "reconcile_runs_total",
			Help:      "Reconciliation runs by outcome.",
		}, []string{"outcome"}),
		ReportsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "firewatch",
			Name:      "reports_fetched_total",
			Help:      "Total incident reports fetched from the external API.",
		}),
		RecordsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "firewatch",
			Name:      "records_created_total",
			Help:      "Total fire-risk records created from external reports.",
		}),
		ReportFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "firewatch",
			Name:      "report_failures_total",
			Help:      "Per-report processing failures that were skipped.",
		}),
		ReconcileRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "firewatch",
			Name:      "reconcile_running",
			Help:      "1 while a reconciliation run is in flight.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "firewatch",
			Name:      "reconcile_run_duration_seconds",
			Help:      "Duration of a complete reconciliation run.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}
