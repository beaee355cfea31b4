package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector registers and updates the Prometheus metrics exposed in watch
// mode.
type Collector struct {
	runsTotal         *prometheus.CounterVec
	runDuration       prometheus.Histogram
	policiesExtracted *prometheus.GaugeVec
	reportRows        *prometheus.GaugeVec
	lastRunTimestamp  prometheus.Gauge
}

// NewCollector creates a Collector and registers its metrics with the given
// registry.
func NewCollector(registry *prometheus.Registry) *Collector {
	c := &Collector{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "roledep",
				Name:      "report_runs_total",
				Help:      "Total report generation runs by group and status.",
			},
			[]string{"group", "status"},
		),
		runDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "roledep",
				Name:      "run_duration_seconds",
				Help:      "Duration of full report generation passes.",
				Buckets:   prometheus.DefBuckets,
			},
		),
		policiesExtracted: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "roledep",
				Name:      "policies_extracted",
				Help:      "Policies extracted from the export in the last run, by group.",
			},
			[]string{"group"},
		),
		reportRows: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "roledep",
				Name:      "report_rows",
				Help:      "Data rows written in the last run, by group.",
			},
			[]string{"group"},
		),
		lastRunTimestamp: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "roledep",
				Name:      "last_run_timestamp_seconds",
				Help:      "Unix timestamp of the last completed generation pass.",
			},
		),
	}

	registry.MustRegister(
		c.runsTotal,
		c.runDuration,
		c.policiesExtracted,
		c.reportRows,
		c.lastRunTimestamp,
	)
	return c
}

// RecordGroup records the outcome of one group's report generation.
func (c *Collector) RecordGroup(group, status string, policies, rows int) {
	c.runsTotal.WithLabelValues(group, status).Inc()
	c.policiesExtracted.WithLabelValues(group).Set(float64(policies))
	c.reportRows.WithLabelValues(group).Set(float64(rows))
}

// RecordPass records the completion of a full generation pass.
func (c *Collector) RecordPass(duration time.Duration) {
	c.runDuration.Observe(duration.Seconds())
	c.lastRunTimestamp.SetToCurrentTime()
}
