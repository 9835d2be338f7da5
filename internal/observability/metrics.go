// Package observability exposes Prometheus metrics for generator runs.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	rowsGeneratedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cohort_generator",
		Subsystem: "pipeline",
		Name:      "rows_generated_total",
		Help:      "Number of daily records synthesized.",
	})

	missingCellsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cohort_generator",
		Subsystem: "pipeline",
		Name:      "missing_cells_injected_total",
		Help:      "Number of cells blanked by missing-value injection, labeled by column.",
	}, []string{"column"})

	outliersCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "cohort_generator",
		Subsystem: "pipeline",
		Name:      "outliers_injected_total",
		Help:      "Number of rows whose steps and calories were scaled as outliers.",
	})

	stageDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "cohort_generator",
		Subsystem: "pipeline",
		Name:      "stage_duration_seconds",
		Help:      "Time spent in each pipeline stage.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	}, []string{"stage"})

	lastRunGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "cohort_generator",
		Subsystem: "pipeline",
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix timestamp of the most recent completed generation run.",
	})

	sinkRecordsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "cohort_generator",
		Subsystem: "sink",
		Name:      "records_written_total",
		Help:      "Number of records delivered to each output sink.",
	}, []string{"sink"})
)

func init() {
	prometheus.MustRegister(rowsGeneratedCounter, missingCellsCounter, outliersCounter, stageDuration, lastRunGauge, sinkRecordsCounter)
}

// RecordRowsGenerated adds n synthesized rows.
func RecordRowsGenerated(n int) {
	rowsGeneratedCounter.Add(float64(n))
}

// RecordMissingInjected adds n blanked cells for column.
func RecordMissingInjected(column string, n int) {
	missingCellsCounter.WithLabelValues(column).Add(float64(n))
}

// RecordOutliersInjected adds n outlier rows.
func RecordOutliersInjected(n int) {
	outliersCounter.Add(float64(n))
}

// ObserveStage records how long a pipeline stage took.
func ObserveStage(stage string, elapsed time.Duration) {
	stageDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// RecordRunCompleted updates the completion watermark.
func RecordRunCompleted(ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastRunGauge.Set(float64(ts.Unix()))
}

// RecordSinkWrite adds n records delivered to sink.
func RecordSinkWrite(sink string, n int) {
	sinkRecordsCounter.WithLabelValues(sink).Add(float64(n))
}
