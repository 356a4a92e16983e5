package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Recorder using Prometheus.
type Recorder struct {
	analysisRuns *prometheus.CounterVec
	degradedRuns *prometheus.CounterVec
	trendsPerRun *prometheus.HistogramVec
	trendGrowth  *prometheus.GaugeVec
	errorsTotal  *prometheus.CounterVec
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		analysisRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendpulse_analysis_runs_total",
				Help: "Total number of completed trend analysis runs",
			},
			[]string{"topic"},
		),
		degradedRuns: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendpulse_degraded_runs_total",
				Help: "Total number of analysis runs built from fallback records",
			},
			[]string{"topic"},
		),
		trendsPerRun: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trendpulse_trends_per_run",
				Help:    "Number of trends identified per analysis run",
				Buckets: []float64{0, 1, 2, 3, 5, 8, 13, 21, 34, 50},
			},
			[]string{"topic"},
		),
		trendGrowth: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "trendpulse_trend_growth_rate",
				Help: "Last computed growth rate for a trend",
			},
			[]string{"trend"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendpulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trendpulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordAnalysisRun records a completed analysis run and its trend count.
func (r *Recorder) RecordAnalysisRun(topic string, trends int) {
	r.analysisRuns.WithLabelValues(topic).Inc()
	r.trendsPerRun.WithLabelValues(topic).Observe(float64(trends))
}

// RecordDegradedRun records a run that fell back to static records.
func (r *Recorder) RecordDegradedRun(topic string) {
	r.degradedRuns.WithLabelValues(topic).Inc()
}

// RecordTrendGrowth records the last computed growth rate for a trend.
func (r *Recorder) RecordTrendGrowth(name string, rate float64) {
	r.trendGrowth.WithLabelValues(name).Set(rate)
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
