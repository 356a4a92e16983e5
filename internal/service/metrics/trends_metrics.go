package metrics

import (
    "sync"

    "github.com/prometheus/client_golang/prometheus"
)

var (
    once sync.Once

    TrendsLatency = prometheus.NewHistogramVec(
        prometheus.HistogramOpts{
            Namespace: "trendpulse",
            Subsystem: "api",
            Name:      "latency_seconds",
            Help:      "Latency of trend analysis endpoints",
            Buckets:   prometheus.DefBuckets,
        },
        []string{"endpoint"},
    )

    TrendsErrors = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "trendpulse",
            Subsystem: "api",
            Name:      "errors_total",
            Help:      "Errors by trend analysis endpoint",
        },
        []string{"endpoint"},
    )

    TrendsCacheHits = prometheus.NewCounterVec(
        prometheus.CounterOpts{
            Namespace: "trendpulse",
            Subsystem: "api",
            Name:      "cache_hits_total",
            Help:      "Response cache hits by endpoint",
        },
        []string{"endpoint"},
    )
)

func Register() {
    once.Do(func() {
        prometheus.MustRegister(TrendsLatency, TrendsErrors, TrendsCacheHits)
    })
}
