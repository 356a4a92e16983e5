package repository

import (
	"context"

	"TrendPulse/internal/domain/models"
)

// SignalSource supplies an ordered sequence of signal records for a query
// and timeframe. Implementations own acquisition entirely (search, parsing,
// credibility filtering, rate limiting); failures wrap models.IngestionError.
type SignalSource interface {
	Gather(ctx context.Context, query string, tf Timeframe) ([]models.SignalRecord, error)
}

// AnalysisPublisher delivers completed analyses to downstream consumers
// (reporting, alerting). Publication is best effort from the core's point
// of view: a failed publish never fails the producing call.
type AnalysisPublisher interface {
	PublishAnalysis(ctx context.Context, analysis *models.TrendAnalysis) error
	Close() error
}

// Recorder collects operational metrics for the analysis pipeline.
type Recorder interface {
	RecordAnalysisRun(topic string, trends int)
	RecordDegradedRun(topic string)
	RecordTrendGrowth(name string, rate float64)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
}
