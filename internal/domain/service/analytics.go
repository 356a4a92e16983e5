package service

import (
	"TrendPulse/internal/domain/models"
)

// Analysis components are pure, synchronous computations over already
// fetched data, so none of them take a context. Anything that can block
// (gathering, history fetch, publication) lives behind the repository
// interfaces instead.

// GrowthEstimator derives a growth-rate percentage from one category group
// of signal records. Must be deterministic for identical input.
type GrowthEstimator func(records []models.SignalRecord) float64

// CorrelationScorer scores the similarity of two trends in [0,1]. Must be
// symmetric and deterministic.
type CorrelationScorer func(a, b models.Trend) float64

// Extrapolator projects future growth values from a historical series
// (most recent first). Returns exactly steps values; deterministic.
type Extrapolator func(history []models.GrowthPoint, steps int) []float64

// TrendClassifier groups signal records by category and derives one Trend
// per non-empty group, up to the requested limit.
type TrendClassifier interface {
	Classify(records []models.SignalRecord, timeframe string, maxTrends int) ([]models.Trend, error)
}

// CorrelationAnalyzer scores every unordered trend pair and retains edges
// above the correlation threshold.
type CorrelationAnalyzer interface {
	Correlate(trends []models.Trend) map[string][]string
	ScoreBetween(trends []models.Trend, nameA, nameB string) (float64, error)
}

// ImpactAssessor aggregates a trend set into a market impact summary.
type ImpactAssessor interface {
	Assess(trends []models.Trend) models.MarketImpact
}

// RiskAssessor aggregates a trend set into a risk summary.
type RiskAssessor interface {
	AssessRisk(trends []models.Trend) models.RiskAssessment
}

// SentimentAggregator reduces labeled observations for one trend into an
// overall sentiment verdict.
type SentimentAggregator interface {
	Aggregate(trendName string, observations []models.SentimentObservation) models.SentimentVerdict
}

// Forecaster extrapolates a trend's growth history into a bounded set of
// future checkpoints.
type Forecaster interface {
	Forecast(trendName string, historical []models.GrowthPoint, horizonSteps int) (models.Forecast, error)
}
