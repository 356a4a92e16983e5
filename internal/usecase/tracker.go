package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"TrendPulse/internal/domain/models"
	domrepo "TrendPulse/internal/domain/repository"
	domsvc "TrendPulse/internal/domain/service"
	"TrendPulse/pkg/util"
)

const (
	defaultGatherTimeout = 10 * time.Second

	emergingQueryFormat   = "%s emerging technologies innovation"
	emergingCategory      = "technology"
	emergingClassifyLimit = 15
)

// TrackerDeps bundles the collaborators behind a TrendTracker. Source,
// Metrics, and the analysis components are required; Fallback, History,
// and Publisher are optional and switched off by leaving them nil.
type TrackerDeps struct {
	Source     domrepo.SignalSource
	Fallback   domrepo.SignalSource
	History    domrepo.HistoricalSeries
	Publisher  domrepo.AnalysisPublisher
	Classifier domsvc.TrendClassifier
	Correlator domsvc.CorrelationAnalyzer
	Impact     domsvc.ImpactAssessor
	Risk       domsvc.RiskAssessor
	Sentiment  domsvc.SentimentAggregator
	Forecaster domsvc.Forecaster
	Metrics    domrepo.Recorder
}

// TrackerOption overrides a TrendTracker default.
type TrackerOption func(*TrendTracker)

// WithGatherTimeout bounds a single signal source call.
func WithGatherTimeout(d time.Duration) TrackerOption {
	return func(t *TrendTracker) {
		if d > 0 {
			t.gatherTimeout = d
		}
	}
}

// WithClock replaces the wall clock stamped onto analyses.
func WithClock(now func() time.Time) TrackerOption {
	return func(t *TrendTracker) {
		if now != nil {
			t.now = now
		}
	}
}

// TrendTracker runs the full analysis pipeline: gather signal records,
// classify them into trends, correlate, assess impact and risk, and publish
// the finished analysis. All derived outputs are deterministic for a fixed
// record set and clock; only the collaborator calls can block.
type TrendTracker struct {
	deps          TrackerDeps
	gatherTimeout time.Duration
	now           func() time.Time
}

// NewTrendTracker creates a new TrendTracker instance.
func NewTrendTracker(deps TrackerDeps, opts ...TrackerOption) *TrendTracker {
	t := &TrendTracker{
		deps:          deps,
		gatherTimeout: defaultGatherTimeout,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Track produces a complete trend analysis for a topic. A signal source
// failure never fails the call: the tracker falls back to the configured
// fallback source (or an empty record set) and marks the analysis degraded.
func (t *TrendTracker) Track(ctx context.Context, topic string, tf domrepo.Timeframe, maxTrends int) (*models.TrendAnalysis, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, models.NewValidationError("topic", "must not be empty")
	}
	if maxTrends <= 0 {
		return nil, models.NewValidationError("max_trends", "must be positive")
	}
	tf = domrepo.NormalizeTimeframe(string(tf))

	start := time.Now()
	records, degraded := t.gather(ctx, topic, tf)

	trends, err := t.deps.Classifier.Classify(records, string(tf), maxTrends)
	if err != nil {
		return nil, fmt.Errorf("classify signals: %w", err)
	}

	analysis := &models.TrendAnalysis{
		Topic:             topic,
		AnalysisDate:      util.DateOnly(t.now()),
		Timeframe:         string(tf),
		TrendsIdentified:  len(trends),
		Trends:            trends,
		TrendCorrelations: t.deps.Correlator.Correlate(trends),
		MarketImpact:      t.deps.Impact.Assess(trends),
		RiskAssessment:    t.deps.Risk.AssessRisk(trends),
		Recommendations:   buildRecommendations(trends, topic),
		Degraded:          degraded,
	}

	t.publish(ctx, analysis)

	t.deps.Metrics.RecordAnalysisRun(topic, len(trends))
	if degraded {
		t.deps.Metrics.RecordDegradedRun(topic)
	}
	for _, tr := range trends {
		t.deps.Metrics.RecordTrendGrowth(tr.Name, tr.GrowthRate)
	}
	t.deps.Metrics.RecordLatency("track", time.Since(start).Seconds())

	return analysis, nil
}

// Emerging identifies early-stage technology trends for an industry. Results
// are ordered by impact level, then growth rate, both descending. The second
// return reports whether fallback records were used.
func (t *TrendTracker) Emerging(ctx context.Context, industry string, limit int) ([]models.Trend, bool, error) {
	if strings.TrimSpace(industry) == "" {
		return nil, false, models.NewValidationError("industry", "must not be empty")
	}
	if limit <= 0 {
		return nil, false, models.NewValidationError("limit", "must be positive")
	}

	query := fmt.Sprintf(emergingQueryFormat, industry)
	records, degraded := t.gather(ctx, query, domrepo.DefaultTimeframe())

	trends, err := t.deps.Classifier.Classify(records, string(domrepo.DefaultTimeframe()), emergingClassifyLimit)
	if err != nil {
		return nil, degraded, fmt.Errorf("classify signals: %w", err)
	}

	emerging := make([]models.Trend, 0, len(trends))
	for _, tr := range trends {
		if tr.Category == emergingCategory {
			emerging = append(emerging, tr)
		}
	}
	sort.SliceStable(emerging, func(i, j int) bool {
		ri, rj := impactRank(emerging[i].ImpactLevel), impactRank(emerging[j].ImpactLevel)
		if ri != rj {
			return ri > rj
		}
		return emerging[i].GrowthRate > emerging[j].GrowthRate
	})
	if len(emerging) > limit {
		emerging = emerging[:limit]
	}
	return emerging, degraded, nil
}

// Correlate maps each trend name to the names it correlates with.
func (t *TrendTracker) Correlate(trends []models.Trend) (map[string][]string, error) {
	if len(trends) == 0 {
		return nil, models.NewValidationError("trends", "must not be empty")
	}
	return t.deps.Correlator.Correlate(trends), nil
}

// CorrelationBetween scores the correlation of two named trends.
func (t *TrendTracker) CorrelationBetween(trends []models.Trend, nameA, nameB string) (float64, error) {
	return t.deps.Correlator.ScoreBetween(trends, nameA, nameB)
}

// Forecast projects a trend's growth trajectory. When the caller supplies no
// history the recorded series is fetched from the store; a trend the store
// has never seen yields a NotFoundError.
func (t *TrendTracker) Forecast(ctx context.Context, trendName string, historical []models.GrowthPoint, horizonSteps int) (*models.Forecast, error) {
	if len(historical) == 0 && t.deps.History != nil {
		fetched, err := t.deps.History.Fetch(ctx, trendName)
		if err != nil {
			return nil, fmt.Errorf("fetch growth history: %w", err)
		}
		if len(fetched) == 0 {
			return nil, models.NewNotFoundError("trend", trendName)
		}
		historical = fetched
	}
	fc, err := t.deps.Forecaster.Forecast(trendName, historical, horizonSteps)
	if err != nil {
		return nil, err
	}
	return &fc, nil
}

// Sentiment reduces labeled observations for a trend into a verdict. An
// empty observation set yields the neutral default, never an error.
func (t *TrendTracker) Sentiment(trendName string, observations []models.SentimentObservation) models.SentimentVerdict {
	return t.deps.Sentiment.Aggregate(trendName, observations)
}

// Close releases the publisher if one is attached.
func (t *TrendTracker) Close() {
	if t.deps.Publisher != nil {
		_ = t.deps.Publisher.Close()
	}
}

// gather fetches records from the primary source under the configured
// timeout. Any failure switches to the fallback source and flags the result
// degraded; the ingestion error itself is absorbed here.
func (t *TrendTracker) gather(ctx context.Context, query string, tf domrepo.Timeframe) ([]models.SignalRecord, bool) {
	gctx, cancel := context.WithTimeout(ctx, t.gatherTimeout)
	defer cancel()

	records, err := t.deps.Source.Gather(gctx, query, tf)
	if err == nil {
		return records, false
	}
	t.deps.Metrics.RecordError("gather")

	if t.deps.Fallback == nil {
		return nil, true
	}
	records, err = t.deps.Fallback.Gather(ctx, query, tf)
	if err != nil {
		t.deps.Metrics.RecordError("fallback")
		return nil, true
	}
	return records, true
}

// publish hands the analysis to downstream consumers. Best effort only.
func (t *TrendTracker) publish(ctx context.Context, analysis *models.TrendAnalysis) {
	if t.deps.Publisher == nil {
		return
	}
	if err := t.deps.Publisher.PublishAnalysis(ctx, analysis); err != nil {
		t.deps.Metrics.RecordError("publish")
	}
}

func impactRank(l models.ImpactLevel) int {
	switch l {
	case models.ImpactHigh:
		return 2
	case models.ImpactMedium:
		return 1
	default:
		return 0
	}
}
