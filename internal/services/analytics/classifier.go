package analytics

import (
	"fmt"
	"strings"
	"time"

	"TrendPulse/internal/domain/models"
	domsvc "TrendPulse/internal/domain/service"
	"TrendPulse/internal/services/features"
	"TrendPulse/pkg/util"
)

const (
	// DefaultCategory buckets records that carry no category tag.
	DefaultCategory = "market"

	growthScalePercent = 10.0
	recencyHalfLife    = 30 * 24 * time.Hour

	maxEvidenceTitles = 3
	maxGroupKeywords  = 5

	confidenceCap       = 0.95
	confidencePerRecord = 0.1
	confidenceImpactW   = 0.3
)

// Classifier groups signal records by category and derives one Trend per
// non-empty group, in first-appearance order of the input, up to the
// requested limit. The growth estimator is pluggable; everything else is
// fixed classification against the lifecycle breakpoints.
type Classifier struct {
	estimate domsvc.GrowthEstimator
	now      func() time.Time
}

type ClassifierOption func(*Classifier)

// WithGrowthEstimator replaces the default growth estimator.
func WithGrowthEstimator(e domsvc.GrowthEstimator) ClassifierOption {
	return func(c *Classifier) {
		if e != nil {
			c.estimate = e
		}
	}
}

// WithClock replaces the wall clock used when records carry no dates.
func WithClock(now func() time.Time) ClassifierOption {
	return func(c *Classifier) {
		if now != nil {
			c.now = now
		}
	}
}

func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{estimate: RecencyWeightedGrowth, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Classifier) Classify(records []models.SignalRecord, timeframe string, maxTrends int) ([]models.Trend, error) {
	if maxTrends <= 0 {
		return nil, models.NewValidationError("max_trends", "must be positive")
	}

	order := make([]string, 0, len(records))
	groups := make(map[string][]models.SignalRecord, len(records))
	for _, r := range records {
		cat := strings.ToLower(strings.TrimSpace(r.Category))
		if cat == "" {
			cat = DefaultCategory
		}
		if _, ok := groups[cat]; !ok {
			order = append(order, cat)
		}
		groups[cat] = append(groups[cat], r)
	}

	if len(order) > maxTrends {
		order = order[:maxTrends]
	}
	trends := make([]models.Trend, 0, len(order))
	for _, cat := range order {
		trends = append(trends, c.buildTrend(cat, groups[cat], timeframe))
	}
	return trends, nil
}

func (c *Classifier) buildTrend(category string, group []models.SignalRecord, timeframe string) models.Trend {
	growth := c.estimate(group)
	if growth < 0 {
		growth = 0
	}
	avg := averageImpact(group)
	count := len(group)

	evidence := make([]string, 0, maxEvidenceTitles)
	for _, r := range group {
		if len(evidence) == maxEvidenceTitles {
			break
		}
		if r.Title == "" {
			continue
		}
		evidence = append(evidence, r.Title)
	}

	sources := make([]string, 0, count)
	seen := make(map[string]struct{}, count)
	for _, r := range group {
		if r.Source == "" {
			continue
		}
		if _, ok := seen[r.Source]; ok {
			continue
		}
		seen[r.Source] = struct{}{}
		sources = append(sources, r.Source)
	}

	first, last := dateBounds(group, c.now)

	return models.Trend{
		Name:               fmt.Sprintf("%s Innovation Trend", util.TitleWords(category)),
		Category:           category,
		Description:        fmt.Sprintf("Emerging trend in %s with %d supporting signals", category, count),
		GrowthRate:         growth,
		AdoptionLevel:      AdoptionLevelFor(growth),
		ImpactLevel:        ImpactLevelFor(avg),
		Timeframe:          timeframe,
		KeyIndicators:      keyIndicators(category, group),
		SupportingEvidence: evidence,
		Sources:            sources,
		ConfidenceScore:    features.Clamp(float64(count)*confidencePerRecord+avg*confidenceImpactW, 0, confidenceCap),
		FirstDetected:      first,
		LastUpdated:        last,
	}
}

// RecencyWeightedGrowth is the default growth estimator: group size times
// the recency-weighted mean impact, scaled to a percentage. Impact weights
// decay with a 30-day half-life measured against the newest record in the
// group, so stale groups grow slower than fresh ones of the same size.
func RecencyWeightedGrowth(records []models.SignalRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var newest time.Time
	for _, r := range records {
		if r.Date.After(newest) {
			newest = r.Date
		}
	}
	var wsum, acc float64
	for _, r := range records {
		w := 1.0
		if !newest.IsZero() && !r.Date.IsZero() {
			w = features.DecayWeight(newest.Sub(r.Date), recencyHalfLife)
		}
		wsum += w
		acc += w * r.ImpactScore
	}
	if wsum == 0 {
		return 0
	}
	return float64(len(records)) * (acc / wsum) * growthScalePercent
}

// AdoptionLevelFor classifies a growth rate against the fixed lifecycle
// breakpoints 5/15/35/70. Total and monotonic over non-negative rates.
func AdoptionLevelFor(growthRate float64) models.AdoptionLevel {
	switch {
	case growthRate < 5:
		return models.AdoptionInnovator
	case growthRate < 15:
		return models.AdoptionEarlyAdopter
	case growthRate < 35:
		return models.AdoptionEarlyMajority
	case growthRate < 70:
		return models.AdoptionLateMajority
	default:
		return models.AdoptionLaggard
	}
}

// ImpactLevelFor classifies an average impact score: >0.7 high, >0.4 medium.
func ImpactLevelFor(avgImpact float64) models.ImpactLevel {
	switch {
	case avgImpact > 0.7:
		return models.ImpactHigh
	case avgImpact > 0.4:
		return models.ImpactMedium
	default:
		return models.ImpactLow
	}
}

func averageImpact(group []models.SignalRecord) float64 {
	if len(group) == 0 {
		return 0
	}
	sum := 0.0
	for _, r := range group {
		sum += r.ImpactScore
	}
	return sum / float64(len(group))
}

func keyIndicators(category string, group []models.SignalRecord) []string {
	indicators := []string{
		fmt.Sprintf("increasing %s adoption", category),
		fmt.Sprintf("growing %s investment", category),
		fmt.Sprintf("expanding %s applications", category),
	}
	lists := make([][]string, 0, len(group))
	for _, r := range group {
		if len(r.Keywords) > 0 {
			lists = append(lists, r.Keywords)
		}
	}
	return append(indicators, features.TopKeywords(lists, maxGroupKeywords)...)
}

func dateBounds(group []models.SignalRecord, now func() time.Time) (first, last time.Time) {
	for _, r := range group {
		if r.Date.IsZero() {
			continue
		}
		if first.IsZero() || r.Date.Before(first) {
			first = r.Date
		}
		if last.IsZero() || r.Date.After(last) {
			last = r.Date
		}
	}
	if first.IsZero() {
		today := util.DateOnly(now())
		return today, today
	}
	return first, last
}

var _ domsvc.TrendClassifier = (*Classifier)(nil)
