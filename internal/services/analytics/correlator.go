package analytics

import (
	"TrendPulse/internal/domain/models"
	domsvc "TrendPulse/internal/domain/service"
	"TrendPulse/internal/services/features"
)

const (
	// CorrelationThreshold is the score above which a pair is recorded.
	CorrelationThreshold = 0.5

	sameCategoryBonus  = 0.5
	crossCategoryBonus = 0.1
	overlapWeight      = 0.4

	keywordMinLen = 2
)

// Correlator scores every unordered trend pair and keeps the edges whose
// similarity exceeds the threshold, symmetrically in both trends' lists.
type Correlator struct {
	score domsvc.CorrelationScorer
}

type CorrelatorOption func(*Correlator)

// WithCorrelationScorer replaces the default pair scorer.
func WithCorrelationScorer(s domsvc.CorrelationScorer) CorrelatorOption {
	return func(c *Correlator) {
		if s != nil {
			c.score = s
		}
	}
}

func NewCorrelator(opts ...CorrelatorOption) *Correlator {
	c := &Correlator{score: CategoryOverlapScore}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Correlate returns every trend's list of correlated trend names. A trend
// with no correlations still gets an entry with an empty list, so a
// single-trend input yields one empty entry, never an error.
func (c *Correlator) Correlate(trends []models.Trend) map[string][]string {
	out := make(map[string][]string, len(trends))
	for _, t := range trends {
		out[t.Name] = []string{}
	}
	for i := 0; i < len(trends); i++ {
		for j := i + 1; j < len(trends); j++ {
			if c.score(trends[i], trends[j]) > CorrelationThreshold {
				a, b := trends[i].Name, trends[j].Name
				out[a] = append(out[a], b)
				out[b] = append(out[b], a)
			}
		}
	}
	return out
}

// ScoreBetween returns the pair score for two named trends from the set.
func (c *Correlator) ScoreBetween(trends []models.Trend, nameA, nameB string) (float64, error) {
	a, ok := findTrend(trends, nameA)
	if !ok {
		return 0, models.NewNotFoundError("trend", nameA)
	}
	b, ok := findTrend(trends, nameB)
	if !ok {
		return 0, models.NewNotFoundError("trend", nameB)
	}
	return c.score(a, b), nil
}

func findTrend(trends []models.Trend, name string) (models.Trend, bool) {
	for _, t := range trends {
		if t.Name == name {
			return t, true
		}
	}
	return models.Trend{}, false
}

// CategoryOverlapScore is the default correlation scorer: a category bonus
// (0.5 same, 0.1 different) plus the Jaccard overlap of the trends' key
// indicator tokens scaled into [0, 0.4]. Symmetric by construction.
func CategoryOverlapScore(a, b models.Trend) float64 {
	bonus := crossCategoryBonus
	if a.Category == b.Category {
		bonus = sameCategoryBonus
	}
	ka := features.TokenSet(a.KeyIndicators, keywordMinLen)
	kb := features.TokenSet(b.KeyIndicators, keywordMinLen)
	return bonus + overlapWeight*features.Jaccard(ka, kb)
}

var _ domsvc.CorrelationAnalyzer = (*Correlator)(nil)
