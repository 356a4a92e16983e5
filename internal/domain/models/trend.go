package models

import "time"

// AdoptionLevel is the lifecycle stage of a trend, assigned from fixed
// growth-rate breakpoints (diffusion-of-innovation vocabulary).
type AdoptionLevel string

const (
	AdoptionInnovator     AdoptionLevel = "innovator"
	AdoptionEarlyAdopter  AdoptionLevel = "early_adopter"
	AdoptionEarlyMajority AdoptionLevel = "early_majority"
	AdoptionLateMajority  AdoptionLevel = "late_majority"
	AdoptionLaggard       AdoptionLevel = "laggard"
)

// ImpactLevel is the coarse severity classification used for per-trend
// impact and for the aggregate impact/risk summaries.
type ImpactLevel string

const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// Trend is the derived entity: one classified aggregate over a group of
// signal records sharing a category. Immutable once constructed; a group
// either fully qualifies or produces no Trend at all.
type Trend struct {
	Name               string        `json:"name"`
	Category           string        `json:"category"`
	Description        string        `json:"description"`
	GrowthRate         float64       `json:"growth_rate"` // percent, >= 0
	AdoptionLevel      AdoptionLevel `json:"adoption_level"`
	ImpactLevel        ImpactLevel   `json:"impact_level"`
	Timeframe          string        `json:"timeframe"`
	KeyIndicators      []string      `json:"key_indicators"`
	SupportingEvidence []string      `json:"supporting_evidence"` // up to 3 titles, input order
	Sources            []string      `json:"sources"`             // deduplicated, input order
	ConfidenceScore    float64       `json:"confidence_score"`    // [0, 0.95]
	FirstDetected      time.Time     `json:"first_detected"`
	LastUpdated        time.Time     `json:"last_updated"`
}
