package analytics

import (
	"TrendPulse/internal/domain/models"
	domsvc "TrendPulse/internal/domain/service"
)

const (
	disruptionHighCount   = 3
	investmentGrowthFloor = 20.0
)

// MarketAssessor aggregates a trend set into a market impact summary.
// Empty input yields zero counts and the neutral medium classification.
type MarketAssessor struct{}

func NewMarketAssessor() *MarketAssessor { return &MarketAssessor{} }

func (MarketAssessor) Assess(trends []models.Trend) models.MarketImpact {
	var high, medium, invest, risky int
	for _, t := range trends {
		switch t.ImpactLevel {
		case models.ImpactHigh:
			high++
		case models.ImpactMedium:
			medium++
		}
		if t.GrowthRate > investmentGrowthFloor {
			invest++
		}
		if t.ImpactLevel == models.ImpactHigh && isEarlyStage(t.AdoptionLevel) {
			risky++
		}
	}

	overall := models.ImpactMedium
	if high > medium {
		overall = models.ImpactHigh
	}
	disruption := models.ImpactMedium
	if high >= disruptionHighCount {
		disruption = models.ImpactHigh
	}
	return models.MarketImpact{
		OverallImpact:           overall,
		DisruptionPotential:     disruption,
		InvestmentOpportunities: invest,
		RiskFactors:             risky,
	}
}

func isEarlyStage(level models.AdoptionLevel) bool {
	return level == models.AdoptionInnovator || level == models.AdoptionEarlyAdopter
}

var _ domsvc.ImpactAssessor = (*MarketAssessor)(nil)
