package analytics

import (
	"TrendPulse/internal/domain/models"
	domsvc "TrendPulse/internal/domain/service"
)

const (
	highRiskConfidenceCeil = 0.7
	disruptiveGrowthFloor  = 50.0
	// strictly more high-risk trends than this flips the overall level
	highRiskCountFloor = 2
)

// RiskAnalyzer aggregates a trend set into a risk summary. The factor and
// mitigation catalogs are static reference data injected from config, not
// computed.
type RiskAnalyzer struct {
	factors     []string
	mitigations []string
}

func NewRiskAnalyzer(factors, mitigations []string) *RiskAnalyzer {
	return &RiskAnalyzer{factors: factors, mitigations: mitigations}
}

func (r *RiskAnalyzer) AssessRisk(trends []models.Trend) models.RiskAssessment {
	var highRisk, disruptive int
	for _, t := range trends {
		if t.ImpactLevel == models.ImpactHigh && t.ConfidenceScore < highRiskConfidenceCeil {
			highRisk++
		}
		if t.GrowthRate > disruptiveGrowthFloor && isEarlyStage(t.AdoptionLevel) {
			disruptive++
		}
	}

	level := models.ImpactMedium
	if highRisk > highRiskCountFloor {
		level = models.ImpactHigh
	}
	return models.RiskAssessment{
		OverallRiskLevel:     level,
		HighRiskTrends:       highRisk,
		DisruptiveTrends:     disruptive,
		RiskFactors:          r.factors,
		MitigationStrategies: r.mitigations,
	}
}

var _ domsvc.RiskAssessor = (*RiskAnalyzer)(nil)
