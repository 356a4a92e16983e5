package analytics_test

import (
	"testing"

	"TrendPulse/internal/domain/models"
	"TrendPulse/internal/services/analytics"

	"github.com/stretchr/testify/require"
)

func riskTrend(impact models.ImpactLevel, confidence, growth float64, adoption models.AdoptionLevel) models.Trend {
	return models.Trend{Name: "t", ImpactLevel: impact, ConfidenceScore: confidence, GrowthRate: growth, AdoptionLevel: adoption}
}

func TestAssessRiskBoundary(t *testing.T) {
	factors := []string{"Technology adoption barriers"}
	mitigations := []string{"Continuous market monitoring"}
	r := analytics.NewRiskAnalyzer(factors, mitigations)

	highImpactLowConf := riskTrend(models.ImpactHigh, 0.5, 10, models.AdoptionLateMajority)

	two := r.AssessRisk([]models.Trend{highImpactLowConf, highImpactLowConf})
	require.Equal(t, 2, two.HighRiskTrends)
	require.Equal(t, models.ImpactMedium, two.OverallRiskLevel)

	three := r.AssessRisk([]models.Trend{highImpactLowConf, highImpactLowConf, highImpactLowConf})
	require.Equal(t, 3, three.HighRiskTrends)
	require.Equal(t, models.ImpactHigh, three.OverallRiskLevel)

	require.Equal(t, factors, three.RiskFactors)
	require.Equal(t, mitigations, three.MitigationStrategies)
}

func TestAssessRiskConfidenceBoundary(t *testing.T) {
	r := analytics.NewRiskAnalyzer(nil, nil)

	// confidence exactly 0.7 is not high risk
	got := r.AssessRisk([]models.Trend{riskTrend(models.ImpactHigh, 0.7, 10, models.AdoptionLateMajority)})
	require.Equal(t, 0, got.HighRiskTrends)

	got = r.AssessRisk([]models.Trend{riskTrend(models.ImpactHigh, 0.69, 10, models.AdoptionLateMajority)})
	require.Equal(t, 1, got.HighRiskTrends)
}

func TestAssessRiskDisruptiveTrends(t *testing.T) {
	r := analytics.NewRiskAnalyzer(nil, nil)

	trends := []models.Trend{
		riskTrend(models.ImpactMedium, 0.9, 51, models.AdoptionInnovator),    // disruptive
		riskTrend(models.ImpactMedium, 0.9, 51, models.AdoptionEarlyAdopter), // disruptive
		riskTrend(models.ImpactMedium, 0.9, 50, models.AdoptionInnovator),    // growth not > 50
		riskTrend(models.ImpactMedium, 0.9, 80, models.AdoptionLaggard),      // wrong stage
	}

	got := r.AssessRisk(trends)
	require.Equal(t, 2, got.DisruptiveTrends)
	require.Equal(t, models.ImpactMedium, got.OverallRiskLevel)
}

func TestAssessRiskEmptyInput(t *testing.T) {
	r := analytics.NewRiskAnalyzer([]string{"f"}, []string{"m"})
	got := r.AssessRisk(nil)
	require.Equal(t, models.ImpactMedium, got.OverallRiskLevel)
	require.Zero(t, got.HighRiskTrends)
	require.Zero(t, got.DisruptiveTrends)
}
