package models

import "time"

// MarketImpact summarizes a trend set's aggregate market effect.
type MarketImpact struct {
	OverallImpact           ImpactLevel `json:"overall_impact"`       // "medium" | "high"
	DisruptionPotential     ImpactLevel `json:"disruption_potential"` // "medium" | "high"
	InvestmentOpportunities int         `json:"investment_opportunities"`
	RiskFactors             int         `json:"risk_factors"`
}

// RiskAssessment summarizes a trend set's aggregate risk. The factor and
// mitigation catalogs are static reference data supplied via configuration.
type RiskAssessment struct {
	OverallRiskLevel     ImpactLevel `json:"overall_risk_level"` // "medium" | "high"
	HighRiskTrends       int         `json:"high_risk_trends"`
	DisruptiveTrends     int         `json:"disruptive_trends"`
	RiskFactors          []string    `json:"risk_factors"`
	MitigationStrategies []string    `json:"mitigation_strategies"`
}

// TrendAnalysis is the terminal output of one tracking run. Once returned
// it is owned exclusively by the caller; the core keeps no reference.
// Degraded marks analyses built from fallback records after the primary
// signal source failed or timed out.
type TrendAnalysis struct {
	Topic             string              `json:"topic"`
	AnalysisDate      time.Time           `json:"analysis_date"`
	Timeframe         string              `json:"timeframe"`
	TrendsIdentified  int                 `json:"trends_identified"`
	Trends            []Trend             `json:"trends"`
	TrendCorrelations map[string][]string `json:"trend_correlations"`
	MarketImpact      MarketImpact        `json:"market_impact"`
	RiskAssessment    RiskAssessment      `json:"risk_assessment"`
	Recommendations   []string            `json:"recommendations"`
	Degraded          bool                `json:"degraded"`
}
