package usecase

import (
	"fmt"

	"TrendPulse/internal/domain/models"
)

const highGrowthFloor = 30.0

// buildRecommendations derives strategic recommendations from a trend set.
// The two leading entries are data-driven and omitted when their counts are
// zero; the rest are fixed strategy lines.
func buildRecommendations(trends []models.Trend, topic string) []string {
	highGrowth := 0
	earlyStage := 0
	for _, t := range trends {
		if t.GrowthRate > highGrowthFloor {
			highGrowth++
		}
		if t.AdoptionLevel == models.AdoptionInnovator || t.AdoptionLevel == models.AdoptionEarlyAdopter {
			earlyStage++
		}
	}

	recs := make([]string, 0, 5)
	if highGrowth > 0 {
		recs = append(recs, fmt.Sprintf("Focus on %d high-growth trends for immediate opportunities", highGrowth))
	}
	if earlyStage > 0 {
		recs = append(recs, fmt.Sprintf("Monitor %d early-stage trends for future positioning", earlyStage))
	}
	recs = append(recs,
		fmt.Sprintf("Develop strategic partnerships in %s sector", topic),
		"Invest in trend monitoring capabilities",
		"Create trend-responsive product roadmap",
	)
	return recs
}
