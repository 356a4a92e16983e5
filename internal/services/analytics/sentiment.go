package analytics

import (
	"fmt"

	"TrendPulse/internal/domain/models"
	domsvc "TrendPulse/internal/domain/service"
)

const (
	positiveNetFloor = 0.2
	negativeNetCeil  = -0.2
	majorityShare    = 0.5
)

// SentimentReducer reduces labeled observations for one trend into an
// overall verdict. Driver catalogs are static reference data keyed by the
// resulting verdict, injected from config.
type SentimentReducer struct {
	drivers map[models.Sentiment][]string
}

func NewSentimentReducer(drivers map[models.Sentiment][]string) *SentimentReducer {
	return &SentimentReducer{drivers: drivers}
}

func (s *SentimentReducer) Aggregate(trendName string, observations []models.SentimentObservation) models.SentimentVerdict {
	dist := make(map[models.Sentiment]int, 3)
	for _, o := range observations {
		dist[normalizeLabel(o.Label)]++
	}
	total := len(observations)

	verdict := models.SentimentVerdict{
		TrendName:        trendName,
		OverallSentiment: models.SentimentNeutral,
		TrendDirection:   "declining",
		Distribution:     dist,
		SourcesAnalyzed:  total,
	}
	if total == 0 {
		// neutral default, not an error
		verdict.SentimentDrivers = s.drivers[models.SentimentNeutral]
		verdict.Insights = []string{fmt.Sprintf("No sentiment observations available for %s", trendName)}
		return verdict
	}

	net := float64(dist[models.SentimentPositive]-dist[models.SentimentNegative]) / float64(total)
	verdict.SentimentScore = net
	switch {
	case net > positiveNetFloor:
		verdict.OverallSentiment = models.SentimentPositive
	case net < negativeNetCeil:
		verdict.OverallSentiment = models.SentimentNegative
	}
	if net > 0 {
		verdict.TrendDirection = "improving"
	}
	verdict.SentimentDrivers = s.drivers[verdict.OverallSentiment]
	verdict.Insights = sentimentInsights(trendName, verdict, dist, total)
	return verdict
}

func normalizeLabel(l models.Sentiment) models.Sentiment {
	switch l {
	case models.SentimentPositive, models.SentimentNegative:
		return l
	default:
		return models.SentimentNeutral
	}
}

func sentimentInsights(trendName string, v models.SentimentVerdict, dist map[models.Sentiment]int, total int) []string {
	out := []string{fmt.Sprintf("Overall sentiment for %s is %s", trendName, v.OverallSentiment)}
	if v.TrendDirection == "improving" {
		out = append(out, "Sentiment is improving across monitored sources")
	} else {
		out = append(out, "Sentiment is declining across monitored sources")
	}
	for _, label := range []models.Sentiment{models.SentimentPositive, models.SentimentNegative, models.SentimentNeutral} {
		if float64(dist[label]) > majorityShare*float64(total) {
			out = append(out, fmt.Sprintf("Majority of sources report %s sentiment", label))
			break
		}
	}
	return out
}

var _ domsvc.SentimentAggregator = (*SentimentReducer)(nil)
