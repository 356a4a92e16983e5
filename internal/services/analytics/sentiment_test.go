package analytics_test

import (
	"testing"

	"TrendPulse/internal/domain/models"
	"TrendPulse/internal/services/analytics"

	"github.com/stretchr/testify/require"
)

func observations(pos, neu, neg int) []models.SentimentObservation {
	out := make([]models.SentimentObservation, 0, pos+neu+neg)
	for i := 0; i < pos; i++ {
		out = append(out, models.SentimentObservation{Source: "s", Label: models.SentimentPositive, Score: 0.8})
	}
	for i := 0; i < neu; i++ {
		out = append(out, models.SentimentObservation{Source: "s", Label: models.SentimentNeutral, Score: 0.5})
	}
	for i := 0; i < neg; i++ {
		out = append(out, models.SentimentObservation{Source: "s", Label: models.SentimentNegative, Score: 0.2})
	}
	return out
}

func testDrivers() map[models.Sentiment][]string {
	return map[models.Sentiment][]string{
		models.SentimentPositive: {"Positive media coverage"},
		models.SentimentNeutral:  {"Mixed market signals"},
		models.SentimentNegative: {"Market uncertainties"},
	}
}

func TestAggregateEmptyObservations(t *testing.T) {
	s := analytics.NewSentimentReducer(testDrivers())
	got := s.Aggregate("AI Trend", nil)

	require.Equal(t, models.SentimentNeutral, got.OverallSentiment)
	require.Equal(t, 0.0, got.SentimentScore)
	require.Equal(t, "declining", got.TrendDirection)
	require.Zero(t, got.SourcesAnalyzed)
	require.Equal(t, []string{"Mixed market signals"}, got.SentimentDrivers)
	require.NotEmpty(t, got.Insights)
}

func TestAggregateVerdicts(t *testing.T) {
	s := analytics.NewSentimentReducer(testDrivers())

	tests := []struct {
		name      string
		obs       []models.SentimentObservation
		wantNet   float64
		wantLabel models.Sentiment
		wantDir   string
	}{
		{name: "strongly positive", obs: observations(4, 0, 1), wantNet: 0.6, wantLabel: models.SentimentPositive, wantDir: "improving"},
		{name: "strongly negative", obs: observations(1, 0, 4), wantNet: -0.6, wantLabel: models.SentimentNegative, wantDir: "declining"},
		{name: "net at positive boundary stays neutral", obs: observations(1, 4, 0), wantNet: 0.2, wantLabel: models.SentimentNeutral, wantDir: "improving"},
		{name: "net at negative boundary stays neutral", obs: observations(0, 4, 1), wantNet: -0.2, wantLabel: models.SentimentNeutral, wantDir: "declining"},
		{name: "balanced", obs: observations(2, 1, 2), wantNet: 0, wantLabel: models.SentimentNeutral, wantDir: "declining"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Aggregate("AI Trend", tt.obs)
			require.InDelta(t, tt.wantNet, got.SentimentScore, 1e-9)
			require.Equal(t, tt.wantLabel, got.OverallSentiment)
			require.Equal(t, tt.wantDir, got.TrendDirection)
			require.Equal(t, len(tt.obs), got.SourcesAnalyzed)
		})
	}
}

func TestAggregateDistributionAndInsights(t *testing.T) {
	s := analytics.NewSentimentReducer(testDrivers())
	got := s.Aggregate("AI Trend", observations(3, 1, 0))

	require.Equal(t, 3, got.Distribution[models.SentimentPositive])
	require.Equal(t, 1, got.Distribution[models.SentimentNeutral])
	require.Zero(t, got.Distribution[models.SentimentNegative])

	require.Contains(t, got.Insights, "Overall sentiment for AI Trend is positive")
	require.Contains(t, got.Insights, "Sentiment is improving across monitored sources")
	require.Contains(t, got.Insights, "Majority of sources report positive sentiment")
	require.Equal(t, []string{"Positive media coverage"}, got.SentimentDrivers)
}

func TestAggregateUnknownLabelCountsAsNeutral(t *testing.T) {
	s := analytics.NewSentimentReducer(testDrivers())
	obs := []models.SentimentObservation{
		{Source: "s", Label: "bullish", Score: 0.9},
		{Source: "s", Label: models.SentimentPositive, Score: 0.9},
	}

	got := s.Aggregate("AI Trend", obs)
	require.Equal(t, 1, got.Distribution[models.SentimentNeutral])
	require.InDelta(t, 0.5, got.SentimentScore, 1e-9)
}
