package analytics_test

import (
	"testing"
	"time"

	"TrendPulse/internal/domain/models"
	"TrendPulse/internal/services/analytics"

	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

func record(title, category, source string, impact float64) models.SignalRecord {
	return models.SignalRecord{
		Title:       title,
		Category:    category,
		Source:      source,
		Date:        testDay,
		Sentiment:   models.SentimentNeutral,
		ImpactScore: impact,
	}
}

func TestAdoptionLevelFor(t *testing.T) {
	tests := []struct {
		growth float64
		want   models.AdoptionLevel
	}{
		{0, models.AdoptionInnovator},
		{4.99, models.AdoptionInnovator},
		{5, models.AdoptionEarlyAdopter},
		{14.99, models.AdoptionEarlyAdopter},
		{15, models.AdoptionEarlyMajority},
		{34.99, models.AdoptionEarlyMajority},
		{35, models.AdoptionLateMajority},
		{69.99, models.AdoptionLateMajority},
		{70, models.AdoptionLaggard},
		{250, models.AdoptionLaggard},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, analytics.AdoptionLevelFor(tt.growth), "growth %v", tt.growth)
	}
}

func TestImpactLevelFor(t *testing.T) {
	require.Equal(t, models.ImpactLow, analytics.ImpactLevelFor(0))
	require.Equal(t, models.ImpactLow, analytics.ImpactLevelFor(0.4))
	require.Equal(t, models.ImpactMedium, analytics.ImpactLevelFor(0.41))
	require.Equal(t, models.ImpactMedium, analytics.ImpactLevelFor(0.7))
	require.Equal(t, models.ImpactHigh, analytics.ImpactLevelFor(0.71))
}

func TestClassifyRejectsNonPositiveLimit(t *testing.T) {
	c := analytics.NewClassifier()
	_, err := c.Classify([]models.SignalRecord{record("a", "technology", "s", 0.5)}, "6m", 0)
	require.Error(t, err)
	require.True(t, models.IsValidation(err))

	_, err = c.Classify(nil, "6m", -1)
	require.True(t, models.IsValidation(err))
}

func TestClassifyGroupsByCategoryInFirstAppearanceOrder(t *testing.T) {
	records := []models.SignalRecord{
		record("t1", "technology", "src-a", 1),
		record("t2", "technology", "src-b", 1),
		record("e1", "environmental", "src-c", 1),
		record("t3", "technology", "src-a", 1),
		record("e2", "environmental", "src-c", 1),
		record("t4", "technology", "src-d", 1),
	}

	c := analytics.NewClassifier()
	trends, err := c.Classify(records, "6m", 5)
	require.NoError(t, err)
	require.Len(t, trends, 2)
	require.Equal(t, "technology", trends[0].Category)
	require.Equal(t, "environmental", trends[1].Category)

	tech := trends[0]
	// four records with impact 1.0 on the same day: 4 * 1.0 * 10
	require.InDelta(t, 40.0, tech.GrowthRate, 1e-9)
	require.Equal(t, models.AdoptionLateMajority, tech.AdoptionLevel)
	require.Equal(t, models.ImpactHigh, tech.ImpactLevel)
	require.InDelta(t, 0.7, tech.ConfidenceScore, 1e-9)
	require.Equal(t, []string{"t1", "t2", "t3"}, tech.SupportingEvidence)
	require.Equal(t, []string{"src-a", "src-b", "src-d"}, tech.Sources)
	require.Equal(t, "Technology Innovation Trend", tech.Name)
	require.Equal(t, "6m", tech.Timeframe)
}

func TestClassifyHonorsMaxTrends(t *testing.T) {
	records := []models.SignalRecord{
		record("a", "technology", "s", 0.5),
		record("b", "environmental", "s", 0.5),
		record("c", "economic", "s", 0.5),
	}

	c := analytics.NewClassifier()
	trends, err := c.Classify(records, "6m", 2)
	require.NoError(t, err)
	require.Len(t, trends, 2)
	require.Equal(t, "technology", trends[0].Category)
	require.Equal(t, "environmental", trends[1].Category)
}

func TestClassifyDefaultsEmptyCategoryToMarket(t *testing.T) {
	c := analytics.NewClassifier()
	trends, err := c.Classify([]models.SignalRecord{record("a", "", "s", 0.5)}, "6m", 5)
	require.NoError(t, err)
	require.Len(t, trends, 1)
	require.Equal(t, "market", trends[0].Category)
	require.Equal(t, "Market Innovation Trend", trends[0].Name)
}

func TestClassifyEmptyInput(t *testing.T) {
	c := analytics.NewClassifier()
	trends, err := c.Classify(nil, "6m", 5)
	require.NoError(t, err)
	require.Empty(t, trends)
}

func TestClassifyConfidenceCap(t *testing.T) {
	records := make([]models.SignalRecord, 0, 20)
	for i := 0; i < 20; i++ {
		records = append(records, record("r", "technology", "s", 1))
	}

	c := analytics.NewClassifier()
	trends, err := c.Classify(records, "6m", 1)
	require.NoError(t, err)
	require.Len(t, trends, 1)
	require.Equal(t, 0.95, trends[0].ConfidenceScore)
}

func TestClassifyIsDeterministic(t *testing.T) {
	records := []models.SignalRecord{
		record("t1", "technology", "src-a", 0.8),
		record("e1", "environmental", "src-b", 0.3),
		record("t2", "technology", "src-c", 0.6),
	}

	c := analytics.NewClassifier()
	first, err := c.Classify(records, "6m", 10)
	require.NoError(t, err)
	second, err := c.Classify(records, "6m", 10)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestClassifyUsesInjectedEstimator(t *testing.T) {
	c := analytics.NewClassifier(analytics.WithGrowthEstimator(func(records []models.SignalRecord) float64 {
		return 12.5
	}))
	trends, err := c.Classify([]models.SignalRecord{record("a", "technology", "s", 0.9)}, "6m", 1)
	require.NoError(t, err)
	require.Equal(t, 12.5, trends[0].GrowthRate)
	require.Equal(t, models.AdoptionEarlyAdopter, trends[0].AdoptionLevel)
}

func TestClassifyMergesRecordKeywordsIntoIndicators(t *testing.T) {
	r1 := record("a", "technology", "s", 0.5)
	r1.Keywords = []string{"ai", "robotics", "ai"}
	r2 := record("b", "technology", "s", 0.5)
	r2.Keywords = []string{"ai"}

	c := analytics.NewClassifier()
	trends, err := c.Classify([]models.SignalRecord{r1, r2}, "6m", 1)
	require.NoError(t, err)

	ind := trends[0].KeyIndicators
	require.Contains(t, ind, "increasing technology adoption")
	require.Contains(t, ind, "growing technology investment")
	require.Contains(t, ind, "expanding technology applications")
	require.Contains(t, ind, "ai")
	require.Contains(t, ind, "robotics")
}

func TestRecencyWeightedGrowthFavorsFreshGroups(t *testing.T) {
	fresh := []models.SignalRecord{
		record("a", "technology", "s", 0.8),
		record("b", "technology", "s", 0.8),
	}
	stale := []models.SignalRecord{
		{Title: "a", Category: "technology", Date: testDay, ImpactScore: 0.8},
		{Title: "b", Category: "technology", Date: testDay.Add(-90 * 24 * time.Hour), ImpactScore: 0.2},
	}

	// same-day records weigh equally: 2 * 0.8 * 10
	require.InDelta(t, 16.0, analytics.RecencyWeightedGrowth(fresh), 1e-9)

	// the stale low-impact record is discounted, so the estimate stays
	// closer to the fresh record's impact than the plain mean would
	got := analytics.RecencyWeightedGrowth(stale)
	plainMean := 2 * ((0.8 + 0.2) / 2) * 10
	require.Greater(t, got, plainMean)
	require.Less(t, got, 16.0)

	require.Equal(t, 0.0, analytics.RecencyWeightedGrowth(nil))
}

func TestClassifyDateBounds(t *testing.T) {
	older := testDay.Add(-48 * time.Hour)
	r1 := record("a", "technology", "s", 0.5)
	r2 := record("b", "technology", "s", 0.5)
	r2.Date = older

	c := analytics.NewClassifier()
	trends, err := c.Classify([]models.SignalRecord{r1, r2}, "6m", 1)
	require.NoError(t, err)
	require.Equal(t, older, trends[0].FirstDetected)
	require.Equal(t, testDay, trends[0].LastUpdated)
}

func TestClassifyFallsBackToClockWhenRecordsUndated(t *testing.T) {
	frozen := time.Date(2026, 7, 1, 15, 30, 0, 0, time.UTC)
	c := analytics.NewClassifier(analytics.WithClock(func() time.Time { return frozen }))

	trends, err := c.Classify([]models.SignalRecord{{Title: "a", Category: "technology", ImpactScore: 0.5}}, "6m", 1)
	require.NoError(t, err)
	day := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, day, trends[0].FirstDetected)
	require.Equal(t, day, trends[0].LastUpdated)
}
