package analytics_test

import (
	"testing"
	"time"

	"TrendPulse/internal/domain/models"
	"TrendPulse/internal/services/analytics"

	"github.com/stretchr/testify/require"
)

func history(rates ...float64) []models.GrowthPoint {
	// most recent first, one point per month back
	out := make([]models.GrowthPoint, 0, len(rates))
	for i, r := range rates {
		out = append(out, models.GrowthPoint{
			Date:       time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0),
			GrowthRate: r,
		})
	}
	return out
}

func newForecaster(opts ...analytics.ForecasterOption) *analytics.GrowthForecaster {
	return analytics.NewGrowthForecaster(
		[]string{"Continued innovation investment"},
		[]string{"Regulatory uncertainty"},
		opts...,
	)
}

func TestForecastRejectsEmptyHistory(t *testing.T) {
	_, err := newForecaster().Forecast("AI Trend", nil, 6)
	require.Error(t, err)
	require.True(t, models.IsValidation(err))
}

func TestForecastRejectsNonPositiveHorizon(t *testing.T) {
	_, err := newForecaster().Forecast("AI Trend", history(10, 20), 0)
	require.True(t, models.IsValidation(err))
}

func TestForecastDirection(t *testing.T) {
	up, err := newForecaster().Forecast("AI Trend", history(30, 20, 10), 3)
	require.NoError(t, err)
	require.Equal(t, "increasing", up.CurrentState.Direction)
	require.InDelta(t, 10.0, up.CurrentState.Momentum, 1e-9)

	down, err := newForecaster().Forecast("AI Trend", history(10, 20, 30), 3)
	require.NoError(t, err)
	require.Equal(t, "decreasing", down.CurrentState.Direction)
	require.InDelta(t, -10.0, down.CurrentState.Momentum, 1e-9)

	// current equal to the mean is not increasing
	flat, err := newForecaster().Forecast("AI Trend", history(20, 20, 20), 3)
	require.NoError(t, err)
	require.Equal(t, "decreasing", flat.CurrentState.Direction)
}

func TestForecastShape(t *testing.T) {
	got, err := newForecaster().Forecast("AI Trend", history(30, 20, 10), 6)
	require.NoError(t, err)

	require.Equal(t, "AI Trend", got.TrendName)
	require.Equal(t, 6, got.HorizonSteps)
	require.Len(t, got.PredictedEvolution, 6)
	for i, p := range got.PredictedEvolution {
		require.Equal(t, i+1, p.Step)
		require.GreaterOrEqual(t, p.PredictedGrowth, 0.0)
		require.LessOrEqual(t, p.PredictedGrowth, 200.0)
	}
	require.Equal(t, []string{"Continued innovation investment"}, got.KeyDrivers)
	require.Equal(t, []string{"Regulatory uncertainty"}, got.PotentialBarriers)
	require.Equal(t, 30.0, got.CurrentState.GrowthRate)
}

func TestForecastPredictionsDecayTowardLevel(t *testing.T) {
	got, err := newForecaster().Forecast("AI Trend", history(60, 20, 20, 20), 4)
	require.NoError(t, err)

	// predictions step down from the elevated current rate toward the
	// smoothed level, monotonically for a single spike
	prev := got.CurrentState.GrowthRate
	for _, p := range got.PredictedEvolution {
		require.Less(t, p.PredictedGrowth, prev)
		prev = p.PredictedGrowth
	}
}

func TestForecastConfidence(t *testing.T) {
	// short, noisy history: low confidence
	short, err := newForecaster().Forecast("AI Trend", history(80, 5), 3)
	require.NoError(t, err)
	require.GreaterOrEqual(t, short.ConfidenceLevel, 0.0)
	require.LessOrEqual(t, short.ConfidenceLevel, 0.95)

	// long, stable history: confidence approaches the cap
	stable := history(20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20, 20)
	long, err := newForecaster().Forecast("AI Trend", stable, 3)
	require.NoError(t, err)
	require.Greater(t, long.ConfidenceLevel, short.ConfidenceLevel)
	require.InDelta(t, 0.95, long.ConfidenceLevel, 1e-3)
	require.InDelta(t, 1.0, long.CurrentState.Stability, 1e-9)
}

func TestForecastIsDeterministic(t *testing.T) {
	h := history(42, 31, 27, 18)
	first, err := newForecaster().Forecast("AI Trend", h, 6)
	require.NoError(t, err)
	second, err := newForecaster().Forecast("AI Trend", h, 6)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSmoothedExtrapolationBounds(t *testing.T) {
	// a single huge observation extrapolates to the clamp ceiling
	preds := analytics.SmoothedExtrapolation(history(500), 2)
	require.Equal(t, []float64{200, 200}, preds)

	require.Nil(t, analytics.SmoothedExtrapolation(nil, 3))
	require.Nil(t, analytics.SmoothedExtrapolation(history(10), 0))
}

func TestForecastUsesInjectedExtrapolator(t *testing.T) {
	f := newForecaster(analytics.WithExtrapolator(func(h []models.GrowthPoint, steps int) []float64 {
		out := make([]float64, steps)
		for i := range out {
			out[i] = 7
		}
		return out
	}))

	got, err := f.Forecast("AI Trend", history(10, 20), 2)
	require.NoError(t, err)
	require.Equal(t, []models.ForecastPoint{{Step: 1, PredictedGrowth: 7}, {Step: 2, PredictedGrowth: 7}}, got.PredictedEvolution)
}
