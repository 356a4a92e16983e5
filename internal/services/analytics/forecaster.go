package analytics

import (
	"math"

	"TrendPulse/internal/domain/models"
	domsvc "TrendPulse/internal/domain/service"
	"TrendPulse/internal/services/features"
)

const (
	smoothingAlpha = 0.4
	dampingFactor  = 0.6
	growthFloor    = 0.0
	growthCeil     = 200.0

	// months of history at which the history-length term saturates
	fullHistorySteps  = 12
	stabilityVarScale = 100.0

	forecastConfidenceCap = 0.95
)

// GrowthForecaster extrapolates a trend's growth history into a bounded
// set of future checkpoints. The extrapolation strategy is pluggable; the
// default smooths the series and damps the current deviation toward it.
// Driver and barrier catalogs are static reference data from config.
type GrowthForecaster struct {
	extrapolate domsvc.Extrapolator
	drivers     []string
	barriers    []string
}

type ForecasterOption func(*GrowthForecaster)

// WithExtrapolator replaces the default extrapolation strategy.
func WithExtrapolator(e domsvc.Extrapolator) ForecasterOption {
	return func(f *GrowthForecaster) {
		if e != nil {
			f.extrapolate = e
		}
	}
}

func NewGrowthForecaster(drivers, barriers []string, opts ...ForecasterOption) *GrowthForecaster {
	f := &GrowthForecaster{extrapolate: SmoothedExtrapolation, drivers: drivers, barriers: barriers}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *GrowthForecaster) Forecast(trendName string, historical []models.GrowthPoint, horizonSteps int) (models.Forecast, error) {
	if len(historical) == 0 {
		return models.Forecast{}, models.NewValidationError("historical", "must not be empty")
	}
	if horizonSteps <= 0 {
		return models.Forecast{}, models.NewValidationError("horizon_steps", "must be positive")
	}

	rates := make([]float64, len(historical))
	for i, p := range historical {
		rates[i] = p.GrowthRate
	}
	current := rates[0] // most recent first
	mean := features.Mean(rates)

	direction := "decreasing"
	if current > mean {
		direction = "increasing"
	}
	stability := 1 / (1 + features.Variance(rates)/stabilityVarScale)

	preds := f.extrapolate(historical, horizonSteps)
	points := make([]models.ForecastPoint, 0, len(preds))
	for i, p := range preds {
		points = append(points, models.ForecastPoint{Step: i + 1, PredictedGrowth: p})
	}

	lengthTerm := math.Min(1, float64(len(historical))/fullHistorySteps)

	return models.Forecast{
		TrendName:    trendName,
		HorizonSteps: horizonSteps,
		CurrentState: models.TrajectorySnapshot{
			GrowthRate: current,
			Direction:  direction,
			Momentum:   current - mean,
			Stability:  stability,
		},
		PredictedEvolution: points,
		ConfidenceLevel:    features.Clamp((lengthTerm+stability)/2, 0, forecastConfidenceCap),
		KeyDrivers:         f.drivers,
		PotentialBarriers:  f.barriers,
	}, nil
}

// SmoothedExtrapolation is the default extrapolator: exponential smoothing
// (alpha 0.4, oldest to newest) yields a level; step k then predicts
// level + (current-level) * 0.6^k, clamped into [0, 200] percent.
func SmoothedExtrapolation(history []models.GrowthPoint, steps int) []float64 {
	if len(history) == 0 || steps <= 0 {
		return nil
	}
	// history arrives most recent first; smooth chronologically
	level := history[len(history)-1].GrowthRate
	for i := len(history) - 2; i >= 0; i-- {
		level = smoothingAlpha*history[i].GrowthRate + (1-smoothingAlpha)*level
	}
	current := history[0].GrowthRate

	out := make([]float64, 0, steps)
	damp := dampingFactor
	for k := 0; k < steps; k++ {
		out = append(out, features.Clamp(level+(current-level)*damp, growthFloor, growthCeil))
		damp *= dampingFactor
	}
	return out
}

var _ domsvc.Forecaster = (*GrowthForecaster)(nil)
