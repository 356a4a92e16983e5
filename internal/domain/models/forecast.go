package models

// TrajectorySnapshot describes where a trend's growth stands today
// relative to its recorded history.
type TrajectorySnapshot struct {
	GrowthRate float64 `json:"growth_rate"`
	Direction  string  `json:"direction"` // "increasing" | "decreasing"
	Momentum   float64 `json:"momentum"`  // current minus historical mean
	Stability  float64 `json:"stability"` // [0,1], higher = lower variance
}

// ForecastPoint is one projected checkpoint. Steps are 1-based and carry
// no timestamps: a forecast is a pure function of name, history, and steps.
type ForecastPoint struct {
	Step            int     `json:"step"`
	PredictedGrowth float64 `json:"predicted_growth"`
}

// Forecast is the bounded extrapolation of one trend's growth trajectory.
type Forecast struct {
	TrendName          string             `json:"trend_name"`
	HorizonSteps       int                `json:"horizon_steps"`
	CurrentState       TrajectorySnapshot `json:"current_state"`
	PredictedEvolution []ForecastPoint    `json:"predicted_evolution"`
	ConfidenceLevel    float64            `json:"confidence_level"` // [0, 0.95]
	KeyDrivers         []string           `json:"key_drivers"`
	PotentialBarriers  []string           `json:"potential_barriers"`
}
