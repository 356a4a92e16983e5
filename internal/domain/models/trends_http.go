package models

// Requests for trend HTTP endpoints. Defined in domain for consistency and reuse.

type TrackRequest struct {
	Topic     string `query:"topic" json:"topic" validate:"required"`
	Timeframe string `query:"timeframe" json:"timeframe" default:"6m" validate:"oneof=1m 3m 6m 12m"`
	MaxTrends int    `query:"max_trends" json:"max_trends" default:"10" validate:"gte=1,lte=50"`
}

type EmergingRequest struct {
	Industry string `query:"industry" json:"industry" validate:"required"`
	Limit    int    `query:"limit" json:"limit" default:"10" validate:"gte=1,lte=25"`
}

type CorrelateRequest struct {
	Trends []Trend `json:"trends" validate:"required,min=1"`
}

type CorrelationScoreRequest struct {
	Trends []Trend `json:"trends" validate:"required,min=2"`
	TrendA string  `json:"trend_a" validate:"required"`
	TrendB string  `json:"trend_b" validate:"required"`
}

type ForecastRequest struct {
	TrendName    string        `json:"trend_name" validate:"required"`
	Historical   []GrowthPoint `json:"historical"`
	HorizonSteps int           `json:"horizon_steps" default:"6" validate:"gte=1,lte=24"`
}

type SentimentRequest struct {
	TrendName    string                 `json:"trend_name" validate:"required"`
	Observations []SentimentObservation `json:"observations"`
}

type EmergingResponse struct {
	Industry string  `json:"industry"`
	Trends   []Trend `json:"trends"`
	Degraded bool    `json:"degraded"`
}

type CorrelationScoreResponse struct {
	TrendA string  `json:"trend_a"`
	TrendB string  `json:"trend_b"`
	Score  float64 `json:"score"`
}
