package repository

import (
	"context"

	"TrendPulse/internal/domain/models"
)

// HistoricalSeries provides read-only access to a trend's recorded growth
// history for forecasting. Series come back most recent first; an empty
// series means the store has never seen the trend.
type HistoricalSeries interface {
	Fetch(ctx context.Context, trendName string) ([]models.GrowthPoint, error)
}
