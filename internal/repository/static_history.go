package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"TrendPulse/internal/domain/models"
	domrepo "TrendPulse/internal/domain/repository"
)

// StaticHistoryStore implements HistoricalSeries from an in-memory fixture
// map. Wired when the ClickHouse backend is disabled.
type StaticHistoryStore struct {
	series map[string][]models.GrowthPoint
}

func NewStaticHistoryStore(series map[string][]models.GrowthPoint) *StaticHistoryStore {
	if series == nil {
		series = map[string][]models.GrowthPoint{}
	}
	return &StaticHistoryStore{series: series}
}

func (s *StaticHistoryStore) Fetch(_ context.Context, trendName string) ([]models.GrowthPoint, error) {
	pts := s.series[trendName]
	out := make([]models.GrowthPoint, len(pts))
	copy(out, pts)
	return out, nil
}

// LoadGrowthSeries reads a JSON object of trend name to growth points.
func LoadGrowthSeries(path string) (map[string][]models.GrowthPoint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read series file: %w", err)
	}
	var series map[string][]models.GrowthPoint
	if err := json.Unmarshal(data, &series); err != nil {
		return nil, fmt.Errorf("parse series file: %w", err)
	}
	return series, nil
}

var _ domrepo.HistoricalSeries = (*StaticHistoryStore)(nil)
