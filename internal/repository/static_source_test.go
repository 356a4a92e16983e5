package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"TrendPulse/internal/domain/models"
	domrepo "TrendPulse/internal/domain/repository"
	"TrendPulse/internal/repository"
)

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC)
	}
}

func testCatalog() repository.CategoryCatalog {
	return repository.CategoryCatalog{
		"technology":    {"AI", "machine learning", "blockchain"},
		"environmental": {"sustainability", "climate", "renewable"},
	}
}

func TestSynthesizedRecordsAreDeterministic(t *testing.T) {
	src := repository.NewStaticSignalSource("static", testCatalog(), repository.WithSourceClock(fixedClock()))

	first, err := src.Gather(context.Background(), "AI in healthcare", domrepo.TF6m)
	require.NoError(t, err)
	second, err := src.Gather(context.Background(), "AI in healthcare", domrepo.TF6m)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Len(t, first, 20)
}

func TestSynthesizedRecordShape(t *testing.T) {
	src := repository.NewStaticSignalSource("static", testCatalog(),
		repository.WithSourceClock(fixedClock()),
		repository.WithRecordsPerQuery(4),
	)

	records, err := src.Gather(context.Background(), "AI adoption", domrepo.TF6m)
	require.NoError(t, err)
	require.Len(t, records, 4)

	require.Equal(t, "Trend Analysis: AI Adoption - Development 1", records[0].Title)
	require.Equal(t, "Source 1", records[0].Source)
	require.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), records[0].Date)
	require.Equal(t, time.Date(2026, 7, 25, 0, 0, 0, 0, time.UTC), records[1].Date)

	// categories cycle alphabetically
	require.Equal(t, "environmental", records[0].Category)
	require.Equal(t, "technology", records[1].Category)
	require.Equal(t, "environmental", records[2].Category)

	// query mentions AI only
	require.Equal(t, []string{"AI"}, records[0].Keywords)
}

func TestFixtureRecordsReturnedVerbatim(t *testing.T) {
	fixture := []models.SignalRecord{
		{Title: "fixed", Category: "technology", Source: "s", ImpactScore: 0.5},
	}
	src := repository.NewStaticSignalSource("fixture", nil, repository.WithFixtureRecords(fixture))

	records, err := src.Gather(context.Background(), "anything", domrepo.TF1m)
	require.NoError(t, err)
	require.Equal(t, fixture, records)

	// returned slice is a copy
	records[0].Title = "mutated"
	again, err := src.Gather(context.Background(), "anything", domrepo.TF1m)
	require.NoError(t, err)
	require.Equal(t, "fixed", again[0].Title)
}

func TestStaticHistoryStore(t *testing.T) {
	store := repository.NewStaticHistoryStore(map[string][]models.GrowthPoint{
		"AI Trend": {
			{Date: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC), GrowthRate: 42},
		},
	})

	pts, err := store.Fetch(context.Background(), "AI Trend")
	require.NoError(t, err)
	require.Len(t, pts, 1)
	require.InDelta(t, 42.0, pts[0].GrowthRate, 1e-9)

	missing, err := store.Fetch(context.Background(), "ghost")
	require.NoError(t, err)
	require.Empty(t, missing)
}
