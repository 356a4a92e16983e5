package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"TrendPulse/internal/domain/models"
	domrepo "TrendPulse/internal/domain/repository"
	pkgch "TrendPulse/pkg/clickhouse"
	applogger "TrendPulse/pkg/logger"
)

// CHHistoryStore implements HistoricalSeries backed by ClickHouse. It reads
// the growth-rate series recorded by past analysis runs, most recent first.
type CHHistoryStore struct {
	db    *sql.DB
	table string
	limit int
	l     *applogger.Logger
}

func NewCHHistoryStore(ch *pkgch.Client, table string, limit int) *CHHistoryStore {
	if limit <= 0 {
		limit = 64
	}
	return &CHHistoryStore{db: ch.DB(), table: table, limit: limit}
}

// SetLogger injects a structured logger.
func (s *CHHistoryStore) SetLogger(l *applogger.Logger) { s.l = l }

func (s *CHHistoryStore) Fetch(ctx context.Context, trendName string) ([]models.GrowthPoint, error) {
	start := time.Now()
	const qtpl = `
        SELECT date, growth_rate
        FROM %s
        WHERE trend_name = ?
        ORDER BY date DESC
        LIMIT ?
    `
	q := fmt.Sprintf(qtpl, s.table)
	rows, err := s.db.QueryContext(ctx, q, trendName, s.limit)
	if err != nil {
		if s.l != nil {
			s.l.Error("clickhouse growth_history query error",
				applogger.String("table", s.table),
				applogger.String("trend", trendName),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("fetch growth history: %w", err)
	}
	defer rows.Close()

	out := make([]models.GrowthPoint, 0, s.limit)
	for rows.Next() {
		var p models.GrowthPoint
		if err := rows.Scan(&p.Date, &p.GrowthRate); err != nil {
			if s.l != nil {
				s.l.Error("clickhouse growth_history scan error",
					applogger.String("table", s.table),
					applogger.String("trend", trendName),
					applogger.Error(err),
				)
			}
			return nil, fmt.Errorf("scan growth point: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		if s.l != nil {
			s.l.Error("clickhouse growth_history rows error",
				applogger.String("table", s.table),
				applogger.String("trend", trendName),
				applogger.Error(err),
			)
		}
		return nil, fmt.Errorf("rows: %w", err)
	}
	if s.l != nil {
		s.l.Info("clickhouse growth_history ok",
			applogger.String("table", s.table),
			applogger.String("trend", trendName),
			applogger.Int("rows", len(out)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return out, nil
}

var _ domrepo.HistoricalSeries = (*CHHistoryStore)(nil)
