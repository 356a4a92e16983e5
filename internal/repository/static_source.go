package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"TrendPulse/internal/domain/models"
	domrepo "TrendPulse/internal/domain/repository"
	"TrendPulse/pkg/util"
)

const defaultRecordsPerQuery = 20

// CategoryCatalog maps a trend category to marker keywords. Queries are
// tagged with the keywords they contain; synthesized records cycle through
// the category names.
type CategoryCatalog map[string][]string

// StaticSignalSource implements SignalSource without external acquisition.
// With a fixture set it returns those records verbatim; otherwise it
// synthesizes a deterministic record set from the query, replacing the
// randomized generator the platform used before real sources existed.
type StaticSignalSource struct {
	name     string
	records  []models.SignalRecord
	catalog  CategoryCatalog
	perQuery int
	now      func() time.Time
}

// SourceOption overrides a StaticSignalSource default.
type SourceOption func(*StaticSignalSource)

// WithFixtureRecords pins the source to a fixed record set.
func WithFixtureRecords(records []models.SignalRecord) SourceOption {
	return func(s *StaticSignalSource) { s.records = records }
}

// WithRecordsPerQuery sets how many records a query synthesizes.
func WithRecordsPerQuery(n int) SourceOption {
	return func(s *StaticSignalSource) {
		if n > 0 {
			s.perQuery = n
		}
	}
}

// WithSourceClock replaces the clock anchoring synthesized record dates.
func WithSourceClock(now func() time.Time) SourceOption {
	return func(s *StaticSignalSource) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStaticSignalSource creates a static source named name. The catalog may
// be nil, in which case synthesized records all land in the default
// category and carry no keywords.
func NewStaticSignalSource(name string, catalog CategoryCatalog, opts ...SourceOption) *StaticSignalSource {
	s := &StaticSignalSource{
		name:     name,
		catalog:  catalog,
		perQuery: defaultRecordsPerQuery,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *StaticSignalSource) Gather(_ context.Context, query string, _ domrepo.Timeframe) ([]models.SignalRecord, error) {
	if s.records != nil {
		out := make([]models.SignalRecord, len(s.records))
		copy(out, s.records)
		return out, nil
	}
	return s.synthesize(query), nil
}

// synthesize builds perQuery records spaced a week apart, newest first,
// cycling categories and sentiment labels. Identical queries on a fixed
// clock produce identical records.
func (s *StaticSignalSource) synthesize(query string) []models.SignalRecord {
	categories := s.categoryNames()
	keywords := s.extractKeywords(query)
	sentiments := []models.Sentiment{models.SentimentPositive, models.SentimentNeutral, models.SentimentNegative}
	anchor := util.DateOnly(s.now())

	out := make([]models.SignalRecord, 0, s.perQuery)
	for i := 0; i < s.perQuery; i++ {
		out = append(out, models.SignalRecord{
			Title:       fmt.Sprintf("Trend Analysis: %s - Development %d", util.TitleWords(query), i+1),
			Category:    categories[i%len(categories)],
			Source:      fmt.Sprintf("Source %d", i+1),
			Date:        anchor.AddDate(0, 0, -7*i),
			Keywords:    keywords,
			Sentiment:   sentiments[i%len(sentiments)],
			ImpactScore: 0.30 + 0.07*float64(i%10),
		})
	}
	return out
}

func (s *StaticSignalSource) categoryNames() []string {
	if len(s.catalog) == 0 {
		return []string{"market"}
	}
	names := make([]string, 0, len(s.catalog))
	for name := range s.catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// extractKeywords returns the catalog keywords the query mentions.
func (s *StaticSignalSource) extractKeywords(query string) []string {
	q := strings.ToLower(query)
	var found []string
	for _, name := range s.categoryNames() {
		for _, kw := range s.catalog[name] {
			if strings.Contains(q, strings.ToLower(kw)) {
				found = append(found, kw)
			}
		}
	}
	return found
}

// LoadSignalRecords reads a JSON array of signal records from path.
func LoadSignalRecords(path string) ([]models.SignalRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}
	var records []models.SignalRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse records file: %w", err)
	}
	return records, nil
}

var _ domrepo.SignalSource = (*StaticSignalSource)(nil)
