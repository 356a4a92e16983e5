package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"TrendPulse/internal/domain/models"
	domrepo "TrendPulse/internal/domain/repository"
	"TrendPulse/internal/handler/api"
	icache "TrendPulse/internal/service/cache"
	"TrendPulse/internal/services/analytics"
	"TrendPulse/internal/usecase"
	xlogger "TrendPulse/pkg/logger"
)

type countingSource struct {
	records []models.SignalRecord
	gathers int
}

func (s *countingSource) Gather(_ context.Context, _ string, _ domrepo.Timeframe) ([]models.SignalRecord, error) {
	s.gathers++
	return s.records, nil
}

type nopRecorder struct{}

func (nopRecorder) RecordAnalysisRun(string, int) {}

func (nopRecorder) RecordDegradedRun(string) {}

func (nopRecorder) RecordTrendGrowth(string, float64) {}

func (nopRecorder) RecordError(string) {}

func (nopRecorder) RecordLatency(string, float64) {}

func frozenClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 7, 15, 13, 45, 0, 0, time.UTC)
	}
}

func fixtureRecords() []models.SignalRecord {
	date := func(d int) time.Time { return time.Date(2026, 7, d, 0, 0, 0, 0, time.UTC) }
	return []models.SignalRecord{
		{Title: "AI chips accelerate", Category: "technology", Source: "src-a", Date: date(15), Keywords: []string{"ai", "chips"}, Sentiment: models.SentimentPositive, ImpactScore: 0.9},
		{Title: "Cloud platforms expand", Category: "technology", Source: "src-b", Date: date(15), Keywords: []string{"cloud"}, Sentiment: models.SentimentPositive, ImpactScore: 0.8},
		{Title: "Chip supply stabilizes", Category: "technology", Source: "src-a", Date: date(15), Keywords: []string{"chips"}, Sentiment: models.SentimentNeutral, ImpactScore: 0.7},
		{Title: "Solar adoption grows", Category: "environmental", Source: "src-c", Date: date(15), Keywords: []string{"solar"}, Sentiment: models.SentimentPositive, ImpactScore: 0.5},
	}
}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	return l
}

func newServer(t *testing.T, src domrepo.SignalSource) (*echo.Echo, *api.TrendsHandler) {
	t.Helper()
	deps := usecase.TrackerDeps{
		Source:     src,
		Classifier: analytics.NewClassifier(analytics.WithClock(frozenClock())),
		Correlator: analytics.NewCorrelator(),
		Impact:     analytics.NewMarketAssessor(),
		Risk:       analytics.NewRiskAnalyzer([]string{"Market uncertainty"}, []string{"Diversify trend portfolio"}),
		Sentiment:  analytics.NewSentimentReducer(nil),
		Forecaster: analytics.NewGrowthForecaster([]string{"Technology advancement"}, []string{"Market saturation"}),
		Metrics:    nopRecorder{},
	}
	tracker := usecase.NewTrendTracker(deps, usecase.WithClock(frozenClock()))
	h := api.NewTrendsHandler(testLogger(t), tracker)
	e := echo.New()
	h.RegisterRoutes(e)
	return e, h
}

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doRequest(t *testing.T, e *echo.Echo, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestHealthEndpoint(t *testing.T) {
	e, _ := newServer(t, &countingSource{})

	_, env := doRequest(t, e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, env.Status)
	require.JSONEq(t, `{"status":"ok"}`, string(env.Data))
}

func TestTrackEndpointReturnsAnalysis(t *testing.T) {
	e, _ := newServer(t, &countingSource{records: fixtureRecords()})

	_, env := doRequest(t, e, http.MethodGet, "/api/trends?topic=artificial+intelligence", "")
	require.Equal(t, http.StatusOK, env.Status)

	var analysis models.TrendAnalysis
	require.NoError(t, json.Unmarshal(env.Data, &analysis))
	require.Equal(t, "artificial intelligence", analysis.Topic)
	require.Equal(t, "6m", analysis.Timeframe)
	require.Equal(t, 2, analysis.TrendsIdentified)
	require.Len(t, analysis.Trends, 2)
	require.Equal(t, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC), analysis.AnalysisDate)
	require.False(t, analysis.Degraded)
}

func TestTrackEndpointRejectsMissingTopic(t *testing.T) {
	e, _ := newServer(t, &countingSource{})

	_, env := doRequest(t, e, http.MethodGet, "/api/trends", "")
	require.Equal(t, http.StatusBadRequest, env.Status)
}

func TestTrackEndpointRejectsBadTimeframe(t *testing.T) {
	e, _ := newServer(t, &countingSource{})

	_, env := doRequest(t, e, http.MethodGet, "/api/trends?topic=ai&timeframe=weekly", "")
	require.Equal(t, http.StatusBadRequest, env.Status)
}

func TestTrackEndpointServesFromCache(t *testing.T) {
	src := &countingSource{records: fixtureRecords()}
	e, h := newServer(t, src)
	h.SetCache(icache.NewTTLCache(), time.Minute)

	_, first := doRequest(t, e, http.MethodGet, "/api/trends?topic=ai", "")
	require.Equal(t, http.StatusOK, first.Status)

	_, second := doRequest(t, e, http.MethodGet, "/api/trends?topic=ai", "")
	require.Equal(t, http.StatusOK, second.Status)

	require.Equal(t, 1, src.gathers)
	require.JSONEq(t, string(first.Data), string(second.Data))
}

func TestTrackEndpointRateLimits(t *testing.T) {
	e, h := newServer(t, &countingSource{records: fixtureRecords()})
	h.SetRateLimit(1, 0)

	_, first := doRequest(t, e, http.MethodGet, "/api/trends?topic=ai", "")
	require.Equal(t, http.StatusOK, first.Status)

	_, second := doRequest(t, e, http.MethodGet, "/api/trends?topic=blockchain", "")
	require.Equal(t, http.StatusTooManyRequests, second.Status)
}

func TestEmergingEndpoint(t *testing.T) {
	src := &countingSource{records: fixtureRecords()}
	e, _ := newServer(t, src)

	_, env := doRequest(t, e, http.MethodGet, "/api/trends/emerging?industry=fintech&limit=5", "")
	require.Equal(t, http.StatusOK, env.Status)

	var res models.EmergingResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Equal(t, "fintech", res.Industry)
	require.False(t, res.Degraded)
	require.NotEmpty(t, res.Trends)
	for _, tr := range res.Trends {
		require.Equal(t, "technology", tr.Category)
	}
}

func TestExportEndpointWritesCSV(t *testing.T) {
	e, _ := newServer(t, &countingSource{records: fixtureRecords()})

	req := httptest.NewRequest(http.MethodGet, "/api/trends/export?topic=ai", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), "text/csv"))
	require.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "trends.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3) // header + 2 trends
	require.Equal(t, "name,category,growth_rate,adoption_level,impact_level,confidence_score,first_detected", lines[0])
}

func TestCorrelateEndpoint(t *testing.T) {
	e, _ := newServer(t, &countingSource{})

	body := `{"trends":[
		{"name":"A","category":"technology","key_indicators":["ai"]},
		{"name":"B","category":"technology","key_indicators":["ai","cloud"]}
	]}`
	_, env := doRequest(t, e, http.MethodPost, "/api/correlations", body)
	require.Equal(t, http.StatusOK, env.Status)

	var correlations map[string][]string
	require.NoError(t, json.Unmarshal(env.Data, &correlations))
	require.Equal(t, []string{"B"}, correlations["A"])
	require.Equal(t, []string{"A"}, correlations["B"])
}

func TestCorrelationScoreEndpoint(t *testing.T) {
	e, _ := newServer(t, &countingSource{})

	body := `{"trend_a":"A","trend_b":"B","trends":[
		{"name":"A","category":"technology","key_indicators":["ai"]},
		{"name":"B","category":"technology","key_indicators":["ai","cloud"]}
	]}`
	_, env := doRequest(t, e, http.MethodPost, "/api/correlations/score", body)
	require.Equal(t, http.StatusOK, env.Status)

	var res models.CorrelationScoreResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Equal(t, "A", res.TrendA)
	require.Equal(t, "B", res.TrendB)
	require.InDelta(t, 0.7, res.Score, 1e-9)
}

func TestCorrelationScoreEndpointUnknownTrend(t *testing.T) {
	e, _ := newServer(t, &countingSource{})

	body := `{"trend_a":"A","trend_b":"missing","trends":[
		{"name":"A","category":"technology","key_indicators":["ai"]},
		{"name":"B","category":"technology","key_indicators":["ai"]}
	]}`
	_, env := doRequest(t, e, http.MethodPost, "/api/correlations/score", body)
	require.Equal(t, http.StatusNotFound, env.Status)
}

func TestForecastEndpointFromBody(t *testing.T) {
	e, _ := newServer(t, &countingSource{})

	body := `{"trend_name":"ai adoption","historical":[
		{"date":"2026-07-01T00:00:00Z","growth_rate":40},
		{"date":"2026-06-01T00:00:00Z","growth_rate":30},
		{"date":"2026-05-01T00:00:00Z","growth_rate":20}
	]}`
	_, env := doRequest(t, e, http.MethodPost, "/api/forecast", body)
	require.Equal(t, http.StatusOK, env.Status)

	var fc models.Forecast
	require.NoError(t, json.Unmarshal(env.Data, &fc))
	require.Equal(t, "ai adoption", fc.TrendName)
	require.Equal(t, 6, fc.HorizonSteps) // default horizon
	require.Len(t, fc.PredictedEvolution, 6)
	require.Equal(t, "increasing", fc.CurrentState.Direction)
}

func TestForecastEndpointRejectsEmptyHistory(t *testing.T) {
	e, _ := newServer(t, &countingSource{})

	_, env := doRequest(t, e, http.MethodPost, "/api/forecast", `{"trend_name":"ai"}`)
	require.Equal(t, http.StatusBadRequest, env.Status)
}

func TestSentimentEndpoint(t *testing.T) {
	e, _ := newServer(t, &countingSource{})

	body := `{"trend_name":"ai","observations":[
		{"source":"s1","label":"positive","score":0.9},
		{"source":"s2","label":"positive","score":0.8},
		{"source":"s3","label":"negative","score":0.7}
	]}`
	_, env := doRequest(t, e, http.MethodPost, "/api/sentiment", body)
	require.Equal(t, http.StatusOK, env.Status)

	var verdict models.SentimentVerdict
	require.NoError(t, json.Unmarshal(env.Data, &verdict))
	require.Equal(t, "ai", verdict.TrendName)
	require.Equal(t, models.SentimentPositive, verdict.OverallSentiment)
	require.Equal(t, 3, verdict.SourcesAnalyzed)
}
