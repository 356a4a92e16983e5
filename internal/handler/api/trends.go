package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"TrendPulse/internal/domain/models"
	domrepo "TrendPulse/internal/domain/repository"
	icache "TrendPulse/internal/service/cache"
	"TrendPulse/internal/service/metrics"
	"TrendPulse/internal/service/ratelimit"
	"TrendPulse/internal/usecase"
	xhttp "TrendPulse/pkg/http"
	xlogger "TrendPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

const defaultCacheTTL = 5 * time.Minute

// TrendsHandler exposes the trend analysis pipeline over Echo. Gathering
// endpoints are rate limited per client and their responses cached; the
// pure computation endpoints are neither.
type TrendsHandler struct {
	logger   *xlogger.Logger
	tracker  *usecase.TrendTracker
	cache    icache.BytesCache
	cacheTTL time.Duration
	rl       *ratelimit.Limiter
	rlCap    float64
	rlRefill float64
}

func NewTrendsHandler(logger *xlogger.Logger, tracker *usecase.TrendTracker) *TrendsHandler {
	metrics.Register()
	return &TrendsHandler{
		logger:   logger,
		tracker:  tracker,
		cacheTTL: defaultCacheTTL,
		rl:       ratelimit.New(),
		rlCap:    5,
		rlRefill: 2,
	}
}

// SetCache enables response caching for the gathering endpoints.
func (h *TrendsHandler) SetCache(c icache.BytesCache, ttl time.Duration) {
	h.cache = c
	if ttl > 0 {
		h.cacheTTL = ttl
	}
}

// SetRateLimit overrides the per-client token bucket parameters.
func (h *TrendsHandler) SetRateLimit(capacity float64, refillPerSec float64) {
	h.rlCap = capacity
	h.rlRefill = refillPerSec
}

func (h *TrendsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	g := e.Group("/api")
	g.GET("/trends", h.Track)
	g.GET("/trends/emerging", h.Emerging)
	g.GET("/trends/export", h.Export)
	g.POST("/correlations", h.Correlate)
	g.POST("/correlations/score", h.CorrelationScore)
	g.POST("/forecast", h.Forecast)
	g.POST("/sentiment", h.Sentiment)
}

func (h *TrendsHandler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, map[string]string{"status": "ok"})
}

func (h *TrendsHandler) Track(c echo.Context) error {
	start := time.Now()
	endpoint := "trends"
	defer func() { metrics.TrendsLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.TrackRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.allow(c, endpoint) {
		return rateLimitedResponse(c)
	}

	ctx := c.Request().Context()
	key := icache.Key(endpoint, req.Topic, req.Timeframe, strconv.Itoa(req.MaxTrends))
	if b, ok := h.cached(ctx, endpoint, key); ok {
		return xhttp.SuccessResponse(c, json.RawMessage(b))
	}

	analysis, err := h.tracker.Track(ctx, req.Topic, domrepo.Timeframe(req.Timeframe), req.MaxTrends)
	if err != nil {
		metrics.TrendsErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("track usecase error", xlogger.Error(err), xlogger.String("topic", req.Topic))
		return DomainErrorResponse(c, err)
	}

	h.store(ctx, endpoint, key, analysis)
	return xhttp.SuccessResponse(c, analysis)
}

func (h *TrendsHandler) Emerging(c echo.Context) error {
	start := time.Now()
	endpoint := "emerging"
	defer func() { metrics.TrendsLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.EmergingRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.allow(c, endpoint) {
		return rateLimitedResponse(c)
	}

	ctx := c.Request().Context()
	key := icache.Key(endpoint, req.Industry, strconv.Itoa(req.Limit))
	if b, ok := h.cached(ctx, endpoint, key); ok {
		return xhttp.SuccessResponse(c, json.RawMessage(b))
	}

	trends, degraded, err := h.tracker.Emerging(ctx, req.Industry, req.Limit)
	if err != nil {
		metrics.TrendsErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("emerging usecase error", xlogger.Error(err), xlogger.String("industry", req.Industry))
		return DomainErrorResponse(c, err)
	}

	res := models.EmergingResponse{Industry: req.Industry, Trends: trends, Degraded: degraded}
	h.store(ctx, endpoint, key, res)
	return xhttp.SuccessResponse(c, res)
}

func (h *TrendsHandler) Export(c echo.Context) error {
	start := time.Now()
	endpoint := "export"
	defer func() { metrics.TrendsLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.TrackRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	if !h.allow(c, endpoint) {
		return rateLimitedResponse(c)
	}

	analysis, err := h.tracker.Track(c.Request().Context(), req.Topic, domrepo.Timeframe(req.Timeframe), req.MaxTrends)
	if err != nil {
		metrics.TrendsErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("export usecase error", xlogger.Error(err), xlogger.String("topic", req.Topic))
		return DomainErrorResponse(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="trends.csv"`)
	c.Response().WriteHeader(http.StatusOK)
	if err := h.tracker.ExportCSV(c.Response(), analysis.Trends); err != nil {
		h.logger.Error("export write error", xlogger.Error(err))
		return err
	}
	return nil
}

func (h *TrendsHandler) Correlate(c echo.Context) error {
	start := time.Now()
	endpoint := "correlations"
	defer func() { metrics.TrendsLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.CorrelateRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	correlations, err := h.tracker.Correlate(req.Trends)
	if err != nil {
		metrics.TrendsErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("correlate usecase error", xlogger.Error(err))
		return DomainErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, correlations)
}

func (h *TrendsHandler) CorrelationScore(c echo.Context) error {
	start := time.Now()
	endpoint := "correlation_score"
	defer func() { metrics.TrendsLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.CorrelationScoreRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	score, err := h.tracker.CorrelationBetween(req.Trends, req.TrendA, req.TrendB)
	if err != nil {
		metrics.TrendsErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("correlation score usecase error", xlogger.Error(err),
			xlogger.String("trend_a", req.TrendA), xlogger.String("trend_b", req.TrendB))
		return DomainErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, models.CorrelationScoreResponse{
		TrendA: req.TrendA,
		TrendB: req.TrendB,
		Score:  score,
	})
}

func (h *TrendsHandler) Forecast(c echo.Context) error {
	start := time.Now()
	endpoint := "forecast"
	defer func() { metrics.TrendsLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.ForecastRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	fc, err := h.tracker.Forecast(c.Request().Context(), req.TrendName, req.Historical, req.HorizonSteps)
	if err != nil {
		metrics.TrendsErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("forecast usecase error", xlogger.Error(err), xlogger.String("trend", req.TrendName))
		return DomainErrorResponse(c, err)
	}
	return xhttp.SuccessResponse(c, fc)
}

func (h *TrendsHandler) Sentiment(c echo.Context) error {
	start := time.Now()
	endpoint := "sentiment"
	defer func() { metrics.TrendsLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds()) }()

	req := &models.SentimentRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	verdict := h.tracker.Sentiment(req.TrendName, req.Observations)
	return xhttp.SuccessResponse(c, verdict)
}

// allow consumes one rate limit token for the calling client.
func (h *TrendsHandler) allow(c echo.Context, endpoint string) bool {
	if h.rl == nil {
		return true
	}
	if h.rl.Allow(c.RealIP()+":"+endpoint, h.rlCap, h.rlRefill) {
		return true
	}
	h.logger.Warn("rate limited", xlogger.String("endpoint", endpoint), xlogger.String("remote", c.RealIP()))
	return false
}

// cached returns the cached payload for key, if present.
func (h *TrendsHandler) cached(ctx context.Context, endpoint, key string) ([]byte, bool) {
	if h.cache == nil {
		return nil, false
	}
	b, ok, err := h.cache.GetBytes(ctx, key)
	if err != nil {
		h.logger.Warn("cache get error", xlogger.Error(err), xlogger.String("key", key))
		return nil, false
	}
	if !ok {
		return nil, false
	}
	metrics.TrendsCacheHits.WithLabelValues(endpoint).Inc()
	return b, true
}

// store caches the marshaled payload under key. Best effort.
func (h *TrendsHandler) store(ctx context.Context, endpoint, key string, v interface{}) {
	if h.cache == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		h.logger.Warn("cache marshal error", xlogger.Error(err), xlogger.String("endpoint", endpoint))
		return
	}
	if err := h.cache.SetBytes(ctx, key, b, h.cacheTTL); err != nil {
		h.logger.Warn("cache set error", xlogger.Error(err), xlogger.String("key", key))
	}
}

func rateLimitedResponse(c echo.Context) error {
	return xhttp.DataResponse(c, http.StatusTooManyRequests, "rate limited")
}
