package di

import (
	"context"
	"fmt"
	"time"

	"TrendPulse/internal/domain/models"
	domrepo "TrendPulse/internal/domain/repository"
	domsvc "TrendPulse/internal/domain/service"
	"TrendPulse/internal/handler/api"
	internalrepo "TrendPulse/internal/repository"
	icache "TrendPulse/internal/service/cache"
	"TrendPulse/internal/services/analytics"
	"TrendPulse/internal/usecase"
	pkgch "TrendPulse/pkg/clickhouse"
	"TrendPulse/pkg/config"
	pkgkafka "TrendPulse/pkg/kafka"
	applogger "TrendPulse/pkg/logger"
	"TrendPulse/pkg/metrics"
	"TrendPulse/pkg/server"
)

// ProvideClickHouseClient creates a ClickHouse client when the history
// store is ClickHouse-backed; otherwise it returns nil.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.History.Backend != "clickhouse" {
		return nil, nil
	}

	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	// Initialize schema
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.InitSchema(ctx, []string{
		"CREATE DATABASE IF NOT EXISTS trendpulse",
		"CREATE TABLE IF NOT EXISTS trendpulse.trend_growth (trend_name String, date DateTime, growth_rate Float64) ENGINE=MergeTree ORDER BY (trend_name, date)",
	}); err != nil {
		_ = client.Close() // cannot log here (DI layer no logger); propagate error
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideKafkaProducer creates a Kafka producer when analysis publication
// is Kafka-backed; otherwise it returns nil.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if cfg.Publisher.Backend != "kafka" {
		return nil, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatching(cfg.Kafka.Producer.BatchSize, cfg.Kafka.Producer.BatchBytes, cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}

	return producer, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Recorder {
	return metrics.New()
}

// ProvideHistoryStore creates the growth history store per configuration.
func ProvideHistoryStore(cfg *config.Config, chClient *pkgch.Client, l *applogger.Logger) (domrepo.HistoricalSeries, error) {
	if cfg.History.Backend == "clickhouse" {
		store := internalrepo.NewCHHistoryStore(chClient, cfg.History.Table, cfg.History.Limit)
		store.SetLogger(l)
		return store, nil
	}

	if cfg.History.SeriesFile != "" {
		series, err := internalrepo.LoadGrowthSeries(cfg.History.SeriesFile)
		if err != nil {
			return nil, fmt.Errorf("load growth series: %w", err)
		}
		return internalrepo.NewStaticHistoryStore(series), nil
	}
	return internalrepo.NewStaticHistoryStore(nil), nil
}

// ProvidePublisher creates the analysis publisher per configuration.
func ProvidePublisher(cfg *config.Config, producer *pkgkafka.Producer) domrepo.AnalysisPublisher {
	if cfg.Publisher.Backend == "kafka" {
		return internalrepo.NewKafkaAnalysisPublisher(producer, cfg.Kafka.Topic)
	}
	return internalrepo.NopPublisher{}
}

// ProvideClassifier creates the trend classifier.
func ProvideClassifier() domsvc.TrendClassifier {
	return analytics.NewClassifier()
}

// ProvideCorrelator creates the trend correlation analyzer.
func ProvideCorrelator() domsvc.CorrelationAnalyzer {
	return analytics.NewCorrelator()
}

// ProvideImpactAssessor creates the market impact assessor.
func ProvideImpactAssessor() domsvc.ImpactAssessor {
	return analytics.NewMarketAssessor()
}

// ProvideRiskAnalyzer creates the risk analyzer from the config catalogs.
func ProvideRiskAnalyzer(cfg *config.Config) domsvc.RiskAssessor {
	cat := cfg.Analysis.Catalogs
	return analytics.NewRiskAnalyzer(cat.RiskFactors, cat.MitigationStrategies)
}

// ProvideSentimentReducer creates the sentiment aggregator from the config catalogs.
func ProvideSentimentReducer(cfg *config.Config) domsvc.SentimentAggregator {
	cat := cfg.Analysis.Catalogs
	return analytics.NewSentimentReducer(map[models.Sentiment][]string{
		models.SentimentPositive: cat.SentimentDrivers.Positive,
		models.SentimentNeutral:  cat.SentimentDrivers.Neutral,
		models.SentimentNegative: cat.SentimentDrivers.Negative,
	})
}

// ProvideForecaster creates the growth forecaster from the config catalogs.
func ProvideForecaster(cfg *config.Config) domsvc.Forecaster {
	cat := cfg.Analysis.Catalogs
	return analytics.NewGrowthForecaster(cat.KeyDrivers, cat.PotentialBarriers)
}

// ProvideTrendTracker creates the tracking use case. Signal sources are
// built here from config: fixture-backed when a records file is given,
// synthesizing otherwise.
func ProvideTrendTracker(
	cfg *config.Config,
	classifier domsvc.TrendClassifier,
	correlator domsvc.CorrelationAnalyzer,
	impact domsvc.ImpactAssessor,
	risk domsvc.RiskAssessor,
	sentiment domsvc.SentimentAggregator,
	forecaster domsvc.Forecaster,
	history domrepo.HistoricalSeries,
	publisher domrepo.AnalysisPublisher,
	rec domrepo.Recorder,
) (*usecase.TrendTracker, error) {
	catalog := internalrepo.CategoryCatalog(cfg.Analysis.Catalogs.Categories)

	opts := []internalrepo.SourceOption{
		internalrepo.WithRecordsPerQuery(cfg.Source.RecordsPerQuery),
	}
	if cfg.Source.RecordsFile != "" {
		records, err := internalrepo.LoadSignalRecords(cfg.Source.RecordsFile)
		if err != nil {
			return nil, fmt.Errorf("load signal records: %w", err)
		}
		opts = append(opts, internalrepo.WithFixtureRecords(records))
	}
	source := internalrepo.NewStaticSignalSource(cfg.Source.Name, catalog, opts...)

	var fallback domrepo.SignalSource
	if cfg.Source.FallbackFile != "" {
		records, err := internalrepo.LoadSignalRecords(cfg.Source.FallbackFile)
		if err != nil {
			return nil, fmt.Errorf("load fallback records: %w", err)
		}
		fallback = internalrepo.NewStaticSignalSource("fallback", catalog, internalrepo.WithFixtureRecords(records))
	}

	deps := usecase.TrackerDeps{
		Source:     source,
		Fallback:   fallback,
		History:    history,
		Publisher:  publisher,
		Classifier: classifier,
		Correlator: correlator,
		Impact:     impact,
		Risk:       risk,
		Sentiment:  sentiment,
		Forecaster: forecaster,
		Metrics:    rec,
	}
	return usecase.NewTrendTracker(deps, usecase.WithGatherTimeout(cfg.Analysis.GatherTimeout)), nil
}

// ProvideTrendsHandler creates the HTTP handler with cache and rate limit
// wiring per configuration.
func ProvideTrendsHandler(l *applogger.Logger, tracker *usecase.TrendTracker, cfg *config.Config) *api.TrendsHandler {
	h := api.NewTrendsHandler(l, tracker)

	if cfg.Cache.Enabled {
		var c icache.BytesCache
		if cfg.Cache.Backend == "redis" {
			c = icache.NewRedisCache(icache.RedisConfig{
				Addr:     cfg.Cache.Redis.Addr,
				Password: cfg.Cache.Redis.Password,
				DB:       cfg.Cache.Redis.DB,
			})
		} else {
			c = icache.NewTTLCache()
		}
		h.SetCache(c, cfg.Cache.TTL)
	}

	if cfg.RateLimit.Enabled {
		h.SetRateLimit(float64(cfg.RateLimit.Burst), cfg.RateLimit.RPS)
	}

	return h
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	tracker *usecase.TrendTracker,
	handler *api.TrendsHandler,
	chClient *pkgch.Client,
	producer *pkgkafka.Producer,
) *server.App {
	return server.New(cfg, l, tracker, handler, chClient, producer)
}
