//go:build wireinject
// +build wireinject

package di

import (
	"TrendPulse/pkg/config"
	applogger "TrendPulse/pkg/logger"
	"TrendPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config, l *applogger.Logger) (*server.App, error) {
	wire.Build(
		// Metrics
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,

		// Repositories (with business logic)
		ProvideHistoryStore,
		ProvidePublisher,

		// Analysis components
		ProvideClassifier,
		ProvideCorrelator,
		ProvideImpactAssessor,
		ProvideRiskAnalyzer,
		ProvideSentimentReducer,
		ProvideForecaster,

		// Use cases
		ProvideTrendTracker,

		// HTTP handler
		ProvideTrendsHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
