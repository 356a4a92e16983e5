package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TrendPulse/internal/handler/api"
	internalrepo "TrendPulse/internal/repository"
	"TrendPulse/internal/usecase"
	pkgch "TrendPulse/pkg/clickhouse"
	"TrendPulse/pkg/config"
	xhttp "TrendPulse/pkg/http"
	pkgkafka "TrendPulse/pkg/kafka"
	applogger "TrendPulse/pkg/logger"
)

// Requests slower than this are logged as warnings by the HTTP middleware.
const slowRequestThreshold = 500 * time.Millisecond

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	tracker    *usecase.TrendTracker
	handler    *api.TrendsHandler
	chClient   *pkgch.Client
	producer   *pkgkafka.Producer
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies. chClient and
// producer may be nil when the corresponding backends are disabled.
func New(
	cfg *config.Config,
	l *applogger.Logger,
	tracker *usecase.TrendTracker,
	handler *api.TrendsHandler,
	chClient *pkgch.Client,
	producer *pkgkafka.Producer,
) *App {
	return &App{
		cfg:      cfg,
		logger:   l,
		tracker:  tracker,
		handler:  handler,
		chClient: chClient,
		producer: producer,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	// Aggregated log shipping rides the Kafka producer when enabled.
	if a.cfg.Logger.Collection.Enabled && a.producer != nil {
		a.logger.AddCollector(&applogger.CollectionConfig{
			TimeInterval:   a.cfg.Logger.Collection.Interval,
			CountThreshold: a.cfg.Logger.Collection.CountThreshold,
			Topic:          a.cfg.Logger.Collection.Topic,
			Publisher:      internalrepo.NewLogSink(a.producer),
		})
		a.logger.Info("log collection enabled", applogger.String("topic", a.cfg.Logger.Collection.Topic))
	}

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
		xhttp.WithRequestMetrics(a.logger, slowRequestThreshold),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("http server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("env", a.cfg.Environment),
	)

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(context.Background())
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	// Flush aggregated logs while the producer is still open.
	a.logger.RemoveCollector()

	// Closes the analysis publisher, and with it the Kafka producer.
	a.tracker.Close()

	if a.chClient != nil {
		if err := a.chClient.Close(); err != nil {
			a.logger.Warn("clickhouse close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
