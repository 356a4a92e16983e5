package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"TrendPulse/internal/di"
	"TrendPulse/pkg/config"
	applogger "TrendPulse/pkg/logger"
)

func main() {
	// Load .env if present; real environment variables take precedence.
	_ = godotenv.Load()

	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s history=%s publisher=%s", cfg.Environment, cfg.History.Backend, cfg.Publisher.Backend)

	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg, l)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
