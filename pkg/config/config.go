package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logger struct {
		Level      string `yaml:"level"`
		Format     string `yaml:"format"`
		Output     string `yaml:"output"`
		Collection struct {
			Enabled        bool          `yaml:"enabled"`
			Topic          string        `yaml:"topic"`
			Interval       time.Duration `yaml:"interval"`
			CountThreshold int           `yaml:"count_threshold"`
		} `yaml:"collection"`
	} `yaml:"logger"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Analysis struct {
		DefaultTimeframe string        `yaml:"default_timeframe"`
		DefaultMaxTrends int           `yaml:"default_max_trends"`
		GatherTimeout    time.Duration `yaml:"gather_timeout"`
		Catalogs         struct {
			Categories           map[string][]string `yaml:"categories"`
			RiskFactors          []string            `yaml:"risk_factors"`
			MitigationStrategies []string            `yaml:"mitigation_strategies"`
			KeyDrivers           []string            `yaml:"key_drivers"`
			PotentialBarriers    []string            `yaml:"potential_barriers"`
			SentimentDrivers     struct {
				Positive []string `yaml:"positive"`
				Neutral  []string `yaml:"neutral"`
				Negative []string `yaml:"negative"`
			} `yaml:"sentiment_drivers"`
		} `yaml:"catalogs"`
	} `yaml:"analysis"`
	Source struct {
		Name            string `yaml:"name"`
		RecordsPerQuery int    `yaml:"records_per_query"`
		RecordsFile     string `yaml:"records_file"`
		FallbackFile    string `yaml:"fallback_file"`
	} `yaml:"source"`
	History struct {
		Backend    string `yaml:"backend"` // static or clickhouse
		Table      string `yaml:"table"`
		Limit      int    `yaml:"limit"`
		SeriesFile string `yaml:"series_file"`
	} `yaml:"history"`
	Publisher struct {
		Backend string `yaml:"backend"` // kafka or none
	} `yaml:"publisher"`
	Kafka struct {
		Brokers      []string `yaml:"brokers"`
		Topic        string   `yaml:"topic"`
		RequiredAcks int      `yaml:"required_acks"`
		Compression  string   `yaml:"compression"`
		Producer     struct {
			MaxAttempts  int           `yaml:"max_attempts"`
			Linger       time.Duration `yaml:"linger"`
			BatchBytes   int           `yaml:"batch_bytes"`
			BatchSize    int           `yaml:"batch_size"`
			WriteTimeout time.Duration `yaml:"write_timeout"`
			ReadTimeout  time.Duration `yaml:"read_timeout"`
			Async        bool          `yaml:"async"`
		} `yaml:"producer"`
	} `yaml:"kafka"`
	ClickHouse struct {
		Host             string        `yaml:"host"`
		Port             int           `yaml:"port"`
		Database         string        `yaml:"database"`
		User             string        `yaml:"user"`
		Password         string        `yaml:"password"`
		UseHTTP          bool          `yaml:"use_http"`
		AsyncInsert      bool          `yaml:"async_insert"`
		WaitForAsync     bool          `yaml:"wait_for_async_insert"`
		DialTimeout      time.Duration `yaml:"dial_timeout"`
		ReadTimeout      time.Duration `yaml:"read_timeout"`
		WriteTimeout     time.Duration `yaml:"write_timeout"`
		MaxExecutionTime time.Duration `yaml:"max_execution_time"`
	} `yaml:"clickhouse"`
	Cache struct {
		Enabled bool          `yaml:"enabled"`
		Backend string        `yaml:"backend"` // memory or redis
		TTL     time.Duration `yaml:"ttl"`
		Redis   struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"cache"`
	RateLimit struct {
		Enabled bool    `yaml:"enabled"`
		RPS     float64 `yaml:"rps"`
		Burst   int     `yaml:"burst"`
	} `yaml:"rate_limit"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	// Validate required fields
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		c.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("KAFKA_TOPIC"); v != "" {
		c.Kafka.Topic = v
	}
	if v := os.Getenv("PUBLISHER_BACKEND"); v != "" {
		c.Publisher.Backend = v
	}
	if v := os.Getenv("HISTORY_BACKEND"); v != "" {
		c.History.Backend = v
	}
	if v := os.Getenv("CLICKHOUSE_HOST"); v != "" {
		c.ClickHouse.Host = v
	}
	if v := os.Getenv("CLICKHOUSE_PASSWORD"); v != "" {
		c.ClickHouse.Password = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// applyDefaults fills unset fields with the built-in reference data the
// analysis components rely on.
func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logger.Level == "" {
		c.Logger.Level = "info"
	}
	if c.Logger.Format == "" {
		c.Logger.Format = "json"
	}
	if c.Logger.Output == "" {
		c.Logger.Output = "stdout"
	}
	if c.Analysis.DefaultTimeframe == "" {
		c.Analysis.DefaultTimeframe = "6m"
	}
	if c.Analysis.DefaultMaxTrends == 0 {
		c.Analysis.DefaultMaxTrends = 10
	}
	if c.Analysis.GatherTimeout == 0 {
		c.Analysis.GatherTimeout = 10 * time.Second
	}
	if c.Source.Name == "" {
		c.Source.Name = "static"
	}
	if c.Source.RecordsPerQuery == 0 {
		c.Source.RecordsPerQuery = 20
	}
	if c.History.Backend == "" {
		c.History.Backend = "static"
	}
	if c.History.Table == "" {
		c.History.Table = "trendpulse.trend_growth"
	}
	if c.History.Limit == 0 {
		c.History.Limit = 64
	}
	if c.Publisher.Backend == "" {
		c.Publisher.Backend = "none"
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 5 * time.Minute
	}

	cat := &c.Analysis.Catalogs
	if len(cat.Categories) == 0 {
		cat.Categories = map[string][]string{
			"technology":    {"AI", "machine learning", "blockchain", "IoT", "quantum", "5G", "AR", "VR"},
			"market":        {"growth", "decline", "shift", "disruption", "consolidation", "expansion"},
			"consumer":      {"behavior", "preference", "demand", "lifestyle", "values", "habits"},
			"regulatory":    {"policy", "regulation", "compliance", "legislation", "standards"},
			"economic":      {"inflation", "recession", "growth", "interest rates", "employment"},
			"environmental": {"sustainability", "climate", "carbon", "renewable", "green"},
		}
	}
	if len(cat.RiskFactors) == 0 {
		cat.RiskFactors = []string{
			"Market uncertainty",
			"Technology disruption",
			"Regulatory changes",
			"Competitive pressure",
		}
	}
	if len(cat.MitigationStrategies) == 0 {
		cat.MitigationStrategies = []string{
			"Diversify trend portfolio",
			"Increase trend monitoring frequency",
			"Develop contingency plans",
			"Strengthen competitive positioning",
		}
	}
	if len(cat.KeyDrivers) == 0 {
		cat.KeyDrivers = []string{"Technology advancement", "Market demand", "Regulatory support"}
	}
	if len(cat.PotentialBarriers) == 0 {
		cat.PotentialBarriers = []string{"Market saturation", "Competition", "Economic uncertainty"}
	}
	drivers := []string{
		"Technology advancement",
		"Market performance",
		"Regulatory developments",
		"Competitive landscape",
		"Economic conditions",
	}
	if len(cat.SentimentDrivers.Positive) == 0 {
		cat.SentimentDrivers.Positive = drivers
	}
	if len(cat.SentimentDrivers.Neutral) == 0 {
		cat.SentimentDrivers.Neutral = drivers
	}
	if len(cat.SentimentDrivers.Negative) == 0 {
		cat.SentimentDrivers.Negative = drivers
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	switch c.Analysis.DefaultTimeframe {
	case "1m", "3m", "6m", "12m":
	default:
		return fmt.Errorf("analysis.default_timeframe must be one of 1m, 3m, 6m, 12m, got '%s'", c.Analysis.DefaultTimeframe)
	}
	if c.Analysis.DefaultMaxTrends <= 0 {
		return fmt.Errorf("analysis.default_max_trends must be positive")
	}
	if c.History.Backend != "static" && c.History.Backend != "clickhouse" {
		return fmt.Errorf("history.backend must be 'static' or 'clickhouse', got '%s'", c.History.Backend)
	}
	if c.History.Backend == "clickhouse" && c.ClickHouse.Host == "" {
		return fmt.Errorf("clickhouse.host is required for history.backend 'clickhouse'")
	}
	if c.Publisher.Backend != "kafka" && c.Publisher.Backend != "none" {
		return fmt.Errorf("publisher.backend must be 'kafka' or 'none', got '%s'", c.Publisher.Backend)
	}
	if c.Publisher.Backend == "kafka" {
		if len(c.Kafka.Brokers) == 0 {
			return fmt.Errorf("kafka.brokers cannot be empty for publisher.backend 'kafka'")
		}
		if c.Kafka.Topic == "" {
			return fmt.Errorf("kafka.topic is required for publisher.backend 'kafka'")
		}
	}
	if c.Logger.Collection.Enabled {
		if c.Publisher.Backend != "kafka" {
			return fmt.Errorf("logger.collection requires publisher.backend 'kafka'")
		}
		if c.Logger.Collection.Topic == "" {
			return fmt.Errorf("logger.collection.topic is required when collection is enabled")
		}
	}
	if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("cache.backend must be 'memory' or 'redis', got '%s'", c.Cache.Backend)
	}
	if c.Cache.Enabled && c.Cache.Backend == "redis" && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required for cache.backend 'redis'")
	}
	return nil
}
