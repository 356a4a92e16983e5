package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/segmentio/kafka-go"
)

// Producer wraps a kafka-go writer configured for multi-topic publishing.
type Producer struct {
	writer *kafka.Writer
	comp   string
}

// NewProducer builds the writer. At least one broker is required; the
// remaining settings default to safe synchronous delivery.
func NewProducer(opts ...ProducerOption) (*Producer, error) {
	cfg := &ProducerConfig{
		RequiredAcks: -1,
		Compression:  "gzip",
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
		BatchSize:    100,
		BatchBytes:   1 << 20,
		BatchTimeout: time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("brokers are required")
	}

	var balancer kafka.Balancer = &kafka.LeastBytes{}
	if cfg.HashByKey {
		balancer = &kafka.Hash{}
	}
	registerProducerMetrics()

	return &Producer{
		comp: cfg.Compression,
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     balancer,
			RequiredAcks: kafka.RequiredAcks(cfg.RequiredAcks),
			Compression:  compressionCodec(cfg.Compression),
			MaxAttempts:  cfg.MaxAttempts,
			WriteTimeout: cfg.WriteTimeout,
			ReadTimeout:  cfg.ReadTimeout,
			BatchSize:    cfg.BatchSize,
			BatchBytes:   int64(cfg.BatchBytes),
			BatchTimeout: cfg.BatchTimeout,
			Async:        cfg.Async,
		},
	}, nil
}

// Publish sends one message to topic. Byte and string values pass through
// untouched; everything else is JSON-encoded.
func (p *Producer) Publish(ctx context.Context, topic string, key []byte, value interface{}) error {
	payload, err := encodeValue(value)
	if err != nil {
		return err
	}

	start := time.Now()
	werr := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: payload,
		Time:  start,
	})
	observePublish(topic, p.comp, len(payload), time.Since(start), werr)
	return werr
}

// Close flushes and closes the writer.
func (p *Producer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func encodeValue(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		b, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshal value: %w", err)
		}
		return b, nil
	}
}

func compressionCodec(name string) kafka.Compression {
	switch name {
	case "snappy":
		return kafka.Snappy
	case "lz4":
		return kafka.Lz4
	case "zstd":
		return kafka.Zstd
	default:
		return kafka.Gzip
	}
}

var (
	pubMessages *prometheus.CounterVec
	pubErrors   *prometheus.CounterVec
	pubBytes    *prometheus.CounterVec
	pubLatency  *prometheus.HistogramVec

	producerMetricsOnce sync.Once
)

func registerProducerMetrics() {
	producerMetricsOnce.Do(func() {
		pubMessages = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendpulse_kafka_producer_messages_total",
				Help: "Messages published to Kafka.",
			},
			[]string{"topic", "compression", "result"},
		)
		pubErrors = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendpulse_kafka_producer_errors_total",
				Help: "Failed publishes.",
			},
			[]string{"topic"},
		)
		pubBytes = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "trendpulse_kafka_producer_bytes_total",
				Help: "Payload bytes published.",
			},
			[]string{"topic", "compression"},
		)
		pubLatency = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "trendpulse_kafka_producer_publish_seconds",
				Help:    "Publish latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"topic"},
		)
	})
}

func observePublish(topic, comp string, bytes int, dur time.Duration, err error) {
	if pubMessages == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
		pubErrors.WithLabelValues(topic).Inc()
	}
	pubMessages.WithLabelValues(topic, comp, result).Inc()
	pubBytes.WithLabelValues(topic, comp).Add(float64(bytes))
	pubLatency.WithLabelValues(topic).Observe(dur.Seconds())
}
