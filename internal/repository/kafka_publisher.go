package repository

import (
	"context"

	"TrendPulse/internal/domain/models"
	"TrendPulse/internal/domain/repository"
	pkgkafka "TrendPulse/pkg/kafka"
)

// KafkaAnalysisPublisher implements AnalysisPublisher for Kafka. Analyses
// are JSON-encoded and keyed by topic so one subject stays in one partition.
type KafkaAnalysisPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaAnalysisPublisher creates a Kafka-backed analysis publisher.
func NewKafkaAnalysisPublisher(producer *pkgkafka.Producer, topic string) repository.AnalysisPublisher {
	return &KafkaAnalysisPublisher{producer: producer, topic: topic}
}

func (p *KafkaAnalysisPublisher) PublishAnalysis(ctx context.Context, analysis *models.TrendAnalysis) error {
	return p.producer.Publish(ctx, p.topic, []byte(analysis.Topic), analysis)
}

func (p *KafkaAnalysisPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// NopPublisher drops analyses. Wired when publication is disabled.
type NopPublisher struct{}

func (NopPublisher) PublishAnalysis(context.Context, *models.TrendAnalysis) error { return nil }

func (NopPublisher) Close() error { return nil }

// LogSink adapts the Kafka producer to the log collector's publisher
// contract so aggregated log batches ride the same broker.
type LogSink struct {
	producer *pkgkafka.Producer
}

func NewLogSink(producer *pkgkafka.Producer) *LogSink {
	return &LogSink{producer: producer}
}

func (s *LogSink) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	return s.producer.Publish(ctx, topic, nil, payload)
}
