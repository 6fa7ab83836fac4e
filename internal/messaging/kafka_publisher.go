package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cwgitcommit11/sportsalgo/internal/models"
)

// KafkaPublisher publishes the day's graded picks to Kafka for downstream
// consumers (notification bots, dashboards).
type KafkaPublisher struct {
	writer *kafka.Writer
	logger zerolog.Logger
}

// KafkaPublisherConfig holds Kafka publisher configuration
type KafkaPublisherConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "daily_picks"
}

// NewKafkaPublisher creates a new Kafka publisher
func NewKafkaPublisher(config KafkaPublisherConfig, logger zerolog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 100 * time.Millisecond,
	}

	return &KafkaPublisher{
		writer: writer,
		logger: logger.With().Str("component", "kafka_publisher").Logger(),
	}
}

// PublishDailyPicks publishes one message carrying the full slate, keyed by
// game date so a day's re-runs land in the same partition.
func (p *KafkaPublisher) PublishDailyPicks(ctx context.Context, date string, preds []*models.Prediction) error {
	msg := models.DailyPicksMessage{
		Date:        date,
		Predictions: preds,
		Count:       len(preds),
		PublishedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal daily picks message: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(date),
		Value: data,
	}); err != nil {
		return fmt.Errorf("failed to publish daily picks: %w", err)
	}

	p.logger.Info().
		Str("date", date).
		Int("count", len(preds)).
		Str("topic", p.writer.Topic).
		Msg("published daily picks")

	return nil
}

// Close closes the Kafka writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
