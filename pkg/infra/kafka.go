package infra

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=kafka.go -destination=mock_kafka.go -package=infra

type KafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// NewKafkaReader starts from the latest offset when the group has no committed offset yet.
func NewKafkaReader(brokers []string, consumerGroupID string, topic string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     consumerGroupID,
		Topic:       topic,
		StartOffset: kafka.LastOffset,
		MaxWait:     time.Second,
	})
}

func NewKafkaDialer(timeout time.Duration) *kafka.Dialer {
	return &kafka.Dialer{
		Timeout:   timeout,
		DualStack: true,
	}
}
