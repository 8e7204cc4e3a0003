package probe

import (
	"VCS_Sandbox_Dashboard/pkg/access"
	"context"
	"errors"
	"fmt"

	"github.com/segmentio/kafka-go"
)

type Conn interface {
	ReadPartitions(topics ...string) ([]kafka.Partition, error)
	Close() error
}

type DialFunc func(ctx context.Context, network string, address string) (Conn, error)

// KafkaProbe checks that a broker answers and knows the message topic.
type KafkaProbe struct {
	brokers []string
	topic   string
	dial    DialFunc
}

func NewKafkaProbe(dialer *kafka.Dialer, brokers []string, topic string) *KafkaProbe {
	return &KafkaProbe{
		brokers: brokers,
		topic:   topic,
		dial: func(ctx context.Context, network string, address string) (Conn, error) {
			return dialer.DialContext(ctx, network, address)
		},
	}
}

// Check tries every broker in order and reports the partition count from the first one reachable.
func (p *KafkaProbe) Check(ctx context.Context) (any, error) {
	if len(p.brokers) == 0 {
		return nil, errors.New("KafkaProbe.Check: no brokers configured")
	}
	var dialErr error
	for _, broker := range p.brokers {
		conn, err := p.dial(ctx, "tcp", broker)
		if err != nil {
			dialErr = err
			continue
		}
		partitions, err := conn.ReadPartitions(p.topic)
		conn.Close()
		if err != nil {
			if errors.Is(err, kafka.UnknownTopicOrPartition) {
				return nil, access.NewResponseError(404, fmt.Sprintf("topic %s not found", p.topic))
			}
			return nil, access.NewNoResponseError(fmt.Errorf("KafkaProbe.Check: %w", err))
		}
		return fmt.Sprintf("%d partitions", len(partitions)), nil
	}
	return nil, access.NewNoResponseError(fmt.Errorf("KafkaProbe.Check: %w", dialErr))
}
