package monitor

import (
	"VCS_Sandbox_Dashboard/pkg/infra"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	MessageTypeJSON   = "JSON"
	MessageTypeError  = "ERROR"
	MessageTypeTest   = "TEST"
	MessageTypeLarge  = "LARGE"
	MessageTypeSimple = "SIMPLE"

	previewLength = 100
)

// FeedMessage is a message seen on the queue, as the consumer service would classify it.
type FeedMessage struct {
	Type       string    `json:"type"`
	Preview    string    `json:"preview"`
	Length     int       `json:"length"`
	Partition  int       `json:"partition"`
	Offset     int64     `json:"offset"`
	Timestamp  time.Time `json:"timestamp"`
	ReceivedAt time.Time `json:"received_at"`
}

//go:generate mockgen -source=feed.go -destination=../mocks/monitor/mock_feed.go -package=mockmonitor

type Feed interface {
	Start()
	Stop()
	Recent() []FeedMessage
}

type feed struct {
	kafkaReader infra.KafkaReader
	size        int
	logger      *zap.Logger

	mu       sync.RWMutex
	messages []FeedMessage
}

func (f *feed) Start() {
	go func() {
		for {
			m, err := f.kafkaReader.FetchMessage(context.Background())
			if err != nil {
				if errors.Is(err, io.EOF) {
					return
				}
				err = fmt.Errorf("feed.Start: %w", err)
				f.logger.Log(zap.ErrorLevel, "failed to fetch message", zap.Error(err))
				continue
			}
			if m.Value == nil || strings.TrimSpace(string(m.Value)) == "" {
				f.logger.Warn("skipping empty message", zap.Int("partition", m.Partition), zap.Int64("offset", m.Offset))
			} else {
				f.push(toFeedMessage(m))
			}
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			err = f.kafkaReader.CommitMessages(ctx, m)
			cancel()
			if err != nil {
				err = fmt.Errorf("feed.Start: %w", err)
				f.logger.Log(zap.ErrorLevel, "failed to commit messages", zap.Error(err))
			}
		}
	}()
}

// Stop closes the kafka reader, which ends the fetch loop.
func (f *feed) Stop() {
	if err := f.kafkaReader.Close(); err != nil {
		f.logger.Error("failed to close kafka reader", zap.Error(err))
	}
}

// Recent returns the buffered messages, newest first.
func (f *feed) Recent() []FeedMessage {
	f.mu.RLock()
	defer f.mu.RUnlock()
	res := make([]FeedMessage, len(f.messages))
	copy(res, f.messages)
	return res
}

func (f *feed) push(msg FeedMessage) {
	f.mu.Lock()
	defer f.mu.Unlock()
	messages := make([]FeedMessage, 0, f.size)
	messages = append(messages, msg)
	for _, m := range f.messages {
		if len(messages) == f.size {
			break
		}
		messages = append(messages, m)
	}
	f.messages = messages
}

func toFeedMessage(m kafka.Message) FeedMessage {
	text := string(m.Value)
	return FeedMessage{
		Type:       ClassifyMessage(text),
		Preview:    truncate(text, previewLength),
		Length:     utf8.RuneCountInString(text),
		Partition:  m.Partition,
		Offset:     m.Offset,
		Timestamp:  m.Time,
		ReceivedAt: time.Now(),
	}
}

// ClassifyMessage applies the consumer service's rules, first match wins.
func ClassifyMessage(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "json") || strings.HasPrefix(lower, "{"):
		return MessageTypeJSON
	case strings.Contains(lower, "error") || strings.Contains(lower, "ошибка"):
		return MessageTypeError
	case strings.Contains(lower, "test") || strings.Contains(lower, "тест"):
		return MessageTypeTest
	case utf8.RuneCountInString(message) > previewLength:
		return MessageTypeLarge
	default:
		return MessageTypeSimple
	}
}

func truncate(s string, maxLength int) string {
	if utf8.RuneCountInString(s) <= maxLength {
		return s
	}
	return string([]rune(s)[:maxLength]) + "..."
}

func NewFeed(reader infra.KafkaReader, size int, logger *zap.Logger) Feed {
	if size < 1 {
		size = 1
	}
	return &feed{
		kafkaReader: reader,
		size:        size,
		logger:      logger,
	}
}
