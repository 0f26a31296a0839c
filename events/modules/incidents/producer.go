package incidents

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// FeedProducer sends feed.refreshed events to Kafka
type FeedProducer struct {
	Writer *kafka.Writer
}

// NewFeedProducer initializes a Kafka writer for feed events. transport may be
// nil for the default (plaintext) transport.
func NewFeedProducer(brokers []string, topic string, transport kafka.RoundTripper) *FeedProducer {
	return &FeedProducer{
		Writer: &kafka.Writer{
			Addr:      kafka.TCP(brokers...),
			Topic:     topic,
			Balancer:  &kafka.LeastBytes{},
			Transport: transport,
		},
	}
}

// PublishFeedRefreshed sends the event to the Kafka topic
func (p *FeedProducer) PublishFeedRefreshed(ctx context.Context, generatedAt string, total int) error {
	payload, err := json.Marshal(NewFeedRefreshedEvent(generatedAt, total, time.Now()))
	if err != nil {
		return err
	}

	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(generatedAt),
		Value: payload,
	})
}

// Close cleans up the Kafka writer
func (p *FeedProducer) Close() error {
	return p.Writer.Close()
}

// NewFeedRefreshedEvent builds the event contract for a completed reload
func NewFeedRefreshedEvent(generatedAt string, total int, now time.Time) FeedEvent {
	return FeedEvent{
		EventType:     EventFeedRefreshed,
		EventID:       uuid.New().String(),
		EventTime:     now.UTC(),
		SchemaVersion: schemaVersion,
		GeneratedAt:   generatedAt,
		Total:         total,
	}
}
