package kafka

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ortelius/railwatch-board/config"
)

type noopChecker struct{}

func (noopChecker) TriggerCheck(context.Context) error { return nil }

type countingChecker struct{ calls atomic.Int64 }

func (c *countingChecker) TriggerCheck(context.Context) error {
	c.calls.Add(1)
	return nil
}

// scriptedReader returns queued messages, then fails every read
type scriptedReader struct {
	msgs  []kafka.Message
	reads atomic.Int64
}

func (r *scriptedReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	n := int(r.reads.Add(1))
	if n <= len(r.msgs) {
		return r.msgs[n-1], nil
	}
	if err := ctx.Err(); err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{}, errors.New("broker unavailable")
}

func TestNewDialer(t *testing.T) {
	plainDialer := NewDialer(config.KafkaConfig{Brokers: []string{"localhost:9092"}})
	assert.Nil(t, plainDialer.SASLMechanism)
	assert.Nil(t, plainDialer.TLS)

	secure := NewDialer(config.KafkaConfig{Username: "key", Password: "secret"})
	assert.NotNil(t, secure.SASLMechanism)
	assert.Equal(t, "PLAIN", secure.SASLMechanism.Name())
	assert.NotNil(t, secure.TLS)
}

func TestNewTransport(t *testing.T) {
	assert.Nil(t, NewTransport(config.KafkaConfig{}))

	rt := NewTransport(config.KafkaConfig{Username: "key", Password: "secret"})
	transport, ok := rt.(*kafka.Transport)
	assert.True(t, ok)
	assert.NotNil(t, transport.SASL)
}

func TestRunEventProcessorRequiresBrokers(t *testing.T) {
	err := RunEventProcessor(context.Background(), config.KafkaConfig{}, noopChecker{}, zap.NewNop())
	assert.Error(t, err)
}

func TestRunEventProcessorGivesUpOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.KafkaConfig{Brokers: []string{"127.0.0.1:1"}, Topic: "t", GroupID: "g"}
	err := RunEventProcessor(ctx, cfg, noopChecker{}, zap.NewNop())
	assert.Error(t, err)
}

func TestConsumeWaitsAfterReadError(t *testing.T) {
	reader := &scriptedReader{}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		consume(ctx, reader, noopChecker{}, zap.NewNop(), 40*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consume did not return after ctx was done")
	}
	// roughly one read per wait period, not a tight loop
	assert.LessOrEqual(t, reader.reads.Load(), int64(5))
}

func TestConsumeHandlesFeedGenerated(t *testing.T) {
	checker := &countingChecker{}
	reader := &scriptedReader{msgs: []kafka.Message{
		{Value: []byte(`{"event_type":"feed.generated","event_id":"1"}`)},
		{Value: []byte(`{"event_type":"feed.refreshed","event_id":"2"}`)},
		{Value: []byte(`not json`)},
	}}
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		consume(ctx, reader, checker, zap.NewNop(), time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return reader.reads.Load() > 3 }, 2*time.Second, time.Millisecond)
	cancel()
	<-done
	assert.Equal(t, int64(1), checker.calls.Load())
}
