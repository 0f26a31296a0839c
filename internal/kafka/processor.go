// Package kafka connects the dashboard to the feed events topic.
package kafka

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
	"go.uber.org/zap"

	"github.com/ortelius/railwatch-board/config"
	incidents "github.com/ortelius/railwatch-board/events/modules/incidents"
)

const (
	connectAttempts = 3
	connectWait     = 2 * time.Second
	dialTimeout     = 10 * time.Second
	readRetryWait   = 2 * time.Second
)

type messageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// NewDialer returns a dialer, configured for SASL/PLAIN over TLS when
// credentials are provided
func NewDialer(cfg config.KafkaConfig) *kafka.Dialer {
	if cfg.Username != "" && cfg.Password != "" {
		return &kafka.Dialer{
			Timeout:   dialTimeout,
			DualStack: true,
			SASLMechanism: plain.Mechanism{
				Username: cfg.Username,
				Password: cfg.Password,
			},
			TLS: &tls.Config{MinVersion: tls.VersionTLS12},
		}
	}
	// local development (no SASL/TLS)
	return &kafka.Dialer{
		Timeout:   dialTimeout,
		DualStack: true,
	}
}

// NewTransport returns the writer transport matching NewDialer, or nil for the
// kafka-go default when no credentials are set
func NewTransport(cfg config.KafkaConfig) kafka.RoundTripper {
	if cfg.Username == "" || cfg.Password == "" {
		return nil
	}
	return &kafka.Transport{
		DialTimeout: dialTimeout,
		SASL: plain.Mechanism{
			Username: cfg.Username,
			Password: cfg.Password,
		},
		TLS: &tls.Config{MinVersion: tls.VersionTLS12},
	}
}

// RunEventProcessor checks the first broker is reachable and then consumes the
// feed topic in a goroutine until ctx is done. feed.generated events trigger an
// immediate freshness check on checker.
func RunEventProcessor(ctx context.Context, cfg config.KafkaConfig, checker incidents.FreshnessChecker, logger *zap.Logger) error {
	if !cfg.Enabled() {
		return fmt.Errorf("no kafka brokers configured")
	}

	dialer := NewDialer(cfg)

	attempt := 0
	probe := func() error {
		attempt++
		logger.Info("Kafka connection attempt",
			zap.Int("attempt", attempt),
			zap.Int("of", connectAttempts))
		conn, err := dialer.DialContext(ctx, "tcp", cfg.Brokers[0])
		if err != nil {
			return err
		}
		return conn.Close()
	}
	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(connectWait), connectAttempts-1), ctx)
	if err := backoff.Retry(probe, policy); err != nil {
		return fmt.Errorf("connecting to kafka: %w", err)
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.Topic,
		MaxBytes: 10e6,
		Dialer:   dialer,
	})

	go func() {
		defer reader.Close()

		logger.Info("Kafka event processor started", zap.String("topic", cfg.Topic))
		consume(ctx, reader, checker, logger, readRetryWait)
	}()

	return nil
}

// consume reads messages until ctx is done. A failed read waits before the next
// attempt so a broken broker connection does not spin.
func consume(ctx context.Context, reader messageReader, checker incidents.FreshnessChecker, logger *zap.Logger, wait time.Duration) {
	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("Kafka read failed", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(wait):
			}
			continue
		}
		if err := incidents.HandleFeedEvent(ctx, msg.Value, checker, logger); err != nil {
			logger.Warn("Failed to handle feed event",
				zap.Int64("offset", msg.Offset),
				zap.Error(err))
		}
	}
}
