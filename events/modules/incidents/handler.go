package incidents

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// FreshnessChecker runs an immediate freshness check
type FreshnessChecker interface {
	TriggerCheck(ctx context.Context) error
}

// HandleFeedEvent processes one message from the feed topic. feed.generated
// events trigger a freshness check; every other event type is ignored, which
// includes the feed.refreshed events this service publishes itself.
func HandleFeedEvent(ctx context.Context, msg []byte, checker FreshnessChecker, logger *zap.Logger) error {
	var event FeedEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		return fmt.Errorf("failed to unmarshal FeedEvent: %w", err)
	}

	if event.EventType != EventFeedGenerated {
		return nil
	}

	logger.Info("Feed generated event received",
		zap.String("event_id", event.EventID),
		zap.String("generated_at", event.GeneratedAt))

	if err := checker.TriggerCheck(ctx); err != nil {
		return fmt.Errorf("freshness check for event %s: %w", event.EventID, err)
	}
	return nil
}
