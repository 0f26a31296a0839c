package incidents

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingChecker struct {
	calls int
	err   error
}

func (c *countingChecker) TriggerCheck(_ context.Context) error {
	c.calls++
	return c.err
}

func TestNewFeedRefreshedEvent(t *testing.T) {
	now := time.Date(2024, 1, 15, 11, 0, 0, 0, time.FixedZone("CET", 3600))
	event := NewFeedRefreshedEvent("2024-01-15 10:00:00", 3, now)

	assert.Equal(t, EventFeedRefreshed, event.EventType)
	assert.Equal(t, "v1", event.SchemaVersion)
	assert.Equal(t, time.UTC, event.EventTime.Location())
	assert.True(t, event.EventTime.Equal(now))
	_, err := uuid.Parse(event.EventID)
	assert.NoError(t, err)

	payload, err := json.Marshal(event)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(payload, &raw))
	assert.Equal(t, "2024-01-15 10:00:00", raw["generated_at"])
	assert.EqualValues(t, 3, raw["total"])
}

func TestHandleFeedEventGenerated(t *testing.T) {
	checker := &countingChecker{}
	msg := []byte(`{"event_type":"feed.generated","event_id":"abc","generated_at":"2024-01-15 10:05:00"}`)

	require.NoError(t, HandleFeedEvent(context.Background(), msg, checker, zap.NewNop()))
	assert.Equal(t, 1, checker.calls)
}

func TestHandleFeedEventIgnoresOwnEvents(t *testing.T) {
	checker := &countingChecker{}
	payload, err := json.Marshal(NewFeedRefreshedEvent("2024-01-15 10:00:00", 1, time.Now()))
	require.NoError(t, err)

	require.NoError(t, HandleFeedEvent(context.Background(), payload, checker, zap.NewNop()))
	assert.Zero(t, checker.calls)
}

func TestHandleFeedEventErrors(t *testing.T) {
	checker := &countingChecker{}
	assert.Error(t, HandleFeedEvent(context.Background(), []byte("{"), checker, zap.NewNop()))
	assert.Zero(t, checker.calls)

	checker.err = errors.New("no successful load yet")
	msg := []byte(`{"event_type":"feed.generated","event_id":"abc"}`)
	err := HandleFeedEvent(context.Background(), msg, checker, zap.NewNop())
	assert.ErrorIs(t, err, checker.err)
}
