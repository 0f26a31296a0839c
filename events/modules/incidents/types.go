// Package incidents defines the Kafka events exchanged about the incident feed.
package incidents

import "time"

// Event types carried on the feed topic
const (
	// EventFeedGenerated is published by the batch job that writes incidencias.json
	EventFeedGenerated = "feed.generated"
	// EventFeedRefreshed is published by this service after a successful reload
	EventFeedRefreshed = "feed.refreshed"

	schemaVersion = "v1"
)

// FeedEvent is the envelope for both feed event types. GeneratedAt is the
// freshness marker of the feed the event refers to.
type FeedEvent struct {
	EventType     string    `json:"event_type"`
	EventID       string    `json:"event_id"`
	EventTime     time.Time `json:"event_time"`
	SchemaVersion string    `json:"schema_version"`

	GeneratedAt string `json:"generated_at"`
	Total       int    `json:"total"`
}
