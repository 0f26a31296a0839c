package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "railwatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 60*time.Second, cfg.Feed.PollInterval)
	assert.Equal(t, "Europe/Madrid", cfg.Display.Timezone)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.False(t, cfg.Kafka.Enabled())
}

func TestLoadMissingFileIsOptional(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(t, err)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, `
server:
  port: "8081"
feed:
  url: https://example.org/incidencias.json
  poll_interval: 30s
search:
  fold_accents: true
kafka:
  brokers: ["kafka:9092"]
  topic: feed-events
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "https://example.org/incidencias.json", cfg.Feed.URL)
	assert.Equal(t, 30*time.Second, cfg.Feed.PollInterval)
	assert.True(t, cfg.Search.FoldAccents)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, "feed-events", cfg.Kafka.Topic)
	// untouched sections keep defaults
	assert.Equal(t, "Europe/Madrid", cfg.Display.Timezone)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FEED_URL", "http://feed.local/incidencias.json")
	t.Setenv("POLL_INTERVAL", "5s")
	t.Setenv("KAFKA_BROKERS", "a:9092, b:9092,")
	t.Setenv("SEARCH_FOLD_ACCENTS", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://feed.local/incidencias.json", cfg.Feed.URL)
	assert.Equal(t, 5*time.Second, cfg.Feed.PollInterval)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Search.FoldAccents)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("POLL_INTERVAL", "soon")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Display.Timezone = "Nowhere/Special"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Feed.URL = " "
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Feed.PollInterval = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Kafka.Brokers = []string{"k:9092"}
	cfg.Kafka.Topic = ""
	assert.Error(t, cfg.Validate())
}

func TestLoadBadYAML(t *testing.T) {
	path := writeFile(t, "feed: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestInitLogger(t *testing.T) {
	assert.NotNil(t, InitLogger("debug"))
	assert.NotNil(t, InitLogger("not-a-level"))
}
