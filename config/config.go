// Package config loads the service configuration from a YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/ortelius/railwatch-board/util"
)

// Config is the full service configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Feed    FeedConfig    `yaml:"feed"`
	Display DisplayConfig `yaml:"display"`
	Search  SearchConfig  `yaml:"search"`
	Log     LogConfig     `yaml:"log"`
	Kafka   KafkaConfig   `yaml:"kafka"`
}

// ServerConfig configures the HTTP listener
type ServerConfig struct {
	Port         string `yaml:"port"`
	AllowOrigins string `yaml:"allow_origins"`
}

// FeedConfig points at the incidencias.json feed
type FeedConfig struct {
	URL          string        `yaml:"url"`
	PollInterval time.Duration `yaml:"poll_interval"`
	UserAgent    string        `yaml:"user_agent"`
}

// DisplayConfig controls how values are shown on the board
type DisplayConfig struct {
	Timezone string `yaml:"timezone"`
}

// SearchConfig tunes the free-text filter
type SearchConfig struct {
	FoldAccents bool `yaml:"fold_accents"`
}

// LogConfig configures zap
type LogConfig struct {
	Level string `yaml:"level"`
}

// KafkaConfig enables feed events when Brokers is not empty
type KafkaConfig struct {
	Brokers  []string `yaml:"brokers"`
	Topic    string   `yaml:"topic"`
	GroupID  string   `yaml:"group_id"`
	Username string   `yaml:"username"`
	Password string   `yaml:"password"`
}

// Enabled reports whether Kafka is configured
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         "3000",
			AllowOrigins: "*",
		},
		Feed: FeedConfig{
			URL:          "http://localhost:8080/incidencias.json",
			PollInterval: 60 * time.Second,
			UserAgent:    "railwatch-board/1.0",
		},
		Display: DisplayConfig{Timezone: util.DefaultDisplayZone},
		Log:     LogConfig{Level: "info"},
		Kafka: KafkaConfig{
			Topic:   "incident-feed-events",
			GroupID: "railwatch-board",
		},
	}
}

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key) // get the env var
	if !ex {                     // not found return default
		return defVal
	}
	return val // return value for env var
}

// Load reads the YAML file at path (if it exists), applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse YAML: %w", err)
			}
		case os.IsNotExist(err):
			// optional file
		default:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Feed.URL = GetEnvDefault("FEED_URL", c.Feed.URL)
	c.Server.Port = GetEnvDefault("MS_PORT", c.Server.Port)
	c.Server.AllowOrigins = GetEnvDefault("ALLOW_ORIGINS", c.Server.AllowOrigins)
	c.Display.Timezone = GetEnvDefault("DISPLAY_TZ", c.Display.Timezone)
	c.Log.Level = GetEnvDefault("LOG_LEVEL", c.Log.Level)
	c.Kafka.Topic = GetEnvDefault("KAFKA_TOPIC", c.Kafka.Topic)
	c.Kafka.Username = GetEnvDefault("KAFKA_API_KEY", c.Kafka.Username)
	c.Kafka.Password = GetEnvDefault("KAFKA_API_SECRET", c.Kafka.Password)

	if v := GetEnvDefault("POLL_INTERVAL", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid POLL_INTERVAL %q: %w", v, err)
		}
		c.Feed.PollInterval = d
	}
	if v := GetEnvDefault("SEARCH_FOLD_ACCENTS", ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SEARCH_FOLD_ACCENTS %q: %w", v, err)
		}
		c.Search.FoldAccents = b
	}
	if v := GetEnvDefault("KAFKA_BROKERS", ""); v != "" {
		c.Kafka.Brokers = nil
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				c.Kafka.Brokers = append(c.Kafka.Brokers, b)
			}
		}
	}
	return nil
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Feed.URL) == "" {
		return fmt.Errorf("feed url is required")
	}
	if c.Feed.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.Feed.PollInterval)
	}
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if _, err := util.LoadDisplayZone(c.Display.Timezone); err != nil {
		return err
	}
	if c.Kafka.Enabled() && c.Kafka.Topic == "" {
		return fmt.Errorf("kafka topic is required when brokers are set")
	}
	return nil
}
