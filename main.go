// package main provides the entry point for the railwatch-board microservice: it loads
// the incident feed, keeps it fresh and serves the HTML board, REST and GraphQL APIs.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ortelius/railwatch-board/config"
	incidentevents "github.com/ortelius/railwatch-board/events/modules/incidents"
	"github.com/ortelius/railwatch-board/internal/api"
	"github.com/ortelius/railwatch-board/internal/dashboard"
	"github.com/ortelius/railwatch-board/internal/feed"
	"github.com/ortelius/railwatch-board/internal/filter"
	"github.com/ortelius/railwatch-board/internal/kafka"
	"github.com/ortelius/railwatch-board/internal/presenter"
	"github.com/ortelius/railwatch-board/restapi"
	"github.com/ortelius/railwatch-board/util"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(config.GetEnvDefault("CONFIG_PATH", "railwatch.yaml"))
	if err != nil {
		// logger is not configured yet
		config.InitLogger("info").Fatal("Failed to load configuration", zap.Error(err))
	}

	logger := config.InitLogger(cfg.Log.Level)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc, err := util.LoadDisplayZone(cfg.Display.Timezone)
	if err != nil {
		logger.Fatal("Invalid display timezone", zap.Error(err))
	}

	client, err := feed.NewClient(cfg.Feed.URL, feed.WithUserAgent(cfg.Feed.UserAgent))
	if err != nil {
		logger.Fatal("Invalid feed URL", zap.Error(err))
	}

	board := presenter.NewBoard()
	dashCfg := dashboard.Config{
		Fetcher:      client,
		Sink:         board,
		Engine:       filter.NewEngine(filter.Options{FoldAccents: cfg.Search.FoldAccents}),
		Location:     loc,
		PollInterval: cfg.Feed.PollInterval,
		Metrics:      dashboard.NewMetrics(prometheus.DefaultRegisterer),
		Logger:       logger.Named("dashboard"),
	}

	var producer *incidentevents.FeedProducer
	if cfg.Kafka.Enabled() {
		producer = incidentevents.NewFeedProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, kafka.NewTransport(cfg.Kafka))
		defer producer.Close()
		dashCfg.Publisher = producer
	}

	ctrl, err := dashboard.NewController(dashCfg)
	if err != nil {
		logger.Fatal("Failed to create dashboard", zap.Error(err))
	}
	defer ctrl.Close()

	// A failed first load shows the error row; the board stays up for a manual reload.
	if err := ctrl.Start(ctx); err != nil {
		logger.Warn("Initial load failed", zap.Error(err))
	}

	if cfg.Kafka.Enabled() {
		if err := kafka.RunEventProcessor(ctx, cfg.Kafka, ctrl, logger.Named("kafka")); err != nil {
			logger.Warn("Kafka event processor not started", zap.Error(err))
		}
	}

	app, err := api.NewFiberApp(restapi.Deps{
		Controller: ctrl,
		Board:      board,
		Refresh:    cfg.Feed.PollInterval,
		Logger:     logger.Named("api"),
	}, api.Options{
		AllowOrigins: cfg.Server.AllowOrigins,
		RequestLog:   true,
	})
	if err != nil {
		logger.Fatal("Failed to create GraphQL schema", zap.Error(err))
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Warn("Server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info("Starting server",
		zap.String("port", cfg.Server.Port),
		zap.String("feed_url", cfg.Feed.URL),
		zap.Duration("poll_interval", cfg.Feed.PollInterval))
	logger.Info("GraphQL endpoint available at /api/v1/graphql")

	if err := app.Listen(":" + cfg.Server.Port); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Failed to start server", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}
