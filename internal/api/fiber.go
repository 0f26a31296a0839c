// Package api builds the Fiber application serving the board.
package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ortelius/railwatch-board/graphql"
	"github.com/ortelius/railwatch-board/restapi"
)

// Options configure NewFiberApp
type Options struct {
	AllowOrigins string
	// Gatherer backs /metrics, nil uses the default registry
	Gatherer prometheus.Gatherer
	// RequestLog enables the per-request access log
	RequestLog bool
}

// NewFiberApp creates and configures a Fiber app with the HTML board, REST and GraphQL routes
func NewFiberApp(deps restapi.Deps, opts Options) (*fiber.App, error) {
	schema, err := graphql.CreateSchema(deps.Controller)
	if err != nil {
		return nil, err
	}
	deps.Schema = schema

	app := fiber.New(fiber.Config{
		AppName:     "railwatch-board API v1.0",
		BodyLimit:   1 * 1024 * 1024, // 1MB
		ReadTimeout: 60 * time.Second,
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))

	allowOrigins := opts.AllowOrigins
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Requested-With",
		AllowMethods: "GET, POST, HEAD, PUT, OPTIONS",
	}))

	app.Use(func(c *fiber.Ctx) error {
		c.Locals("graphql_op", "-")
		return c.Next()
	})
	if opts.RequestLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${status} - ${latency} ${method} ${path} ${locals:graphql_op}\n",
		}))
	}

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	restapi.SetupRoutes(app, deps)

	return app, nil
}
