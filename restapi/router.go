package restapi

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"go.uber.org/zap"

	"github.com/ortelius/railwatch-board/internal/dashboard"
	"github.com/ortelius/railwatch-board/internal/presenter"
	"github.com/ortelius/railwatch-board/restapi/modules/incidents"
	"github.com/ortelius/railwatch-board/restapi/modules/web"
)

// Deps are the objects the routes read from and act on
type Deps struct {
	Controller *dashboard.Controller
	Board      *presenter.Board
	Schema     graphql.Schema
	// Refresh is the auto-refresh period of the HTML page, 0 disables it
	Refresh time.Duration
	Logger  *zap.Logger
}

// SetupRoutes configures the HTML board, the REST API routes and the GraphQL endpoint.
func SetupRoutes(app *fiber.App, deps Deps) {
	app.Get("/", web.GetBoard(deps.Controller, deps.Board, deps.Refresh, deps.Logger))

	// API Group /api/v1
	api := app.Group("/api/v1")

	api.Post("/graphql", GraphQLHandler(deps.Schema))

	api.Get("/incidents", incidents.GetIncidents(deps.Controller))
	api.Get("/board", incidents.GetBoard(deps.Board))
	api.Put("/filters", incidents.PutFilters(deps.Controller))
	api.Post("/reload", incidents.PostReload(deps.Controller, deps.Logger))

	api.Get("/poller", incidents.GetPoller(deps.Controller))
	api.Post("/poller/stop", incidents.PostStopPoller(deps.Controller))

	deps.Logger.Info("API routes initialized successfully")
}
