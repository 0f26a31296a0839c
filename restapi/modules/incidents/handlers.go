// Package incidents provides the REST handlers over the incident board.
package incidents

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ortelius/railwatch-board/internal/dashboard"
	"github.com/ortelius/railwatch-board/internal/filter"
	"github.com/ortelius/railwatch-board/internal/presenter"
	"github.com/ortelius/railwatch-board/model"
)

func criteriaFromQuery(c *fiber.Ctx) filter.Criteria {
	return filter.Criteria{
		Search:  c.Query("q"),
		Network: c.Query("network"),
		Status:  c.Query("status"),
	}
}

// GetIncidents returns an ad-hoc filtered view. The shared criteria driving
// the board are not changed.
func GetIncidents(ctrl *dashboard.Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view, counters := ctrl.View(criteriaFromQuery(c))

		return c.JSON(model.IncidentsResponse{
			GeneratedAt: ctrl.Marker(),
			LastUpdate:  ctrl.LastUpdate(),
			Counters:    counters,
			Rows:        presenter.Rows(view),
		})
	}
}

// GetBoard returns what the board currently shows
func GetBoard(board *presenter.Board) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(board.Snapshot())
	}
}

// PutFilters replaces the shared filter criteria and re-renders the board
func PutFilters(ctrl *dashboard.Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req model.FilterRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid request body: " + err.Error(),
			})
		}

		criteria := filter.Criteria{
			Search:  req.Search,
			Network: req.Network,
			Status:  req.Status,
		}
		counters := ctrl.SetCriteria(criteria)

		return c.JSON(fiber.Map{
			"criteria": req,
			"counters": counters,
		})
	}
}

// PostReload runs a full load. A failure leaves the previous dataset in place
// and the board showing the error row.
func PostReload(ctrl *dashboard.Controller, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := ctrl.Load(c.UserContext()); err != nil {
			logger.Warn("Manual reload failed", zap.Error(err))
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(fiber.Map{
			"success":      true,
			"generated_at": ctrl.Marker(),
			"last_update":  ctrl.LastUpdate(),
		})
	}
}

// GetPoller reports the freshness poller state
func GetPoller(ctrl *dashboard.Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := ctrl.PollerStatus()
		return c.JSON(fiber.Map{
			"running":  status.Running,
			"interval": status.Interval.String(),
			"ticks":    status.Ticks,
			"failures": status.Failures,
		})
	}
}

// PostStopPoller stops the freshness poller. Stopping a stopped poller is a no-op.
func PostStopPoller(ctrl *dashboard.Controller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctrl.StopPoller()
		return c.JSON(fiber.Map{"running": ctrl.PollerStatus().Running})
	}
}
