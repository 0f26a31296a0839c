// Package web serves the HTML incident board.
package web

import (
	"bytes"
	"html/template"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ortelius/railwatch-board/internal/dashboard"
	"github.com/ortelius/railwatch-board/internal/filter"
	"github.com/ortelius/railwatch-board/internal/presenter"
	"github.com/ortelius/railwatch-board/model"
	"github.com/ortelius/railwatch-board/util"
)

var funcMap = template.FuncMap{
	"slot": func(s presenter.Snapshot, name string) string {
		return s.Text(presenter.Slot(name))
	},
	// dots expands a severity into one flag per unit, true when filled
	"dots": func(severity int) []bool {
		out := make([]bool, util.MaxSeverity)
		for i := range out {
			out[i] = i < severity
		}
		return out
	},
}

var boardTmpl = template.Must(template.New("page").Funcs(funcMap).Parse(tmplBase + tmplBoard))

type pageData struct {
	Board          presenter.Snapshot
	Criteria       filter.Criteria
	Columns        []string
	Networks       []model.Network
	Statuses       []model.Status
	RefreshSeconds int
}

// GetBoard renders the dashboard page. When any of q, network or status is in
// the query string the shared filter criteria are replaced first, exactly as
// the filter controls would.
func GetBoard(ctrl *dashboard.Controller, board *presenter.Board, refresh time.Duration, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		args := c.Context().QueryArgs()
		if args.Has("q") || args.Has("network") || args.Has("status") {
			ctrl.SetCriteria(filter.Criteria{
				Search:  c.Query("q"),
				Network: c.Query("network"),
				Status:  c.Query("status"),
			})
		}

		data := pageData{
			Board:          board.Snapshot(),
			Criteria:       ctrl.Criteria(),
			Columns:        presenter.Columns,
			Networks:       model.Networks,
			Statuses:       model.Statuses,
			RefreshSeconds: int(refresh / time.Second),
		}

		var buf bytes.Buffer
		if err := boardTmpl.ExecuteTemplate(&buf, "base", data); err != nil {
			logger.Error("template error", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}

		c.Type("html", "utf-8")
		return c.Send(buf.Bytes())
	}
}
