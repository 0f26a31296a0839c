// Package presenter - rendering of counters and rows
package presenter

import (
	"strconv"
	"time"

	"github.com/ortelius/railwatch-board/model"
	"github.com/ortelius/railwatch-board/util"
)

const (
	// NoResultsMessage is shown when the filtered view is empty.
	NoResultsMessage = "No hay incidencias que coincidan con los filtros"
	// LoadErrorMessage is shown when the feed could not be loaded.
	LoadErrorMessage = "Error cargando datos"
)

// Columns are the table headers in display order
var Columns = []string{
	"Estado",
	"Red",
	"Línea",
	"Estaciones",
	"Resumen",
	"Descripción original",
	"Gravedad",
	"Inicio",
}

// Count computes the counters strictly from the given view
func Count(view []model.Incident) model.Counters {
	c := model.Counters{Total: len(view)}
	for i := range view {
		switch view[i].Status {
		case model.StatusRed:
			c.Red++
		case model.StatusYellow:
			c.Yellow++
		}
	}
	return c
}

// Row builds the display row for one incident
func Row(inc model.Incident) model.IncidentRow {
	return model.IncidentRow{
		StatusCode:          string(inc.Status),
		Status:              util.DisplayStatus(inc),
		StatusClass:         inc.Status.CSSClass(),
		Network:             util.DisplayNetwork(inc),
		Line:                util.DisplayLine(inc),
		Nodes:               util.DisplayNodes(inc),
		Summary:             util.DisplaySummary(inc),
		OriginalDescription: util.DisplayOriginalDescription(inc),
		Severity:            util.DisplaySeverity(inc),
		StartDate:           util.DisplayStartDate(inc),
	}
}

// Rows builds one row per incident, in view order
func Rows(view []model.Incident) []model.IncidentRow {
	rows := make([]model.IncidentRow, 0, len(view))
	for i := range view {
		rows = append(rows, Row(view[i]))
	}
	return rows
}

// Render writes the counters and the table body for view to sink.
// It is a total function of view: calling it twice yields the same output.
func Render(view []model.Incident, sink Sink) model.Counters {
	counters := Count(view)

	sink.SetText(SlotTotal, strconv.Itoa(counters.Total))
	sink.SetText(SlotRed, strconv.Itoa(counters.Red))
	sink.SetText(SlotYellow, strconv.Itoa(counters.Yellow))

	if len(view) == 0 {
		sink.SetNotice(NoResultsMessage)
		return counters
	}
	sink.SetRows(Rows(view))
	return counters
}

// RenderFreshness writes the formatted marker to the last-update slot
func RenderFreshness(marker string, loc *time.Location, sink Sink) string {
	text := util.FormatMarker(marker, loc)
	sink.SetText(SlotLastUpdate, text)
	return text
}

// RenderLoadError replaces the table body with the load error row
func RenderLoadError(sink Sink) {
	sink.SetError(LoadErrorMessage)
}
