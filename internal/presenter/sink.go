// Package presenter turns the filtered incident view into counters and table rows
// and writes them to a render Sink.
package presenter

import "github.com/ortelius/railwatch-board/model"

// Slot names a text display on the board
type Slot string

const (
	// SlotLastUpdate shows the formatted freshness marker.
	SlotLastUpdate Slot = "last-update"
	// SlotTotal shows the number of incidents in the filtered view.
	SlotTotal Slot = "total-incidencias"
	// SlotRed shows the number of interruptions in the filtered view.
	SlotRed Slot = "total-red"
	// SlotYellow shows the number of delay incidents in the filtered view.
	SlotYellow Slot = "total-yellow"
)

// Sink receives rendered output. Every call replaces what the slot or the table
// body held before; nothing is merged.
type Sink interface {
	SetText(slot Slot, text string)
	// SetRows replaces the table body with one row per incident.
	SetRows(rows []model.IncidentRow)
	// SetNotice replaces the table body with a single full-width informational row.
	SetNotice(message string)
	// SetError replaces the table body with a single full-width error row.
	SetError(message string)
}
