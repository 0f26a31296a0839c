// Package model - incident status codes
package model

import "strings"

// Status is the severity state of an incident
type Status string

const (
	// StatusRed means service is interrupted.
	StatusRed Status = "RED"
	// StatusYellow means trains run with delays.
	StatusYellow Status = "YELLOW"
	// StatusBlue means works or an alternative transport plan.
	StatusBlue Status = "BLUE"
	// StatusGreen means the incident has been resolved.
	StatusGreen Status = "GREEN"
)

// Statuses lists the known status codes in display order
var Statuses = []Status{StatusRed, StatusYellow, StatusBlue, StatusGreen}

var statusNames = map[Status]string{
	StatusRed:    "Interrupción",
	StatusYellow: "Retrasos",
	StatusBlue:   "Obras/Alternativa",
	StatusGreen:  "Subsanada",
}

// Label returns the human readable status name. Unknown codes are returned verbatim.
func (s Status) Label() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return string(s)
}

// CSSClass returns the badge class used by the HTML board (e.g. "status-red")
func (s Status) CSSClass() string {
	return "status-" + strings.ToLower(string(s))
}
