// Package util provides the display and text helpers shared by the presenter,
// the filter engine and the API layers.
//
//revive:disable-next-line:var-naming
package util

import (
	"strings"

	"github.com/ortelius/railwatch-board/model"
)

// Placeholder is shown for absent values
const Placeholder = "-"

// SummaryFallbackRunes is how much of the description is shown when the summary is missing
const SummaryFallbackRunes = 100

// MaxSeverity is the number of dots in the severity indicator
const MaxSeverity = 5

// Each Display* function is a total function of one incident. The fallback
// order for every column is fixed here and nowhere else.

// DisplayStatus returns the status label, or the raw code when unknown
func DisplayStatus(inc model.Incident) string {
	return inc.Status.Label()
}

// DisplayNetwork returns the network label, or the raw code when unknown
func DisplayNetwork(inc model.Incident) string {
	return inc.Network.Label()
}

// DisplayLine returns line_affected or "-"
func DisplayLine(inc model.Incident) string {
	return orPlaceholder(inc.LineAffected)
}

// DisplayNodes joins the node list with ", " or returns "-" when empty
func DisplayNodes(inc model.Incident) string {
	if len(inc.Nodes) == 0 {
		return Placeholder
	}
	return strings.Join(inc.Nodes, ", ")
}

// DisplaySummary returns summary, then the first 100 characters of description, then "".
func DisplaySummary(inc model.Incident) string {
	if inc.Summary != "" {
		return inc.Summary
	}
	return Truncate(inc.Description, SummaryFallbackRunes)
}

// DisplayOriginalDescription returns descripcion_original, then description, then "-"
func DisplayOriginalDescription(inc model.Incident) string {
	if inc.DescripcionOriginal != "" {
		return inc.DescripcionOriginal
	}
	return orPlaceholder(inc.Description)
}

// DisplaySeverity returns the number of filled severity dots, clamped to 1..5.
// An absent level counts as 1.
func DisplaySeverity(inc model.Incident) int {
	switch {
	case inc.SeverityLevel < 1:
		return 1
	case inc.SeverityLevel > MaxSeverity:
		return MaxSeverity
	default:
		return int(inc.SeverityLevel)
	}
}

// DisplayStartDate returns start_date verbatim or "-"
func DisplayStartDate(inc model.Incident) string {
	return orPlaceholder(inc.StartDate)
}

// Truncate returns the first n characters (runes) of s
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
