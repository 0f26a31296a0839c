// Package util - freshness marker formatting
//
//revive:disable-next-line:var-naming
package util

import (
	"fmt"
	"time"

	// Embedded zone database so Europe/Madrid resolves in minimal containers.
	_ "time/tzdata"
)

// MarkerLayout is the layout the feed producer writes generated_at in (UTC, no zone)
const MarkerLayout = "2006-01-02 15:04:05"

// DefaultDisplayZone is the zone the last-update slot is shown in
const DefaultDisplayZone = "Europe/Madrid"

var markerLayouts = []string{
	MarkerLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
}

// LoadDisplayZone resolves a zone name, defaulting to Europe/Madrid
func LoadDisplayZone(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultDisplayZone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load display timezone %q: %w", name, err)
	}
	return loc, nil
}

// ParseMarker interprets a generated_at marker as a UTC instant
func ParseMarker(marker string) (time.Time, error) {
	var lastErr error
	for _, layout := range markerLayouts {
		t, err := time.ParseInLocation(layout, marker, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// FormatMarker converts a UTC marker to loc as "YYYY-MM-DD HH:MM:SS".
// An empty marker yields "-" and an unparsable one is returned unmodified.
func FormatMarker(marker string, loc *time.Location) string {
	if marker == "" {
		return Placeholder
	}
	t, err := ParseMarker(marker)
	if err != nil {
		return marker
	}
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(MarkerLayout)
}
