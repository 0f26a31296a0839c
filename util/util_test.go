package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ortelius/railwatch-board/model"
)

func TestDisplayFallbacks(t *testing.T) {
	inc := model.Incident{Network: "RED_X", Status: "PURPLE"}

	assert.Equal(t, "PURPLE", DisplayStatus(inc))
	assert.Equal(t, "RED_X", DisplayNetwork(inc))
	assert.Equal(t, "-", DisplayLine(inc))
	assert.Equal(t, "-", DisplayNodes(inc))
	assert.Equal(t, "", DisplaySummary(inc))
	assert.Equal(t, "-", DisplayOriginalDescription(inc))
	assert.Equal(t, 1, DisplaySeverity(inc))
	assert.Equal(t, "-", DisplayStartDate(inc))
}

func TestDisplayKnownCodes(t *testing.T) {
	inc := model.Incident{
		Network:      model.NetworkRodaliesCatalunya,
		Status:       model.StatusRed,
		LineAffected: "R2 Sud",
		Nodes:        []string{"Sants", "Castelldefels"},
		StartDate:    "2024-01-15",
	}

	assert.Equal(t, "Interrupción", DisplayStatus(inc))
	assert.Equal(t, "Rodalies Catalunya", DisplayNetwork(inc))
	assert.Equal(t, "R2 Sud", DisplayLine(inc))
	assert.Equal(t, "Sants, Castelldefels", DisplayNodes(inc))
	assert.Equal(t, "2024-01-15", DisplayStartDate(inc))
}

func TestDisplaySummary(t *testing.T) {
	long := strings.Repeat("á", 150)

	assert.Equal(t, "corte", DisplaySummary(model.Incident{Summary: "corte", Description: long}))
	got := DisplaySummary(model.Incident{Description: long})
	assert.Equal(t, 100, len([]rune(got)))
	assert.Equal(t, "short", DisplaySummary(model.Incident{Description: "short"}))
}

func TestDisplayOriginalDescription(t *testing.T) {
	assert.Equal(t, "orig", DisplayOriginalDescription(model.Incident{DescripcionOriginal: "orig", Description: "desc"}))
	assert.Equal(t, "desc", DisplayOriginalDescription(model.Incident{Description: "desc"}))
}

func TestDisplaySeverityClamp(t *testing.T) {
	cases := map[int]int{-3: 1, 0: 1, 1: 1, 3: 3, 5: 5, 9: 5}
	for level, want := range cases {
		assert.Equal(t, want, DisplaySeverity(model.Incident{SeverityLevel: model.Severity(level)}), "level %d", level)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "", Truncate("abc", 0))
	assert.Equal(t, "ab", Truncate("abc", 2))
	assert.Equal(t, "abc", Truncate("abc", 10))
	assert.Equal(t, "ñá", Truncate("ñáé", 2))
}

func TestFormatMarkerMadrid(t *testing.T) {
	loc, err := LoadDisplayZone("")
	require.NoError(t, err)

	// CEST, UTC+2
	assert.Equal(t, "2024-06-15 14:00:00", FormatMarker("2024-06-15 12:00:00", loc))
	// CET, UTC+1
	assert.Equal(t, "2024-01-15 13:00:00", FormatMarker("2024-01-15 12:00:00", loc))
	// Crosses midnight
	assert.Equal(t, "2024-01-16 00:30:00", FormatMarker("2024-01-15 23:30:00", loc))
	assert.Equal(t, "2024-06-15 14:00:00", FormatMarker("2024-06-15T12:00:00", loc))
}

func TestFormatMarkerFallbacks(t *testing.T) {
	loc, err := LoadDisplayZone("Europe/Madrid")
	require.NoError(t, err)

	assert.Equal(t, "-", FormatMarker("", loc))
	assert.Equal(t, "ayer por la tarde", FormatMarker("ayer por la tarde", loc))
	assert.Equal(t, "2024-01-15 12:00:00", FormatMarker("2024-01-15 12:00:00", nil))
}

func TestLoadDisplayZoneInvalid(t *testing.T) {
	_, err := LoadDisplayZone("Mars/Olympus")
	assert.Error(t, err)
}

func TestParseMarker(t *testing.T) {
	ts, err := ParseMarker("2024-01-15 10:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), ts)

	_, err = ParseMarker("15/01/2024")
	assert.Error(t, err)
}

func TestFoldText(t *testing.T) {
	assert.Equal(t, "retrasos en la c4", NormalizeSearchTerm("  Retrasos en la C4 ", false))
	assert.Equal(t, "interrupción", FoldText("INTERRUPCIÓN", false))
	assert.Equal(t, "interrupcion", FoldText("INTERRUPCIÓN", true))
	assert.Equal(t, "cercanias", StripAccents("cercanías"))
}
