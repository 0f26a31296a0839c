package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ortelius/railwatch-board/model"
	"github.com/ortelius/railwatch-board/util"
)

// recordingSink counts calls so tests can check that every render replaces the body
type recordingSink struct {
	texts   map[Slot]string
	rows    []model.IncidentRow
	notices []string
	errors  []string
	calls   int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{texts: map[Slot]string{}}
}

func (r *recordingSink) SetText(slot Slot, text string)   { r.texts[slot] = text; r.calls++ }
func (r *recordingSink) SetRows(rows []model.IncidentRow) { r.rows = rows; r.calls++ }
func (r *recordingSink) SetNotice(message string)         { r.notices = append(r.notices, message); r.calls++ }
func (r *recordingSink) SetError(message string)          { r.errors = append(r.errors, message); r.calls++ }

func TestRenderScenario(t *testing.T) {
	view := []model.Incident{
		{Network: "RED_X", Status: model.StatusRed, Summary: "delay A"},
		{Network: "RED_X", Status: model.StatusGreen, Description: "minor works here"},
	}
	sink := newRecordingSink()

	counters := Render(view, sink)

	assert.Equal(t, model.Counters{Total: 2, Red: 1, Yellow: 0}, counters)
	assert.Equal(t, "2", sink.texts[SlotTotal])
	assert.Equal(t, "1", sink.texts[SlotRed])
	assert.Equal(t, "0", sink.texts[SlotYellow])
	require.Len(t, sink.rows, 2)
	assert.Empty(t, sink.notices)

	assert.Equal(t, "Interrupción", sink.rows[0].Status)
	assert.Equal(t, "RED_X", sink.rows[0].Network)
	assert.Equal(t, "delay A", sink.rows[0].Summary)
	assert.Equal(t, "minor works here", sink.rows[1].Summary)
	assert.Equal(t, "minor works here", sink.rows[1].OriginalDescription)
	assert.Equal(t, "Subsanada", sink.rows[1].Status)
}

func TestRenderEmptyViewYieldsOnePlaceholder(t *testing.T) {
	board := NewBoard()
	board.SetRows([]model.IncidentRow{{Status: "x"}, {Status: "y"}})

	counters := Render(nil, board)
	snap := board.Snapshot()

	assert.Equal(t, model.Counters{}, counters)
	assert.Equal(t, BodyNotice, snap.Body.Kind)
	assert.Equal(t, NoResultsMessage, snap.Body.Message)
	assert.Equal(t, 1, snap.Body.RowCount())
	assert.Equal(t, "0", snap.Text(SlotTotal))
}

func TestRenderIsIdempotent(t *testing.T) {
	view := []model.Incident{
		{Status: model.StatusYellow, Network: model.NetworkAltaVelocidad, SeverityLevel: 7},
	}
	a, b := NewBoard(), NewBoard()
	Render(view, a)
	Render(view, a)
	Render(view, b)

	assert.Equal(t, b.Snapshot(), a.Snapshot())
	assert.Equal(t, 5, a.Snapshot().Body.Rows[0].Severity)
}

func TestRenderMissingSummaryAndDescription(t *testing.T) {
	sink := newRecordingSink()
	assert.NotPanics(t, func() {
		Render([]model.Incident{{Status: model.StatusBlue}}, sink)
	})
	require.Len(t, sink.rows, 1)
	assert.Equal(t, "", sink.rows[0].Summary)
	assert.Equal(t, "-", sink.rows[0].OriginalDescription)
	assert.Equal(t, 1, sink.rows[0].Severity)
	assert.Equal(t, "status-blue", sink.rows[0].StatusClass)
}

func TestCountersBounds(t *testing.T) {
	view := []model.Incident{
		{Status: model.StatusRed}, {Status: model.StatusRed}, {Status: model.StatusYellow},
		{Status: model.StatusBlue}, {Status: "UNKNOWN"},
	}
	c := Count(view)
	assert.Equal(t, 5, c.Total)
	assert.Equal(t, 2, c.Red)
	assert.Equal(t, 1, c.Yellow)
	assert.GreaterOrEqual(t, c.Total, c.Red)
	assert.GreaterOrEqual(t, c.Total, c.Yellow)
}

func TestRenderFreshnessAndError(t *testing.T) {
	loc, err := util.LoadDisplayZone("Europe/Madrid")
	require.NoError(t, err)

	board := NewBoard()
	assert.Equal(t, "2024-01-15 13:00:00", RenderFreshness("2024-01-15 12:00:00", loc, board))
	RenderLoadError(board)

	snap := board.Snapshot()
	assert.Equal(t, "2024-01-15 13:00:00", snap.Text(SlotLastUpdate))
	assert.Equal(t, BodyError, snap.Body.Kind)
	assert.Equal(t, LoadErrorMessage, snap.Body.Message)
	assert.Equal(t, 1, snap.Body.RowCount())
}

func TestBoardSnapshotIsACopy(t *testing.T) {
	board := NewBoard()
	board.SetRows([]model.IncidentRow{{Status: "a"}})
	snap := board.Snapshot()
	snap.Body.Rows[0].Status = "mutated"
	snap.Slots[SlotTotal] = "99"

	again := board.Snapshot()
	assert.Equal(t, "a", again.Body.Rows[0].Status)
	assert.Equal(t, "-", again.Text(SlotTotal))
	assert.Equal(t, BodyEmpty, NewBoard().Snapshot().Body.Kind)
}
