// Package presenter - Board, the in-memory sink read by the HTTP layer
package presenter

import (
	"sync"

	"github.com/ortelius/railwatch-board/model"
)

// BodyKind tells what the table body currently holds
type BodyKind string

const (
	// BodyEmpty is the state before anything was rendered.
	BodyEmpty BodyKind = "empty"
	// BodyRows holds one row per incident.
	BodyRows BodyKind = "rows"
	// BodyNotice holds a single informational row.
	BodyNotice BodyKind = "notice"
	// BodyError holds a single error row.
	BodyError BodyKind = "error"
)

// Body is the table body content
type Body struct {
	Kind    BodyKind            `json:"kind"`
	Rows    []model.IncidentRow `json:"rows,omitempty"`
	Message string              `json:"message,omitempty"`
}

// RowCount is the number of <tr> elements the body renders to
func (b Body) RowCount() int {
	switch b.Kind {
	case BodyRows:
		return len(b.Rows)
	case BodyNotice, BodyError:
		return 1
	default:
		return 0
	}
}

// Snapshot is a point-in-time copy of the board
type Snapshot struct {
	Slots map[Slot]string `json:"slots"`
	Body  Body            `json:"body"`
}

// Text returns a slot value, "-" when never written
func (s Snapshot) Text(slot Slot) string {
	if v, ok := s.Slots[slot]; ok {
		return v
	}
	return "-"
}

// Board is a concurrency-safe Sink holding the last rendered output
type Board struct {
	mu    sync.RWMutex
	slots map[Slot]string
	body  Body
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{
		slots: make(map[Slot]string),
		body:  Body{Kind: BodyEmpty},
	}
}

// SetText implements Sink
func (b *Board) SetText(slot Slot, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.slots[slot] = text
}

// SetRows implements Sink
func (b *Board) SetRows(rows []model.IncidentRow) {
	cp := make([]model.IncidentRow, len(rows))
	copy(cp, rows)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.body = Body{Kind: BodyRows, Rows: cp}
}

// SetNotice implements Sink
func (b *Board) SetNotice(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.body = Body{Kind: BodyNotice, Message: message}
}

// SetError implements Sink
func (b *Board) SetError(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.body = Body{Kind: BodyError, Message: message}
}

// Snapshot returns a copy safe to read without holding the lock
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	slots := make(map[Slot]string, len(b.slots))
	for k, v := range b.slots {
		slots[k] = v
	}
	body := b.body
	if body.Rows != nil {
		body.Rows = append([]model.IncidentRow(nil), body.Rows...)
	}
	return Snapshot{Slots: slots, Body: body}
}

var _ Sink = (*Board)(nil)
