// Package availability classifies a room's calendar days as booked, blocked
// or open from the room's bookings and block ranges.
package availability

import (
	"strings"

	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/rangeset"

	"github.com/google/uuid"
)

type State string

const (
	StateOpen    State = "open"
	StateBooked  State = "booked"
	StateBlocked State = "blocked"
)

func (s State) String() string {
	return string(s)
}

// BlockReason annotates a block range. Reconciliation treats it as the
// range payload, so rewriting a block with a new reason updates it in place.
type BlockReason string

// MaxBlockReasonLength counts characters, not bytes.
const MaxBlockReasonLength = 255

// NewBlockReason trims s and cuts it after MaxBlockReasonLength characters.
func NewBlockReason(s string) BlockReason {
	s = strings.TrimSpace(s)
	n := 0
	for i := range s {
		if n == MaxBlockReasonLength {
			s = s[:i]
			break
		}
		n++
	}
	return BlockReason(s)
}

type BlockRange = rangeset.Range[BlockReason]

// Occupancy is the part of a booking availability cares about. Callers pass
// only bookings that still hold the room.
type Occupancy struct {
	RoomID uuid.UUID
	Stay   calendar.DateRange
}

// Classify answers for a single (room, day). Bookings win over blocks.
func Classify(date calendar.Date, roomID uuid.UUID, occupancies []Occupancy, blocks []BlockRange) State {
	for _, o := range occupancies {
		if o.RoomID == roomID && o.Stay.Contains(date) {
			return StateBooked
		}
	}
	for _, b := range blocks {
		if b.RoomID == roomID && b.Span.Contains(date) {
			return StateBlocked
		}
	}
	return StateOpen
}

// Index groups occupancies and blocks by room once so that a grid of many
// cells does not rescan every range per cell.
type Index struct {
	occupied map[uuid.UUID][]calendar.DateRange
	blocked  map[uuid.UUID][]calendar.DateRange
}

func NewIndex(occupancies []Occupancy, blocks []BlockRange) *Index {
	idx := &Index{
		occupied: make(map[uuid.UUID][]calendar.DateRange),
		blocked:  make(map[uuid.UUID][]calendar.DateRange),
	}
	for _, o := range occupancies {
		idx.occupied[o.RoomID] = append(idx.occupied[o.RoomID], o.Stay)
	}
	for _, b := range blocks {
		idx.blocked[b.RoomID] = append(idx.blocked[b.RoomID], b.Span)
	}
	return idx
}

func (idx *Index) Classify(roomID uuid.UUID, date calendar.Date) State {
	if anyContains(idx.occupied[roomID], date) {
		return StateBooked
	}
	if anyContains(idx.blocked[roomID], date) {
		return StateBlocked
	}
	return StateOpen
}

// Span classifies every day of span for roomID.
func (idx *Index) Span(roomID uuid.UUID, span calendar.DateRange) map[calendar.Date]State {
	out := make(map[calendar.Date]State, span.Len())
	for _, d := range span.Days() {
		out[d] = idx.Classify(roomID, d)
	}
	return out
}

// FirstUnavailable returns the earliest day of span that is not open.
func (idx *Index) FirstUnavailable(roomID uuid.UUID, span calendar.DateRange) (calendar.Date, State, bool) {
	for _, d := range span.Days() {
		if s := idx.Classify(roomID, d); s != StateOpen {
			return d, s, true
		}
	}
	return calendar.Date{}, StateOpen, false
}

func anyContains(spans []calendar.DateRange, d calendar.Date) bool {
	for _, s := range spans {
		if s.Contains(d) {
			return true
		}
	}
	return false
}
