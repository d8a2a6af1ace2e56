// Package rangeset keeps a room's date ranges pairwise disjoint when a new
// range is written over them. Price ranges and block ranges both go through it.
package rangeset

import (
	"sort"

	"pms-calendar/internal/domain/calendar"

	"github.com/google/uuid"
)

// Range is a stored span of days for one room carrying a payload P.
type Range[P comparable] struct {
	ID      uuid.UUID
	RoomID  uuid.UUID
	Span    calendar.DateRange
	Payload P
}

// Plan is the set of edits that makes the new range win. Callers must apply
// all of it in one transaction: deletes, then updates, then creates.
type Plan[P comparable] struct {
	Updates []Range[P]
	Creates []Range[P]
	Deletes []uuid.UUID
}

func (p Plan[P]) IsEmpty() bool {
	return len(p.Updates) == 0 && len(p.Creates) == 0 && len(p.Deletes) == 0
}

// Reconcile computes the edits needed to write payload over span for roomID.
//
// Ranges are inclusive on both ends, so remainders of a cut range stop the
// day before span starts and resume the day after it ends. After the plan is
// applied the room's ranges touch but never share a day. An existing range
// with exactly the same bounds is updated in place, and left alone when its
// payload already matches.
func Reconcile[P comparable](roomID uuid.UUID, span calendar.DateRange, payload P, existing []Range[P]) (Plan[P], error) {
	if span.IsZero() {
		return Plan[P]{}, calendar.ErrInvalidDate
	}
	if span.Start().After(span.End()) {
		return Plan[P]{}, calendar.ErrInvalidRange
	}

	var plan Plan[P]
	exact := false

	for _, e := range existing {
		if e.RoomID != roomID || !e.Span.Overlaps(span) {
			continue
		}

		es, ee := e.Span.Start(), e.Span.End()
		switch {
		case e.Span.Equal(span):
			exact = true
			if e.Payload != payload {
				e.Payload = payload
				plan.Updates = append(plan.Updates, e)
			}

		case es.Before(span.Start()) && ee.After(span.End()):
			right := Range[P]{
				ID:      uuid.New(),
				RoomID:  e.RoomID,
				Span:    mustSpan(span.End().AddDays(1), ee),
				Payload: e.Payload,
			}
			e.Span = mustSpan(es, span.Start().AddDays(-1))
			plan.Updates = append(plan.Updates, e)
			plan.Creates = append(plan.Creates, right)

		case es.Before(span.Start()):
			e.Span = mustSpan(es, span.Start().AddDays(-1))
			plan.Updates = append(plan.Updates, e)

		case ee.After(span.End()):
			e.Span = mustSpan(span.End().AddDays(1), ee)
			plan.Updates = append(plan.Updates, e)

		default:
			plan.Deletes = append(plan.Deletes, e.ID)
		}
	}

	if !exact {
		plan.Creates = append(plan.Creates, Range[P]{
			ID:      uuid.New(),
			RoomID:  roomID,
			Span:    span,
			Payload: payload,
		})
	}

	return plan, nil
}

// Apply returns ranges with plan applied, sorted by start day. It is the
// in-memory counterpart of what a store does with a plan.
func Apply[P comparable](ranges []Range[P], plan Plan[P]) []Range[P] {
	deleted := make(map[uuid.UUID]struct{}, len(plan.Deletes))
	for _, id := range plan.Deletes {
		deleted[id] = struct{}{}
	}
	updated := make(map[uuid.UUID]Range[P], len(plan.Updates))
	for _, u := range plan.Updates {
		updated[u.ID] = u
	}

	out := make([]Range[P], 0, len(ranges)+len(plan.Creates))
	for _, r := range ranges {
		if _, gone := deleted[r.ID]; gone {
			continue
		}
		if u, ok := updated[r.ID]; ok {
			r = u
		}
		out = append(out, r)
	}
	out = append(out, plan.Creates...)

	SortByStart(out)
	return out
}

func SortByStart[P comparable](ranges []Range[P]) {
	sort.SliceStable(ranges, func(i, j int) bool {
		if ranges[i].RoomID != ranges[j].RoomID {
			return ranges[i].RoomID.String() < ranges[j].RoomID.String()
		}
		return ranges[i].Span.Start().Before(ranges[j].Span.Start())
	})
}

// FindOverlap returns the first pair of same-room ranges that share a day.
func FindOverlap[P comparable](ranges []Range[P]) (Range[P], Range[P], bool) {
	for i := range ranges {
		for j := i + 1; j < len(ranges); j++ {
			if ranges[i].RoomID == ranges[j].RoomID && ranges[i].Span.Overlaps(ranges[j].Span) {
				return ranges[i], ranges[j], true
			}
		}
	}
	var zero Range[P]
	return zero, zero, false
}

// Filter keeps the ranges of roomID that overlap span.
func Filter[P comparable](ranges []Range[P], roomID uuid.UUID, span calendar.DateRange) []Range[P] {
	var out []Range[P]
	for _, r := range ranges {
		if r.RoomID == roomID && r.Span.Overlaps(span) {
			out = append(out, r)
		}
	}
	return out
}

// bounds are derived from an already valid range, so they cannot invert.
func mustSpan(start, end calendar.Date) calendar.DateRange {
	r, err := calendar.NewDateRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}
