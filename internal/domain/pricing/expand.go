package pricing

import (
	"pms-calendar/internal/domain/calendar"

	"github.com/google/uuid"
)

// DayRates is one room's price per calendar day.
type DayRates map[calendar.Date]Rate

// DailyIndex maps room to its DayRates.
type DailyIndex map[uuid.UUID]DayRates

// ExpandToDaily writes every day of every range into the index in slice
// order, so when two ranges cover the same day the later one wins.
func ExpandToDaily(ranges []PriceRange) DailyIndex {
	idx := make(DailyIndex)
	for _, r := range ranges {
		days, ok := idx[r.RoomID]
		if !ok {
			days = make(DayRates, r.Span.Len())
			idx[r.RoomID] = days
		}
		for _, d := range r.Span.Days() {
			days[d] = r.Payload
		}
	}
	return idx
}

// Clip returns the subset of rates whose day falls inside span.
func (r DayRates) Clip(span calendar.DateRange) DayRates {
	out := make(DayRates)
	for d, rate := range r {
		if span.Contains(d) {
			out[d] = rate
		}
	}
	return out
}
