package calendar

import (
	"pms-calendar/internal/pkg/errs"
)

var ErrInvalidRange = errs.Class("range start is after its end", errs.ErrInvalidRange)

// DateRange is a closed interval of days: both Start and End belong to it.
type DateRange struct {
	start Date
	end   Date
}

func NewDateRange(start, end Date) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrInvalidDate
	}
	if start.After(end) {
		return DateRange{}, errs.Mark(errs.Newf("range %s..%s", start, end), ErrInvalidRange)
	}
	return DateRange{start: start, end: end}, nil
}

// ParseDateRange parses two ISO dates, as received from query strings and request bodies.
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

func MustRange(start, end string) DateRange {
	r, err := ParseDateRange(start, end)
	if err != nil {
		panic(err)
	}
	return r
}

func SingleDay(d Date) DateRange {
	return DateRange{start: d, end: d}
}

func (r DateRange) Start() Date  { return r.start }
func (r DateRange) End() Date    { return r.end }
func (r DateRange) IsZero() bool { return r.start.IsZero() }

// Len is the number of days in the range, counting both ends.
func (r DateRange) Len() int {
	return r.start.DaysUntil(r.end) + 1
}

func (r DateRange) Equal(other DateRange) bool {
	return r == other
}

func (r DateRange) Contains(d Date) bool {
	return !d.Before(r.start) && !d.After(r.end)
}

// Covers reports whether other lies entirely inside r.
func (r DateRange) Covers(other DateRange) bool {
	return r.Contains(other.start) && r.Contains(other.end)
}

// Overlaps uses closed-interval intersection: ranges sharing one day overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

// Intersect returns the shared days of r and other, if any.
func (r DateRange) Intersect(other DateRange) (DateRange, bool) {
	if !r.Overlaps(other) {
		return DateRange{}, false
	}
	return DateRange{start: MaxDate(r.start, other.start), end: MinDate(r.end, other.end)}, true
}

// Days enumerates every day from Start to End inclusive.
func (r DateRange) Days() []Date {
	if r.IsZero() {
		return nil
	}
	days := make([]Date, 0, r.Len())
	for d := r.start; !d.After(r.end); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days
}

func (r DateRange) String() string {
	return "[" + r.start.String() + ", " + r.end.String() + "]"
}
