package calendar

const daysPerWeek = 7

// Cell is one slot of a month grid. Leading placeholders have Blank set and a zero Date.
type Cell struct {
	Date  Date
	Blank bool
}

// BuildMonthGrid lays out the month containing anchor as Sunday-first weeks.
// The first row starts with one blank per weekday before the 1st; the last
// row is left short rather than padded.
func BuildMonthGrid(anchor Date) [][]Cell {
	first := anchor.FirstOfMonth()
	lead := int(first.Weekday())
	total := lead + first.DaysInMonth()

	cells := make([]Cell, 0, total)
	for range lead {
		cells = append(cells, Cell{Blank: true})
	}
	for i := range first.DaysInMonth() {
		cells = append(cells, Cell{Date: first.AddDays(i)})
	}

	weeks := make([][]Cell, 0, (total+daysPerWeek-1)/daysPerWeek)
	for start := 0; start < len(cells); start += daysPerWeek {
		end := min(start+daysPerWeek, len(cells))
		weeks = append(weeks, cells[start:end:end])
	}
	return weeks
}

// MonthSpan is the full range of days in the month containing anchor.
func MonthSpan(anchor Date) DateRange {
	first := anchor.FirstOfMonth()
	return DateRange{start: first, end: first.AddDays(first.DaysInMonth() - 1)}
}
