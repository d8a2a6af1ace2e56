//go:build unit

package availability_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"pms-calendar/internal/domain/availability"
	"pms-calendar/internal/domain/calendar"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	room, other := uuid.New(), uuid.New()
	occupancies := []availability.Occupancy{
		{RoomID: room, Stay: calendar.MustRange("2024-05-10", "2024-05-12")},
		{RoomID: other, Stay: calendar.MustRange("2024-05-01", "2024-05-31")},
	}
	blocks := []availability.BlockRange{
		{ID: uuid.New(), RoomID: room, Span: calendar.MustRange("2024-05-12", "2024-05-14"), Payload: "renovation"},
	}

	cases := []struct {
		name string
		date string
		want availability.State
	}{
		{name: "first day of booking is booked", date: "2024-05-10", want: availability.StateBooked},
		{name: "last day of booking is booked", date: "2024-05-12", want: availability.StateBooked},
		{name: "booking beats block on shared day", date: "2024-05-12", want: availability.StateBooked},
		{name: "block only", date: "2024-05-13", want: availability.StateBlocked},
		{name: "last day of block", date: "2024-05-14", want: availability.StateBlocked},
		{name: "day after block is open", date: "2024-05-15", want: availability.StateOpen},
		{name: "day before booking is open", date: "2024-05-09", want: availability.StateOpen},
	}

	idx := availability.NewIndex(occupancies, blocks)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := calendar.MustParseDate(tc.date)
			assert.Equal(t, tc.want, availability.Classify(d, room, occupancies, blocks))
			assert.Equal(t, tc.want, idx.Classify(room, d), "index must agree with the linear scan")
		})
	}
}

func TestIndex_Span(t *testing.T) {
	room := uuid.New()
	idx := availability.NewIndex(
		[]availability.Occupancy{{RoomID: room, Stay: calendar.MustRange("2024-05-02", "2024-05-02")}},
		[]availability.BlockRange{{RoomID: room, Span: calendar.MustRange("2024-05-03", "2024-05-03")}},
	)

	got := idx.Span(room, calendar.MustRange("2024-05-01", "2024-05-04"))

	assert.Equal(t, map[calendar.Date]availability.State{
		calendar.MustParseDate("2024-05-01"): availability.StateOpen,
		calendar.MustParseDate("2024-05-02"): availability.StateBooked,
		calendar.MustParseDate("2024-05-03"): availability.StateBlocked,
		calendar.MustParseDate("2024-05-04"): availability.StateOpen,
	}, got)
}

func TestIndex_FirstUnavailable(t *testing.T) {
	room := uuid.New()
	idx := availability.NewIndex(nil, []availability.BlockRange{
		{RoomID: room, Span: calendar.MustRange("2024-06-05", "2024-06-06")},
	})

	_, _, found := idx.FirstUnavailable(room, calendar.MustRange("2024-06-01", "2024-06-04"))
	assert.False(t, found)

	day, state, found := idx.FirstUnavailable(room, calendar.MustRange("2024-06-03", "2024-06-10"))
	assert.True(t, found)
	assert.Equal(t, "2024-06-05", day.String())
	assert.Equal(t, availability.StateBlocked, state)

	_, _, found = idx.FirstUnavailable(uuid.New(), calendar.MustRange("2024-06-01", "2024-06-30"))
	assert.False(t, found, "unknown room has nothing recorded")
}

func TestNewBlockReason(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trims spaces", input: "  maintenance ", want: "maintenance"},
		{name: "keeps a reason at the limit", input: strings.Repeat("x", 255), want: strings.Repeat("x", 255)},
		{name: "cuts ascii after the limit", input: strings.Repeat("x", 300), want: strings.Repeat("x", 255)},
		{
			name:  "cuts on a character boundary",
			input: strings.Repeat("a", 254) + "é-maintenance",
			want:  strings.Repeat("a", 254) + "é",
		},
		{name: "counts characters, not bytes", input: strings.Repeat("é", 255), want: strings.Repeat("é", 255)},
		{name: "multibyte overflow", input: strings.Repeat("床", 260), want: strings.Repeat("床", 255)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := string(availability.NewBlockReason(tc.input))
			assert.Equal(t, tc.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
