//go:build unit

package booking_test

import (
	"testing"
	"time"

	"pms-calendar/internal/domain/booking"
	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/pkg/clock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServices(now string) *booking.Services {
	return &booking.Services{
		Clock:           clock.NewMockClock(calendar.MustParseDate(now).Time().Add(10 * time.Hour)),
		PriceCalculator: pricing.NewDefaultPriceCalculator(),
	}
}

func dailyRates(t *testing.T, span calendar.DateRange, cents int64) pricing.DayRates {
	t.Helper()
	rate, err := pricing.NewRate(cents, 0)
	require.NoError(t, err)
	out := pricing.DayRates{}
	for _, d := range span.Days() {
		out[d] = rate
	}
	return out
}

func TestNewBooking(t *testing.T) {
	room := booking.RoomSpec{ID: uuid.New(), Capacity: 4}
	guest, err := booking.NewGuestName("Ada Lovelace")
	require.NoError(t, err)
	stay := calendar.MustRange("2024-07-01", "2024-07-02")
	daily := dailyRates(t, stay, 10000)

	cases := []struct {
		name      string
		now       string
		stay      calendar.DateRange
		partySize int
		wantErr   error
		wantTotal int64
	}{
		{name: "priced with surcharge above three guests", now: "2024-06-01", stay: stay, partySize: 4, wantTotal: 88000},
		{name: "small party", now: "2024-06-01", stay: stay, partySize: 2, wantTotal: 40000},
		{name: "stay starting today is allowed", now: "2024-07-01", stay: stay, partySize: 1, wantTotal: 20000},
		{name: "stay in the past", now: "2024-07-02", stay: stay, partySize: 2, wantErr: booking.ErrStayInPast},
		{name: "empty party", now: "2024-06-01", stay: stay, partySize: 0, wantErr: booking.ErrInvalidPartySize},
		{name: "party over capacity", now: "2024-06-01", stay: stay, partySize: 5, wantErr: booking.ErrOverCapacity},
		{name: "zero stay", now: "2024-06-01", stay: calendar.DateRange{}, partySize: 2, wantErr: calendar.ErrInvalidDate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, quote, err := booking.NewBooking(newServices(tc.now), room, tc.stay, guest, tc.partySize, daily, booking.NewNote(""))
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTotal, b.Total().Cents())
			assert.Equal(t, b.Total(), quote.Total)
			assert.Equal(t, booking.StatusConfirmed, b.Status())
			assert.Equal(t, room.ID, b.RoomID())
			assert.NotEqual(t, uuid.Nil, b.ID())
		})
	}
}

func TestBooking_Cancel(t *testing.T) {
	b := booking.ReconstructBooking(uuid.New(), uuid.New(), calendar.MustRange("2024-07-01", "2024-07-03"),
		booking.GuestName{}, 2, booking.StatusConfirmed, pricing.NewMoney(100), booking.NewNote(""), time.Time{}, time.Time{})
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, b.Cancel(now))
	assert.False(t, b.IsActive())
	assert.Equal(t, now, b.UpdatedAt())

	require.ErrorIs(t, b.Cancel(now), booking.ErrAlreadyCanceled)
}

func TestOccupancies_SkipsCanceled(t *testing.T) {
	room := uuid.New()
	active := booking.ReconstructBooking(uuid.New(), room, calendar.MustRange("2024-07-01", "2024-07-03"),
		booking.GuestName{}, 2, booking.StatusConfirmed, pricing.Money{}, booking.Note{}, time.Time{}, time.Time{})
	canceled := booking.ReconstructBooking(uuid.New(), room, calendar.MustRange("2024-07-05", "2024-07-06"),
		booking.GuestName{}, 2, booking.StatusCanceled, pricing.Money{}, booking.Note{}, time.Time{}, time.Time{})

	got := booking.Occupancies([]*booking.Booking{active, canceled})

	require.Len(t, got, 1)
	assert.Equal(t, active.Stay(), got[0].Stay)
}

func TestNewGuestName(t *testing.T) {
	_, err := booking.NewGuestName("  ")
	require.ErrorIs(t, err, booking.ErrEmptyGuestName)

	g, err := booking.NewGuestName(" Grace ")
	require.NoError(t, err)
	assert.Equal(t, "Grace", g.String())
}
