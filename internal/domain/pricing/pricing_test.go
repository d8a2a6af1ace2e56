//go:build unit

package pricing_test

import (
	"math"
	"testing"

	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rate(t *testing.T, cents int64) pricing.Rate {
	t.Helper()
	r, err := pricing.NewRate(cents, 0)
	require.NoError(t, err)
	return r
}

func TestExpandToDaily(t *testing.T) {
	room := uuid.New()

	t.Run("every day of the range gets the range price", func(t *testing.T) {
		idx := pricing.ExpandToDaily([]pricing.PriceRange{
			{ID: uuid.New(), RoomID: room, Span: calendar.MustRange("2024-03-01", "2024-03-03"), Payload: rate(t, 5000)},
		})

		require.Len(t, idx[room], 3)
		for _, day := range []string{"2024-03-01", "2024-03-02", "2024-03-03"} {
			assert.Equal(t, int64(5000), idx[room][calendar.MustParseDate(day)].Price.Cents(), day)
		}
		_, ok := idx[room][calendar.MustParseDate("2024-03-04")]
		assert.False(t, ok)
	})

	t.Run("later range wins on shared days", func(t *testing.T) {
		idx := pricing.ExpandToDaily([]pricing.PriceRange{
			{ID: uuid.New(), RoomID: room, Span: calendar.MustRange("2024-03-01", "2024-03-05"), Payload: rate(t, 5000)},
			{ID: uuid.New(), RoomID: room, Span: calendar.MustRange("2024-03-04", "2024-03-06"), Payload: rate(t, 7000)},
		})

		assert.Equal(t, int64(5000), idx[room][calendar.MustParseDate("2024-03-03")].Price.Cents())
		assert.Equal(t, int64(7000), idx[room][calendar.MustParseDate("2024-03-04")].Price.Cents())
		assert.Equal(t, int64(7000), idx[room][calendar.MustParseDate("2024-03-06")].Price.Cents())
	})

	t.Run("rooms are kept apart", func(t *testing.T) {
		other := uuid.New()
		idx := pricing.ExpandToDaily([]pricing.PriceRange{
			{ID: uuid.New(), RoomID: room, Span: calendar.MustRange("2024-03-01", "2024-03-01"), Payload: rate(t, 100)},
			{ID: uuid.New(), RoomID: other, Span: calendar.MustRange("2024-03-01", "2024-03-01"), Payload: rate(t, 200)},
		})

		assert.Len(t, idx, 2)
		assert.Equal(t, int64(100), idx[room][calendar.MustParseDate("2024-03-01")].Price.Cents())
		assert.Equal(t, int64(200), idx[other][calendar.MustParseDate("2024-03-01")].Price.Cents())
	})

	t.Run("clip keeps only requested days", func(t *testing.T) {
		idx := pricing.ExpandToDaily([]pricing.PriceRange{
			{ID: uuid.New(), RoomID: room, Span: calendar.MustRange("2024-03-01", "2024-03-10"), Payload: rate(t, 100)},
		})
		assert.Len(t, idx[room].Clip(calendar.MustRange("2024-03-09", "2024-03-20")), 2)
	})
}

func TestDefaultPriceCalculator_Quote(t *testing.T) {
	calc := pricing.NewDefaultPriceCalculator()
	stay := calendar.MustRange("2024-01-01", "2024-01-02").Days()
	daily := pricing.DayRates{
		stay[0]: rate(t, 10000),
		stay[1]: rate(t, 10000),
	}

	cases := []struct {
		name      string
		stay      []calendar.Date
		partySize int
		total     int64
		subtotal  int64
		surcharge bool
	}{
		{name: "party above threshold pays 10% per day, then times party", stay: stay, partySize: 4, subtotal: 22000, total: 88000, surcharge: true},
		{name: "party at threshold has no surcharge", stay: stay, partySize: 3, subtotal: 20000, total: 60000},
		{name: "small party", stay: stay, partySize: 2, subtotal: 20000, total: 40000},
		{name: "empty stay", stay: nil, partySize: 2, subtotal: 0, total: 0},
		{name: "zero party size is not validated", stay: stay, partySize: 0, subtotal: 20000, total: 0},
		{name: "negative party size is not validated", stay: stay, partySize: -1, subtotal: 20000, total: -20000},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := calc.Quote(tc.stay, daily, tc.partySize)
			assert.Equal(t, tc.total, q.Total.Cents())
			assert.Equal(t, tc.subtotal, q.Subtotal.Cents())
			assert.Equal(t, tc.surcharge, q.Surcharge)
			assert.Len(t, q.Nights, len(tc.stay))
		})
	}

	t.Run("missing days contribute zero", func(t *testing.T) {
		withGap := calendar.MustRange("2024-01-01", "2024-01-03").Days()
		q := calc.Quote(withGap, daily, 2)

		assert.Equal(t, int64(40000), q.Total.Cents())
		require.Len(t, q.Nights, 3)
		assert.False(t, q.Nights[2].Priced)
		assert.True(t, q.Nights[2].Charge.IsZero())
	})

	t.Run("threshold and percent are configurable", func(t *testing.T) {
		custom := &pricing.DefaultPriceCalculator{SurchargeThreshold: 1, SurchargePercent: 25}
		q := custom.Quote(stay[:1], daily, 2)
		assert.Equal(t, int64(25000), q.Total.Cents())
	})
}

func TestNewRate(t *testing.T) {
	_, err := pricing.NewRate(-1, 0)
	require.ErrorIs(t, err, pricing.ErrNegativeMoney)

	_, err = pricing.NewRate(100, math.NaN())
	require.ErrorIs(t, err, pricing.ErrInvalidPercentIncrement)

	r, err := pricing.NewRate(12345, 7.5)
	require.NoError(t, err)
	assert.Equal(t, "123.45", r.Price.String())
	assert.InDelta(t, 7.5, r.PercentIncrement, 0.0001)
}
