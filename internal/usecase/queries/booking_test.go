//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"pms-calendar/internal/domain/booking"
	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/pkg/errs"
	"pms-calendar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture()
	rm := f.addRoom(t, "A 101")
	guest, err := booking.NewGuestName("Grace Hopper")
	require.NoError(t, err)
	b := booking.ReconstructBooking(uuid.New(), rm.ID(), calendar.MustRange("2024-01-10", "2024-01-12"), guest, 2,
		booking.StatusConfirmed, pricing.NewMoney(60000), booking.NewNote("late arrival"), testNow, testNow)
	f.store.AddBooking(b)
	q := queries.NewBookingQueries(f.store)

	got, err := q.GetByID(ctx, b.ID())
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", got.GuestName)
	assert.Equal(t, "confirmed", got.Status)
	assert.Equal(t, int64(60000), got.TotalCents)
	require.NotNil(t, got.Note)
	assert.Equal(t, "late arrival", *got.Note)

	_, err = q.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, queries.ErrBookingNotFound)
}

func TestBookingQueries_ListByRoom(t *testing.T) {
	ctx := context.Background()
	f := newQueryFixture()
	rm := f.addRoom(t, "A 101")
	other := f.addRoom(t, "B 201")
	guest, err := booking.NewGuestName("Grace Hopper")
	require.NoError(t, err)

	var ids []uuid.UUID
	for i := range 5 {
		createdAt := testNow.Add(time.Duration(i) * time.Minute)
		start := calendar.MustParseDate("2024-01-10").AddDays(i * 3)
		stay, err := calendar.NewDateRange(start, start.AddDays(1))
		require.NoError(t, err)
		b := booking.ReconstructBooking(uuid.New(), rm.ID(), stay, guest, 1, booking.StatusConfirmed,
			pricing.NewMoney(0), booking.NewNote(""), createdAt, createdAt)
		f.store.AddBooking(b)
		ids = append(ids, b.ID())
	}
	f.addBooking(t, other.ID(), "2024-01-10", "2024-01-11", booking.StatusConfirmed)
	q := queries.NewBookingQueries(f.store)

	page1, next, err := q.ListByRoom(ctx, rm.ID(), nil, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	require.NotNil(t, next)
	assert.Equal(t, ids[4], page1[0].ID, "newest first")
	assert.Equal(t, ids[3], page1[1].ID)

	page2, next, err := q.ListByRoom(ctx, rm.ID(), next, 2)
	require.NoError(t, err)
	require.Len(t, page2, 2)
	assert.Equal(t, ids[2], page2[0].ID)
	require.NotNil(t, next)

	page3, next, err := q.ListByRoom(ctx, rm.ID(), next, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, ids[0], page3[0].ID)
	assert.Nil(t, next)

	_, _, err = q.ListByRoom(ctx, rm.ID(), &queries.Cursor{After: "not-a-cursor"}, 2)
	assert.True(t, errs.Is(err, queries.ErrInvalidCursor))

	_, _, err = q.ListByRoom(ctx, uuid.New(), nil, 2)
	require.ErrorIs(t, err, queries.ErrRoomNotFound)
}
