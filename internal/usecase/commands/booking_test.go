//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"pms-calendar/internal/domain/availability"
	"pms-calendar/internal/domain/booking"
	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/domain/room"
	"pms-calendar/internal/pkg/clock"
	"pms-calendar/internal/pkg/errs"
	"pms-calendar/internal/usecase/commands"
	"pms-calendar/internal/usecase/shared"
	"pms-calendar/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	store *memstore.Store
	clock *clock.MockClock
	uc    commands.BookingCommands
	room  *room.Room
	actor uuid.UUID
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()

	store := memstore.New()
	rm, err := room.NewRoom(uuid.New(), "Ocean 101", 4)
	require.NoError(t, err)
	store.AddRoom(rm)

	rate, err := pricing.NewRate(20000, 0)
	require.NoError(t, err)
	store.AddPriceRange(pricing.PriceRange{
		ID:      uuid.New(),
		RoomID:  rm.ID(),
		Span:    calendar.MustRange("2024-01-01", "2024-01-31"),
		Payload: rate,
	})

	clk := clock.NewMockClock(testNow)
	return &bookingFixture{
		store: store,
		clock: clk,
		uc:    commands.NewBookingUseCase(store, clk, pricing.NewDefaultPriceCalculator()),
		room:  rm,
		actor: uuid.New(),
	}
}

func (f *bookingFixture) request(start, end string) commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		RoomID:    f.room.ID(),
		Stay:      calendar.MustRange(start, end),
		GuestName: "Ada Lovelace",
		PartySize: 2,
	}
}

func (f *bookingFixture) book(t *testing.T, start, end string) uuid.UUID {
	t.Helper()
	res, err := f.uc.CreateBooking(context.Background(), f.request(start, end), f.actor, uuid.New())
	require.NoError(t, err)
	return res.BookingID
}

func TestBookingUseCase_CreateBooking(t *testing.T) {
	f := newBookingFixture(t)

	res, err := f.uc.CreateBooking(context.Background(), f.request("2024-01-10", "2024-01-12"), f.actor, uuid.New())

	require.NoError(t, err)
	assert.False(t, res.IsReplayed)

	bookings := f.store.Bookings()
	require.Len(t, bookings, 1)
	b := bookings[0]
	assert.Equal(t, res.BookingID, b.ID())
	assert.Equal(t, booking.StatusConfirmed, b.Status())
	// three nights at 200.00 for two guests
	assert.Equal(t, int64(120000), b.Total().Cents())
	assert.Equal(t, []uuid.UUID{f.room.ID()}, f.store.Locks)

	jobs := f.store.Notifications()
	require.Len(t, jobs, 1)
	assert.Equal(t, shared.KindAvailabilityUpdated, jobs[0].Kind)
	assert.Equal(t, f.room.ID().String(), jobs[0].PartitionKey)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(jobs[0].Payload, &payload))
	assert.Equal(t, availability.StateBooked.String(), payload["state"])
	assert.Equal(t, "2024-01-10", payload["startDate"])
	assert.Equal(t, "2024-01-12", payload["endDate"])
}

func TestBookingUseCase_CreateBooking_Idempotency(t *testing.T) {
	ctx := context.Background()

	t.Run("success: same key and request replays the booking", func(t *testing.T) {
		f := newBookingFixture(t)
		key := uuid.New()
		req := f.request("2024-01-10", "2024-01-12")

		first, err := f.uc.CreateBooking(ctx, req, f.actor, key)
		require.NoError(t, err)
		second, err := f.uc.CreateBooking(ctx, req, f.actor, key)
		require.NoError(t, err)

		assert.True(t, second.IsReplayed)
		assert.Equal(t, first.BookingID, second.BookingID)
		assert.Len(t, f.store.Bookings(), 1)
		assert.Len(t, f.store.Notifications(), 1)
	})

	t.Run("error: same key with a different request", func(t *testing.T) {
		f := newBookingFixture(t)
		key := uuid.New()

		_, err := f.uc.CreateBooking(ctx, f.request("2024-01-10", "2024-01-12"), f.actor, key)
		require.NoError(t, err)
		_, err = f.uc.CreateBooking(ctx, f.request("2024-01-20", "2024-01-21"), f.actor, key)

		require.ErrorIs(t, err, commands.ErrDuplicateBooking)
		assert.True(t, errs.Is(err, errs.ErrConflict))
		assert.Len(t, f.store.Bookings(), 1)
	})

	t.Run("success: keys are scoped per user", func(t *testing.T) {
		f := newBookingFixture(t)
		key := uuid.New()

		_, err := f.uc.CreateBooking(ctx, f.request("2024-01-10", "2024-01-12"), f.actor, key)
		require.NoError(t, err)
		res, err := f.uc.CreateBooking(ctx, f.request("2024-01-20", "2024-01-21"), uuid.New(), key)

		require.NoError(t, err)
		assert.False(t, res.IsReplayed)
		assert.Len(t, f.store.Bookings(), 2)
	})

	t.Run("error: key claimed by a different pending request", func(t *testing.T) {
		f := newBookingFixture(t)
		key := uuid.New()
		err := f.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, ierr := tx.Idempotency().TryInsert(ctx, key, f.actor, "POST /api/bookings", "other", testNow.Add(time.Hour))
			return ierr
		})
		require.NoError(t, err)

		_, err = f.uc.CreateBooking(ctx, f.request("2024-01-10", "2024-01-12"), f.actor, key)

		// a different hash is reported before the in-progress state
		require.ErrorIs(t, err, commands.ErrDuplicateBooking)
	})

	t.Run("success: expired key is reclaimed", func(t *testing.T) {
		f := newBookingFixture(t)
		key := uuid.New()
		err := f.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, ierr := tx.Idempotency().TryInsert(ctx, key, f.actor, "POST /api/bookings", "stale", testNow.Add(-time.Minute))
			return ierr
		})
		require.NoError(t, err)

		res, err := f.uc.CreateBooking(ctx, f.request("2024-01-10", "2024-01-12"), f.actor, key)

		require.NoError(t, err)
		assert.False(t, res.IsReplayed)
		assert.Len(t, f.store.Bookings(), 1)
	})

	t.Run("success: failed attempt leaves the key free", func(t *testing.T) {
		f := newBookingFixture(t)
		key := uuid.New()
		f.book(t, "2024-01-10", "2024-01-12")

		_, err := f.uc.CreateBooking(ctx, f.request("2024-01-11", "2024-01-13"), f.actor, key)
		assert.True(t, errs.Is(err, commands.ErrRoomUnavailable))

		res, err := f.uc.CreateBooking(ctx, f.request("2024-01-13", "2024-01-14"), f.actor, key)
		require.NoError(t, err)
		assert.False(t, res.IsReplayed)
	})
}

func TestBookingUseCase_CreateBooking_Errors(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		setup     func(*testing.T, *bookingFixture)
		req       func(*bookingFixture) commands.CreateBookingRequest
		wantErr   error
		wantClass error
	}{
		{
			name:      "error: overlapping confirmed booking",
			setup:     func(t *testing.T, f *bookingFixture) { f.book(t, "2024-01-10", "2024-01-12") },
			req:       func(f *bookingFixture) commands.CreateBookingRequest { return f.request("2024-01-12", "2024-01-14") },
			wantErr:   commands.ErrRoomUnavailable,
			wantClass: errs.ErrConflict,
		},
		{
			name: "error: blocked night inside the stay",
			setup: func(_ *testing.T, f *bookingFixture) {
				f.store.AddBlockRange(availability.BlockRange{
					ID:      uuid.New(),
					RoomID:  f.room.ID(),
					Span:    calendar.MustRange("2024-01-11", "2024-01-11"),
					Payload: availability.NewBlockReason("maintenance"),
				})
			},
			req:       func(f *bookingFixture) commands.CreateBookingRequest { return f.request("2024-01-10", "2024-01-12") },
			wantErr:   commands.ErrRoomUnavailable,
			wantClass: errs.ErrConflict,
		},
		{
			name: "error: unknown room",
			req: func(f *bookingFixture) commands.CreateBookingRequest {
				req := f.request("2024-01-10", "2024-01-12")
				req.RoomID = uuid.New()
				return req
			},
			wantErr:   commands.ErrRoomNotFound,
			wantClass: errs.ErrNotFound,
		},
		{
			name: "error: party larger than the room",
			req: func(f *bookingFixture) commands.CreateBookingRequest {
				req := f.request("2024-01-10", "2024-01-12")
				req.PartySize = 5
				return req
			},
			wantErr:   booking.ErrOverCapacity,
			wantClass: errs.ErrInvalidRange,
		},
		{
			name:      "error: stay starts in the past",
			req:       func(f *bookingFixture) commands.CreateBookingRequest { return f.request("2023-12-30", "2024-01-02") },
			wantErr:   booking.ErrStayInPast,
			wantClass: errs.ErrInvalidRange,
		},
		{
			name: "error: blank guest name",
			req: func(f *bookingFixture) commands.CreateBookingRequest {
				req := f.request("2024-01-10", "2024-01-12")
				req.GuestName = "   "
				return req
			},
			wantErr:   booking.ErrEmptyGuestName,
			wantClass: errs.ErrInvalidRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBookingFixture(t)
			if tc.setup != nil {
				tc.setup(t, f)
			}
			before := len(f.store.Bookings())

			res, err := f.uc.CreateBooking(ctx, tc.req(f), f.actor, uuid.New())

			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errs.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
			assert.True(t, errs.Is(err, tc.wantClass), "expected class %v, got %v", tc.wantClass, err)
			assert.Len(t, f.store.Bookings(), before)
		})
	}
}

func TestBookingUseCase_CreateBooking_CanceledBookingFreesDays(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()

	id := f.book(t, "2024-01-10", "2024-01-12")
	require.NoError(t, f.uc.CancelBooking(ctx, id))

	res, err := f.uc.CreateBooking(ctx, f.request("2024-01-10", "2024-01-12"), f.actor, uuid.New())
	require.NoError(t, err)
	assert.NotEqual(t, id, res.BookingID)
}

func TestBookingUseCase_CancelBooking(t *testing.T) {
	f := newBookingFixture(t)
	ctx := context.Background()
	id := f.book(t, "2024-01-10", "2024-01-12")
	f.clock.Add(time.Hour)

	require.NoError(t, f.uc.CancelBooking(ctx, id))

	bookings := f.store.Bookings()
	require.Len(t, bookings, 1)
	assert.Equal(t, booking.StatusCanceled, bookings[0].Status())
	assert.Equal(t, testNow.Add(time.Hour), bookings[0].UpdatedAt())

	jobs := f.store.Notifications()
	require.Len(t, jobs, 2)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(jobs[1].Payload, &payload))
	assert.Equal(t, availability.StateOpen.String(), payload["state"])
	assert.Equal(t, id.String(), payload["bookingId"])

	err := f.uc.CancelBooking(ctx, id)
	require.ErrorIs(t, err, booking.ErrAlreadyCanceled)
	assert.Len(t, f.store.Notifications(), 2)

	err = f.uc.CancelBooking(ctx, uuid.New())
	require.ErrorIs(t, err, commands.ErrBookingNotFound)
}
