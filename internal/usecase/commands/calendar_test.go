//go:build unit

package commands_test

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"testing"
	"time"

	"pms-calendar/internal/domain/availability"
	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/domain/room"
	"pms-calendar/internal/pkg/clock"
	"pms-calendar/internal/pkg/errs"
	"pms-calendar/internal/usecase/commands"
	"pms-calendar/internal/usecase/shared"
	"pms-calendar/tests/common/memstore"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

type calendarFixture struct {
	store *memstore.Store
	cache *memstore.PriceCache
	uc    commands.CalendarCommands
	room  *room.Room
}

func newCalendarFixture(t *testing.T) *calendarFixture {
	t.Helper()

	store := memstore.New()
	cache := memstore.NewPriceCache()
	rm, err := room.NewRoom(uuid.New(), "Ocean 101", 2)
	require.NoError(t, err)
	store.AddRoom(rm)

	return &calendarFixture{
		store: store,
		cache: cache,
		uc:    commands.NewCalendarUseCase(store, cache, clock.NewMockClock(testNow)),
		room:  rm,
	}
}

func (f *calendarFixture) seedPrice(t *testing.T, start, end string, cents int64) pricing.PriceRange {
	t.Helper()
	rate, err := pricing.NewRate(cents, 0)
	require.NoError(t, err)
	r := pricing.PriceRange{ID: uuid.New(), RoomID: f.room.ID(), Span: calendar.MustRange(start, end), Payload: rate}
	f.store.AddPriceRange(r)
	return r
}

type priceShape struct {
	Span  string
	Cents int64
}

func priceShapes(ranges []pricing.PriceRange) []priceShape {
	out := make([]priceShape, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, priceShape{Span: r.Span.String(), Cents: r.Payload.Price.Cents()})
	}
	return out
}

func TestCalendarUseCase_SetPrice(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		seed        func(*testing.T, *calendarFixture)
		span        calendar.DateRange
		cents       int64
		want        []priceShape
		wantResult  commands.RangeWriteResult
		wantEnqueue bool
	}{
		{
			name:        "success: empty room gets one range",
			span:        calendar.MustRange("2024-01-01", "2024-01-05"),
			cents:       10000,
			want:        []priceShape{{"[2024-01-01, 2024-01-05]", 10000}},
			wantResult:  commands.RangeWriteResult{Created: 1},
			wantEnqueue: true,
		},
		{
			name: "success: write inside an existing range splits it",
			seed: func(t *testing.T, f *calendarFixture) {
				f.seedPrice(t, "2024-01-01", "2024-01-10", 10000)
			},
			span:  calendar.MustRange("2024-01-03", "2024-01-05"),
			cents: 15000,
			want: []priceShape{
				{"[2024-01-01, 2024-01-02]", 10000},
				{"[2024-01-03, 2024-01-05]", 15000},
				{"[2024-01-06, 2024-01-10]", 10000},
			},
			wantResult:  commands.RangeWriteResult{Updated: 1, Created: 2},
			wantEnqueue: true,
		},
		{
			name: "success: covering write replaces several ranges",
			seed: func(t *testing.T, f *calendarFixture) {
				f.seedPrice(t, "2024-02-01", "2024-02-03", 8000)
				f.seedPrice(t, "2024-02-04", "2024-02-06", 9000)
			},
			span:        calendar.MustRange("2024-02-01", "2024-02-10"),
			cents:       12000,
			want:        []priceShape{{"[2024-02-01, 2024-02-10]", 12000}},
			wantResult:  commands.RangeWriteResult{Created: 1, Deleted: 2},
			wantEnqueue: true,
		},
		{
			name: "success: identical write changes nothing and notifies nobody",
			seed: func(t *testing.T, f *calendarFixture) {
				f.seedPrice(t, "2024-03-01", "2024-03-05", 10000)
			},
			span:        calendar.MustRange("2024-03-01", "2024-03-05"),
			cents:       10000,
			want:        []priceShape{{"[2024-03-01, 2024-03-05]", 10000}},
			wantResult:  commands.RangeWriteResult{},
			wantEnqueue: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newCalendarFixture(t)
			if tc.seed != nil {
				tc.seed(t, f)
			}

			result, err := f.uc.SetPrice(ctx, commands.SetPriceRequest{
				RoomID:     f.room.ID(),
				Span:       tc.span,
				PriceCents: tc.cents,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, *result)

			if diff := cmp.Diff(tc.want, priceShapes(f.store.PriceRanges(f.room.ID()))); diff != "" {
				t.Errorf("stored ranges mismatch (-want +got):\n%s", diff)
			}

			jobs := f.store.Notifications()
			if tc.wantEnqueue {
				require.Len(t, jobs, 1)
				assert.Equal(t, shared.KindPriceUpdated, jobs[0].Kind)
				assert.Equal(t, shared.TopicChannelManager, jobs[0].Topic)
				assert.Equal(t, f.room.ID().String(), jobs[0].PartitionKey)
				assert.Equal(t, testNow, jobs[0].RunAt)

				var payload map[string]any
				require.NoError(t, json.Unmarshal(jobs[0].Payload, &payload))
				assert.Equal(t, tc.span.Start().String(), payload["startDate"])
				assert.Equal(t, tc.span.End().String(), payload["endDate"])
				assert.EqualValues(t, tc.cents, payload["priceCents"])
				assert.NotContains(t, payload, "rangeId")
			} else {
				assert.Empty(t, jobs)
			}
			assert.Contains(t, f.cache.Invalidated, f.room.ID())
		})
	}
}

func TestCalendarUseCase_SetPrice_Errors(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		req       func(f *calendarFixture) commands.SetPriceRequest
		wantErr   error
		wantClass error
	}{
		{
			name: "error: unknown room",
			req: func(f *calendarFixture) commands.SetPriceRequest {
				return commands.SetPriceRequest{RoomID: uuid.New(), Span: calendar.MustRange("2024-01-01", "2024-01-02"), PriceCents: 100}
			},
			wantErr:   commands.ErrRoomNotFound,
			wantClass: errs.ErrNotFound,
		},
		{
			name: "error: negative price",
			req: func(f *calendarFixture) commands.SetPriceRequest {
				return commands.SetPriceRequest{RoomID: f.room.ID(), Span: calendar.MustRange("2024-01-01", "2024-01-02"), PriceCents: -1}
			},
			wantClass: errs.ErrInvalidRange,
		},
		{
			name: "error: zero span",
			req: func(f *calendarFixture) commands.SetPriceRequest {
				return commands.SetPriceRequest{RoomID: f.room.ID(), PriceCents: 100}
			},
			wantErr:   calendar.ErrInvalidDate,
			wantClass: errs.ErrInvalidRange,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newCalendarFixture(t)

			result, err := f.uc.SetPrice(ctx, tc.req(f))

			require.Error(t, err)
			assert.Nil(t, result)
			if tc.wantErr != nil {
				assert.True(t, errs.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
			}
			assert.True(t, errs.Is(err, tc.wantClass), "expected class %v, got %v", tc.wantClass, err)
			assert.Empty(t, f.store.PriceRanges(f.room.ID()))
			assert.Empty(t, f.store.Notifications())
		})
	}
}

func TestCalendarUseCase_SetPrice_OutboxFailureRollsBack(t *testing.T) {
	f := newCalendarFixture(t)
	f.seedPrice(t, "2024-01-01", "2024-01-10", 10000)
	f.store.FailEnqueue = errors.New("outbox unavailable")

	_, err := f.uc.SetPrice(context.Background(), commands.SetPriceRequest{
		RoomID:     f.room.ID(),
		Span:       calendar.MustRange("2024-01-03", "2024-01-05"),
		PriceCents: 15000,
	})

	require.Error(t, err)
	assert.Equal(t, []priceShape{{"[2024-01-01, 2024-01-10]", 10000}}, priceShapes(f.store.PriceRanges(f.room.ID())))
	assert.Empty(t, f.cache.Invalidated, "nothing committed, nothing to invalidate")
}

func TestCalendarUseCase_SetPrice_CacheInvalidationFailureIsIgnored(t *testing.T) {
	f := newCalendarFixture(t)
	f.cache.InvalidateErr = errors.New("redis down")

	result, err := f.uc.SetPrice(context.Background(), commands.SetPriceRequest{
		RoomID:     f.room.ID(),
		Span:       calendar.MustRange("2024-01-01", "2024-01-02"),
		PriceCents: 5000,
	})

	require.NoError(t, err)
	assert.True(t, result.Changed())
	assert.Len(t, f.store.PriceRanges(f.room.ID()), 1)
}

func TestCalendarUseCase_SetPrice_LocksRoom(t *testing.T) {
	f := newCalendarFixture(t)

	_, err := f.uc.SetPrice(context.Background(), commands.SetPriceRequest{
		RoomID:     f.room.ID(),
		Span:       calendar.MustRange("2024-01-01", "2024-01-02"),
		PriceCents: 5000,
	})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{f.room.ID()}, f.store.Locks)
}

// Random write sequences through the use case must leave the stored ranges
// disjoint and agree with a naive day-by-day model.
func TestCalendarUseCase_SetPrice_RandomSequences(t *testing.T) {
	ctx := context.Background()
	origin := calendar.MustParseDate("2024-01-01")
	rnd := rand.New(rand.NewSource(7))

	for iter := range 30 {
		f := newCalendarFixture(t)
		model := map[calendar.Date]int64{}

		for range 20 {
			start := origin.AddDays(rnd.Intn(45))
			span, err := calendar.NewDateRange(start, start.AddDays(rnd.Intn(10)))
			require.NoError(t, err)
			cents := int64(1+rnd.Intn(3)) * 1000

			_, err = f.uc.SetPrice(ctx, commands.SetPriceRequest{RoomID: f.room.ID(), Span: span, PriceCents: cents})
			require.NoError(t, err)
			for _, d := range span.Days() {
				model[d] = cents
			}
		}

		got := map[calendar.Date]int64{}
		for d, rate := range pricing.ExpandToDaily(f.store.PriceRanges(f.room.ID()))[f.room.ID()] {
			got[d] = rate.Price.Cents()
		}
		if diff := cmp.Diff(model, got, cmp.AllowUnexported(calendar.Date{})); diff != "" {
			t.Fatalf("iteration %d: daily prices diverge (-want +got):\n%s", iter, diff)
		}
	}
}

func TestCalendarUseCase_BlockDates(t *testing.T) {
	f := newCalendarFixture(t)
	ctx := context.Background()

	result, err := f.uc.BlockDates(ctx, commands.BlockDatesRequest{
		RoomID: f.room.ID(),
		Span:   calendar.MustRange("2024-04-01", "2024-04-10"),
		Reason: "  renovation  ",
	})
	require.NoError(t, err)
	assert.Equal(t, commands.RangeWriteResult{Created: 1}, *result)

	result, err = f.uc.BlockDates(ctx, commands.BlockDatesRequest{
		RoomID: f.room.ID(),
		Span:   calendar.MustRange("2024-04-05", "2024-04-06"),
		Reason: "deep clean",
	})
	require.NoError(t, err)
	assert.Equal(t, commands.RangeWriteResult{Updated: 1, Created: 2}, *result)

	blocks := f.store.BlockRanges(f.room.ID())
	require.Len(t, blocks, 3)
	assert.Equal(t, availability.BlockReason("renovation"), blocks[0].Payload)
	assert.Equal(t, availability.BlockReason("deep clean"), blocks[1].Payload)
	assert.Equal(t, "[2024-04-07, 2024-04-10]", blocks[2].Span.String())

	jobs := f.store.Notifications()
	require.Len(t, jobs, 2)
	for _, job := range jobs {
		assert.Equal(t, shared.KindAvailabilityUpdated, job.Kind)
		var payload map[string]any
		require.NoError(t, json.Unmarshal(job.Payload, &payload))
		assert.Equal(t, availability.StateBlocked.String(), payload["state"])
		assert.NotContains(t, payload, "rangeId")
	}
	assert.Empty(t, f.cache.Invalidated, "blocks do not touch cached prices")
}

func TestCalendarUseCase_BlockDates_ReasonIsPayload(t *testing.T) {
	f := newCalendarFixture(t)
	ctx := context.Background()
	span := calendar.MustRange("2024-06-01", "2024-06-03")

	testCases := []struct {
		name       string
		reason     string
		wantResult commands.RangeWriteResult
		wantJobs   int
	}{
		{name: "first block", reason: "painting", wantResult: commands.RangeWriteResult{Created: 1}, wantJobs: 1},
		{name: "same span, new reason updates in place", reason: "flooring", wantResult: commands.RangeWriteResult{Updated: 1}, wantJobs: 2},
		{name: "same span, same reason is a no-op", reason: " flooring ", wantResult: commands.RangeWriteResult{}, wantJobs: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := f.uc.BlockDates(ctx, commands.BlockDatesRequest{RoomID: f.room.ID(), Span: span, Reason: tc.reason})
			require.NoError(t, err)
			assert.Equal(t, tc.wantResult, *result)

			blocks := f.store.BlockRanges(f.room.ID())
			require.Len(t, blocks, 1)
			assert.Equal(t, availability.NewBlockReason(tc.reason), blocks[0].Payload)
			assert.Len(t, f.store.Notifications(), tc.wantJobs)
		})
	}
}

func TestCalendarUseCase_DeletePriceRange(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name    string
		target  func(f *calendarFixture, seeded pricing.PriceRange) (roomID, rangeID uuid.UUID)
		wantErr error
	}{
		{
			name: "success: range removed",
			target: func(f *calendarFixture, seeded pricing.PriceRange) (uuid.UUID, uuid.UUID) {
				return f.room.ID(), seeded.ID
			},
		},
		{
			name: "error: unknown range",
			target: func(f *calendarFixture, _ pricing.PriceRange) (uuid.UUID, uuid.UUID) {
				return f.room.ID(), uuid.New()
			},
			wantErr: commands.ErrRangeNotFound,
		},
		{
			name: "error: range belongs to another room",
			target: func(f *calendarFixture, seeded pricing.PriceRange) (uuid.UUID, uuid.UUID) {
				other, err := room.NewRoom(uuid.New(), "Garden 2", 2)
				if err != nil {
					panic(err)
				}
				f.store.AddRoom(other)
				return other.ID(), seeded.ID
			},
			wantErr: commands.ErrRangeNotFound,
		},
		{
			name: "error: unknown room",
			target: func(_ *calendarFixture, seeded pricing.PriceRange) (uuid.UUID, uuid.UUID) {
				return uuid.New(), seeded.ID
			},
			wantErr: commands.ErrRoomNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newCalendarFixture(t)
			seeded := f.seedPrice(t, "2024-01-01", "2024-01-05", 10000)
			roomID, rangeID := tc.target(f, seeded)

			err := f.uc.DeletePriceRange(ctx, roomID, rangeID)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
				assert.True(t, errs.Is(err, errs.ErrNotFound))
				assert.Len(t, f.store.PriceRanges(f.room.ID()), 1)
				assert.Empty(t, f.store.Notifications())
				return
			}

			require.NoError(t, err)
			assert.Empty(t, f.store.PriceRanges(f.room.ID()))
			jobs := f.store.Notifications()
			require.Len(t, jobs, 1)
			assert.Equal(t, shared.KindPriceRemoved, jobs[0].Kind)
			assert.Contains(t, f.cache.Invalidated, f.room.ID())
		})
	}
}

func TestCalendarUseCase_DeleteBlockRange(t *testing.T) {
	f := newCalendarFixture(t)
	ctx := context.Background()
	block := availability.BlockRange{
		ID:      uuid.New(),
		RoomID:  f.room.ID(),
		Span:    calendar.MustRange("2024-05-01", "2024-05-03"),
		Payload: availability.NewBlockReason("maintenance"),
	}
	f.store.AddBlockRange(block)

	require.NoError(t, f.uc.DeleteBlockRange(ctx, f.room.ID(), block.ID))

	assert.Empty(t, f.store.BlockRanges(f.room.ID()))
	jobs := f.store.Notifications()
	require.Len(t, jobs, 1)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(jobs[0].Payload, &payload))
	assert.Equal(t, availability.StateOpen.String(), payload["state"])
	assert.Equal(t, block.ID.String(), payload["rangeId"])

	err := f.uc.DeleteBlockRange(ctx, f.room.ID(), block.ID)
	assert.True(t, errs.Is(err, commands.ErrRangeNotFound))
}
