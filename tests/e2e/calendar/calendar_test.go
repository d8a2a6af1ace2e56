//go:build e2e

package calendar_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"pms-calendar/internal/domain/user"
	"pms-calendar/internal/handler/dto/request"
	"pms-calendar/internal/handler/dto/response"
	"pms-calendar/internal/pkg/ptr"
	"pms-calendar/internal/usecase/shared"
	"pms-calendar/tests/common/dbtest"
	"pms-calendar/tests/common/httptest"
	"pms-calendar/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	roomsURL       = "/api/rooms"
	pricesURL      = "/api/rooms/%s/prices"
	blocksURL      = "/api/rooms/%s/blocks"
	availURL       = "/api/rooms/%s/availability?from=%s&to=%s"
	quoteURL       = "/api/rooms/%s/quote?from=%s&to=%s&partySize=%d"
	dailyPricesURL = "/api/calendar/prices?roomIds=%s&from=%s&to=%s"
	monthURL       = "/api/calendar/month?anchor=%s"
)

type CalendarSuite struct {
	e2e.SharedSuite
}

func (s *CalendarSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCalendarSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CalendarSuite))
}

func (s *CalendarSuite) setPrice(token, roomID, start, end string, cents int64) response.RangeWriteResponse {
	t := s.T()
	t.Helper()
	body := request.SetPriceRequest{StartDate: start, EndDate: end, PriceCents: ptr.Of(cents)}
	rec := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(pricesURL, roomID), body, token)

	var out response.RangeWriteResponse
	httptest.AssertSuccessResponse(t, rec, http.StatusOK, &out)
	return out
}

func (s *CalendarSuite) TestRoomLifecycle() {
	s.Run("Normal case: admin creates a room and everyone can read it", func() {
		t := s.T()
		admin := s.Token(t, user.RoleAdmin)

		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL,
			request.CreateRoomRequest{Name: "  Garden Suite ", Capacity: 4}, admin)
		var created response.RoomResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		s.Equal("Garden Suite", created.Name)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL+"/"+created.ID.String(), nil, s.Token(t, user.RoleViewer))
		var fetched response.RoomResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &fetched)
		s.Equal(created.ID, fetched.ID)
	})

	s.Run("Error case: operators cannot create rooms", func() {
		t := s.T()
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, roomsURL,
			request.CreateRoomRequest{Name: "Annex", Capacity: 2}, s.Token(t, user.RoleOperator))
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("Error case: anonymous requests are rejected", func() {
		t := s.T()
		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, roomsURL, nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})
}

func (s *CalendarSuite) TestSetPrice() {
	s.Run("Normal case: an inner write splits the existing range", func() {
		t := s.T()
		admin := s.Token(t, user.RoleAdmin)
		roomID := dbtest.CreateTestRoom(t, s.DB, "Room 101", 2).String()

		first := s.setPrice(admin, roomID, e2e.Day(10), e2e.Day(20), 15000)
		s.Equal(response.RangeWriteResponse{Created: 1, Changed: true}, first)

		split := s.setPrice(admin, roomID, e2e.Day(12), e2e.Day(14), 20000)
		s.Equal(response.RangeWriteResponse{Updated: 1, Created: 2, Changed: true}, split)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(pricesURL, roomID), nil, admin)
		var ranges []response.PriceRangeResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &ranges)

		want := []response.PriceRangeResponse{
			{StartDate: e2e.Day(10), EndDate: e2e.Day(11), PriceCents: 15000},
			{StartDate: e2e.Day(12), EndDate: e2e.Day(14), PriceCents: 20000},
			{StartDate: e2e.Day(15), EndDate: e2e.Day(20), PriceCents: 15000},
		}
		if diff := cmp.Diff(want, ranges, cmpopts.IgnoreFields(response.PriceRangeResponse{}, "ID", "RoomID")); diff != "" {
			t.Errorf("price ranges mismatch (-want +got):\n%s", diff)
		}
		s.Equal(2, dbtest.CountJobs(t, s.DB, shared.KindPriceUpdated))
	})

	s.Run("Normal case: repeating a write changes nothing and queues nothing", func() {
		t := s.T()
		admin := s.Token(t, user.RoleAdmin)
		roomID := dbtest.CreateTestRoom(t, s.DB, "Room 102", 2).String()

		s.setPrice(admin, roomID, e2e.Day(1), e2e.Day(3), 9900)
		again := s.setPrice(admin, roomID, e2e.Day(1), e2e.Day(3), 9900)
		s.False(again.Changed)
		s.Equal(1, dbtest.CountJobs(t, s.DB, ""))
	})

	s.Run("Normal case: daily prices expand ranges per day", func() {
		t := s.T()
		admin := s.Token(t, user.RoleAdmin)
		room := dbtest.CreateTestRoom(t, s.DB, "Room 103", 2)
		dbtest.CreateTestPriceRange(t, s.DB, room, e2e.Day(5), e2e.Day(6), 12000)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(dailyPricesURL, room, e2e.Day(4), e2e.Day(7)), nil, admin)
		var out []response.RoomDailyPricesResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &out)
		require.Len(t, out, 1)

		got := make([]string, 0, len(out[0].Days))
		for _, d := range out[0].Days {
			s.Equal(int64(12000), d.PriceCents)
			got = append(got, d.Date)
		}
		s.Equal([]string{e2e.Day(5), e2e.Day(6)}, got)
	})

	s.Run("Normal case: concurrent overlapping writes to one room stay consistent", func() {
		t := s.T()
		admin := s.Token(t, user.RoleAdmin)
		room := dbtest.CreateTestRoom(t, s.DB, "Room 105", 2)
		roomID := room.String()
		const basePrice = int64(10000)
		s.setPrice(admin, roomID, e2e.Day(10), e2e.Day(40), basePrice)

		type write struct {
			start, end int
			cents      int64
		}
		const writers = 8
		writes := make([]write, writers)
		codes := make([]int, writers)
		for i := range writes {
			writes[i] = write{start: 12 + 2*i, end: 18 + 2*i, cents: 20000 + int64(i)*100}
		}

		var wg sync.WaitGroup
		for i, w := range writes {
			wg.Add(1)
			go func() {
				defer wg.Done()
				body := request.SetPriceRequest{StartDate: e2e.Day(w.start), EndDate: e2e.Day(w.end), PriceCents: ptr.Of(w.cents)}
				rec := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(pricesURL, roomID), body, admin)
				codes[i] = rec.Code
			}()
		}
		wg.Wait()

		allowed := map[string][]int64{}
		for d := 10; d <= 40; d++ {
			allowed[e2e.Day(d)] = []int64{basePrice}
		}
		for i, code := range codes {
			s.Contains([]int{http.StatusOK, http.StatusConflict}, code, "writer %d", i)
			if code != http.StatusOK {
				continue
			}
			for d := writes[i].start; d <= writes[i].end; d++ {
				allowed[e2e.Day(d)] = append(allowed[e2e.Day(d)], writes[i].cents)
			}
		}

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(pricesURL, roomID), nil, admin)
		var ranges []response.PriceRangeResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &ranges)

		for i := range ranges {
			for j := i + 1; j < len(ranges); j++ {
				a, b := ranges[i], ranges[j]
				s.False(a.StartDate <= b.EndDate && b.StartDate <= a.EndDate,
					"ranges %s..%s and %s..%s overlap", a.StartDate, a.EndDate, b.StartDate, b.EndDate)
			}
		}

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(dailyPricesURL, room, e2e.Day(10), e2e.Day(40)), nil, admin)
		var daily []response.RoomDailyPricesResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &daily)
		require.Len(t, daily, 1)
		require.Len(t, daily[0].Days, len(allowed), "every seeded day keeps a price")
		for _, d := range daily[0].Days {
			s.Contains(allowed[d.Date], d.PriceCents, "price on %s", d.Date)
		}
	})

	s.Run("Error case: inverted range is rejected", func() {
		t := s.T()
		roomID := dbtest.CreateTestRoom(t, s.DB, "Room 104", 2).String()
		body := request.SetPriceRequest{StartDate: e2e.Day(5), EndDate: e2e.Day(4), PriceCents: ptr.Of(int64(100))}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(pricesURL, roomID), body, s.Token(t, user.RoleAdmin))
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "")
	})

	s.Run("Error case: unknown room", func() {
		t := s.T()
		body := request.SetPriceRequest{StartDate: e2e.Day(1), EndDate: e2e.Day(2), PriceCents: ptr.Of(int64(100))}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(pricesURL, "6b1f6a3e-8d5b-4a4e-9d55-1f0c9d1f2e3a"), body, s.Token(t, user.RoleAdmin))
		httptest.AssertErrorResponse(t, rec, http.StatusNotFound, "room not found")
	})
}

func (s *CalendarSuite) TestBlocksAndAvailability() {
	s.Run("Normal case: blocked days show up and can be reopened", func() {
		t := s.T()
		admin := s.Token(t, user.RoleAdmin)
		room := dbtest.CreateTestRoom(t, s.DB, "Room 201", 2)

		body := request.BlockDatesRequest{StartDate: e2e.Day(3), EndDate: e2e.Day(4), Reason: "painting"}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(blocksURL, room), body, admin)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, nil)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availURL, room, e2e.Day(2), e2e.Day(5)), nil, admin)
		var avail response.AvailabilityResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &avail)
		states := make([]string, len(avail.Days))
		for i, d := range avail.Days {
			states[i] = d.State
		}
		s.Equal([]string{"open", "blocked", "blocked", "open"}, states)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(blocksURL, room), nil, admin)
		var blocks []response.BlockRangeResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &blocks)
		require.Len(t, blocks, 1)
		s.Equal("painting", blocks[0].Reason)

		rec = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf(blocksURL, room)+"/"+blocks[0].ID.String(), nil, admin)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(availURL, room, e2e.Day(3), e2e.Day(4)), nil, admin)
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &avail)
		for _, d := range avail.Days {
			s.Equal("open", d.State)
		}
		s.Equal(2, dbtest.CountJobs(t, s.DB, shared.KindAvailabilityUpdated))
	})
}

func (s *CalendarSuite) TestQuoteAndMonth() {
	s.Run("Normal case: large parties pay the surcharge", func() {
		t := s.T()
		viewer := s.Token(t, user.RoleViewer)
		room := dbtest.CreateTestRoom(t, s.DB, "Family Room", 6)
		dbtest.CreateTestPriceRange(t, s.DB, room, e2e.Day(12), e2e.Day(13), 20000)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(quoteURL, room, e2e.Day(12), e2e.Day(13), 4), nil, viewer)
		var quote response.QuoteResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &quote)

		s.True(quote.Surcharge)
		s.True(quote.Available)
		s.Equal(int64(44000), quote.SubtotalCents)
		s.Equal(int64(176000), quote.TotalCents)
	})

	s.Run("Normal case: month grid covers the anchor month", func() {
		t := s.T()
		dbtest.CreateTestRoom(t, s.DB, "Room 301", 2)

		rec := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(monthURL, "2030-02-14"), nil, s.Token(t, user.RoleViewer))
		var month response.MonthResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &month)

		s.Equal("2030-02", month.Month)
		require.Len(t, month.Rooms, 1)
		days := 0
		for _, week := range month.Weeks {
			s.Len(week, 7)
			for _, cell := range week {
				if !cell.Blank {
					days++
				}
			}
		}
		s.Equal(28, days)
	})
}
