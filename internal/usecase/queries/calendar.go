package queries

//go:generate mockgen -source=calendar.go -destination=../../../tests/mock/queries/calendar.go -package=queriesmock

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"pms-calendar/internal/domain/availability"
	"pms-calendar/internal/domain/booking"
	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/domain/rangeset"
	"pms-calendar/internal/pkg/errs"
	"pms-calendar/internal/pkg/ptr"
	"pms-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

// MaxQuerySpanDays bounds day-by-day responses.
const MaxQuerySpanDays = 366

var (
	ErrRoomNotFound = shared.ErrRoomNotFound
	ErrSpanTooLong  = errs.Class("requested span exceeds 366 days", errs.ErrInvalidRange)
)

type CalendarQueries interface {
	// GetDailyPrices expands the price ranges of roomIDs (all rooms when
	// empty) into one entry per priced day. A nil span returns every day.
	GetDailyPrices(ctx context.Context, roomIDs []uuid.UUID, span *calendar.DateRange) ([]*RoomDailyPricesView, error)
	GetAvailability(ctx context.Context, roomID uuid.UUID, span calendar.DateRange) (*AvailabilityView, error)
	Quote(ctx context.Context, roomID uuid.UUID, stay calendar.DateRange, partySize int) (*QuoteView, error)
	MonthCalendar(ctx context.Context, anchor calendar.Date, roomIDs []uuid.UUID) (*MonthView, error)
	ListPriceRanges(ctx context.Context, roomID uuid.UUID) ([]*PriceRangeView, error)
	ListBlockRanges(ctx context.Context, roomID uuid.UUID) ([]*BlockRangeView, error)
}

type calendarQueriesImpl struct {
	uow        shared.UnitOfWork
	cache      shared.PriceRangeCache
	calculator pricing.PriceCalculator
}

func NewCalendarQueries(uow shared.UnitOfWork, cache shared.PriceRangeCache, calculator pricing.PriceCalculator) CalendarQueries {
	return &calendarQueriesImpl{uow: uow, cache: cache, calculator: calculator}
}

func (q *calendarQueriesImpl) GetDailyPrices(ctx context.Context, roomIDs []uuid.UUID, span *calendar.DateRange) ([]*RoomDailyPricesView, error) {
	if span != nil {
		if err := checkSpan(*span); err != nil {
			return nil, err
		}
	}

	var result []*RoomDailyPricesView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rooms, err := resolveRooms(ctx, tx, roomIDs)
		if err != nil {
			return err
		}

		ranges, err := q.priceRanges(ctx, tx, idsOf(rooms))
		if err != nil {
			return err
		}

		idx := pricing.ExpandToDaily(ranges)
		result = make([]*RoomDailyPricesView, 0, len(rooms))
		for _, id := range idsOf(rooms) {
			days := idx[id]
			if span != nil {
				days = days.Clip(*span)
			}
			result = append(result, &RoomDailyPricesView{RoomID: id, Days: dayPriceViews(days)})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (q *calendarQueriesImpl) GetAvailability(ctx context.Context, roomID uuid.UUID, span calendar.DateRange) (*AvailabilityView, error) {
	if err := checkSpan(span); err != nil {
		return nil, err
	}

	var view *AvailabilityView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := resolveRooms(ctx, tx, []uuid.UUID{roomID}); err != nil {
			return err
		}

		idx, err := loadAvailability(ctx, tx, []uuid.UUID{roomID}, span)
		if err != nil {
			return err
		}

		days := make([]DayStateView, 0, span.Len())
		for _, d := range span.Days() {
			days = append(days, DayStateView{Date: d.String(), State: idx.Classify(roomID, d).String()})
		}
		view = &AvailabilityView{
			RoomID:    roomID,
			StartDate: span.Start().String(),
			EndDate:   span.End().String(),
			Days:      days,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *calendarQueriesImpl) Quote(ctx context.Context, roomID uuid.UUID, stay calendar.DateRange, partySize int) (*QuoteView, error) {
	if err := checkSpan(stay); err != nil {
		return nil, err
	}

	var view *QuoteView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := resolveRooms(ctx, tx, []uuid.UUID{roomID}); err != nil {
			return err
		}

		ranges, err := q.priceRanges(ctx, tx, []uuid.UUID{roomID})
		if err != nil {
			return err
		}
		idx, err := loadAvailability(ctx, tx, []uuid.UUID{roomID}, stay)
		if err != nil {
			return err
		}

		quote := q.calculator.Quote(stay.Days(), pricing.ExpandToDaily(ranges)[roomID], partySize)
		view = toQuoteView(roomID, stay, quote)
		for _, d := range stay.Days() {
			if s := idx.Classify(roomID, d); s != availability.StateOpen {
				view.Unavailable = append(view.Unavailable, DayStateView{Date: d.String(), State: s.String()})
			}
		}
		view.Available = len(view.Unavailable) == 0
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *calendarQueriesImpl) MonthCalendar(ctx context.Context, anchor calendar.Date, roomIDs []uuid.UUID) (*MonthView, error) {
	if anchor.IsZero() {
		return nil, calendar.ErrInvalidDate
	}
	span := calendar.MonthSpan(anchor)

	var view *MonthView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rooms, err := resolveRooms(ctx, tx, roomIDs)
		if err != nil {
			return err
		}
		ids := idsOf(rooms)

		ranges, err := q.priceRanges(ctx, tx, ids)
		if err != nil {
			return err
		}
		idx, err := loadAvailability(ctx, tx, ids, span)
		if err != nil {
			return err
		}
		prices := pricing.ExpandToDaily(ranges)

		view = &MonthView{
			Month: fmt.Sprintf("%04d-%02d", anchor.Year(), int(anchor.Month())),
			Rooms: make([]*RoomView, 0, len(rooms)),
		}
		for _, r := range rooms {
			view.Rooms = append(view.Rooms, toRoomView(r))
		}

		for _, week := range calendar.BuildMonthGrid(anchor) {
			row := make([]MonthCellView, 0, len(week))
			for _, cell := range week {
				if cell.Blank {
					row = append(row, MonthCellView{Blank: true})
					continue
				}
				mc := MonthCellView{Date: cell.Date.String(), Rooms: make([]RoomDayView, 0, len(ids))}
				for _, id := range ids {
					rd := RoomDayView{RoomID: id, State: idx.Classify(id, cell.Date).String()}
					if rate, ok := prices[id][cell.Date]; ok {
						rd.PriceCents = ptr.Of(rate.Price.Cents())
					}
					mc.Rooms = append(mc.Rooms, rd)
				}
				row = append(row, mc)
			}
			view.Weeks = append(view.Weeks, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *calendarQueriesImpl) ListPriceRanges(ctx context.Context, roomID uuid.UUID) ([]*PriceRangeView, error) {
	var views []*PriceRangeView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := resolveRooms(ctx, tx, []uuid.UUID{roomID}); err != nil {
			return err
		}
		ranges, err := q.priceRanges(ctx, tx, []uuid.UUID{roomID})
		if err != nil {
			return err
		}
		views = make([]*PriceRangeView, 0, len(ranges))
		for _, r := range ranges {
			views = append(views, toPriceRangeView(r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *calendarQueriesImpl) ListBlockRanges(ctx context.Context, roomID uuid.UUID) ([]*BlockRangeView, error) {
	var views []*BlockRangeView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := resolveRooms(ctx, tx, []uuid.UUID{roomID}); err != nil {
			return err
		}
		ranges, err := tx.BlockRanges().ListByRoom(ctx, roomID)
		if err != nil {
			return err
		}
		rangeset.SortByStart(ranges)
		views = make([]*BlockRangeView, 0, len(ranges))
		for _, r := range ranges {
			views = append(views, toBlockRangeView(r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// priceRanges reads each room's ranges through the cache, falling back to the
// store on a miss or a cache failure. Results are sorted by room and start.
func (q *calendarQueriesImpl) priceRanges(ctx context.Context, tx shared.Tx, ids []uuid.UUID) ([]pricing.PriceRange, error) {
	var out []pricing.PriceRange
	for _, id := range ids {
		cached, hit, err := q.cache.Get(ctx, id)
		if err != nil {
			slog.Warn("price cache read failed", "room_id", id.String(), "error", err.Error())
		}
		if hit {
			out = append(out, cached...)
			continue
		}

		ranges, err := tx.PriceRanges().ListByRoom(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := q.cache.Set(ctx, id, ranges); err != nil {
			slog.Warn("price cache write failed", "room_id", id.String(), "error", err.Error())
		}
		out = append(out, ranges...)
	}
	rangeset.SortByStart(out)
	return out, nil
}

func loadAvailability(ctx context.Context, tx shared.Tx, ids []uuid.UUID, span calendar.DateRange) (*availability.Index, error) {
	if len(ids) == 0 {
		return availability.NewIndex(nil, nil), nil
	}
	bookings, err := tx.Bookings().ListOverlapping(ctx, ids, span)
	if err != nil {
		return nil, err
	}
	blocks, err := tx.BlockRanges().ListOverlapping(ctx, ids, span)
	if err != nil {
		return nil, err
	}
	return availability.NewIndex(booking.Occupancies(bookings), blocks), nil
}

func checkSpan(span calendar.DateRange) error {
	if span.IsZero() {
		return calendar.ErrInvalidDate
	}
	if span.Len() > MaxQuerySpanDays {
		return errs.Mark(errs.Newf("span %s has %d days", span, span.Len()), ErrSpanTooLong)
	}
	return nil
}

func toQuoteView(roomID uuid.UUID, stay calendar.DateRange, quote pricing.Quote) *QuoteView {
	nights := make([]NightView, 0, len(quote.Nights))
	for _, n := range quote.Nights {
		nights = append(nights, NightView{
			Date:        n.Date.String(),
			BaseCents:   n.Base.Cents(),
			ChargeCents: n.Charge.Cents(),
			Priced:      n.Priced,
		})
	}
	return &QuoteView{
		RoomID:        roomID,
		StartDate:     stay.Start().String(),
		EndDate:       stay.End().String(),
		PartySize:     quote.PartySize,
		Nights:        nights,
		SubtotalCents: quote.Subtotal.Cents(),
		Surcharge:     quote.Surcharge,
		TotalCents:    quote.Total.Cents(),
	}
}

func dayPriceViews(days pricing.DayRates) []DayPriceView {
	out := make([]DayPriceView, 0, len(days))
	for d, rate := range days {
		out = append(out, DayPriceView{
			Date:             d.String(),
			PriceCents:       rate.Price.Cents(),
			PercentIncrement: rate.PercentIncrement,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
