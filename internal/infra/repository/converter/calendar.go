package converter

import (
	"pms-calendar/internal/domain/availability"
	"pms-calendar/internal/domain/booking"
	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/domain/room"
	sqlc "pms-calendar/internal/infra/sqlc/generated"
	"pms-calendar/internal/pkg/errs"
	"pms-calendar/internal/pkg/pgconv"
	"pms-calendar/internal/pkg/ptr"

	"github.com/jackc/pgx/v5/pgtype"
)

var errInvalidStoredDate = errs.New("stored date is null or infinite")

func DateToPg(d calendar.Date) pgtype.Date {
	return pgconv.DateToPgtype(d.Year(), d.Month(), d.Day())
}

func DateFromPg(pd pgtype.Date) (calendar.Date, error) {
	y, m, d, ok := pgconv.DateFromPgtype(pd)
	if !ok {
		return calendar.Date{}, errInvalidStoredDate
	}
	return calendar.NewDate(y, m, d), nil
}

func SpanFromPg(start, end pgtype.Date) (calendar.DateRange, error) {
	s, err := DateFromPg(start)
	if err != nil {
		return calendar.DateRange{}, err
	}
	e, err := DateFromPg(end)
	if err != nil {
		return calendar.DateRange{}, err
	}
	return calendar.NewDateRange(s, e)
}

func RoomFromRow(row sqlc.Rooms) *room.Room {
	return room.ReconstructRoom(
		row.ID,
		row.Name,
		int(row.Capacity),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func RoomToCreateParams(r *room.Room) sqlc.CreateRoomParams {
	return sqlc.CreateRoomParams{
		ID:       r.ID(),
		Name:     r.Name(),
		Capacity: pgconv.IntToInt32(r.Capacity()),
	}
}

func PriceRangeFromRow(row sqlc.PriceRanges) (pricing.PriceRange, error) {
	span, err := SpanFromPg(row.StartDate, row.EndDate)
	if err != nil {
		return pricing.PriceRange{}, errs.Wrapf(err, "price range %s", row.ID)
	}
	rate, err := pricing.NewRate(row.PriceCents, row.PercentIncrement)
	if err != nil {
		return pricing.PriceRange{}, errs.Wrapf(err, "price range %s", row.ID)
	}
	return pricing.PriceRange{ID: row.ID, RoomID: row.RoomID, Span: span, Payload: rate}, nil
}

func PriceRangesFromRows(rows []sqlc.PriceRanges) ([]pricing.PriceRange, error) {
	out := make([]pricing.PriceRange, 0, len(rows))
	for _, row := range rows {
		r, err := PriceRangeFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func PriceRangeToCreateParams(r pricing.PriceRange) sqlc.CreatePriceRangeParams {
	return sqlc.CreatePriceRangeParams{
		ID:               r.ID,
		RoomID:           r.RoomID,
		StartDate:        DateToPg(r.Span.Start()),
		EndDate:          DateToPg(r.Span.End()),
		PriceCents:       r.Payload.Price.Cents(),
		PercentIncrement: r.Payload.PercentIncrement,
	}
}

func PriceRangeToUpdateParams(r pricing.PriceRange) sqlc.UpdatePriceRangeParams {
	return sqlc.UpdatePriceRangeParams{
		ID:               r.ID,
		StartDate:        DateToPg(r.Span.Start()),
		EndDate:          DateToPg(r.Span.End()),
		PriceCents:       r.Payload.Price.Cents(),
		PercentIncrement: r.Payload.PercentIncrement,
	}
}

func BlockRangeFromRow(row sqlc.BlockRanges) (availability.BlockRange, error) {
	span, err := SpanFromPg(row.StartDate, row.EndDate)
	if err != nil {
		return availability.BlockRange{}, errs.Wrapf(err, "block range %s", row.ID)
	}
	return availability.BlockRange{
		ID:      row.ID,
		RoomID:  row.RoomID,
		Span:    span,
		Payload: availability.NewBlockReason(row.Reason),
	}, nil
}

func BlockRangesFromRows(rows []sqlc.BlockRanges) ([]availability.BlockRange, error) {
	out := make([]availability.BlockRange, 0, len(rows))
	for _, row := range rows {
		r, err := BlockRangeFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func BlockRangeToCreateParams(r availability.BlockRange) sqlc.CreateBlockRangeParams {
	return sqlc.CreateBlockRangeParams{
		ID:        r.ID,
		RoomID:    r.RoomID,
		StartDate: DateToPg(r.Span.Start()),
		EndDate:   DateToPg(r.Span.End()),
		Reason:    string(r.Payload),
	}
}

func BlockRangeToUpdateParams(r availability.BlockRange) sqlc.UpdateBlockRangeParams {
	return sqlc.UpdateBlockRangeParams{
		ID:        r.ID,
		StartDate: DateToPg(r.Span.Start()),
		EndDate:   DateToPg(r.Span.End()),
		Reason:    string(r.Payload),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	stay, err := SpanFromPg(row.StartDate, row.EndDate)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	guest, err := booking.NewGuestName(row.GuestName)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	status := booking.Status(row.Status)
	if !status.IsValid() {
		return nil, errs.Newf("booking %s has unknown status %q", row.ID, row.Status)
	}

	return booking.ReconstructBooking(
		row.ID,
		row.RoomID,
		stay,
		guest,
		int(row.PartySize),
		status,
		pricing.NewMoney(row.TotalCents),
		booking.NewNote(ptr.Coalesce(pgconv.StringPtrFromPgtype(row.Note), "")),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingsFromRows(rows []sqlc.Bookings) ([]*booking.Booking, error) {
	out := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := BookingFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	var note *string
	if !b.Note().IsEmpty() {
		note = ptr.Of(b.Note().String())
	}
	return sqlc.CreateBookingParams{
		ID:         b.ID(),
		RoomID:     b.RoomID(),
		StartDate:  DateToPg(b.Stay().Start()),
		EndDate:    DateToPg(b.Stay().End()),
		GuestName:  b.GuestName().String(),
		PartySize:  pgconv.IntToInt32(b.PartySize()),
		Status:     b.Status().String(),
		TotalCents: b.Total().Cents(),
		Note:       pgconv.StringPtrToPgtype(note),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}
