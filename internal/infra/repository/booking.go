package repository

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/repository/booking.go -package=repositorymock

import (
	"context"

	"pms-calendar/internal/domain/booking"
	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/infra"
	"pms-calendar/internal/infra/repository/converter"
	sqlc "pms-calendar/internal/infra/sqlc/generated"
	"pms-calendar/internal/pkg/pgconv"
	"pms-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	CreateBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingParams) error
	UpdateBookingStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBookingStatusParams) (int64, error)
	GetBookingByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Bookings, error)
	ListBookingsOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsOverlappingParams) ([]sqlc.Bookings, error)
	ListBookingsByRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByRoomParams) ([]sqlc.Bookings, error)
	ListBookingsByRoomAfter(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByRoomAfterParams) ([]sqlc.Bookings, error)
}

type BookingRepository struct {
	queries BookingQueries
	db      sqlc.DBTX
}

func NewBookingRepository(queries BookingQueries, db sqlc.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	n, err := r.queries.UpdateBookingStatus(ctx, r.db, sqlc.UpdateBookingStatusParams{
		ID:        b.ID(),
		Status:    b.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row, err := r.queries.GetBookingByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return converter.BookingFromRow(row)
}

func (r *BookingRepository) ListOverlapping(ctx context.Context, roomIDs []uuid.UUID, span calendar.DateRange) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsOverlapping(ctx, r.db, sqlc.ListBookingsOverlappingParams{
		RoomIds:   roomIDs,
		SpanEnd:   converter.DateToPg(span.End()),
		SpanStart: converter.DateToPg(span.Start()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping bookings", err)
	}
	return converter.BookingsFromRows(rows)
}

// ListByRoom pages newest first. A nil after starts from the top.
func (r *BookingRepository) ListByRoom(ctx context.Context, roomID uuid.UUID, after *shared.Keyset, limit int) ([]*booking.Booking, error) {
	var (
		rows []sqlc.Bookings
		err  error
	)
	if after == nil {
		rows, err = r.queries.ListBookingsByRoom(ctx, r.db, sqlc.ListBookingsByRoomParams{
			RoomID: roomID,
			Limit:  pgconv.IntToInt32(limit),
		})
	} else {
		rows, err = r.queries.ListBookingsByRoomAfter(ctx, r.db, sqlc.ListBookingsByRoomAfterParams{
			RoomID:         roomID,
			Limit:          pgconv.IntToInt32(limit),
			AfterCreatedAt: pgconv.TimeToPgtype(after.CreatedAt),
			AfterID:        after.ID,
		})
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	return converter.BookingsFromRows(rows)
}
