package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"pms-calendar/internal/infra"
	"pms-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingNotFound = shared.ErrBookingNotFound

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListByRoom(ctx context.Context, roomID uuid.UUID, after *Cursor, limit int) ([]*BookingView, *Cursor, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		view = toBookingView(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ListByRoom pages newest first. The returned cursor is nil on the last page.
func (q *bookingQueriesImpl) ListByRoom(ctx context.Context, roomID uuid.UUID, after *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	limit = ValidateLimit(limit)

	var keyset *shared.Keyset
	if after != nil && after.After != "" {
		ks, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, err
		}
		keyset = ks
	}

	var (
		views []*BookingView
		next  *Cursor
	)
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := resolveRooms(ctx, tx, []uuid.UUID{roomID}); err != nil {
			return err
		}

		// one extra row tells whether another page exists
		rows, err := tx.Bookings().ListByRoom(ctx, roomID, keyset, limit+1)
		if err != nil {
			return err
		}
		if len(rows) > limit {
			rows = rows[:limit]
			last := rows[len(rows)-1]
			next = &Cursor{After: EncodeAfterCursor(last.CreatedAt(), last.ID())}
		}

		views = make([]*BookingView, 0, len(rows))
		for _, b := range rows {
			views = append(views, toBookingView(b))
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return views, next, nil
}
