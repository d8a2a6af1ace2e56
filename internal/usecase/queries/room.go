package queries

//go:generate mockgen -source=room.go -destination=../../../tests/mock/queries/room.go -package=queriesmock

import (
	"context"

	"pms-calendar/internal/domain/room"
	"pms-calendar/internal/infra"
	"pms-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	List(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRoomQueries(uow shared.UnitOfWork) RoomQueries {
	return &roomQueriesImpl{uow: uow}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	var view *RoomView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Rooms().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		view = toRoomView(r)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	var views []*RoomView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rooms, err := tx.Rooms().List(ctx)
		if err != nil {
			return err
		}
		views = make([]*RoomView, 0, len(rooms))
		for _, r := range rooms {
			views = append(views, toRoomView(r))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

// resolveRooms loads the requested rooms, or every room when ids is empty.
// Any requested room that does not exist fails the whole read.
func resolveRooms(ctx context.Context, tx shared.Tx, ids []uuid.UUID) ([]*room.Room, error) {
	if len(ids) == 0 {
		return tx.Rooms().List(ctx)
	}

	rooms, err := tx.Rooms().FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]struct{}, len(rooms))
	for _, r := range rooms {
		found[r.ID()] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, ErrRoomNotFound
		}
	}
	return rooms, nil
}

func idsOf(rooms []*room.Room) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(rooms))
	for _, r := range rooms {
		ids = append(ids, r.ID())
	}
	return ids
}
