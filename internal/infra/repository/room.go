package repository

//go:generate mockgen -source=room.go -destination=../../../tests/mock/repository/room.go -package=repositorymock

import (
	"context"

	"pms-calendar/internal/domain/room"
	"pms-calendar/internal/infra"
	"pms-calendar/internal/infra/repository/converter"
	sqlc "pms-calendar/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type RoomQueries interface {
	CreateRoom(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRoomParams) error
	GetRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	LockRoomByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Rooms, error)
	ListRooms(ctx context.Context, db sqlc.DBTX) ([]sqlc.Rooms, error)
	ListRoomsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.Rooms, error)
}

type RoomRepository struct {
	queries RoomQueries
	db      sqlc.DBTX
}

func NewRoomRepository(queries RoomQueries, db sqlc.DBTX) *RoomRepository {
	return &RoomRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	if err := r.queries.CreateRoom(ctx, r.db, converter.RoomToCreateParams(rm)); err != nil {
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.GetRoomByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find room", err)
	}
	return converter.RoomFromRow(row), nil
}

// LockByID holds the row lock until the surrounding transaction ends.
func (r *RoomRepository) LockByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row, err := r.queries.LockRoomByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock room", err)
	}
	return converter.RoomFromRow(row), nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*room.Room, error) {
	rows, err := r.queries.ListRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	return roomsFromRows(rows), nil
}

func (r *RoomRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*room.Room, error) {
	rows, err := r.queries.ListRoomsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find rooms", err)
	}
	return roomsFromRows(rows), nil
}

func roomsFromRows(rows []sqlc.Rooms) []*room.Room {
	out := make([]*room.Room, 0, len(rows))
	for _, row := range rows {
		out = append(out, converter.RoomFromRow(row))
	}
	return out
}
