//go:build unit || e2e

package builder

import (
	"time"

	"pms-calendar/internal/domain/room"
	reqdto "pms-calendar/internal/handler/dto/request"
	sqlc "pms-calendar/internal/infra/sqlc/generated"
	"pms-calendar/internal/usecase/commands"
	"pms-calendar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomBuilder struct {
	ID        uuid.UUID
	Name      string
	Capacity  int
	CreatedAt time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:        uuid.New(),
		Name:      "Room 101",
		Capacity:  2,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildDomain() *room.Room {
	return room.ReconstructRoom(r.ID, r.Name, r.Capacity, r.CreatedAt, r.CreatedAt)
}

func (r *RoomBuilder) BuildInfra() sqlc.Rooms {
	return sqlc.Rooms{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  int32(r.Capacity),
		CreatedAt: pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
}

func (r *RoomBuilder) BuildDTO() reqdto.CreateRoomRequest {
	return reqdto.CreateRoomRequest{Name: r.Name, Capacity: r.Capacity}
}

func (r *RoomBuilder) BuildCommand() commands.CreateRoomRequest {
	return commands.CreateRoomRequest{Name: r.Name, Capacity: r.Capacity}
}

func (r *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.CreatedAt,
	}
}

// Fluent builder methods
func (r *RoomBuilder) WithName(name string) *RoomBuilder {
	r.Name = name
	return r
}

func (r *RoomBuilder) WithCapacity(capacity int) *RoomBuilder {
	r.Capacity = capacity
	return r
}
