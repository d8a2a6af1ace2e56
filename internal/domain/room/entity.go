package room

import (
	"strings"
	"time"

	"pms-calendar/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyRoomName   = errs.Class("room name cannot be empty", errs.ErrInvalidRange)
	ErrRoomNameTooLong = errs.Class("room name is too long (max 100 characters)", errs.ErrInvalidRange)
	ErrInvalidCapacity = errs.Class("room capacity must be between 1 and 20", errs.ErrInvalidRange)
)

const (
	MaxRoomNameLength = 100
	MaxCapacity       = 20
)

type Room struct {
	id        uuid.UUID
	name      string
	capacity  int
	createdAt time.Time
	updatedAt time.Time
}

func NewRoom(id uuid.UUID, name string, capacity int) (*Room, error) {
	if err := validateRoomName(name); err != nil {
		return nil, err
	}
	if capacity < 1 || capacity > MaxCapacity {
		return nil, ErrInvalidCapacity
	}

	return &Room{
		id:       id,
		name:     strings.TrimSpace(name),
		capacity: capacity,
	}, nil
}

func ReconstructRoom(id uuid.UUID, name string, capacity int, createdAt, updatedAt time.Time) *Room {
	return &Room{
		id:        id,
		name:      name,
		capacity:  capacity,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Fits reports whether a party of partySize can stay in the room.
func (r *Room) Fits(partySize int) bool {
	return partySize >= 1 && partySize <= r.capacity
}

func validateRoomName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyRoomName
	}
	if len(name) > MaxRoomNameLength {
		return ErrRoomNameTooLong
	}
	return nil
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) CreatedAt() time.Time { return r.createdAt }
func (r *Room) UpdatedAt() time.Time { return r.updatedAt }
