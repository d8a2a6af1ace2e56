package commands

//go:generate mockgen -source=room.go -destination=../../../tests/mock/commands/room.go -package=commandsmock

import (
	"context"

	"pms-calendar/internal/domain/room"
	"pms-calendar/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Name     string
	Capacity int
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest) (uuid.UUID, error)
}

type roomUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewRoomUseCase(uow shared.UnitOfWork) RoomCommands {
	return &roomUseCaseImpl{uow: uow}
}

func (uc *roomUseCaseImpl) CreateRoom(ctx context.Context, req CreateRoomRequest) (uuid.UUID, error) {
	r, err := room.NewRoom(uuid.New(), req.Name, req.Capacity)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Rooms().Create(ctx, r)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return r.ID(), nil
}
