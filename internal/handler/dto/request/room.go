package request

import (
	"strings"

	"pms-calendar/internal/usecase/commands"
)

type CreateRoomRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Capacity int    `json:"capacity" binding:"required,min=1,max=20"`
}

func (r CreateRoomRequest) ToCommand() commands.CreateRoomRequest {
	return commands.CreateRoomRequest{
		Name:     strings.TrimSpace(r.Name),
		Capacity: r.Capacity,
	}
}
