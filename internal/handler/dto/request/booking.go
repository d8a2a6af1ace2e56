package request

import (
	"strings"

	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	RoomID    uuid.UUID `json:"roomId" binding:"required"`
	StartDate string    `json:"startDate" binding:"required"`
	EndDate   string    `json:"endDate" binding:"required"`
	GuestName string    `json:"guestName" binding:"required,max=200"`
	PartySize int       `json:"partySize" binding:"required,min=1"`
	Note      *string   `json:"note,omitempty" binding:"omitempty,max=1000"`
}

func (r CreateBookingRequest) ToCommand() (commands.CreateBookingRequest, error) {
	stay, err := calendar.ParseDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return commands.CreateBookingRequest{}, err
	}

	note := ""
	if r.Note != nil {
		note = strings.TrimSpace(*r.Note)
	}
	return commands.CreateBookingRequest{
		RoomID:    r.RoomID,
		Stay:      stay,
		GuestName: r.GuestName,
		PartySize: r.PartySize,
		Note:      note,
	}, nil
}
