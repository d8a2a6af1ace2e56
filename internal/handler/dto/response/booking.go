package response

import (
	"time"

	"pms-calendar/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"roomId"`
	StartDate  string    `json:"startDate"`
	EndDate    string    `json:"endDate"`
	GuestName  string    `json:"guestName"`
	PartySize  int       `json:"partySize"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"totalCents"`
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	Items      []*BookingResponse `json:"items"`
	NextCursor *string            `json:"nextCursor,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:         v.ID,
		RoomID:     v.RoomID,
		StartDate:  v.StartDate,
		EndDate:    v.EndDate,
		GuestName:  v.GuestName,
		PartySize:  v.PartySize,
		Status:     v.Status,
		TotalCents: v.TotalCents,
		Note:       v.Note,
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
	}
}

func FromBookingPage(views []*queries.BookingView, next *queries.Cursor) *BookingListResponse {
	items := make([]*BookingResponse, len(views))
	for i, v := range views {
		items[i] = FromBookingView(v)
	}
	resp := &BookingListResponse{Items: items}
	if next != nil && next.After != "" {
		after := next.After
		resp.NextCursor = &after
	}
	return resp
}
