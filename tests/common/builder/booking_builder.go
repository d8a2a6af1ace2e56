//go:build unit || e2e

package builder

import (
	"time"

	"pms-calendar/internal/domain/booking"
	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/pricing"
	reqdto "pms-calendar/internal/handler/dto/request"
	sqlc "pms-calendar/internal/infra/sqlc/generated"
	"pms-calendar/internal/pkg/ptr"
	"pms-calendar/internal/usecase/commands"
	"pms-calendar/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	Start      string
	End        string
	GuestName  string
	PartySize  int
	Status     booking.Status
	TotalCents int64
	Note       string
	CreatedAt  time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         uuid.New(),
		RoomID:     uuid.New(),
		Start:      "2024-03-01",
		End:        "2024-03-03",
		GuestName:  "Ada Lovelace",
		PartySize:  2,
		Status:     booking.StatusConfirmed,
		TotalCents: 60000,
		CreatedAt:  time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	guest, err := booking.NewGuestName(b.GuestName)
	if err != nil {
		return nil, err
	}
	stay, err := calendar.ParseDateRange(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(
		b.ID,
		b.RoomID,
		stay,
		guest,
		b.PartySize,
		b.Status,
		pricing.NewMoney(b.TotalCents),
		booking.NewNote(b.Note),
		b.CreatedAt,
		b.CreatedAt,
	), nil
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	var note pgtype.Text
	if b.Note != "" {
		note = pgtype.Text{String: b.Note, Valid: true}
	}
	return sqlc.Bookings{
		ID:         b.ID,
		RoomID:     b.RoomID,
		StartDate:  pgDate(b.Start),
		EndDate:    pgDate(b.End),
		GuestName:  b.GuestName,
		PartySize:  int32(b.PartySize),
		Status:     b.Status.String(),
		TotalCents: b.TotalCents,
		Note:       note,
		CreatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:  pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	req := reqdto.CreateBookingRequest{
		RoomID:    b.RoomID,
		StartDate: b.Start,
		EndDate:   b.End,
		GuestName: b.GuestName,
		PartySize: b.PartySize,
	}
	if b.Note != "" {
		req.Note = ptr.Of(b.Note)
	}
	return req
}

func (b *BookingBuilder) BuildCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		RoomID:    b.RoomID,
		Stay:      calendar.MustRange(b.Start, b.End),
		GuestName: b.GuestName,
		PartySize: b.PartySize,
		Note:      b.Note,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	v := &queries.BookingView{
		ID:         b.ID,
		RoomID:     b.RoomID,
		StartDate:  b.Start,
		EndDate:    b.End,
		GuestName:  b.GuestName,
		PartySize:  b.PartySize,
		Status:     b.Status.String(),
		TotalCents: b.TotalCents,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.CreatedAt,
	}
	if b.Note != "" {
		v.Note = ptr.Of(b.Note)
	}
	return v
}

// Fluent builder methods
func (b *BookingBuilder) WithRoomID(roomID uuid.UUID) *BookingBuilder {
	b.RoomID = roomID
	return b
}

func (b *BookingBuilder) WithStay(start, end string) *BookingBuilder {
	b.Start, b.End = start, end
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsCanceled() *BookingBuilder {
	b.Status = booking.StatusCanceled
	return b
}
