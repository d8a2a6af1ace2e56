package booking

import (
	"time"

	"pms-calendar/internal/domain/availability"
	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/pkg/clock"
	"pms-calendar/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrStayInPast       = errs.Class("stay cannot start before today", errs.ErrInvalidRange)
	ErrInvalidPartySize = errs.Class("party size must be at least 1", errs.ErrInvalidRange)
	ErrOverCapacity     = errs.Class("party is larger than the room capacity", errs.ErrInvalidRange)
	ErrEmptyGuestName   = errs.Class("guest name cannot be empty", errs.ErrInvalidRange)
	ErrGuestNameTooLong = errs.Class("guest name is too long (max 200 characters)", errs.ErrInvalidRange)
	ErrAlreadyCanceled  = errs.Class("booking is already canceled", errs.ErrConflict)
)

type Services struct {
	Clock           clock.Clock
	PriceCalculator pricing.PriceCalculator
}

type RoomSpec struct {
	ID       uuid.UUID
	Capacity int
}

// Booking is a guest stay in one room. Stay is inclusive on both ends, like
// every other range in the calendar.
type Booking struct {
	id        uuid.UUID
	roomID    uuid.UUID
	stay      calendar.DateRange
	guestName GuestName
	partySize int
	status    Status
	total     pricing.Money
	note      Note
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking validates the stay against the room and prices it from daily.
// Whether the days are still free is the caller's check, made under the
// room lock.
func NewBooking(
	services *Services,
	room RoomSpec,
	stay calendar.DateRange,
	guest GuestName,
	partySize int,
	daily pricing.DayRates,
	note Note,
) (*Booking, pricing.Quote, error) {
	if stay.IsZero() {
		return nil, pricing.Quote{}, calendar.ErrInvalidDate
	}
	today := calendar.FromTime(services.Clock.Now())
	if stay.Start().Before(today) {
		return nil, pricing.Quote{}, ErrStayInPast
	}
	if partySize < 1 {
		return nil, pricing.Quote{}, ErrInvalidPartySize
	}
	if room.Capacity > 0 && partySize > room.Capacity {
		return nil, pricing.Quote{}, ErrOverCapacity
	}

	quote := services.PriceCalculator.Quote(stay.Days(), daily, partySize)
	now := services.Clock.Now()

	return &Booking{
		id:        uuid.New(),
		roomID:    room.ID,
		stay:      stay,
		guestName: guest,
		partySize: partySize,
		status:    StatusConfirmed,
		total:     quote.Total,
		note:      note,
		createdAt: now,
		updatedAt: now,
	}, quote, nil
}

func ReconstructBooking(
	id, roomID uuid.UUID,
	stay calendar.DateRange,
	guestName GuestName,
	partySize int,
	status Status,
	total pricing.Money,
	note Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		roomID:    roomID,
		stay:      stay,
		guestName: guestName,
		partySize: partySize,
		status:    status,
		total:     total,
		note:      note,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) Cancel(now time.Time) error {
	if b.status == StatusCanceled {
		return ErrAlreadyCanceled
	}
	b.status = StatusCanceled
	b.updatedAt = now
	return nil
}

func (b *Booking) IsActive() bool {
	return b.status == StatusConfirmed
}

// Occupancy is the booking as availability sees it.
func (b *Booking) Occupancy() availability.Occupancy {
	return availability.Occupancy{RoomID: b.roomID, Stay: b.stay}
}

func (b *Booking) ID() uuid.UUID            { return b.id }
func (b *Booking) RoomID() uuid.UUID        { return b.roomID }
func (b *Booking) Stay() calendar.DateRange { return b.stay }
func (b *Booking) GuestName() GuestName     { return b.guestName }
func (b *Booking) PartySize() int           { return b.partySize }
func (b *Booking) Status() Status           { return b.status }
func (b *Booking) Total() pricing.Money     { return b.total }
func (b *Booking) Note() Note               { return b.note }
func (b *Booking) CreatedAt() time.Time     { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time     { return b.updatedAt }

// Occupancies keeps the bookings that still hold their room.
func Occupancies(bookings []*Booking) []availability.Occupancy {
	out := make([]availability.Occupancy, 0, len(bookings))
	for _, b := range bookings {
		if b.IsActive() {
			out = append(out, b.Occupancy())
		}
	}
	return out
}
