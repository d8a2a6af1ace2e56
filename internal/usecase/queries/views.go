package queries

import (
	"time"

	"pms-calendar/internal/domain/availability"
	"pms-calendar/internal/domain/booking"
	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/domain/room"
	"pms-calendar/internal/pkg/ptr"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RoomView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PriceRangeView struct {
	ID               uuid.UUID `json:"id"`
	RoomID           uuid.UUID `json:"room_id"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	PriceCents       int64     `json:"price_cents"`
	PercentIncrement float64   `json:"percent_increment"`
}

type BlockRangeView struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Reason    string    `json:"reason,omitempty"`
}

type BookingView struct {
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"room_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	GuestName  string    `json:"guest_name"`
	PartySize  int       `json:"party_size"`
	Status     string    `json:"status"`
	TotalCents int64     `json:"total_cents"`
	Note       *string   `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type DayPriceView struct {
	Date             string  `json:"date"`
	PriceCents       int64   `json:"price_cents"`
	PercentIncrement float64 `json:"percent_increment"`
}

type RoomDailyPricesView struct {
	RoomID uuid.UUID      `json:"room_id"`
	Days   []DayPriceView `json:"days"`
}

type DayStateView struct {
	Date  string `json:"date"`
	State string `json:"state"`
}

type AvailabilityView struct {
	RoomID    uuid.UUID      `json:"room_id"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Days      []DayStateView `json:"days"`
}

type NightView struct {
	Date        string `json:"date"`
	BaseCents   int64  `json:"base_cents"`
	ChargeCents int64  `json:"charge_cents"`
	Priced      bool   `json:"priced"`
}

type QuoteView struct {
	RoomID        uuid.UUID      `json:"room_id"`
	StartDate     string         `json:"start_date"`
	EndDate       string         `json:"end_date"`
	PartySize     int            `json:"party_size"`
	Nights        []NightView    `json:"nights"`
	SubtotalCents int64          `json:"subtotal_cents"`
	Surcharge     bool           `json:"surcharge"`
	TotalCents    int64          `json:"total_cents"`
	Available     bool           `json:"available"`
	Unavailable   []DayStateView `json:"unavailable,omitempty"`
}

type RoomDayView struct {
	RoomID     uuid.UUID `json:"room_id"`
	State      string    `json:"state"`
	PriceCents *int64    `json:"price_cents,omitempty"`
}

type MonthCellView struct {
	Date  string        `json:"date,omitempty"`
	Blank bool          `json:"blank"`
	Rooms []RoomDayView `json:"rooms,omitempty"`
}

type MonthView struct {
	Month string            `json:"month"`
	Rooms []*RoomView       `json:"rooms"`
	Weeks [][]MonthCellView `json:"weeks"`
}

func toRoomView(r *room.Room) *RoomView {
	return &RoomView{
		ID:        r.ID(),
		Name:      r.Name(),
		Capacity:  r.Capacity(),
		CreatedAt: r.CreatedAt(),
		UpdatedAt: r.UpdatedAt(),
	}
}

func toPriceRangeView(r pricing.PriceRange) *PriceRangeView {
	return &PriceRangeView{
		ID:               r.ID,
		RoomID:           r.RoomID,
		StartDate:        r.Span.Start().String(),
		EndDate:          r.Span.End().String(),
		PriceCents:       r.Payload.Price.Cents(),
		PercentIncrement: r.Payload.PercentIncrement,
	}
}

func toBlockRangeView(r availability.BlockRange) *BlockRangeView {
	return &BlockRangeView{
		ID:        r.ID,
		RoomID:    r.RoomID,
		StartDate: r.Span.Start().String(),
		EndDate:   r.Span.End().String(),
		Reason:    string(r.Payload),
	}
}

func toBookingView(b *booking.Booking) *BookingView {
	v := &BookingView{
		ID:         b.ID(),
		RoomID:     b.RoomID(),
		StartDate:  b.Stay().Start().String(),
		EndDate:    b.Stay().End().String(),
		GuestName:  b.GuestName().String(),
		PartySize:  b.PartySize(),
		Status:     b.Status().String(),
		TotalCents: b.Total().Cents(),
		CreatedAt:  b.CreatedAt(),
		UpdatedAt:  b.UpdatedAt(),
	}
	if !b.Note().IsEmpty() {
		v.Note = ptr.Of(b.Note().String())
	}
	return v
}
