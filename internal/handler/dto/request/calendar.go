package request

import (
	"strings"

	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/pkg/errs"
	"pms-calendar/internal/usecase/commands"

	"github.com/google/uuid"
)

var ErrInvalidRoomIDs = errs.Class("roomIds must be a comma separated list of UUIDs", errs.ErrInvalidRange)

type SetPriceRequest struct {
	StartDate        string  `json:"startDate" binding:"required"`
	EndDate          string  `json:"endDate" binding:"required"`
	PriceCents       *int64  `json:"priceCents" binding:"required,min=0"`
	PercentIncrement float64 `json:"percentIncrement"`
}

func (r SetPriceRequest) ToCommand(roomID uuid.UUID) (commands.SetPriceRequest, error) {
	span, err := calendar.ParseDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return commands.SetPriceRequest{}, err
	}
	return commands.SetPriceRequest{
		RoomID:           roomID,
		Span:             span,
		PriceCents:       *r.PriceCents,
		PercentIncrement: r.PercentIncrement,
	}, nil
}

type BlockDatesRequest struct {
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
	Reason    string `json:"reason" binding:"max=255"`
}

func (r BlockDatesRequest) ToCommand(roomID uuid.UUID) (commands.BlockDatesRequest, error) {
	span, err := calendar.ParseDateRange(r.StartDate, r.EndDate)
	if err != nil {
		return commands.BlockDatesRequest{}, err
	}
	return commands.BlockDatesRequest{
		RoomID: roomID,
		Span:   span,
		Reason: strings.TrimSpace(r.Reason),
	}, nil
}

// SpanQuery is the from/to pair of the calendar read endpoints.
type SpanQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

func (q SpanQuery) Span() (calendar.DateRange, error) {
	return calendar.ParseDateRange(q.From, q.To)
}

type QuoteQuery struct {
	SpanQuery
	PartySize int `form:"partySize" binding:"required,min=1"`
}

// DailyPricesQuery leaves the span open when both bounds are omitted.
type DailyPricesQuery struct {
	RoomIDs string `form:"roomIds"`
	From    string `form:"from"`
	To      string `form:"to"`
}

func (q DailyPricesQuery) Span() (*calendar.DateRange, error) {
	if q.From == "" && q.To == "" {
		return nil, nil
	}
	span, err := calendar.ParseDateRange(q.From, q.To)
	if err != nil {
		return nil, err
	}
	return &span, nil
}

type MonthQuery struct {
	Anchor  string `form:"anchor" binding:"required"`
	RoomIDs string `form:"roomIds"`
}

// ParseRoomIDs splits a comma separated list. Blank input means every room.
func ParseRoomIDs(csv string) ([]uuid.UUID, error) {
	csv = strings.TrimSpace(csv)
	if csv == "" {
		return nil, nil
	}

	parts := strings.Split(csv, ",")
	ids := make([]uuid.UUID, 0, len(parts))
	seen := make(map[uuid.UUID]struct{}, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(strings.TrimSpace(p))
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "room id %q", p), ErrInvalidRoomIDs)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
