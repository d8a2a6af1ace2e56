package response

import (
	"pms-calendar/internal/usecase/commands"
	"pms-calendar/internal/usecase/queries"

	"github.com/google/uuid"
)

type RangeWriteResponse struct {
	Updated int  `json:"updated"`
	Created int  `json:"created"`
	Deleted int  `json:"deleted"`
	Changed bool `json:"changed"`
}

type PriceRangeResponse struct {
	ID               uuid.UUID `json:"id"`
	RoomID           uuid.UUID `json:"roomId"`
	StartDate        string    `json:"startDate"`
	EndDate          string    `json:"endDate"`
	PriceCents       int64     `json:"priceCents"`
	PercentIncrement float64   `json:"percentIncrement"`
}

type BlockRangeResponse struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"roomId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Reason    string    `json:"reason,omitempty"`
}

type DayPriceResponse struct {
	Date             string  `json:"date"`
	PriceCents       int64   `json:"priceCents"`
	PercentIncrement float64 `json:"percentIncrement"`
}

type RoomDailyPricesResponse struct {
	RoomID uuid.UUID          `json:"roomId"`
	Days   []DayPriceResponse `json:"days"`
}

type DayStateResponse struct {
	Date  string `json:"date"`
	State string `json:"state"`
}

type AvailabilityResponse struct {
	RoomID    uuid.UUID          `json:"roomId"`
	StartDate string             `json:"startDate"`
	EndDate   string             `json:"endDate"`
	Days      []DayStateResponse `json:"days"`
}

type NightResponse struct {
	Date        string `json:"date"`
	BaseCents   int64  `json:"baseCents"`
	ChargeCents int64  `json:"chargeCents"`
	Priced      bool   `json:"priced"`
}

type QuoteResponse struct {
	RoomID        uuid.UUID          `json:"roomId"`
	StartDate     string             `json:"startDate"`
	EndDate       string             `json:"endDate"`
	PartySize     int                `json:"partySize"`
	Nights        []NightResponse    `json:"nights"`
	SubtotalCents int64              `json:"subtotalCents"`
	Surcharge     bool               `json:"surcharge"`
	TotalCents    int64              `json:"totalCents"`
	Available     bool               `json:"available"`
	Unavailable   []DayStateResponse `json:"unavailable,omitempty"`
}

type RoomDayResponse struct {
	RoomID     uuid.UUID `json:"roomId"`
	State      string    `json:"state"`
	PriceCents *int64    `json:"priceCents,omitempty"`
}

type MonthCellResponse struct {
	Date  string            `json:"date,omitempty"`
	Blank bool              `json:"blank"`
	Rooms []RoomDayResponse `json:"rooms,omitempty"`
}

type MonthResponse struct {
	Month string                `json:"month"`
	Rooms []*RoomResponse       `json:"rooms"`
	Weeks [][]MonthCellResponse `json:"weeks"`
}

func FromRangeWriteResult(r *commands.RangeWriteResult) *RangeWriteResponse {
	return &RangeWriteResponse{
		Updated: r.Updated,
		Created: r.Created,
		Deleted: r.Deleted,
		Changed: r.Changed(),
	}
}

func FromPriceRangeViews(views []*queries.PriceRangeView) []*PriceRangeResponse {
	out := make([]*PriceRangeResponse, len(views))
	for i, v := range views {
		out[i] = &PriceRangeResponse{
			ID:               v.ID,
			RoomID:           v.RoomID,
			StartDate:        v.StartDate,
			EndDate:          v.EndDate,
			PriceCents:       v.PriceCents,
			PercentIncrement: v.PercentIncrement,
		}
	}
	return out
}

func FromBlockRangeViews(views []*queries.BlockRangeView) []*BlockRangeResponse {
	out := make([]*BlockRangeResponse, len(views))
	for i, v := range views {
		out[i] = &BlockRangeResponse{
			ID:        v.ID,
			RoomID:    v.RoomID,
			StartDate: v.StartDate,
			EndDate:   v.EndDate,
			Reason:    v.Reason,
		}
	}
	return out
}

func FromDailyPricesViews(views []*queries.RoomDailyPricesView) []*RoomDailyPricesResponse {
	out := make([]*RoomDailyPricesResponse, len(views))
	for i, v := range views {
		days := make([]DayPriceResponse, len(v.Days))
		for j, d := range v.Days {
			days[j] = DayPriceResponse(d)
		}
		out[i] = &RoomDailyPricesResponse{RoomID: v.RoomID, Days: days}
	}
	return out
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomID:    v.RoomID,
		StartDate: v.StartDate,
		EndDate:   v.EndDate,
		Days:      fromDayStates(v.Days),
	}
}

func FromQuoteView(v *queries.QuoteView) *QuoteResponse {
	nights := make([]NightResponse, len(v.Nights))
	for i, n := range v.Nights {
		nights[i] = NightResponse(n)
	}
	resp := &QuoteResponse{
		RoomID:        v.RoomID,
		StartDate:     v.StartDate,
		EndDate:       v.EndDate,
		PartySize:     v.PartySize,
		Nights:        nights,
		SubtotalCents: v.SubtotalCents,
		Surcharge:     v.Surcharge,
		TotalCents:    v.TotalCents,
		Available:     v.Available,
	}
	if len(v.Unavailable) > 0 {
		resp.Unavailable = fromDayStates(v.Unavailable)
	}
	return resp
}

func FromMonthView(v *queries.MonthView) *MonthResponse {
	rooms := make([]*RoomResponse, len(v.Rooms))
	for i, r := range v.Rooms {
		rooms[i] = FromRoomView(r)
	}

	weeks := make([][]MonthCellResponse, len(v.Weeks))
	for i, week := range v.Weeks {
		cells := make([]MonthCellResponse, len(week))
		for j, cell := range week {
			var perRoom []RoomDayResponse
			if len(cell.Rooms) > 0 {
				perRoom = make([]RoomDayResponse, len(cell.Rooms))
				for k, rd := range cell.Rooms {
					perRoom[k] = RoomDayResponse(rd)
				}
			}
			cells[j] = MonthCellResponse{Date: cell.Date, Blank: cell.Blank, Rooms: perRoom}
		}
		weeks[i] = cells
	}
	return &MonthResponse{Month: v.Month, Rooms: rooms, Weeks: weeks}
}

func fromDayStates(days []queries.DayStateView) []DayStateResponse {
	out := make([]DayStateResponse, len(days))
	for i, d := range days {
		out[i] = DayStateResponse(d)
	}
	return out
}
