//go:build unit || e2e

package builder

import (
	"time"

	"pms-calendar/internal/domain/availability"
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

// RangeBuilder builds price and block ranges over the same span.
type RangeBuilder struct {
	ID               uuid.UUID
	RoomID           uuid.UUID
	Start            string
	End              string
	PriceCents       int64
	PercentIncrement float64
	Reason           string
}

func NewRangeBuilder() *RangeBuilder {
	return &RangeBuilder{
		ID:         uuid.New(),
		RoomID:     uuid.New(),
		Start:      "2024-01-10",
		End:        "2024-01-15",
		PriceCents: 15000,
		Reason:     "maintenance",
	}
}

func (r *RangeBuilder) With(mutate func(*RangeBuilder)) *RangeBuilder {
	mutate(r)
	return r
}

func (r *RangeBuilder) Span() calendar.DateRange {
	return calendar.MustRange(r.Start, r.End)
}

// Build methods
func (r *RangeBuilder) BuildPriceRange() pricing.PriceRange {
	return pricing.PriceRange{
		ID:      r.ID,
		RoomID:  r.RoomID,
		Span:    r.Span(),
		Payload: pricing.Rate{Price: pricing.NewMoney(r.PriceCents), PercentIncrement: r.PercentIncrement},
	}
}

func (r *RangeBuilder) BuildBlockRange() availability.BlockRange {
	return availability.BlockRange{
		ID:      r.ID,
		RoomID:  r.RoomID,
		Span:    r.Span(),
		Payload: availability.NewBlockReason(r.Reason),
	}
}

func (r *RangeBuilder) BuildPriceInfra() sqlc.PriceRanges {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	return sqlc.PriceRanges{
		ID:               r.ID,
		RoomID:           r.RoomID,
		StartDate:        pgDate(r.Start),
		EndDate:          pgDate(r.End),
		PriceCents:       r.PriceCents,
		PercentIncrement: r.PercentIncrement,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (r *RangeBuilder) BuildBlockInfra() sqlc.BlockRanges {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	return sqlc.BlockRanges{
		ID:        r.ID,
		RoomID:    r.RoomID,
		StartDate: pgDate(r.Start),
		EndDate:   pgDate(r.End),
		Reason:    r.Reason,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (r *RangeBuilder) BuildSetPriceDTO() reqdto.SetPriceRequest {
	return reqdto.SetPriceRequest{
		StartDate:        r.Start,
		EndDate:          r.End,
		PriceCents:       ptr.Of(r.PriceCents),
		PercentIncrement: r.PercentIncrement,
	}
}

func (r *RangeBuilder) BuildSetPriceCommand() commands.SetPriceRequest {
	return commands.SetPriceRequest{
		RoomID:           r.RoomID,
		Span:             r.Span(),
		PriceCents:       r.PriceCents,
		PercentIncrement: r.PercentIncrement,
	}
}

func (r *RangeBuilder) BuildBlockDTO() reqdto.BlockDatesRequest {
	return reqdto.BlockDatesRequest{StartDate: r.Start, EndDate: r.End, Reason: r.Reason}
}

func (r *RangeBuilder) BuildBlockCommand() commands.BlockDatesRequest {
	return commands.BlockDatesRequest{RoomID: r.RoomID, Span: r.Span(), Reason: r.Reason}
}

func (r *RangeBuilder) BuildPriceView() *queries.PriceRangeView {
	return &queries.PriceRangeView{
		ID:               r.ID,
		RoomID:           r.RoomID,
		StartDate:        r.Start,
		EndDate:          r.End,
		PriceCents:       r.PriceCents,
		PercentIncrement: r.PercentIncrement,
	}
}

func (r *RangeBuilder) BuildBlockView() *queries.BlockRangeView {
	return &queries.BlockRangeView{
		ID:        r.ID,
		RoomID:    r.RoomID,
		StartDate: r.Start,
		EndDate:   r.End,
		Reason:    r.Reason,
	}
}

// Fluent builder methods
func (r *RangeBuilder) WithRoomID(roomID uuid.UUID) *RangeBuilder {
	r.RoomID = roomID
	return r
}

func (r *RangeBuilder) WithSpan(start, end string) *RangeBuilder {
	r.Start, r.End = start, end
	return r
}

func (r *RangeBuilder) WithPrice(cents int64) *RangeBuilder {
	r.PriceCents = cents
	return r
}

func (r *RangeBuilder) WithPercentIncrement(pct float64) *RangeBuilder {
	r.PercentIncrement = pct
	return r
}

func pgDate(iso string) pgtype.Date {
	d := calendar.MustParseDate(iso)
	return pgtype.Date{Time: d.Time(), Valid: true}
}
