package repository

//go:generate mockgen -source=price_range.go -destination=../../../tests/mock/repository/price_range.go -package=repositorymock

import (
	"context"

	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/domain/pricing"
	"pms-calendar/internal/infra"
	"pms-calendar/internal/infra/repository/converter"
	sqlc "pms-calendar/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type PriceRangeQueries interface {
	ListPriceRangesOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListPriceRangesOverlappingParams) ([]sqlc.PriceRanges, error)
	ListPriceRangesByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) ([]sqlc.PriceRanges, error)
	GetPriceRangeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.PriceRanges, error)
	CreatePriceRange(ctx context.Context, db sqlc.DBTX, arg sqlc.CreatePriceRangeParams) error
	UpdatePriceRange(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdatePriceRangeParams) (int64, error)
	DeletePriceRange(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type PriceRangeRepository struct {
	queries PriceRangeQueries
	db      sqlc.DBTX
}

func NewPriceRangeRepository(queries PriceRangeQueries, db sqlc.DBTX) *PriceRangeRepository {
	return &PriceRangeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PriceRangeRepository) ListOverlapping(ctx context.Context, roomIDs []uuid.UUID, span calendar.DateRange) ([]pricing.PriceRange, error) {
	rows, err := r.queries.ListPriceRangesOverlapping(ctx, r.db, sqlc.ListPriceRangesOverlappingParams{
		RoomIds:   roomIDs,
		SpanEnd:   converter.DateToPg(span.End()),
		SpanStart: converter.DateToPg(span.Start()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping price ranges", err)
	}
	return converter.PriceRangesFromRows(rows)
}

func (r *PriceRangeRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]pricing.PriceRange, error) {
	rows, err := r.queries.ListPriceRangesByRoom(ctx, r.db, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list price ranges", err)
	}
	return converter.PriceRangesFromRows(rows)
}

func (r *PriceRangeRepository) FindByID(ctx context.Context, id uuid.UUID) (pricing.PriceRange, error) {
	row, err := r.queries.GetPriceRangeByID(ctx, r.db, id)
	if err != nil {
		return pricing.PriceRange{}, infra.WrapRepoErr("failed to find price range", err)
	}
	return converter.PriceRangeFromRow(row)
}

func (r *PriceRangeRepository) Create(ctx context.Context, pr pricing.PriceRange) error {
	if err := r.queries.CreatePriceRange(ctx, r.db, converter.PriceRangeToCreateParams(pr)); err != nil {
		return infra.WrapRepoErr("failed to create price range", err)
	}
	return nil
}

func (r *PriceRangeRepository) Update(ctx context.Context, pr pricing.PriceRange) error {
	n, err := r.queries.UpdatePriceRange(ctx, r.db, converter.PriceRangeToUpdateParams(pr))
	if err != nil {
		return infra.WrapRepoErr("failed to update price range", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("price range not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PriceRangeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeletePriceRange(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete price range", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("price range not found", nil, infra.KindNotFound)
	}
	return nil
}
