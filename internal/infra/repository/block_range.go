package repository

//go:generate mockgen -source=block_range.go -destination=../../../tests/mock/repository/block_range.go -package=repositorymock

import (
	"context"

	"pms-calendar/internal/domain/availability"
	"pms-calendar/internal/domain/calendar"
	"pms-calendar/internal/infra"
	"pms-calendar/internal/infra/repository/converter"
	sqlc "pms-calendar/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type BlockRangeQueries interface {
	ListBlockRangesOverlapping(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBlockRangesOverlappingParams) ([]sqlc.BlockRanges, error)
	ListBlockRangesByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) ([]sqlc.BlockRanges, error)
	GetBlockRangeByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.BlockRanges, error)
	CreateBlockRange(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBlockRangeParams) error
	UpdateBlockRange(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateBlockRangeParams) (int64, error)
	DeleteBlockRange(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type BlockRangeRepository struct {
	queries BlockRangeQueries
	db      sqlc.DBTX
}

func NewBlockRangeRepository(queries BlockRangeQueries, db sqlc.DBTX) *BlockRangeRepository {
	return &BlockRangeRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BlockRangeRepository) ListOverlapping(ctx context.Context, roomIDs []uuid.UUID, span calendar.DateRange) ([]availability.BlockRange, error) {
	rows, err := r.queries.ListBlockRangesOverlapping(ctx, r.db, sqlc.ListBlockRangesOverlappingParams{
		RoomIds:   roomIDs,
		SpanEnd:   converter.DateToPg(span.End()),
		SpanStart: converter.DateToPg(span.Start()),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping block ranges", err)
	}
	return converter.BlockRangesFromRows(rows)
}

func (r *BlockRangeRepository) ListByRoom(ctx context.Context, roomID uuid.UUID) ([]availability.BlockRange, error) {
	rows, err := r.queries.ListBlockRangesByRoom(ctx, r.db, roomID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list block ranges", err)
	}
	return converter.BlockRangesFromRows(rows)
}

func (r *BlockRangeRepository) FindByID(ctx context.Context, id uuid.UUID) (availability.BlockRange, error) {
	row, err := r.queries.GetBlockRangeByID(ctx, r.db, id)
	if err != nil {
		return availability.BlockRange{}, infra.WrapRepoErr("failed to find block range", err)
	}
	return converter.BlockRangeFromRow(row)
}

func (r *BlockRangeRepository) Create(ctx context.Context, pr availability.BlockRange) error {
	if err := r.queries.CreateBlockRange(ctx, r.db, converter.BlockRangeToCreateParams(pr)); err != nil {
		return infra.WrapRepoErr("failed to create block range", err)
	}
	return nil
}

func (r *BlockRangeRepository) Update(ctx context.Context, pr availability.BlockRange) error {
	n, err := r.queries.UpdateBlockRange(ctx, r.db, converter.BlockRangeToUpdateParams(pr))
	if err != nil {
		return infra.WrapRepoErr("failed to update block range", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("block range not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BlockRangeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.queries.DeleteBlockRange(ctx, r.db, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete block range", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("block range not found", nil, infra.KindNotFound)
	}
	return nil
}
