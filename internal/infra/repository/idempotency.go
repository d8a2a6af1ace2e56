package repository

//go:generate mockgen -source=idempotency.go -destination=../../../tests/mock/repository/idempotency.go -package=repositorymock

import (
	"context"
	"time"

	"pms-calendar/internal/infra"
	sqlc "pms-calendar/internal/infra/sqlc/generated"
	"pms-calendar/internal/pkg/pgconv"
	"pms-calendar/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type IdempotencyQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (sqlc.IdempotencyKeys, error)
	UpdateIdempotencyKeyCompleted(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateIdempotencyKeyCompletedParams) (int64, error)
	ReclaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ReclaimExpiredIdempotencyKeyParams) (int64, error)
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyQueries
	db      sqlc.DBTX
}

func NewIdempotencyRepository(queries IdempotencyQueries, db sqlc.DBTX) *IdempotencyRepository {
	return &IdempotencyRepository{
		queries: queries,
		db:      db,
	}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error) {
	n, err := r.queries.TryInsertIdempotencyKey(ctx, r.db, sqlc.TryInsertIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		Endpoint:    endpoint,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return n > 0, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, r.db, sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &shared.IdempotencyRecord{
		Key:         row.Key,
		UserID:      row.UserID,
		Endpoint:    row.Endpoint,
		Status:      row.Status,
		RequestHash: row.RequestHash,
		ResultID:    pgconv.UUIDPtrFromPgtype(row.ResultBookingID),
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, key, userID, resultID uuid.UUID) error {
	n, err := r.queries.UpdateIdempotencyKeyCompleted(ctx, r.db, sqlc.UpdateIdempotencyKeyCompletedParams{
		Key:             key,
		UserID:          userID,
		ResultBookingID: pgconv.UUIDPtrToPgtype(&resultID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *IdempotencyRepository) ReclaimExpired(ctx context.Context, key, userID uuid.UUID, requestHash string, expiresAt, now time.Time) (bool, error) {
	n, err := r.queries.ReclaimExpiredIdempotencyKey(ctx, r.db, sqlc.ReclaimExpiredIdempotencyKeyParams{
		Key:         key,
		UserID:      userID,
		RequestHash: requestHash,
		ExpiresAt:   pgconv.TimeToPgtype(expiresAt),
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to reclaim idempotency key", err)
	}
	return n > 0, nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, r.db, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return count, nil
}
