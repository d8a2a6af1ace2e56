package repository

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/repository/notification.go -package=repositorymock

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

const notificationStatusQueued = "queued"

type NotificationQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]sqlc.NotificationJobs, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	RescheduleNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleNotificationJobParams) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
}

type NotificationRepository struct {
	queries NotificationQueries
	db      sqlc.DBTX
}

func NewNotificationRepository(queries NotificationQueries, db sqlc.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, job shared.NotificationJob) error {
	err := r.queries.CreateNotificationJob(ctx, r.db, sqlc.CreateNotificationJobParams{
		Kind:         job.Kind,
		Topic:        job.Topic,
		PartitionKey: job.PartitionKey,
		Payload:      job.Payload,
		Status:       notificationStatusQueued,
		RunAt:        pgconv.TimeToPgtype(job.RunAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, now time.Time, limit int) ([]shared.QueuedJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, r.db, sqlc.ClaimDueNotificationJobsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: pgconv.IntToInt32(limit),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.QueuedJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.QueuedJob{
			ID:       row.ID,
			Attempts: int(row.Attempts),
			NotificationJob: shared.NotificationJob{
				Kind:         row.Kind,
				Topic:        row.Topic,
				PartitionKey: row.PartitionKey,
				Payload:      row.Payload,
				RunAt:        pgconv.TimeFromPgtype(row.RunAt),
			},
		})
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	if err := r.queries.MarkNotificationJobSent(ctx, r.db, id); err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) Reschedule(ctx context.Context, id uuid.UUID, lastErr string, runAt time.Time) error {
	err := r.queries.RescheduleNotificationJob(ctx, r.db, sqlc.RescheduleNotificationJobParams{
		ID:        id,
		LastError: pgtype.Text{String: lastErr, Valid: true},
		RunAt:     pgconv.TimeToPgtype(runAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, id uuid.UUID, lastErr string) error {
	err := r.queries.MarkNotificationJobFailed(ctx, r.db, sqlc.MarkNotificationJobFailedParams{
		ID:        id,
		LastError: pgtype.Text{String: lastErr, Valid: true},
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
