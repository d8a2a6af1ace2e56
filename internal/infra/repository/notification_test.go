//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pms-calendar/internal/infra"
	"pms-calendar/internal/infra/repository"
	sqlc "pms-calendar/internal/infra/sqlc/generated"
	"pms-calendar/internal/usecase/shared"
	repositorymock "pms-calendar/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_Enqueue(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	roomID := uuid.New()
	job := shared.NotificationJob{
		Kind:         shared.KindPriceUpdated,
		Topic:        shared.TopicChannelManager,
		PartitionKey: roomID.String(),
		Payload:      []byte(`{"roomId":"` + roomID.String() + `"}`),
		RunAt:        runAt,
	}

	testCases := []struct {
		name          string
		err           error
		expectedError bool
	}{
		{name: "success: job queued"},
		{name: "error: database error occurs", err: errors.New("database connection error"), expectedError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockNotificationQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewNotificationRepository(mockQueries, mockDB)

			mockQueries.EXPECT().
				CreateNotificationJob(ctx, mockDB, sqlc.CreateNotificationJobParams{
					Kind:         job.Kind,
					Topic:        job.Topic,
					PartitionKey: job.PartitionKey,
					Payload:      job.Payload,
					Status:       "queued",
					RunAt:        pgtype.Timestamptz{Time: runAt, Valid: true},
				}).
				Return(tc.err)

			actualError := repo.Enqueue(ctx, job)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, infra.KindDBFailure))
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestNotificationRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockNotificationQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	row := sqlc.NotificationJobs{
		ID:           uuid.New(),
		Kind:         shared.KindAvailabilityUpdated,
		Topic:        shared.TopicChannelManager,
		PartitionKey: "room-1",
		Payload:      []byte(`{}`),
		Status:       "queued",
		Attempts:     2,
		RunAt:        pgtype.Timestamptz{Time: now.Add(-time.Minute), Valid: true},
	}
	mockQueries.EXPECT().
		ClaimDueNotificationJobs(ctx, mockDB, sqlc.ClaimDueNotificationJobsParams{
			Now:       pgtype.Timestamptz{Time: now, Valid: true},
			BatchSize: 50,
		}).
		Return([]sqlc.NotificationJobs{row}, nil)

	jobs, err := repo.ClaimDue(ctx, now, 50)

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, row.ID, jobs[0].ID)
	assert.Equal(t, 2, jobs[0].Attempts)
	assert.Equal(t, "room-1", jobs[0].PartitionKey)
	assert.Equal(t, shared.KindAvailabilityUpdated, jobs[0].Kind)
}

func TestNotificationRepository_Reschedule(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockNotificationQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewNotificationRepository(mockQueries, mockDB)

	id := uuid.New()
	runAt := time.Date(2024, 1, 1, 9, 5, 0, 0, time.UTC)
	mockQueries.EXPECT().
		RescheduleNotificationJob(ctx, mockDB, sqlc.RescheduleNotificationJobParams{
			ID:        id,
			LastError: pgtype.Text{String: "broker down", Valid: true},
			RunAt:     pgtype.Timestamptz{Time: runAt, Valid: true},
		}).
		Return(nil)

	require.NoError(t, repo.Reschedule(ctx, id, "broker down", runAt))
}
