//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"pms-calendar/internal/domain/booking"
	"pms-calendar/internal/infra"
	"pms-calendar/internal/infra/repository"
	sqlc "pms-calendar/internal/infra/sqlc/generated"
	"pms-calendar/internal/usecase/shared"
	"pms-calendar/tests/common/builder"
	repositorymock "pms-calendar/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking stored",
			setupMock: func(mock *repositorymock.MockBookingQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(nil)
			},
		},
		{
			name: "error: stay overlaps a confirmed booking",
			setupMock: func(mock *repositorymock.MockBookingQueries, tx sqlc.DBTX) {
				excl := &pgconn.PgError{Code: infra.PgCodeExclusionViolation}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(excl)
			},
			expectedError: true,
			expectKind:    infra.KindExclusionViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b, err := builder.NewBookingBuilder().BuildDomain()
			require.NoError(t, err)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Create(ctx, b)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

func TestBookingRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		row           sqlc.Bookings
		err           error
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: confirmed booking",
			row:  builder.NewBookingBuilder().BuildInfra(),
		},
		{
			name: "success: canceled booking with a note",
			row: builder.NewBookingBuilder().AsCanceled().With(func(b *builder.BookingBuilder) {
				b.Note = "late arrival"
			}).BuildInfra(),
		},
		{
			name:          "error: booking not found",
			err:           pgx.ErrNoRows,
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: unknown stored status",
			row: func() sqlc.Bookings {
				row := builder.NewBookingBuilder().BuildInfra()
				row.Status = "pending"
				return row
			}(),
			expectedError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			id := uuid.New()
			mockQueries.EXPECT().GetBookingByID(ctx, mockDB, id).Return(tc.row, tc.err)

			got, actualError := repo.FindByID(ctx, id)

			if tc.expectedError {
				require.Error(t, actualError)
				if tc.expectKind != "" {
					assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				}
				return
			}
			require.NoError(t, actualError)
			assert.Equal(t, tc.row.ID, got.ID())
			assert.Equal(t, booking.Status(tc.row.Status), got.Status())
			assert.Equal(t, tc.row.Note.String, got.Note().String())
			assert.Equal(t, tc.row.TotalCents, got.Total().Cents())
		})
	}
}

func TestBookingRepository_ListByRoom(t *testing.T) {
	ctx := context.Background()
	roomID := uuid.New()
	row := builder.NewBookingBuilder().WithRoomID(roomID).BuildInfra()

	t.Run("first page uses the unkeyed query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookingQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		mockQueries.EXPECT().
			ListBookingsByRoom(ctx, mockDB, sqlc.ListBookingsByRoomParams{RoomID: roomID, Limit: 20}).
			Return([]sqlc.Bookings{row}, nil)

		got, err := repo.ListByRoom(ctx, roomID, nil, 20)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, row.ID, got[0].ID())
	})

	t.Run("later pages continue after the keyset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockQueries := repositorymock.NewMockBookingQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewBookingRepository(mockQueries, mockDB)

		after := &shared.Keyset{CreatedAt: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC), ID: uuid.New()}
		mockQueries.EXPECT().
			ListBookingsByRoomAfter(ctx, mockDB, sqlc.ListBookingsByRoomAfterParams{
				RoomID:         roomID,
				Limit:          5,
				AfterCreatedAt: pgtype.Timestamptz{Time: after.CreatedAt, Valid: true},
				AfterID:        after.ID,
			}).
			Return(nil, nil)

		got, err := repo.ListByRoom(ctx, roomID, after, 5)

		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestBookingRepository_UpdateStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockBookingQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewBookingRepository(mockQueries, mockDB)

	b, err := builder.NewBookingBuilder().AsCanceled().BuildDomain()
	require.NoError(t, err)
	mockQueries.EXPECT().UpdateBookingStatus(ctx, mockDB, gomock.Any()).Return(int64(0), nil)

	err = repo.UpdateStatus(ctx, b)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
