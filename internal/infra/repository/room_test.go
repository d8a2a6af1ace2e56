//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"pms-calendar/internal/infra"
	"pms-calendar/internal/infra/repository"
	sqlc "pms-calendar/internal/infra/sqlc/generated"
	"pms-calendar/tests/common/builder"
	repositorymock "pms-calendar/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// =============================================================================
// Create Room Tests
// =============================================================================

func TestRoomRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRoomQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: room created",
			setupMock: func(mock *repositorymock.MockRoomQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateRoom(ctx, tx, gomock.Any()).Return(nil)
			},
		},
		{
			name: "error: duplicate room id",
			setupMock: func(mock *repositorymock.MockRoomQueries, tx sqlc.DBTX) {
				dup := &pgconn.PgError{Code: infra.PgCodeUniqueViolation, Message: "duplicate key value violates unique constraint"}
				mock.EXPECT().CreateRoom(ctx, tx, gomock.Any()).Return(dup)
			},
			expectedError: true,
			expectKind:    infra.KindDuplicateKey,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockRoomQueries, tx sqlc.DBTX) {
				mock.EXPECT().CreateRoom(ctx, tx, gomock.Any()).Return(errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRoomQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRoomRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			actualError := repo.Create(ctx, builder.NewRoomBuilder().BuildDomain())

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}

// =============================================================================
// LockByID Tests
// =============================================================================

func TestRoomRepository_LockByID(t *testing.T) {
	ctx := context.Background()
	row := builder.NewRoomBuilder().WithName("Garden Suite").WithCapacity(4).BuildInfra()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockRoomQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: locked room is returned",
			setupMock: func(mock *repositorymock.MockRoomQueries, tx sqlc.DBTX) {
				mock.EXPECT().LockRoomByID(ctx, tx, row.ID).Return(row, nil)
			},
		},
		{
			name: "error: room not found",
			setupMock: func(mock *repositorymock.MockRoomQueries, tx sqlc.DBTX) {
				mock.EXPECT().LockRoomByID(ctx, tx, row.ID).Return(sqlc.Rooms{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockRoomQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewRoomRepository(mockQueries, mockDB)

			tc.setupMock(mockQueries, mockDB)

			got, actualError := repo.LockByID(ctx, row.ID)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Nil(t, got)
			} else {
				require.NoError(t, actualError)
				assert.Equal(t, row.ID, got.ID())
				assert.Equal(t, "Garden Suite", got.Name())
				assert.Equal(t, 4, got.Capacity())
			}
		})
	}
}

func TestRoomRepository_FindByIDs(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockRoomQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewRoomRepository(mockQueries, mockDB)

	a := builder.NewRoomBuilder().WithName("A").BuildInfra()
	b := builder.NewRoomBuilder().WithName("B").BuildInfra()
	ids := []uuid.UUID{a.ID, b.ID}
	mockQueries.EXPECT().ListRoomsByIDs(ctx, mockDB, ids).Return([]sqlc.Rooms{a, b}, nil)

	rooms, err := repo.FindByIDs(ctx, ids)

	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "A", rooms[0].Name())
	assert.Equal(t, "B", rooms[1].Name())
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
