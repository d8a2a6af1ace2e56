//go:build unit

package commands_test

import (
	"context"
	"testing"

	"pms-calendar/internal/domain/room"
	"pms-calendar/internal/pkg/errs"
	"pms-calendar/internal/usecase/commands"
	"pms-calendar/internal/usecase/shared"
	"pms-calendar/tests/common/memstore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomUseCase_CreateRoom(t *testing.T) {
	testCases := []struct {
		name    string
		req     commands.CreateRoomRequest
		wantErr error
	}{
		{name: "success: room created", req: commands.CreateRoomRequest{Name: "Ocean 101", Capacity: 2}},
		{name: "error: blank name", req: commands.CreateRoomRequest{Name: " ", Capacity: 2}, wantErr: room.ErrEmptyRoomName},
		{name: "error: zero capacity", req: commands.CreateRoomRequest{Name: "Ocean 101"}, wantErr: room.ErrInvalidCapacity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := memstore.New()
			uc := commands.NewRoomUseCase(store)

			id, err := uc.CreateRoom(context.Background(), tc.req)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.True(t, errs.Is(err, errs.ErrInvalidRange))
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, id)

			err = store.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
				got, ferr := tx.Rooms().FindByID(ctx, id)
				if ferr != nil {
					return ferr
				}
				assert.Equal(t, tc.req.Name, got.Name())
				return nil
			})
			require.NoError(t, err)
		})
	}
}
