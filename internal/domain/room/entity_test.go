//go:build unit

package room_test

import (
	"strings"
	"testing"

	"pms-calendar/internal/domain/room"
	"pms-calendar/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	cases := []struct {
		name     string
		roomName string
		capacity int
		wantErr  error
	}{
		{name: "valid", roomName: "Deluxe Twin", capacity: 2},
		{name: "name is trimmed", roomName: "  Suite 301 ", capacity: 4},
		{name: "blank name", roomName: "   ", capacity: 2, wantErr: room.ErrEmptyRoomName},
		{name: "long name", roomName: strings.Repeat("a", room.MaxRoomNameLength+1), capacity: 2, wantErr: room.ErrRoomNameTooLong},
		{name: "zero capacity", roomName: "Single", capacity: 0, wantErr: room.ErrInvalidCapacity},
		{name: "capacity over limit", roomName: "Dorm", capacity: room.MaxCapacity + 1, wantErr: room.ErrInvalidCapacity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := room.NewRoom(uuid.New(), tc.roomName, tc.capacity)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.True(t, errs.Is(err, errs.ErrInvalidRange))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tc.roomName), r.Name())
			assert.Equal(t, tc.capacity, r.Capacity())
		})
	}
}

func TestRoom_Fits(t *testing.T) {
	r, err := room.NewRoom(uuid.New(), "Family", 4)
	require.NoError(t, err)

	assert.False(t, r.Fits(0))
	assert.True(t, r.Fits(1))
	assert.True(t, r.Fits(4))
	assert.False(t, r.Fits(5))
}
