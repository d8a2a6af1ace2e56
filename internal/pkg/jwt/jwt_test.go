//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"pms-calendar/internal/domain/user"
	"pms-calendar/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_ValidateToken(t *testing.T) {
	userID := uuid.New()
	svc := jwt.NewService("secret", "pms-dashboard", time.Hour)

	t.Run("round trip keeps user and role", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleOperator)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "operator", claims.Role)
	})

	cases := []struct {
		name  string
		token func(t *testing.T) string
		errIs error
	}{
		{
			name: "expired token",
			token: func(t *testing.T) string {
				tok, err := jwt.NewService("secret", "pms-dashboard", -time.Minute).GenerateToken(userID, user.RoleAdmin)
				require.NoError(t, err)
				return tok
			},
			errIs: jwt.ErrExpiredToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				tok, err := jwt.NewService("other", "pms-dashboard", time.Hour).GenerateToken(userID, user.RoleAdmin)
				require.NoError(t, err)
				return tok
			},
			errIs: jwt.ErrInvalidToken,
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				tok, err := jwt.NewService("secret", "someone-else", time.Hour).GenerateToken(userID, user.RoleAdmin)
				require.NoError(t, err)
				return tok
			},
			errIs: jwt.ErrInvalidToken,
		},
		{
			name:  "garbage",
			token: func(*testing.T) string { return "not-a-token" },
			errIs: jwt.ErrInvalidToken,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tc.token(t))
			require.ErrorIs(t, err, tc.errIs)
			assert.Nil(t, claims)
		})
	}
}
