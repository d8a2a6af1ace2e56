//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"pms-calendar/internal/domain/user"
	"pms-calendar/internal/pkg/config"
	"pms-calendar/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the dashboard's identity provider would.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	return h.sign(t, duration, h.cfg.Issuer, userID, role)
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	// the parser allows no leeway, so a negative lifetime is already expired
	return h.sign(t, -time.Minute, h.cfg.Issuer, userID, role)
}

func (h *JWTHelper) CreateForeignIssuerToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.sign(t, time.Hour, "someone-else", userID, role)
}

func (h *JWTHelper) sign(t *testing.T, d time.Duration, issuer string, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, issuer, d).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
