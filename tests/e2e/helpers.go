//go:build e2e

package e2e

import (
	"testing"
	"time"

	"pms-calendar/internal/domain/user"
	"pms-calendar/tests/common/authtest"

	"github.com/google/uuid"
)

// Day returns the ISO date offset days from today, so stays are never in the past.
func Day(offset int) string {
	return time.Now().UTC().AddDate(0, 0, offset).Format("2006-01-02")
}

func (s *SharedSuite) Token(t *testing.T, role user.Role) string {
	t.Helper()
	return authtest.NewJWTHelper(s.Config.JWT).GenerateToken(t, uuid.New(), role)
}
