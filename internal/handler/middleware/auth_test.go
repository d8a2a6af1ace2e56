//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pms-calendar/internal/domain/user"
	"pms-calendar/internal/handler/middleware"
	"pms-calendar/internal/pkg/config"
	"pms-calendar/internal/pkg/cookie"
	"pms-calendar/internal/pkg/jwt"
	"pms-calendar/internal/usecase"
	"pms-calendar/tests/common/authtest"
	commontest "pms-calendar/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T, cfg config.JWTConfig, minRole user.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(cfg.Secret, cfg.Issuer, duration)))

	router := gin.New()
	router.GET("/protected", auth.RequireAuth(), auth.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"userId": userID, "role": role})
	})
	return router
}

func TestRequireAuth(t *testing.T) {
	cfg := config.NewTestConfig().JWT
	helper := authtest.NewJWTHelper(cfg)
	router := newAuthRouter(t, cfg, user.RoleViewer)
	userID := uuid.New()

	t.Run("bearer token is accepted", func(t *testing.T) {
		rec := commontest.PerformRequest(t, router, http.MethodGet, "/protected", nil, helper.GenerateToken(t, userID, user.RoleViewer))

		var body struct {
			UserID uuid.UUID `json:"userId"`
			Role   string    `json:"role"`
		}
		commontest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, userID, body.UserID)
		assert.Equal(t, "viewer", body.Role)
	})

	t.Run("cookie is the fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: helper.GenerateToken(t, userID, user.RoleAdmin)})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	cases := []struct {
		name      string
		token     string
		expectMsg string
	}{
		{name: "missing token", token: "", expectMsg: "Access token required"},
		{name: "garbage token", token: "not.a.jwt", expectMsg: "Invalid or expired token"},
		{name: "expired token", token: helper.CreateExpiredToken(t, userID, user.RoleAdmin), expectMsg: "Invalid or expired token"},
		{name: "foreign issuer", token: helper.CreateForeignIssuerToken(t, userID, user.RoleAdmin), expectMsg: "Invalid or expired token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := commontest.PerformRequest(t, router, http.MethodGet, "/protected", nil, tc.token)
			commontest.AssertErrorResponse(t, rec, http.StatusUnauthorized, tc.expectMsg)
		})
	}
}

func TestRequireRoleAtLeast(t *testing.T) {
	cfg := config.NewTestConfig().JWT
	helper := authtest.NewJWTHelper(cfg)

	cases := []struct {
		name       string
		minRole    user.Role
		role       user.Role
		expectCode int
	}{
		{name: "viewer reads", minRole: user.RoleViewer, role: user.RoleViewer, expectCode: http.StatusOK},
		{name: "viewer cannot book", minRole: user.RoleOperator, role: user.RoleViewer, expectCode: http.StatusForbidden},
		{name: "operator books", minRole: user.RoleOperator, role: user.RoleOperator, expectCode: http.StatusOK},
		{name: "operator cannot price", minRole: user.RoleAdmin, role: user.RoleOperator, expectCode: http.StatusForbidden},
		{name: "admin prices", minRole: user.RoleAdmin, role: user.RoleAdmin, expectCode: http.StatusOK},
		{name: "admin books", minRole: user.RoleOperator, role: user.RoleAdmin, expectCode: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := newAuthRouter(t, cfg, tc.minRole)
			rec := commontest.PerformRequest(t, router, http.MethodGet, "/protected", nil, helper.GenerateToken(t, uuid.New(), tc.role))
			assert.Equal(t, tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	t.Run("without RequireAuth the check fails closed", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		auth := middleware.NewAuthMiddleware(nil)
		router := gin.New()
		router.GET("/bare", auth.RequireRoleAtLeast(user.RoleViewer), func(c *gin.Context) { c.Status(http.StatusOK) })

		rec := commontest.PerformRequest(t, router, http.MethodGet, "/bare", nil, "")
		commontest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}
