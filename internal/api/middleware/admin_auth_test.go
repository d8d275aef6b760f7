package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kapi0622/Kapi-gallery/internal/api/config"
	"github.com/Kapi0622/Kapi-gallery/internal/api/dto"
	"github.com/Kapi0622/Kapi-gallery/internal/api/middleware"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/consts"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/response"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func neverRevoked(_ context.Context, _ string) (bool, error) {
	return false, nil
}

func alwaysRevoked(_ context.Context, _ string) (bool, error) {
	return true, nil
}

func setupGuardedRouter(t *testing.T, revoked middleware.RevocationChecker) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	old := config.Cfg
	config.Cfg = &config.Config{
		Site: config.SiteConfig{LoginPath: "/login"},
		Auth: config.AuthConfig{JWTSecret: "unit-test-secret", SessionHours: 1},
	}
	t.Cleanup(func() { config.Cfg = old })

	router := gin.New()
	admin := router.Group("/admin", middleware.AdminAuthMiddleware(revoked))
	admin.GET("/api/photos", func(c *gin.Context) {
		response.Success(c, gin.H{"email": c.GetString("admin_email")})
	})
	return router
}

func doRequest(router *gin.Engine, cookie, accept string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/admin/api/photos", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: consts.SessionCookieName, Value: cookie})
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestAdminAuthMiddleware(t *testing.T) {
	t.Run("valid session passes through", func(t *testing.T) {
		router := setupGuardedRouter(t, neverRevoked)

		token, err := security.GenerateToken("admin@example.com", []string{consts.RoleAdmin})
		require.NoError(t, err)

		w := doRequest(router, token, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, response.Ok, decodeEnvelope(t, w).Code)
	})

	t.Run("browser request without cookie redirects to login", func(t *testing.T) {
		router := setupGuardedRouter(t, neverRevoked)

		w := doRequest(router, "", "text/html,application/xhtml+xml")
		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("api request without cookie gets 401 envelope", func(t *testing.T) {
		router := setupGuardedRouter(t, neverRevoked)

		w := doRequest(router, "", "application/json")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, response.Unauthorized, decodeEnvelope(t, w).Code)
	})

	t.Run("garbage token rejected", func(t *testing.T) {
		router := setupGuardedRouter(t, neverRevoked)

		w := doRequest(router, "not-a-jwt", "application/json")
		require.Equal(t, response.Unauthorized, decodeEnvelope(t, w).Code)
	})

	t.Run("revoked session rejected", func(t *testing.T) {
		router := setupGuardedRouter(t, alwaysRevoked)

		token, err := security.GenerateToken("admin@example.com", []string{consts.RoleAdmin})
		require.NoError(t, err)

		w := doRequest(router, token, "application/json")
		require.Equal(t, response.Unauthorized, decodeEnvelope(t, w).Code)
	})

	t.Run("token without admin role forbidden", func(t *testing.T) {
		router := setupGuardedRouter(t, neverRevoked)

		token, err := security.GenerateToken("viewer@example.com", []string{"VIEWER"})
		require.NoError(t, err)

		w := doRequest(router, token, "application/json")
		require.Equal(t, response.Forbidden, decodeEnvelope(t, w).Code)
	})

	t.Run("wrong signing key rejected", func(t *testing.T) {
		router := setupGuardedRouter(t, neverRevoked)

		token, err := security.GenerateToken("admin@example.com", []string{consts.RoleAdmin})
		require.NoError(t, err)

		config.Cfg.Auth.JWTSecret = "rotated-secret"
		w := doRequest(router, token, "application/json")
		require.Equal(t, response.Unauthorized, decodeEnvelope(t, w).Code)
	})
}
