//go:build unit

package middleware_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compras-service/internal/handler/middleware"
	"compras-service/internal/pkg/jwt"
	"compras-service/internal/usecase"
	"compras-service/internal/usecase/shared"
	"compras-service/tests/common/httptest"
)

const testSecret = "auth-middleware-test-secret"

func newAuthRouter(t *testing.T, service *jwt.Service) (*gin.Engine, *shared.Actor) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(service))
	var captured shared.Actor

	router := gin.New()
	router.GET("/protegido", auth.RequireAuth(), func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		require.True(t, ok)
		captured = actor
		c.Status(http.StatusNoContent)
	})
	return router, &captured
}

func TestRequireAuth_ValidToken(t *testing.T) {
	service := jwt.NewService(testSecret, time.Hour)
	router, actor := newAuthRouter(t, service)

	token, err := service.GenerateToken("tenant-a", "maria")
	require.NoError(t, err)

	w := httptest.PerformRequest(t, router, http.MethodGet, "/protegido", nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)

	assert.Equal(t, "tenant-a", actor.TenantID)
	assert.Equal(t, "maria", actor.UsuarioID)
	assert.Equal(t, token, actor.Credential, "raw credential is kept for upstream passthrough")
}

func TestRequireAuth_BearerPrefixOptional(t *testing.T) {
	service := jwt.NewService(testSecret, time.Hour)
	router, actor := newAuthRouter(t, service)

	token, err := service.GenerateToken("tenant-a", "maria")
	require.NoError(t, err)

	req := nethttptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", token)
	w := nethttptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "maria", actor.UsuarioID)
}

func TestRequireAuth_MissingToken(t *testing.T) {
	service := jwt.NewService(testSecret, time.Hour)
	router, _ := newAuthRouter(t, service)

	w := httptest.PerformRequest(t, router, http.MethodGet, "/protegido", nil, "")
	httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	issuer := jwt.NewService(testSecret, -time.Minute)
	router, _ := newAuthRouter(t, jwt.NewService(testSecret, time.Hour))

	token, err := issuer.GenerateToken("tenant-a", "maria")
	require.NoError(t, err)

	w := httptest.PerformRequest(t, router, http.MethodGet, "/protegido", nil, token)
	httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Token expired")
}

func TestRequireAuth_MissingClaims(t *testing.T) {
	service := jwt.NewService(testSecret, time.Hour)
	router, _ := newAuthRouter(t, service)

	token, err := service.GenerateToken("", "maria")
	require.NoError(t, err)

	w := httptest.PerformRequest(t, router, http.MethodGet, "/protegido", nil, token)
	httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Token missing required claims")
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	router, _ := newAuthRouter(t, jwt.NewService(testSecret, time.Hour))

	w := httptest.PerformRequest(t, router, http.MethodGet, "/protegido", nil, "not-a-jwt")
	httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid token")
}
