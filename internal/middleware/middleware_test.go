package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhiHoang41/lumina-backend/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authTestRouter(secret string) *gin.Engine {
	router := gin.New()
	mw := NewAuthMiddleware(secret)
	router.GET("/me", mw.Handle(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString("user_id"), "role": c.GetString("role")})
	})
	return router
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router := authTestRouter("secret")

	token, err := utils.GenerateJWT("secret", "user-1", "a@example.com", "USER", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
}

func TestAuthMiddlewareRejectsMissingHeader(t *testing.T) {
	router := authTestRouter("secret")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsMalformedHeader(t *testing.T) {
	router := authTestRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Token abc")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsForgedToken(t *testing.T) {
	router := authTestRouter("secret")

	token, err := utils.GenerateJWT("other-secret", "user-1", "a@example.com", "ADMIN", time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func adminTestRouter(role string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if role != "" {
			c.Set("role", role)
		}
	})
	router.GET("/admin", RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	w := httptest.NewRecorder()
	adminTestRouter("ADMIN").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdminRejectsUser(t *testing.T) {
	w := httptest.NewRecorder()
	adminTestRouter("USER").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireAdminRejectsMissingRole(t *testing.T) {
	w := httptest.NewRecorder()
	adminTestRouter("").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestOriginHost(t *testing.T) {
	assert.Equal(t, "localhost:3000", originHost("http://localhost:3000"))
	assert.Equal(t, "lumina.shop", originHost("https://lumina.shop:443/"))
	assert.Equal(t, "", originHost("not a url"))
	assert.Equal(t, "", originHost(""))
}
