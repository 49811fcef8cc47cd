package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/owlconnect/owlconnect/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    time.Hour,
		TokenIssuer: "owlconnect-test",
	})
	authMiddleware := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/protected",
		authMiddleware.JWTAuth(),
		authMiddleware.RoleRequired(auth.RoleAdmin),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

	return router, jwtService
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestJWTAuthMalformedToken(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		header string
	}{
		{"garbage token", "Bearer not-a-jwt"},
		{"truncated token", "Bearer eyJhbGciOiJIUzI1NiJ9"},
		{"empty bearer", "Bearer "},
		{"bare token without scheme", "eyJhbGciOiJIUzI1NiJ9.e30.sig"},
		{"wrong scheme", "Basic YWRtaW46aHVudGVyMg=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	router, _ := newTestRouter(t)

	expiredService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    -time.Minute,
		TokenIssuer: "owlconnect-test",
	})
	token, _, err := expiredService.GenerateAdminToken()
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestJWTAuthWrongSigningKey(t *testing.T) {
	router, _ := newTestRouter(t)

	otherService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "a-different-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "owlconnect-test",
	})
	token, _, err := otherService.GenerateAdminToken()
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	router, jwtService := newTestRouter(t)

	token, _, err := jwtService.GenerateAdminToken()
	require.NoError(t, err)

	w := doRequest(router, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "true")
}

func TestRoleRequiredRejectsWrongRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    time.Hour,
		TokenIssuer: "owlconnect-test",
	})
	authMiddleware := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/protected",
		func(c *gin.Context) {
			c.Set(ContextRoleKey, "VISITOR")
			c.Next()
		},
		authMiddleware.RoleRequired(auth.RoleAdmin),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

	w := doRequest(router, "")

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Access denied")
}

func TestRoleRequiredWithoutJWTAuthRejects(t *testing.T) {
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret-key",
		TokenExp:    time.Hour,
		TokenIssuer: "owlconnect-test",
	})
	authMiddleware := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/protected", authMiddleware.RoleRequired(auth.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := doRequest(router, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
