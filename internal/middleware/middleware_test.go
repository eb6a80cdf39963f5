package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "ledger-engine"
)

func signToken(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims(tenants ...string) Claims {
	return Claims{
		TenantIDs: tenants,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func newAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/tenants/:tenant_id/ping", AuthMiddleware(testSecret, testIssuer), RequireTenantAccess("tenant_id"), func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c.Request.Context())
		c.String(http.StatusOK, userID)
	})
	return r
}

func doGet(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()

	t.Run("valid token and tenant", func(t *testing.T) {
		w := doGet(r, "/tenants/t1/ping", signToken(t, validClaims("t1", "t2"), testSecret))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "user-1", w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := doGet(r, "/tenants/t1/ping", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		w := doGet(r, "/tenants/t1/ping", signToken(t, validClaims("t1"), "other"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		claims := validClaims("t1")
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		w := doGet(r, "/tenants/t1/ping", signToken(t, claims, testSecret))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "expired")
	})

	t.Run("wrong issuer", func(t *testing.T) {
		claims := validClaims("t1")
		claims.Issuer = "someone-else"
		w := doGet(r, "/tenants/t1/ping", signToken(t, claims, testSecret))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := validClaims("t1")
		claims.Subject = ""
		w := doGet(r, "/tenants/t1/ping", signToken(t, claims, testSecret))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("tenant not in token", func(t *testing.T) {
		w := doGet(r, "/tenants/t9/ping", signToken(t, validClaims("t1"), testSecret))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	base := slog.New(slog.NewJSONHandler(httptest.NewRecorder(), nil))
	var seen *slog.Logger
	r.Use(StructuredLoggingMiddleware(base))
	r.GET("/", func(c *gin.Context) {
		seen = GetLoggerFromCtx(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := doGet(r, "/", "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.NotNil(t, seen)
	assert.NotSame(t, slog.Default(), seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), GetLoggerFromCtx(context.Background()))
}

func TestRateLimit(t *testing.T) {
	lim, err := NewRateLimiter("2-M")
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(lim))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, doGet(r, "/", "").Code)
	assert.Equal(t, http.StatusOK, doGet(r, "/", "").Code)
	w := doGet(r, "/", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
}

func TestNewRateLimiter_InvalidFormat(t *testing.T) {
	_, err := NewRateLimiter("lots")
	assert.Error(t, err)
}
