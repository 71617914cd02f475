package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	appctx "github.com/piresc/wakestop/internal/pkg/context"
	jwtpkg "github.com/piresc/wakestop/internal/pkg/jwt"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/piresc/wakestop/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = models.JWTConfig{Secret: "middleware-secret", Expiration: 5, Issuer: "test"}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, UserID(c))
}

func TestJWTAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	token, _, err := jwtpkg.GenerateToken(userID, jwtpkg.RoleTraveler, testJWT)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, ""},
		{"invalid token", "Bearer nope", http.StatusUnauthorized, ""},
		{"valid token", "Bearer " + token, http.StatusOK, userID.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := JWTAuthMiddleware(testJWT)(okHandler)(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, tt.wantBody, rec.Body.String())
				return
			}
			var body utils.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "unauthenticated", body.Status)
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, RequestIDMiddleware()(okHandler)(e.NewContext(req, rec)))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-42")
	rec = httptest.NewRecorder()
	require.NoError(t, RequestIDMiddleware()(okHandler)(e.NewContext(req, rec)))
	assert.Equal(t, "req-42", rec.Header().Get(echo.HeaderXRequestID))

	var seen string
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderXRequestID, "req-43")
	rec = httptest.NewRecorder()
	require.NoError(t, RequestIDMiddleware()(func(c echo.Context) error {
		seen = appctx.GetRequestID(c.Request().Context())
		return nil
	})(e.NewContext(req, rec)))
	assert.Equal(t, "req-43", seen)
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := PanicRecoveryWithZapMiddleware(logger.NewNopLogger())(func(c echo.Context) error {
		panic("destination missing")
	})

	assert.NotPanics(t, func() {
		assert.NoError(t, h(c))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal Server Error")
}

func TestPanicRecoveryWithZapMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() {
		PanicRecoveryWithZapMiddleware(nil)
	})
}

func TestUserRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	e := echo.New()
	limiter := UserRateLimiter(2, time.Minute, rdb)(okHandler)

	call := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/positions", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(ContextUserID, "user-1")
		require.NoError(t, limiter(c))
		return rec
	}

	assert.Equal(t, http.StatusOK, call().Code)
	assert.Equal(t, http.StatusOK, call().Code)
	rec := call()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestUserRateLimiter_FailsOpen(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/positions", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, UserRateLimiter(1, time.Minute, rdb)(okHandler)(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
