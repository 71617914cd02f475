package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/wakestop/internal/pkg/jwt"
	"github.com/piresc/wakestop/internal/pkg/models"
	wspkg "github.com/piresc/wakestop/internal/pkg/websocket"
	"github.com/piresc/wakestop/services/tracker/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRoutes(t *testing.T, redisClient *redis.Client) (*echo.Echo, *mocks.MockTripUC, *models.Config) {
	ctrl := gomock.NewController(t)
	mockTripUC := mocks.NewMockTripUC(ctrl)
	cfg := &models.Config{JWT: models.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "wakestop"}}

	h := NewHandler(mockTripUC, nil, wspkg.NewManager(cfg.JWT), cfg, nil)
	e := echo.New()
	h.RegisterRoutes(e, redisClient)
	return e, mockTripUC, cfg
}

func bearer(t *testing.T, cfg *models.Config, userID uuid.UUID) string {
	token, _, err := jwtpkg.GenerateToken(userID, jwtpkg.RoleTraveler, cfg.JWT)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRoutes_RequireJWT(t *testing.T) {
	e, _, _ := setupRoutes(t, nil)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/v1/trips"},
		{http.MethodGet, "/v1/trips/current"},
		{http.MethodDelete, "/v1/trips/current"},
		{http.MethodPost, "/v1/trips/current/acknowledge"},
		{http.MethodPut, "/v1/app/lifecycle"},
		{http.MethodGet, "/v1/stats"},
		{http.MethodPost, "/v1/positions"},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", route.method, route.path)
	}
}

func TestRoutes_AuthenticatedUserReachesUsecase(t *testing.T) {
	e, mockTripUC, cfg := setupRoutes(t, nil)
	userID := uuid.New()

	mockTripUC.EXPECT().GetSnapshot(gomock.Any(), userID.String()).
		Return(models.TripSnapshot{UserID: userID.String(), State: models.TripStateIdle}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/trips/current", nil)
	req.Header.Set(echo.HeaderAuthorization, bearer(t, cfg, userID))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"idle"`)
}

func TestRoutes_PositionsAreRateLimited(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	e, mockTripUC, cfg := setupRoutes(t, redisClient)
	userID := uuid.New()
	auth := bearer(t, cfg, userID)

	mockTripUC.EXPECT().HandlePosition(gomock.Any(), gomock.Any()).Return(nil).Times(positionRateLimit)

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/v1/positions",
			strings.NewReader(`{"coordinate":{"latitude":37.7749,"longitude":-122.4194}}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAuthorization, auth)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < positionRateLimit; i++ {
		require.Equal(t, http.StatusAccepted, post())
	}
	assert.Equal(t, http.StatusTooManyRequests, post())
}
