package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/wakestop/internal/pkg/database"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	err error
}

func (s stubChecker) CheckHealth(context.Context) error { return s.err }

func newEcho(hs *HealthService) *echo.Echo {
	e := echo.New()
	RegisterEnhancedHealthEndpoints(e, "tracker", "1.0.0", hs)
	return e
}

func TestCheckAllHealth(t *testing.T) {
	hs := NewHealthService(logger.NewNopLogger())
	hs.AddChecker("redis", stubChecker{})
	hs.AddChecker("telephony", stubChecker{err: errors.New("circuit breaker is open")})

	resp := hs.CheckAllHealth(context.Background())

	assert.Equal(t, "unhealthy", resp.Status)
	assert.Equal(t, "healthy", resp.Dependencies["redis"].Status)
	assert.Equal(t, "circuit breaker is open", resp.Dependencies["telephony"].Error)
}

func TestDetailedEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		checker    HealthChecker
		wantStatus int
	}{
		{"healthy", stubChecker{}, http.StatusOK},
		{"unhealthy", stubChecker{err: errors.New("down")}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := NewHealthService(logger.NewNopLogger())
			hs.AddChecker("postgres", tt.checker)
			e := newEcho(hs)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/detailed", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, "tracker", body.Service)
			assert.Equal(t, "1.0.0", body.Version)
		})
	}
}

func TestLiveAndReady(t *testing.T) {
	hs := NewHealthService(logger.NewNopLogger())
	e := newEcho(hs)

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestPingChecker_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	checker := NewPingChecker(client)

	assert.NoError(t, checker.CheckHealth(context.Background()))

	mr.Close()
	assert.Error(t, checker.CheckHealth(context.Background()))
}

func TestNATSHealthChecker_NilClient(t *testing.T) {
	assert.NoError(t, NewNATSHealthChecker(nil).CheckHealth(context.Background()))
}
