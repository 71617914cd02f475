package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("does-not-exist.env")

	assert.Equal(t, 482.81, cfg.Trip.DefaultThresholdMeters)
	assert.Equal(t, 3, cfg.Call.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.Call.RetryDelay)
	assert.Equal(t, "process", cfg.Debounce.Scope)
	assert.Equal(t, "memory", cfg.Debounce.Backend)
	assert.Equal(t, 5*time.Second, cfg.Debounce.FallbackReset)
	assert.False(t, cfg.Trip.SurfaceCallFailure)
	assert.Equal(t, 30*time.Minute, cfg.Trip.EngineIdleTTL)
}

func TestInitConfig_LocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tracker.env")
	require.NoError(t, os.WriteFile(path, []byte("TRIP_DEFAULT_THRESHOLD_METERS=1609.34\nDEBOUNCE_SCOPE=user\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	t.Cleanup(func() {
		os.Unsetenv("TRIP_DEFAULT_THRESHOLD_METERS")
		os.Unsetenv("DEBOUNCE_SCOPE")
	})

	cfg := InitConfig(path)

	assert.Equal(t, 1609.34, cfg.Trip.DefaultThresholdMeters)
	assert.Equal(t, "user", cfg.Debounce.Scope)
}

func TestEnvHelpers_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_BOOL", "maybe")
	t.Setenv("X_FLOAT", "1.2.3")
	t.Setenv("X_DUR", "soon")

	assert.Equal(t, 7, GetEnvAsInt("X_INT", 7))
	assert.True(t, GetEnvAsBool("X_BOOL", true))
	assert.Equal(t, 1.5, GetEnvAsFloat("X_FLOAT", 1.5))
	assert.Equal(t, time.Second, GetEnvAsDuration("X_DUR", time.Second))
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("X_DELAY", "250ms")
	assert.Equal(t, 250*time.Millisecond, GetEnvAsDuration("X_DELAY", time.Second))
}
