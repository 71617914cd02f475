package feed

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/piresc/wakestop/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var origin = models.Coordinate{Latitude: 37.7749, Longitude: -122.4194}

func sample(user string, c models.Coordinate, at time.Time) models.PositionSample {
	return models.PositionSample{UserID: user, Coordinate: c, Timestamp: at}
}

func TestFilter_Accept(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	f := NewFilter()

	assert.True(t, f.Accept(sample("u1", origin, t0)), "first fix is always accepted")
	assert.False(t, f.Accept(sample("u1", utils.Destination(origin, 90, 10), t0.Add(10*time.Second))))
	assert.True(t, f.Accept(sample("u1", utils.Destination(origin, 90, 35), t0.Add(20*time.Second))), "moved more than 30m")

	// stationary, but the interval elapsed since the last accepted fix
	last := utils.Destination(origin, 90, 35)
	assert.False(t, f.Accept(sample("u1", last, t0.Add(79*time.Second))))
	assert.True(t, f.Accept(sample("u1", last, t0.Add(80*time.Second))))
}

func TestFilter_NewUserAndReset(t *testing.T) {
	t0 := time.Now()
	f := NewFilter()

	require.True(t, f.Accept(sample("u1", origin, t0)))
	assert.True(t, f.Accept(sample("u2", origin, t0)), "another user starts a new baseline")

	assert.False(t, f.Accept(sample("u2", origin, t0.Add(time.Second))))
	f.Reset()
	assert.True(t, f.Accept(sample("u2", origin, t0.Add(2*time.Second))))
}

func TestRoute_Samples(t *testing.T) {
	t0 := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	r := &Route{
		UserID:   "u1",
		Interval: 5 * time.Second,
		Waypoints: []Waypoint{
			{Latitude: 1, Longitude: 1, Wait: 10 * time.Second},
			{Latitude: 2, Longitude: 2},
		},
	}

	got := r.Samples(t0)
	require.Len(t, got, 4)
	assert.Equal(t, t0, got[0].Timestamp)
	assert.Equal(t, t0.Add(10*time.Second), got[2].Timestamp)
	assert.Equal(t, t0.Add(15*time.Second), got[3].Timestamp)
	assert.Equal(t, 2.0, got[3].Coordinate.Latitude)
	assert.Equal(t, "u1", got[3].UserID)
}

func TestLoadRoute(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "commute.yaml")
	body := `user_id: 7f9c2a4e-0000-4000-8000-000000000001
interval: 2s
threshold_meters: 482.81
destination:
  latitude: 37.7749
  longitude: -122.4194
waypoints:
  - latitude: 37.7929
    longitude: -122.4194
    wait: 4s
  - latitude: 37.7790
    longitude: -122.4194
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	route, err := LoadRoute(path)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, route.Interval)
	assert.Equal(t, 482.81, route.ThresholdMeters)
	assert.Equal(t, 37.7749, route.Destination.Latitude)
	require.Len(t, route.Waypoints, 2)
	assert.Equal(t, 4*time.Second, route.Waypoints[0].Wait)
}

func TestLoadRoute_Invalid(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadRoute(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("user_id: u1\ndestination:\n  latitude: 91\n  longitude: 0\n"), 0o600))
	_, err = LoadRoute(path)
	assert.EqualError(t, err, "route has no waypoints")

	path = filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("destination:\n  latitude: 91\n  longitude: 0\nwaypoints:\n  - latitude: 1\n    longitude: 1\n"), 0o600))
	_, err = LoadRoute(path)
	assert.EqualError(t, err, "route destination is out of range")
}
