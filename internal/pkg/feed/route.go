package feed

import (
	"fmt"
	"time"

	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/spf13/viper"
)

// Waypoint is one fix of a recorded route
type Waypoint struct {
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
	// Wait is the time spent at this fix before moving to the next one
	Wait time.Duration `mapstructure:"wait"`
}

// Route is a replayable journey read from a YAML or JSON file
type Route struct {
	UserID          string        `mapstructure:"user_id"`
	Interval        time.Duration `mapstructure:"interval"`
	ThresholdMeters float64       `mapstructure:"threshold_meters"`
	Destination     Waypoint      `mapstructure:"destination"`
	Waypoints       []Waypoint    `mapstructure:"waypoints"`
}

// LoadRoute reads a route file; the format follows the file extension
func LoadRoute(path string) (*Route, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("interval", "5s")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read route file: %w", err)
	}

	var route Route
	if err := v.Unmarshal(&route); err != nil {
		return nil, fmt.Errorf("failed to decode route file: %w", err)
	}
	if err := route.Validate(); err != nil {
		return nil, err
	}
	return &route, nil
}

// Validate checks that the route can be replayed
func (r *Route) Validate() error {
	if len(r.Waypoints) == 0 {
		return fmt.Errorf("route has no waypoints")
	}
	if !r.Destination.Coordinate().Valid() {
		return fmt.Errorf("route destination is out of range")
	}
	for i, wp := range r.Waypoints {
		if !wp.Coordinate().Valid() {
			return fmt.Errorf("waypoint %d is out of range", i)
		}
	}
	if r.Interval <= 0 {
		return fmt.Errorf("route interval must be positive")
	}
	return nil
}

// Coordinate converts the waypoint to a model coordinate
func (w Waypoint) Coordinate() models.Coordinate {
	return models.Coordinate{Latitude: w.Latitude, Longitude: w.Longitude}
}

// Samples expands the route into timestamped fixes starting at start. Each
// waypoint is emitted once, then repeated every Interval while it waits.
func (r *Route) Samples(start time.Time) []models.PositionSample {
	var out []models.PositionSample
	at := start
	for _, wp := range r.Waypoints {
		out = append(out, models.PositionSample{UserID: r.UserID, Coordinate: wp.Coordinate(), Timestamp: at})
		for waited := r.Interval; waited <= wp.Wait; waited += r.Interval {
			out = append(out, models.PositionSample{UserID: r.UserID, Coordinate: wp.Coordinate(), Timestamp: at.Add(waited)})
		}
		at = at.Add(wp.Wait + r.Interval)
	}
	return out
}
