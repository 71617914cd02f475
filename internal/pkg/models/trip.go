package models

import (
	"time"

	"github.com/google/uuid"
)

// TripState represents the lifecycle state of a trip
type TripState string

const (
	TripStateIdle             TripState = "idle"
	TripStateActive           TripState = "active"
	TripStateThresholdReached TripState = "threshold_reached"
	TripStateCompleted        TripState = "completed"
	TripStateCancelled        TripState = "cancelled"
)

// AppLifecycle tells whether the traveler's app is visible
type AppLifecycle string

const (
	AppForeground AppLifecycle = "foreground"
	AppBackground AppLifecycle = "background"
)

// Valid reports whether the lifecycle value is known
func (l AppLifecycle) Valid() bool {
	return l == AppForeground || l == AppBackground
}

// Trip holds the mutable state of a single traveler's trip
type Trip struct {
	ID                 uuid.UUID
	UserID             string
	Destination        *Coordinate
	InitialLocation    *Coordinate
	CurrentLocation    *Coordinate
	ThresholdMeters    float64
	DistanceMeters     float64
	Progress           float64
	State              TripState
	CallMade           bool
	CallInProgress     bool
	CallFailed         bool
	CallError          string
	StartedAt          time.Time
	ThresholdReachedAt *time.Time
}

// TripSnapshot is the read model published to subscribers
type TripSnapshot struct {
	TripID             string      `json:"trip_id,omitempty"`
	UserID             string      `json:"user_id"`
	State              TripState   `json:"state"`
	Progress           float64     `json:"progress"`
	DistanceMeters     float64     `json:"distance_meters"`
	ThresholdMeters    float64     `json:"threshold_meters"`
	CallMade           bool        `json:"call_made"`
	CallInProgress     bool        `json:"call_in_progress"`
	CallFailed         bool        `json:"call_failed,omitempty"`
	CallError          string      `json:"call_error,omitempty"`
	Destination        *Coordinate `json:"destination,omitempty"`
	DestinationGeohash string      `json:"destination_geohash,omitempty"`
	InitialLocation    *Coordinate `json:"initial_location,omitempty"`
	CurrentLocation    *Coordinate `json:"current_location,omitempty"`
	StartedAt          *time.Time  `json:"started_at,omitempty"`
	ThresholdReachedAt *time.Time  `json:"threshold_reached_at,omitempty"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// StartTripRequest is the body of a start trip call
type StartTripRequest struct {
	Destination     *Coordinate `json:"destination"`
	ThresholdMeters float64     `json:"threshold_meters"`
}

// LifecycleRequest is the body of an app lifecycle update
type LifecycleRequest struct {
	State AppLifecycle `json:"state"`
}

// CallStats holds the per-user count of successful wake-up calls
type CallStats struct {
	UserID    string    `json:"user_id"`
	CallCount int64     `json:"call_count"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
