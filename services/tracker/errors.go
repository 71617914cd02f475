package tracker

import "errors"

var (
	ErrInvalidDestination = errors.New("destination is missing or out of range")
	ErrInvalidThreshold   = errors.New("alarm threshold must be positive")
	ErrTripAlreadyActive  = errors.New("a trip is already in progress")
	ErrNoActiveTrip       = errors.New("no active trip")
	ErrTripNotCompleted   = errors.New("trip has not reached its destination")
	ErrInvalidLifecycle   = errors.New("unknown app lifecycle state")
	ErrInvalidPosition    = errors.New("position is out of range")
	ErrMissingUser        = errors.New("user id is required")
	ErrCounterConflict    = errors.New("call counter update conflicted too many times")
)
