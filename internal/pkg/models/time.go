package models

import (
	"time"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// Clock abstracts the wall clock so timing can be driven from tests
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real UTC clock
type SystemClock struct{}

// Now returns the current time in UTC
func (SystemClock) Now() time.Time {
	return Now()
}
