package models

import "time"

// AlertChannel selects how an alarm notification is shown
type AlertChannel string

const (
	AlertChannelInApp AlertChannel = "in_app"
	AlertChannelPush  AlertChannel = "push"
)

// Alert is a wake-up notification for one traveler
type Alert struct {
	ID        string       `json:"id"`
	TripID    string       `json:"trip_id"`
	UserID    string       `json:"user_id"`
	Channel   AlertChannel `json:"channel"`
	Title     string       `json:"title"`
	Body      string       `json:"body"`
	Sound     bool         `json:"sound"`
	CreatedAt time.Time    `json:"created_at"`
}

// AlertRetraction withdraws the alerts of a trip that ended before acknowledgement
type AlertRetraction struct {
	TripID      string    `json:"trip_id"`
	UserID      string    `json:"user_id"`
	RetractedAt time.Time `json:"retracted_at"`
}
