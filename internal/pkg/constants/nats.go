package constants

// NATS subjects
const (
	// Geolocation feed
	SubjectLocationSample = "location.sample"
	SubjectLocationError  = "location.error"

	// Alarm notifications, routed by app lifecycle
	SubjectAlarmInApp   = "alarm.inapp"
	SubjectAlarmPush    = "alarm.push"
	SubjectAlarmRetract = "alarm.retract"

	// Trip lifecycle events
	SubjectTripUpdated = "trip.updated"
)
