package tracker

import (
	"context"
	"time"

	"github.com/piresc/wakestop/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/wakestop/services/tracker NotificationGW,CallBackendGW

// NotificationGW delivers wake-up alerts to the traveler's device
type NotificationGW interface {
	// ScheduleAlert publishes alert after delay; zero delay publishes immediately
	ScheduleAlert(ctx context.Context, alert models.Alert, delay time.Duration) error
	// CancelPending drops scheduled alerts of a trip and retracts delivered ones
	CancelPending(ctx context.Context, tripID, userID string) error
	PublishTripUpdated(ctx context.Context, snap models.TripSnapshot) error
}

// CallBackendGW places the outbound wake-up call
type CallBackendGW interface {
	// PlaceCall returns a *models.CallError for typed failures
	PlaceCall(ctx context.Context, userToken string) (models.CallResult, error)
}
