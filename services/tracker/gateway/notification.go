package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/wakestop/internal/pkg/constants"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/models"
	natspkg "github.com/piresc/wakestop/internal/pkg/nats"
)

// NotificationGW publishes alarm alerts and trip updates to NATS
type NotificationGW struct {
	natsClient *natspkg.Client

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// NewNotificationGW creates a new notification gateway
func NewNotificationGW(client *natspkg.Client) *NotificationGW {
	return &NotificationGW{
		natsClient: client,
		pending:    make(map[string]*time.Timer),
	}
}

func alertSubject(channel models.AlertChannel) string {
	if channel == models.AlertChannelPush {
		return constants.SubjectAlarmPush
	}
	return constants.SubjectAlarmInApp
}

// ScheduleAlert publishes alert after delay. A zero delay publishes immediately.
// A later schedule for the same trip replaces the pending one.
func (g *NotificationGW) ScheduleAlert(ctx context.Context, alert models.Alert, delay time.Duration) error {
	subject := alertSubject(alert.Channel)
	if delay <= 0 {
		return g.natsClient.PublishJSON(subject, alert)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if prev, ok := g.pending[alert.TripID]; ok {
		prev.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		g.mu.Lock()
		if g.pending[alert.TripID] != timer {
			g.mu.Unlock()
			return
		}
		delete(g.pending, alert.TripID)
		g.mu.Unlock()

		if err := g.natsClient.PublishJSON(subject, alert); err != nil {
			logger.Error("Failed to publish scheduled alert",
				logger.String("trip_id", alert.TripID),
				logger.String("user_id", alert.UserID),
				logger.Err(err))
		}
	})
	g.pending[alert.TripID] = timer
	return nil
}

// CancelPending stops any alert still waiting for its delay and tells clients to
// withdraw alerts already shown for the trip
func (g *NotificationGW) CancelPending(ctx context.Context, tripID, userID string) error {
	g.mu.Lock()
	if timer, ok := g.pending[tripID]; ok {
		timer.Stop()
		delete(g.pending, tripID)
	}
	g.mu.Unlock()

	retraction := models.AlertRetraction{
		TripID:      tripID,
		UserID:      userID,
		RetractedAt: models.Now(),
	}
	if err := g.natsClient.PublishJSON(constants.SubjectAlarmRetract, retraction); err != nil {
		return fmt.Errorf("failed to publish alert retraction: %w", err)
	}
	return nil
}

// PendingCount returns the number of alerts waiting for their delay
func (g *NotificationGW) PendingCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.pending)
}

// PublishTripUpdated publishes a trip snapshot to the trip.updated subject
func (g *NotificationGW) PublishTripUpdated(ctx context.Context, snap models.TripSnapshot) error {
	return g.natsClient.PublishJSON(constants.SubjectTripUpdated, snap)
}
