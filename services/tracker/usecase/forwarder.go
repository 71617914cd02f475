package usecase

import (
	"context"
	"sync"

	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/piresc/wakestop/services/tracker"
)

const forwarderBuffer = 256

// snapshotForwarder copies engine snapshots to the Redis cache and the trip.updated
// subject from a single goroutine, so per-user order is preserved
type snapshotForwarder struct {
	repo     tracker.SnapshotRepo
	notifier tracker.NotificationGW
	queue    chan models.TripSnapshot
	done     chan struct{}

	mu     sync.RWMutex
	closed bool
}

func newSnapshotForwarder(repo tracker.SnapshotRepo, notifier tracker.NotificationGW) *snapshotForwarder {
	f := &snapshotForwarder{
		repo:     repo,
		notifier: notifier,
		queue:    make(chan models.TripSnapshot, forwarderBuffer),
		done:     make(chan struct{}),
	}
	go f.run()
	return f
}

// Publish enqueues snap without blocking; a full or stopped queue drops it
func (f *snapshotForwarder) Publish(snap models.TripSnapshot) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.closed {
		return
	}
	select {
	case f.queue <- snap:
	default:
		logger.Warn("Snapshot forwarder queue full, dropping snapshot",
			logger.String("user_id", snap.UserID),
			logger.String("state", string(snap.State)))
	}
}

func (f *snapshotForwarder) run() {
	defer close(f.done)
	ctx := context.Background()
	for snap := range f.queue {
		if f.repo != nil {
			if err := f.repo.SaveSnapshot(ctx, snap); err != nil {
				logger.Warn("Failed to cache trip snapshot",
					logger.String("user_id", snap.UserID),
					logger.Err(err))
			}
		}
		if f.notifier != nil {
			if err := f.notifier.PublishTripUpdated(ctx, snap); err != nil {
				logger.Warn("Failed to publish trip update",
					logger.String("user_id", snap.UserID),
					logger.Err(err))
			}
		}
	}
}

// Stop drains queued snapshots and waits for the goroutine to exit
func (f *snapshotForwarder) Stop() {
	f.mu.Lock()
	if !f.closed {
		f.closed = true
		close(f.queue)
	}
	f.mu.Unlock()
	<-f.done
}
