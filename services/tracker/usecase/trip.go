package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/piresc/wakestop/services/tracker"
)

// TripUC implements tracker.TripUC on top of a registry of trip engines
type TripUC struct {
	cfg          *models.Config
	registry     *TripRegistry
	alarm        Alarm
	counterRepo  tracker.CounterRepo
	snapshotRepo tracker.SnapshotRepo
	forwarder    *snapshotForwarder
	clock        models.Clock

	stopJanitor chan struct{}
	janitorDone chan struct{}
	closeOnce   sync.Once
}

// NewTripUC creates the trip use case
func NewTripUC(
	cfg *models.Config,
	alarm Alarm,
	counterRepo tracker.CounterRepo,
	snapshotRepo tracker.SnapshotRepo,
	notifier tracker.NotificationGW,
) (*TripUC, error) {
	if alarm == nil {
		return nil, fmt.Errorf("alarm is required")
	}

	uc := &TripUC{
		cfg:          cfg,
		alarm:        alarm,
		counterRepo:  counterRepo,
		snapshotRepo: snapshotRepo,
		forwarder:    newSnapshotForwarder(snapshotRepo, notifier),
		clock:        models.SystemClock{},
	}
	uc.registry = NewTripRegistry(func(userID string) *TripEngine {
		return NewTripEngine(userID, cfg.Trip, uc.alarm, uc.forwarder, uc.clock)
	})
	if ttl := cfg.Trip.EngineIdleTTL; ttl > 0 {
		uc.stopJanitor = make(chan struct{})
		uc.janitorDone = make(chan struct{})
		go uc.runJanitor(ttl)
	}
	return uc, nil
}

func (uc *TripUC) runJanitor(ttl time.Duration) {
	defer close(uc.janitorDone)
	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			uc.evictIdleEngines()
		case <-uc.stopJanitor:
			return
		}
	}
}

func (uc *TripUC) evictIdleEngines() int {
	evicted := uc.registry.EvictIdle(uc.clock.Now(), uc.cfg.Trip.EngineIdleTTL)
	if evicted > 0 {
		logger.Debug("Evicted idle trip engines",
			logger.Int("evicted", evicted),
			logger.Int("remaining", uc.registry.Len()))
	}
	return evicted
}

// Registry exposes the engines for wiring and tests
func (uc *TripUC) Registry() *TripRegistry {
	return uc.registry
}

// StartTrip starts a trip for userID
func (uc *TripUC) StartTrip(ctx context.Context, userID string, req models.StartTripRequest) (models.TripSnapshot, error) {
	if userID == "" {
		return models.TripSnapshot{}, tracker.ErrMissingUser
	}
	var (
		snap models.TripSnapshot
		err  error
	)
	uc.registry.Do(userID, func(e *TripEngine) {
		snap, err = e.StartTrip(ctx, req.Destination, req.ThresholdMeters)
	})
	return snap, err
}

// CancelTrip cancels the running trip of userID
func (uc *TripUC) CancelTrip(ctx context.Context, userID string) (models.TripSnapshot, error) {
	engine, ok := uc.registry.Get(userID)
	if !ok {
		return models.TripSnapshot{}, tracker.ErrNoActiveTrip
	}
	return engine.CancelTrip(ctx)
}

// AcknowledgeArrival completes a trip whose alarm has fired
func (uc *TripUC) AcknowledgeArrival(ctx context.Context, userID string) (models.TripSnapshot, error) {
	engine, ok := uc.registry.Get(userID)
	if !ok {
		return models.TripSnapshot{}, tracker.ErrTripNotCompleted
	}
	return engine.StartNewTrip(ctx)
}

// GetSnapshot returns the live snapshot, falling back to the cache written by
// another instance, then to an idle snapshot
func (uc *TripUC) GetSnapshot(ctx context.Context, userID string) (models.TripSnapshot, error) {
	if userID == "" {
		return models.TripSnapshot{}, tracker.ErrMissingUser
	}
	if engine, ok := uc.registry.Get(userID); ok {
		return engine.Snapshot(), nil
	}

	if uc.snapshotRepo != nil {
		cached, err := uc.snapshotRepo.GetSnapshot(ctx, userID)
		if err != nil {
			logger.WarnCtx(ctx, "Failed to read cached snapshot",
				logger.String("user_id", userID),
				logger.Err(err))
		} else if cached != nil {
			return *cached, nil
		}
	}

	return models.TripSnapshot{
		UserID:    userID,
		State:     models.TripStateIdle,
		UpdatedAt: uc.clock.Now(),
	}, nil
}

// SetLifecycle records whether the traveler's app is in the foreground
func (uc *TripUC) SetLifecycle(ctx context.Context, userID string, state models.AppLifecycle) error {
	if userID == "" {
		return tracker.ErrMissingUser
	}
	if !state.Valid() {
		return tracker.ErrInvalidLifecycle
	}
	uc.registry.Do(userID, func(e *TripEngine) {
		e.SetLifecycle(state)
	})
	logger.DebugCtx(ctx, "App lifecycle updated",
		logger.String("user_id", userID),
		logger.String("state", string(state)))
	return nil
}

// HandlePosition applies an accepted position sample
func (uc *TripUC) HandlePosition(ctx context.Context, sample models.PositionSample) error {
	if sample.UserID == "" {
		return tracker.ErrMissingUser
	}
	var err error
	uc.registry.Do(sample.UserID, func(e *TripEngine) {
		err = e.OnPositionUpdate(ctx, sample)
	})
	return err
}

// HandlePositionError logs a sensing failure against the user's trip
func (uc *TripUC) HandlePositionError(ctx context.Context, perr models.PositionError) error {
	if perr.UserID == "" {
		return tracker.ErrMissingUser
	}
	if engine, ok := uc.registry.Get(perr.UserID); ok {
		engine.OnPositionError(ctx, perr)
		return nil
	}
	logger.DebugCtx(ctx, "Position error for untracked user",
		logger.String("user_id", perr.UserID),
		logger.String("error", perr.Message))
	return nil
}

// Subscribe streams the snapshots of userID
func (uc *TripUC) Subscribe(ctx context.Context, userID string) (<-chan models.TripSnapshot, func(), error) {
	if userID == "" {
		return nil, nil, tracker.ErrMissingUser
	}
	var (
		ch     <-chan models.TripSnapshot
		cancel func()
	)
	uc.registry.Do(userID, func(e *TripEngine) {
		ch, cancel = e.Subscribe(uc.cfg.Trip.SubscriberBuffer)
	})
	return ch, cancel, nil
}

// GetCallStats returns the number of wake-up calls placed for userID
func (uc *TripUC) GetCallStats(ctx context.Context, userID string) (models.CallStats, error) {
	if userID == "" {
		return models.CallStats{}, tracker.ErrMissingUser
	}
	return uc.counterRepo.GetCallStats(ctx, userID)
}

// Close resets every trip and flushes pending snapshot writes
func (uc *TripUC) Close(ctx context.Context) error {
	uc.closeOnce.Do(func() {
		if uc.stopJanitor != nil {
			close(uc.stopJanitor)
			<-uc.janitorDone
		}
	})
	uc.registry.ResetAll(ctx)
	if w, ok := uc.alarm.(interface{ Wait() }); ok {
		w.Wait()
	}
	uc.forwarder.Stop()
	return nil
}
