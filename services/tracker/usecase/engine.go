package usecase

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/piresc/wakestop/internal/utils"
	"github.com/piresc/wakestop/services/tracker"
)

// Alarm dispatches the threshold side effects of a trip
type Alarm interface {
	Fire(ctx context.Context, req FireRequest)
	CancelPending(ctx context.Context, tripID uuid.UUID, userID string)
}

// SnapshotPublisher receives every snapshot an engine emits. Publish runs with the
// engine lock held and must not block.
type SnapshotPublisher interface {
	Publish(snap models.TripSnapshot)
}

// CallReporter lets the alarm record call progress on the trip that fired it
type CallReporter interface {
	// BeginCall claims the call slot, false when a call is in flight or already made
	BeginCall(tripID uuid.UUID) bool
	EndCall(tripID uuid.UUID, err error)
}

// FireRequest carries everything the alarm needs about the trip that crossed its threshold
type FireRequest struct {
	TripID         uuid.UUID
	UserID         string
	Destination    *models.Coordinate
	DistanceMeters float64
	Lifecycle      models.AppLifecycle
	Reporter       CallReporter
}

// claimHistory is how many recent trips remember that their call slot was taken
const claimHistory = 4

// TripEngine owns the trip of one traveler. Every mutation runs under mu.
type TripEngine struct {
	mu        sync.Mutex
	userID    string
	cfg       models.TripConfig
	alarm     Alarm
	publisher SnapshotPublisher
	clock     models.Clock

	trip      models.Trip
	lastKnown *models.Coordinate
	fired     bool
	lifecycle models.AppLifecycle

	// trips whose call slot was claimed, kept after reset so a late Fire is refused
	claimed   [claimHistory]uuid.UUID
	claimNext int

	lastActive time.Time

	subs    map[int]chan models.TripSnapshot
	nextSub int
}

// NewTripEngine creates an idle engine for userID
func NewTripEngine(userID string, cfg models.TripConfig, alarm Alarm, publisher SnapshotPublisher, clock models.Clock) *TripEngine {
	if clock == nil {
		clock = models.SystemClock{}
	}
	return &TripEngine{
		userID:     userID,
		cfg:        cfg,
		alarm:      alarm,
		publisher:  publisher,
		clock:      clock,
		trip:       models.Trip{UserID: userID, State: models.TripStateIdle},
		lifecycle:  models.AppForeground,
		lastActive: clock.Now(),
		subs:       make(map[int]chan models.TripSnapshot),
	}
}

// StartTrip moves an idle engine to active. A zero threshold uses the configured default.
func (e *TripEngine) StartTrip(ctx context.Context, destination *models.Coordinate, thresholdMeters float64) (models.TripSnapshot, error) {
	if destination == nil || !destination.Valid() {
		return models.TripSnapshot{}, tracker.ErrInvalidDestination
	}
	if thresholdMeters == 0 {
		thresholdMeters = e.cfg.DefaultThresholdMeters
	}
	if !(thresholdMeters > 0) || math.IsInf(thresholdMeters, 0) {
		return models.TripSnapshot{}, tracker.ErrInvalidThreshold
	}

	e.mu.Lock()
	if e.isRunningLocked() {
		e.mu.Unlock()
		return models.TripSnapshot{}, tracker.ErrTripAlreadyActive
	}

	dest := *destination
	e.trip = models.Trip{
		ID:              uuid.New(),
		UserID:          e.userID,
		Destination:     &dest,
		ThresholdMeters: thresholdMeters,
		State:           models.TripStateActive,
		StartedAt:       e.clock.Now(),
	}
	e.fired = false

	var fire *FireRequest
	if e.lastKnown != nil {
		fire = e.applyPositionLocked(*e.lastKnown)
	}
	snap := e.emitLocked()
	e.mu.Unlock()

	logger.InfoCtx(ctx, "Trip started",
		logger.String("user_id", e.userID),
		logger.String("trip_id", snap.TripID),
		logger.String("destination_geohash", snap.DestinationGeohash),
		logger.Float64("threshold_meters", thresholdMeters),
		logger.Bool("has_initial_location", snap.InitialLocation != nil))

	e.dispatch(ctx, fire)
	return snap, nil
}

// OnPositionUpdate records the last known position and, while active, advances the trip
func (e *TripEngine) OnPositionUpdate(ctx context.Context, sample models.PositionSample) error {
	if !sample.Coordinate.Valid() {
		return tracker.ErrInvalidPosition
	}

	e.mu.Lock()
	pos := sample.Coordinate
	e.lastKnown = &pos
	e.lastActive = e.clock.Now()
	if e.trip.State != models.TripStateActive {
		e.mu.Unlock()
		return nil
	}

	fire := e.applyPositionLocked(pos)
	e.emitLocked()
	e.mu.Unlock()

	e.dispatch(ctx, fire)
	return nil
}

// OnPositionError logs a transient sensing failure
func (e *TripEngine) OnPositionError(ctx context.Context, perr models.PositionError) {
	e.mu.Lock()
	state := e.trip.State
	e.mu.Unlock()

	logger.WarnCtx(ctx, "Position error from feed",
		logger.String("user_id", e.userID),
		logger.String("state", string(state)),
		logger.String("error", perr.Message))
}

// CancelTrip abandons the running trip and returns the cancelled outcome.
// An in-flight call is not interrupted.
func (e *TripEngine) CancelTrip(ctx context.Context) (models.TripSnapshot, error) {
	e.mu.Lock()
	if !e.isRunningLocked() {
		e.mu.Unlock()
		return models.TripSnapshot{}, tracker.ErrNoActiveTrip
	}

	tripID := e.trip.ID
	e.trip.State = models.TripStateCancelled
	outcome := e.emitLocked()
	e.resetLocked()
	e.emitLocked()
	e.mu.Unlock()

	if e.alarm != nil {
		e.alarm.CancelPending(ctx, tripID, e.userID)
	}

	logger.InfoCtx(ctx, "Trip cancelled",
		logger.String("user_id", e.userID),
		logger.String("trip_id", tripID.String()))
	return outcome, nil
}

// StartNewTrip acknowledges a reached destination and returns the completed outcome
func (e *TripEngine) StartNewTrip(ctx context.Context) (models.TripSnapshot, error) {
	e.mu.Lock()
	if e.trip.State != models.TripStateThresholdReached {
		e.mu.Unlock()
		return models.TripSnapshot{}, tracker.ErrTripNotCompleted
	}

	tripID := e.trip.ID
	e.trip.State = models.TripStateCompleted
	outcome := e.emitLocked()
	e.resetLocked()
	e.emitLocked()
	e.mu.Unlock()

	if e.alarm != nil {
		e.alarm.CancelPending(ctx, tripID, e.userID)
	}

	logger.InfoCtx(ctx, "Trip completed",
		logger.String("user_id", e.userID),
		logger.String("trip_id", outcome.TripID),
		logger.Bool("call_made", outcome.CallMade))
	return outcome, nil
}

// Reset returns the engine to idle from any state
func (e *TripEngine) Reset(ctx context.Context) {
	e.mu.Lock()
	tripID := e.trip.ID
	wasRunning := e.isRunningLocked()
	e.resetLocked()
	e.emitLocked()
	e.mu.Unlock()

	if wasRunning && e.alarm != nil {
		e.alarm.CancelPending(ctx, tripID, e.userID)
	}
}

// Snapshot returns the current read model
func (e *TripEngine) Snapshot() models.TripSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// SetLifecycle records whether the traveler's app is in the foreground
func (e *TripEngine) SetLifecycle(state models.AppLifecycle) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lifecycle = state
	e.lastActive = e.clock.Now()
}

// Lifecycle returns the recorded app lifecycle
func (e *TripEngine) Lifecycle() models.AppLifecycle {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lifecycle
}

// Subscribe registers an observer that receives the current snapshot followed by every
// change. A slow observer loses the oldest buffered snapshot, never the latest.
func (e *TripEngine) Subscribe(buffer int) (<-chan models.TripSnapshot, func()) {
	if buffer <= 0 {
		buffer = e.cfg.SubscriberBuffer
	}
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan models.TripSnapshot, buffer)

	e.mu.Lock()
	id := e.nextSub
	e.nextSub++
	e.subs[id] = ch
	e.lastActive = e.clock.Now()
	offer(ch, e.snapshotLocked())
	e.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.subs, id)
			e.lastActive = e.clock.Now()
			e.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Evictable reports whether the engine has been idle and unobserved for at least ttl
func (e *TripEngine) Evictable(now time.Time, ttl time.Duration) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.trip.State == models.TripStateIdle &&
		len(e.subs) == 0 &&
		now.Sub(e.lastActive) >= ttl
}

// BeginCall claims the call slot of tripID
func (e *TripEngine) BeginCall(tripID uuid.UUID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.trip.ID != tripID {
		// trip was reset after firing: the first claim still places the call, a
		// repeated one is refused
		if e.claimedLocked(tripID) {
			logger.Info("Call already claimed for a finished trip, ignoring",
				logger.String("user_id", e.userID),
				logger.String("trip_id", tripID.String()))
			return false
		}
		e.rememberClaimLocked(tripID)
		return true
	}
	if e.trip.CallMade || e.trip.CallInProgress {
		logger.Info("Call already made or in flight, ignoring",
			logger.String("user_id", e.userID),
			logger.String("trip_id", tripID.String()),
			logger.Bool("call_made", e.trip.CallMade))
		return false
	}
	e.trip.CallInProgress = true
	e.rememberClaimLocked(tripID)
	e.emitLocked()
	return true
}

// EndCall records the final outcome of the call for tripID
func (e *TripEngine) EndCall(tripID uuid.UUID, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.trip.ID != tripID {
		return
	}
	e.trip.CallInProgress = false
	if err == nil {
		e.trip.CallMade = true
		e.trip.CallFailed = false
		e.trip.CallError = ""
	} else if e.cfg.SurfaceCallFailure {
		e.trip.CallFailed = true
		e.trip.CallError = string(models.CallErrorKindOf(err))
	}
	e.emitLocked()
}

func (e *TripEngine) claimedLocked(tripID uuid.UUID) bool {
	for _, id := range e.claimed {
		if id == tripID {
			return true
		}
	}
	return false
}

func (e *TripEngine) rememberClaimLocked(tripID uuid.UUID) {
	if e.claimedLocked(tripID) {
		return
	}
	e.claimed[e.claimNext] = tripID
	e.claimNext = (e.claimNext + 1) % claimHistory
}

func (e *TripEngine) isRunningLocked() bool {
	return e.trip.State == models.TripStateActive || e.trip.State == models.TripStateThresholdReached
}

// applyPositionLocked advances an active trip to pos and returns a fire request on
// the first threshold crossing. The fired guard is set here, before any dispatch.
func (e *TripEngine) applyPositionLocked(pos models.Coordinate) *FireRequest {
	cur := pos
	e.trip.CurrentLocation = &cur
	if e.trip.InitialLocation == nil {
		initial := pos
		e.trip.InitialLocation = &initial
	}

	d := utils.DistanceMeters(pos, *e.trip.Destination)
	e.trip.DistanceMeters = d
	if p := Progress(d, e.trip.ThresholdMeters); p > e.trip.Progress {
		e.trip.Progress = p
	}

	if d > e.trip.ThresholdMeters || e.fired {
		return nil
	}

	e.fired = true
	e.trip.State = models.TripStateThresholdReached
	e.trip.Progress = 1
	now := e.clock.Now()
	e.trip.ThresholdReachedAt = &now

	dest := *e.trip.Destination
	return &FireRequest{
		TripID:         e.trip.ID,
		UserID:         e.userID,
		Destination:    &dest,
		DistanceMeters: d,
		Lifecycle:      e.lifecycle,
		Reporter:       e,
	}
}

func (e *TripEngine) dispatch(ctx context.Context, fire *FireRequest) {
	if fire == nil {
		return
	}
	logger.InfoCtx(ctx, "Alarm threshold reached",
		logger.String("user_id", fire.UserID),
		logger.String("trip_id", fire.TripID.String()),
		logger.Float64("distance_meters", fire.DistanceMeters),
		logger.String("lifecycle", string(fire.Lifecycle)))
	if e.alarm != nil {
		e.alarm.Fire(ctx, *fire)
	}
}

func (e *TripEngine) resetLocked() {
	e.trip = models.Trip{UserID: e.userID, State: models.TripStateIdle}
	e.fired = false
}

func (e *TripEngine) emitLocked() models.TripSnapshot {
	e.lastActive = e.clock.Now()
	snap := e.snapshotLocked()
	for _, ch := range e.subs {
		offer(ch, snap)
	}
	if e.publisher != nil {
		e.publisher.Publish(snap)
	}
	return snap
}

func (e *TripEngine) snapshotLocked() models.TripSnapshot {
	t := e.trip
	snap := models.TripSnapshot{
		UserID:          e.userID,
		State:           t.State,
		Progress:        t.Progress,
		DistanceMeters:  t.DistanceMeters,
		ThresholdMeters: t.ThresholdMeters,
		CallMade:        t.CallMade,
		CallInProgress:  t.CallInProgress,
		CallFailed:      t.CallFailed,
		CallError:       t.CallError,
		UpdatedAt:       e.clock.Now(),
	}
	if t.ID != uuid.Nil {
		snap.TripID = t.ID.String()
	}
	if t.Destination != nil {
		dest := *t.Destination
		snap.Destination = &dest
		snap.DestinationGeohash = utils.EncodeCoordinate(dest, utils.DefaultGeohashPrecision)
	}
	if t.InitialLocation != nil {
		initial := *t.InitialLocation
		snap.InitialLocation = &initial
	}
	if t.CurrentLocation != nil {
		cur := *t.CurrentLocation
		snap.CurrentLocation = &cur
	}
	if !t.StartedAt.IsZero() {
		started := t.StartedAt
		snap.StartedAt = &started
	}
	if t.ThresholdReachedAt != nil {
		reached := *t.ThresholdReachedAt
		snap.ThresholdReachedAt = &reached
	}
	return snap
}

// offer delivers snap without blocking, evicting the oldest queued snapshot when full
func offer(ch chan models.TripSnapshot, snap models.TripSnapshot) {
	for i := 0; i < 2; i++ {
		select {
		case ch <- snap:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Progress normalises the distance to the alarm radius into [0,1]
func Progress(distanceMeters, thresholdMeters float64) float64 {
	remaining := math.Max(0, distanceMeters-thresholdMeters)
	total := math.Max(distanceMeters, thresholdMeters)
	if total <= 0 {
		return 1
	}
	p := 1 - remaining/total
	return math.Min(1, math.Max(0, p))
}
