package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/newrelic/go-agent/v3/newrelic"
	appctx "github.com/piresc/wakestop/internal/pkg/context"
	jwtpkg "github.com/piresc/wakestop/internal/pkg/jwt"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/models"
	nrpkg "github.com/piresc/wakestop/internal/pkg/newrelic"
	"github.com/piresc/wakestop/internal/pkg/retry"
	"github.com/piresc/wakestop/services/tracker"
)

const (
	alertTitle = "Wake up!"
	alertBody  = "You're approaching your stop"
)

// TokenSource mints the bearer token the call backend expects for a user
type TokenSource func(userID string) (string, error)

// JWTTokenSource signs short-lived traveler tokens with the shared secret
func JWTTokenSource(cfg models.JWTConfig) TokenSource {
	return func(userID string) (string, error) {
		id, err := uuid.Parse(userID)
		if err != nil {
			return "", fmt.Errorf("invalid user id %q: %w", userID, err)
		}
		token, _, err := jwtpkg.GenerateToken(id, jwtpkg.RoleTraveler, cfg)
		return token, err
	}
}

// AlarmOption customises an AlarmTrigger
type AlarmOption func(*AlarmTrigger)

// WithSleep replaces the delay used between call attempts
func WithSleep(sleep retry.SleepFunc) AlarmOption {
	return func(a *AlarmTrigger) { a.sleep = sleep }
}

// WithNewRelic traces each call attempt loop as a background transaction
func WithNewRelic(nrApp *newrelic.Application) AlarmOption {
	return func(a *AlarmTrigger) { a.nrApp = nrApp }
}

// AlarmTrigger runs the threshold side effects: the alert and the outbound call
type AlarmTrigger struct {
	cfg      *models.Config
	notifier tracker.NotificationGW
	callGW   tracker.CallBackendGW
	counter  tracker.CounterRepo
	tokens   TokenSource
	sleep    retry.SleepFunc
	nrApp    *newrelic.Application
	retrier  *retry.Retrier

	wg sync.WaitGroup
}

// NewAlarmTrigger creates an alarm trigger
func NewAlarmTrigger(
	cfg *models.Config,
	notifier tracker.NotificationGW,
	callGW tracker.CallBackendGW,
	counter tracker.CounterRepo,
	tokens TokenSource,
	opts ...AlarmOption,
) *AlarmTrigger {
	a := &AlarmTrigger{
		cfg:      cfg,
		notifier: notifier,
		callGW:   callGW,
		counter:  counter,
		tokens:   tokens,
		sleep:    retry.TimerSleep,
	}
	for _, opt := range opts {
		opt(a)
	}

	rc := retry.FixedConfig(cfg.Call.MaxRetries, cfg.Call.RetryDelay)
	rc.RetryableFunc = IsRetryableCallError
	rc.Sleep = a.sleep
	a.retrier = retry.New(rc, nil)
	return a
}

// IsRetryableCallError reports whether another call attempt may succeed
func IsRetryableCallError(err error) bool {
	switch models.CallErrorKindOf(err) {
	case models.CallErrNotFound, models.CallErrUnauthenticated:
		return false
	default:
		return true
	}
}

// Fire starts the alert and the call independently. Both outlive ctx.
func (a *AlarmTrigger) Fire(ctx context.Context, req FireRequest) {
	if req.Destination == nil {
		if a.cfg.App.Debug {
			panic("alarm fired without a destination")
		}
		logger.ErrorCtx(ctx, "Alarm fired without a destination, ignoring",
			logger.String("user_id", req.UserID),
			logger.String("trip_id", req.TripID.String()))
		return
	}

	bg := appctx.Detach(ctx)
	bg = appctx.WithUserID(bg, req.UserID)
	bg = appctx.WithTripID(bg, req.TripID.String())

	a.wg.Add(2)
	go func() {
		defer a.wg.Done()
		a.notify(bg, req)
	}()
	go func() {
		defer a.wg.Done()
		a.call(bg, req)
	}()
}

// CancelPending withdraws the alerts of a trip that has not yet been acknowledged
func (a *AlarmTrigger) CancelPending(ctx context.Context, tripID uuid.UUID, userID string) {
	if err := a.notifier.CancelPending(ctx, tripID.String(), userID); err != nil {
		logger.WarnCtx(ctx, "Failed to cancel pending alerts",
			logger.String("trip_id", tripID.String()),
			logger.Err(err))
	}
}

// Wait blocks until every dispatched side effect has finished
func (a *AlarmTrigger) Wait() {
	a.wg.Wait()
}

func (a *AlarmTrigger) notify(ctx context.Context, req FireRequest) {
	channel := models.AlertChannelInApp
	if req.Lifecycle == models.AppBackground {
		channel = models.AlertChannelPush
	}

	alert := models.Alert{
		ID:        uuid.New().String(),
		TripID:    req.TripID.String(),
		UserID:    req.UserID,
		Channel:   channel,
		Title:     alertTitle,
		Body:      alertBody,
		Sound:     true,
		CreatedAt: models.Now(),
	}

	if err := a.notifier.ScheduleAlert(ctx, alert, a.cfg.Trip.NotificationDelay); err != nil {
		logger.ErrorCtx(ctx, "Failed to schedule wake-up alert",
			logger.String("channel", string(channel)),
			logger.Err(err))
		return
	}
	logger.InfoCtx(ctx, "Wake-up alert scheduled", logger.String("channel", string(channel)))
}

func (a *AlarmTrigger) call(ctx context.Context, req FireRequest) {
	if req.Reporter != nil && !req.Reporter.BeginCall(req.TripID) {
		return
	}

	ctx, txn := nrpkg.StartBackgroundTransaction(a.nrApp, ctx, "Alarm/PlaceCall")
	if txn != nil {
		defer txn.End()
	}

	err := a.placeCall(ctx, req.UserID)
	if err != nil {
		nrpkg.NoticeTransactionError(txn, err)
		logger.WarnCtx(ctx, "Wake-up call failed",
			logger.String("kind", string(models.CallErrorKindOf(err))),
			logger.Err(err))
	}
	if req.Reporter != nil {
		req.Reporter.EndCall(req.TripID, err)
	}
}

func (a *AlarmTrigger) placeCall(ctx context.Context, userID string) error {
	token, err := a.tokens(userID)
	if err != nil {
		return models.NewCallError(models.CallErrUnauthenticated, err.Error())
	}

	var result models.CallResult
	metrics, err := a.retrier.ExecuteWithMetrics(ctx, func(ctx context.Context) error {
		if a.cfg.Call.RequestTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, a.cfg.Call.RequestTimeout)
			defer cancel()
		}
		r, err := a.callGW.PlaceCall(ctx, token)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return err
	}

	// the call went out; a counter failure must not undo callMade
	if count, err := a.counter.IncrementCallCount(ctx, userID); err != nil {
		logger.ErrorCtx(ctx, "Failed to increment call counter", logger.Err(err))
	} else {
		logger.InfoCtx(ctx, "Wake-up call placed",
			logger.String("call_id", result.CallID),
			logger.Int("attempts", metrics.Attempts),
			logger.Duration("elapsed", metrics.TotalDuration()),
			logger.Int64("call_count", count))
	}
	return nil
}
