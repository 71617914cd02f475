package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/wakestop/internal/pkg/constants"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/piresc/wakestop/internal/utils"
	"github.com/piresc/wakestop/services/callbackend"
)

const (
	DebounceScopeProcess = "process"
	DebounceScopeUser    = "user"
)

// Call outcomes recorded in audit events
const (
	OutcomePlaced    = "placed"
	OutcomeDebounced = "debounced"
	OutcomeNotFound  = "not_found"
	OutcomeFailed    = "failed"
)

const maxEventErrorLength = 256

// CallUC implements callbackend.CallUC
type CallUC struct {
	cfg       *models.Config
	debouncer Debouncer
	phoneRepo callbackend.PhoneRepo
	telephony callbackend.TelephonyGW
	audit     callbackend.AuditGW
}

// NewCallUC creates the call use case. audit may be nil.
func NewCallUC(
	cfg *models.Config,
	debouncer Debouncer,
	phoneRepo callbackend.PhoneRepo,
	telephony callbackend.TelephonyGW,
	audit callbackend.AuditGW,
) *CallUC {
	return &CallUC{
		cfg:       cfg,
		debouncer: debouncer,
		phoneRepo: phoneRepo,
		telephony: telephony,
		audit:     audit,
	}
}

// LockKey returns the debounce key guarding calls for userID
func (uc *CallUC) LockKey(userID string) string {
	if uc.cfg.Debounce.Scope == DebounceScopeUser {
		return fmt.Sprintf(constants.KeyCallLock, userID)
	}
	return constants.KeyCallLockAll
}

// PlaceCall dials the phone number registered for userID. A second request while
// a call is in flight for the same key fails with ErrCallInProgress.
func (uc *CallUC) PlaceCall(ctx context.Context, userID string) (models.CallResult, error) {
	if userID == "" {
		return models.CallResult{}, callbackend.ErrMissingUser
	}

	release, ok, err := uc.debouncer.TryAcquire(ctx, uc.LockKey(userID))
	if err != nil {
		return models.CallResult{}, err
	}
	if !ok {
		logger.WarnCtx(ctx, "Call already in progress, rejecting request",
			logger.String("user_id", userID))
		uc.publish(ctx, userID, OutcomeDebounced, "", callbackend.ErrCallInProgress)
		return models.CallResult{}, callbackend.ErrCallInProgress
	}

	// the lock only spans the dial; the audit publish runs after it is released
	result, err := func() (models.CallResult, error) {
		defer release()
		return uc.dial(ctx, userID)
	}()
	switch {
	case err == nil:
		uc.publish(ctx, userID, OutcomePlaced, result.CallID, nil)
	case errors.Is(err, callbackend.ErrPhoneNotFound), errors.Is(err, callbackend.ErrInvalidPhone):
		uc.publish(ctx, userID, OutcomeNotFound, "", err)
	default:
		uc.publish(ctx, userID, OutcomeFailed, "", err)
	}
	return result, err
}

func (uc *CallUC) dial(ctx context.Context, userID string) (models.CallResult, error) {
	raw, err := uc.phoneRepo.GetPhoneNumber(ctx, userID)
	if err != nil {
		return models.CallResult{}, err
	}

	phone, err := utils.NormalizePhoneNumber(raw)
	if err != nil {
		logger.WarnCtx(ctx, "Registered phone number is invalid",
			logger.String("user_id", userID),
			logger.String("phone", utils.MaskPhoneNumber(raw)))
		return models.CallResult{}, fmt.Errorf("%w: %v", callbackend.ErrInvalidPhone, err)
	}

	result, err := uc.telephony.Dial(ctx, phone)
	if err != nil {
		logger.ErrorCtx(ctx, "Telephony provider failed to place call",
			logger.String("phone", utils.MaskPhoneNumber(phone)),
			logger.Err(err))
		return models.CallResult{}, fmt.Errorf("failed to place call: %w", err)
	}

	logger.InfoCtx(ctx, "Wake-up call placed",
		logger.String("call_id", result.CallID),
		logger.String("phone", utils.MaskPhoneNumber(phone)))
	return result, nil
}

func (uc *CallUC) publish(ctx context.Context, userID, outcome, providerID string, cause error) {
	if uc.audit == nil {
		return
	}
	event := models.CallEvent{
		ID:         uuid.NewString(),
		UserID:     userID,
		Outcome:    outcome,
		ProviderID: providerID,
		OccurredAt: models.Now(),
	}
	if cause != nil {
		event.Error = utils.Truncate(cause.Error(), maxEventErrorLength)
	}
	if err := uc.audit.PublishCallEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish call event",
			logger.String("outcome", outcome),
			logger.Err(err))
	}
}
