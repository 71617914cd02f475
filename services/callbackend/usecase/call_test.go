package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/piresc/wakestop/services/callbackend"
	"github.com/piresc/wakestop/services/callbackend/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type callFixture struct {
	phoneRepo *mocks.MockPhoneRepo
	telephony *mocks.MockTelephonyGW
	audit     *mocks.MockAuditGW
	debouncer *MemoryDebouncer
	uc        *CallUC

	mu     sync.Mutex
	events []models.CallEvent
}

func newCallFixture(t *testing.T, scope string) *callFixture {
	ctrl := gomock.NewController(t)
	f := &callFixture{
		phoneRepo: mocks.NewMockPhoneRepo(ctrl),
		telephony: mocks.NewMockTelephonyGW(ctrl),
		audit:     mocks.NewMockAuditGW(ctrl),
		debouncer: NewMemoryDebouncer(time.Minute),
	}
	f.audit.EXPECT().PublishCallEvent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, event models.CallEvent) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.events = append(f.events, event)
			return nil
		}).AnyTimes()

	cfg := &models.Config{Debounce: models.DebounceConfig{Scope: scope}}
	f.uc = NewCallUC(cfg, f.debouncer, f.phoneRepo, f.telephony, f.audit)
	return f
}

func (f *callFixture) outcomes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Outcome)
	}
	return out
}

func TestLockKey(t *testing.T) {
	assert.Equal(t, "call:lock:global", newCallFixture(t, "").uc.LockKey("u1"))
	assert.Equal(t, "call:lock:global", newCallFixture(t, DebounceScopeProcess).uc.LockKey("u1"))
	assert.Equal(t, "call:lock:u1", newCallFixture(t, DebounceScopeUser).uc.LockKey("u1"))
}

func TestPlaceCall_Success(t *testing.T) {
	ctx := context.Background()
	f := newCallFixture(t, DebounceScopeProcess)

	f.phoneRepo.EXPECT().GetPhoneNumber(gomock.Any(), "u1").Return("+1 (415) 555-0100", nil)
	f.telephony.EXPECT().Dial(gomock.Any(), "+14155550100").
		Return(models.CallResult{Result: "queued", CallID: "CA1"}, nil)

	result, err := f.uc.PlaceCall(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "CA1", result.CallID)
	assert.Equal(t, []string{OutcomePlaced}, f.outcomes())

	held, _ := f.debouncer.IsHeld(ctx, f.uc.LockKey("u1"))
	assert.False(t, held)
}

func TestPlaceCall_MissingUser(t *testing.T) {
	f := newCallFixture(t, DebounceScopeProcess)
	_, err := f.uc.PlaceCall(context.Background(), "")
	assert.ErrorIs(t, err, callbackend.ErrMissingUser)
}

func TestPlaceCall_PhoneNotFound(t *testing.T) {
	ctx := context.Background()
	f := newCallFixture(t, DebounceScopeProcess)

	f.phoneRepo.EXPECT().GetPhoneNumber(gomock.Any(), "u1").Return("", callbackend.ErrPhoneNotFound)

	_, err := f.uc.PlaceCall(ctx, "u1")
	assert.ErrorIs(t, err, callbackend.ErrPhoneNotFound)
	assert.Equal(t, []string{OutcomeNotFound}, f.outcomes())

	held, _ := f.debouncer.IsHeld(ctx, f.uc.LockKey("u1"))
	assert.False(t, held, "lock is released after a failed attempt")
}

func TestPlaceCall_InvalidPhone(t *testing.T) {
	f := newCallFixture(t, DebounceScopeProcess)

	f.phoneRepo.EXPECT().GetPhoneNumber(gomock.Any(), "u1").Return("12", nil)

	_, err := f.uc.PlaceCall(context.Background(), "u1")
	assert.ErrorIs(t, err, callbackend.ErrInvalidPhone)
}

func TestPlaceCall_TelephonyFailure(t *testing.T) {
	f := newCallFixture(t, DebounceScopeProcess)

	f.phoneRepo.EXPECT().GetPhoneNumber(gomock.Any(), "u1").Return("+14155550100", nil)
	f.telephony.EXPECT().Dial(gomock.Any(), "+14155550100").Return(models.CallResult{}, errors.New("provider down"))

	_, err := f.uc.PlaceCall(context.Background(), "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "provider down")
	assert.Equal(t, []string{OutcomeFailed}, f.outcomes())
}

func TestPlaceCall_ConcurrentRequestsAreDebounced(t *testing.T) {
	ctx := context.Background()
	f := newCallFixture(t, DebounceScopeProcess)

	dialing := make(chan struct{})
	hangUp := make(chan struct{})
	f.phoneRepo.EXPECT().GetPhoneNumber(gomock.Any(), gomock.Any()).Return("+14155550100", nil)
	f.telephony.EXPECT().Dial(gomock.Any(), "+14155550100").
		DoAndReturn(func(context.Context, string) (models.CallResult, error) {
			close(dialing)
			<-hangUp
			return models.CallResult{Result: "queued"}, nil
		})

	var firstErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, firstErr = f.uc.PlaceCall(ctx, "u1")
	}()
	<-dialing

	// process scope: a different user is rejected too
	_, err := f.uc.PlaceCall(ctx, "u2")
	assert.ErrorIs(t, err, callbackend.ErrCallInProgress)

	close(hangUp)
	<-done
	assert.NoError(t, firstErr)

	held, _ := f.debouncer.IsHeld(ctx, f.uc.LockKey("u1"))
	assert.False(t, held)
	assert.ElementsMatch(t, []string{OutcomeDebounced, OutcomePlaced}, f.outcomes())
}

func TestPlaceCall_UserScopeAllowsOtherUsers(t *testing.T) {
	ctx := context.Background()
	f := newCallFixture(t, DebounceScopeUser)

	dialing := make(chan struct{})
	hangUp := make(chan struct{})
	f.phoneRepo.EXPECT().GetPhoneNumber(gomock.Any(), "u1").Return("+14155550100", nil)
	f.phoneRepo.EXPECT().GetPhoneNumber(gomock.Any(), "u2").Return("+14155550199", nil)
	f.telephony.EXPECT().Dial(gomock.Any(), "+14155550100").
		DoAndReturn(func(context.Context, string) (models.CallResult, error) {
			close(dialing)
			<-hangUp
			return models.CallResult{Result: "queued"}, nil
		})
	f.telephony.EXPECT().Dial(gomock.Any(), "+14155550199").Return(models.CallResult{Result: "queued"}, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = f.uc.PlaceCall(ctx, "u1")
	}()
	<-dialing

	_, err := f.uc.PlaceCall(ctx, "u1")
	assert.ErrorIs(t, err, callbackend.ErrCallInProgress)

	_, err = f.uc.PlaceCall(ctx, "u2")
	assert.NoError(t, err)

	close(hangUp)
	<-done
}

func TestPlaceCall_AuditFailureIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	phoneRepo := mocks.NewMockPhoneRepo(ctrl)
	telephony := mocks.NewMockTelephonyGW(ctrl)
	audit := mocks.NewMockAuditGW(ctrl)

	phoneRepo.EXPECT().GetPhoneNumber(gomock.Any(), "u1").Return("+14155550100", nil)
	telephony.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(models.CallResult{Result: "queued"}, nil)
	audit.EXPECT().PublishCallEvent(gomock.Any(), gomock.Any()).Return(errors.New("nsqd down"))

	uc := NewCallUC(&models.Config{}, NewMemoryDebouncer(0), phoneRepo, telephony, audit)
	_, err := uc.PlaceCall(context.Background(), "u1")
	assert.NoError(t, err)
}

func TestPlaceCall_LockReleasedBeforeAudit(t *testing.T) {
	for name, dialErr := range map[string]error{
		"placed": nil,
		"failed": errors.New("carrier unavailable"),
	} {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			ctrl := gomock.NewController(t)
			phoneRepo := mocks.NewMockPhoneRepo(ctrl)
			telephony := mocks.NewMockTelephonyGW(ctrl)
			audit := mocks.NewMockAuditGW(ctrl)
			debouncer := NewMemoryDebouncer(time.Minute)
			uc := NewCallUC(&models.Config{}, debouncer, phoneRepo, telephony, audit)

			phoneRepo.EXPECT().GetPhoneNumber(gomock.Any(), "u1").Return("+14155550100", nil)
			telephony.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(models.CallResult{Result: "queued"}, dialErr)
			audit.EXPECT().PublishCallEvent(gomock.Any(), gomock.Any()).
				DoAndReturn(func(ctx context.Context, _ models.CallEvent) error {
					held, err := debouncer.IsHeld(ctx, uc.LockKey("u1"))
					require.NoError(t, err)
					assert.False(t, held, "debounce lock still held while auditing")
					return nil
				})

			_, err := uc.PlaceCall(ctx, "u1")
			if dialErr == nil {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
