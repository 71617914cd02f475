package callbackend

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/wakestop/services/callbackend TelephonyGW,AuditGW

import (
	"context"

	"github.com/piresc/wakestop/internal/pkg/models"
)

// TelephonyGW dials a number and plays the wake-up message
type TelephonyGW interface {
	Dial(ctx context.Context, to string) (models.CallResult, error)
}

// AuditGW records call attempts for later inspection
type AuditGW interface {
	PublishCallEvent(ctx context.Context, event models.CallEvent) error
}
