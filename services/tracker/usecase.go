package tracker

import (
	"context"

	"github.com/piresc/wakestop/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/wakestop/services/tracker TripUC

// TripUC defines the interface for trip tracking business logic
type TripUC interface {
	StartTrip(ctx context.Context, userID string, req models.StartTripRequest) (models.TripSnapshot, error)
	CancelTrip(ctx context.Context, userID string) (models.TripSnapshot, error)
	AcknowledgeArrival(ctx context.Context, userID string) (models.TripSnapshot, error)
	GetSnapshot(ctx context.Context, userID string) (models.TripSnapshot, error)
	SetLifecycle(ctx context.Context, userID string, state models.AppLifecycle) error
	HandlePosition(ctx context.Context, sample models.PositionSample) error
	HandlePositionError(ctx context.Context, perr models.PositionError) error
	Subscribe(ctx context.Context, userID string) (<-chan models.TripSnapshot, func(), error)
	GetCallStats(ctx context.Context, userID string) (models.CallStats, error)
}
