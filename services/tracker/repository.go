package tracker

import (
	"context"

	"github.com/piresc/wakestop/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/wakestop/services/tracker CounterRepo,SnapshotRepo

// CounterRepo persists the per-user count of successful wake-up calls
type CounterRepo interface {
	IncrementCallCount(ctx context.Context, userID string) (int64, error)
	GetCallStats(ctx context.Context, userID string) (models.CallStats, error)
}

// SnapshotRepo caches the latest trip snapshot per user
type SnapshotRepo interface {
	SaveSnapshot(ctx context.Context, snap models.TripSnapshot) error
	GetSnapshot(ctx context.Context, userID string) (*models.TripSnapshot, error)
	DeleteSnapshot(ctx context.Context, userID string) error
}
