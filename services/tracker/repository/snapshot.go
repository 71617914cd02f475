package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/wakestop/internal/pkg/constants"
	"github.com/piresc/wakestop/internal/pkg/database"
	"github.com/piresc/wakestop/internal/pkg/models"
)

const defaultSnapshotTTL = 24 * time.Hour

// SnapshotRepo caches trip snapshots in Redis so any instance can serve reads
type SnapshotRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(cfg *models.Config, redisClient *database.RedisClient) *SnapshotRepo {
	ttl := cfg.Trip.SnapshotTTL
	if ttl <= 0 {
		ttl = defaultSnapshotTTL
	}
	return &SnapshotRepo{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// SaveSnapshot stores the snapshot under the user's key
func (r *SnapshotRepo) SaveSnapshot(ctx context.Context, snap models.TripSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	key := fmt.Sprintf(constants.KeyTripSnapshot, snap.UserID)
	if err := r.redisClient.Set(ctx, key, data, r.ttl); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

// GetSnapshot returns the cached snapshot, nil when none is cached
func (r *SnapshotRepo) GetSnapshot(ctx context.Context, userID string) (*models.TripSnapshot, error) {
	key := fmt.Sprintf(constants.KeyTripSnapshot, userID)
	data, err := r.redisClient.Get(ctx, key)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap models.TripSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// DeleteSnapshot drops the cached snapshot of userID
func (r *SnapshotRepo) DeleteSnapshot(ctx context.Context, userID string) error {
	return r.redisClient.Delete(ctx, fmt.Sprintf(constants.KeyTripSnapshot, userID))
}
