package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/wakestop/internal/pkg/logger"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/piresc/wakestop/services/tracker"
)

const maxCASAttempts = 5

type counterRow struct {
	UserID    string    `db:"user_id"`
	CallCount int64     `db:"call_count"`
	Version   int64     `db:"version"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CounterRepo stores per-user call counts with optimistic concurrency on version
type CounterRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewCounterRepository creates a new counter repository
func NewCounterRepository(cfg *models.Config, db *sqlx.DB) *CounterRepo {
	return &CounterRepo{
		cfg: cfg,
		db:  db,
	}
}

// IncrementCallCount adds one to the user's counter and returns the new value.
// Concurrent writers are detected through the version column and retried.
func (r *CounterRepo) IncrementCallCount(ctx context.Context, userID string) (int64, error) {
	for attempt := 1; attempt <= maxCASAttempts; attempt++ {
		now := models.Now()

		var row counterRow
		err := r.db.GetContext(ctx, &row,
			`SELECT user_id, call_count, version, updated_at FROM call_counters WHERE user_id = $1`,
			userID)
		if errors.Is(err, sql.ErrNoRows) {
			res, err := r.db.ExecContext(ctx,
				`INSERT INTO call_counters (user_id, call_count, version, updated_at)
				VALUES ($1, 1, 1, $2) ON CONFLICT (user_id) DO NOTHING`,
				userID, now)
			if err != nil {
				return 0, fmt.Errorf("failed to create call counter: %w", err)
			}
			if inserted, _ := res.RowsAffected(); inserted == 1 {
				return 1, nil
			}
			continue
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read call counter: %w", err)
		}

		res, err := r.db.ExecContext(ctx,
			`UPDATE call_counters SET call_count = $1, version = $2, updated_at = $3
			WHERE user_id = $4 AND version = $5`,
			row.CallCount+1, row.Version+1, now, userID, row.Version)
		if err != nil {
			return 0, fmt.Errorf("failed to update call counter: %w", err)
		}
		if updated, _ := res.RowsAffected(); updated == 1 {
			return row.CallCount + 1, nil
		}

		logger.DebugCtx(ctx, "Call counter version conflict, retrying",
			logger.String("user_id", userID),
			logger.Int64("version", row.Version),
			logger.Int("attempt", attempt))
	}

	return 0, tracker.ErrCounterConflict
}

// GetCallStats returns the counter of userID, zero when none was recorded yet
func (r *CounterRepo) GetCallStats(ctx context.Context, userID string) (models.CallStats, error) {
	var row counterRow
	err := r.db.GetContext(ctx, &row,
		`SELECT user_id, call_count, version, updated_at FROM call_counters WHERE user_id = $1`,
		userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.CallStats{UserID: userID}, nil
	}
	if err != nil {
		return models.CallStats{}, fmt.Errorf("failed to read call counter: %w", err)
	}

	return models.CallStats{
		UserID:    row.UserID,
		CallCount: row.CallCount,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
