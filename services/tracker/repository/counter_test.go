package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/piresc/wakestop/services/tracker"
	"github.com/piresc/wakestop/services/tracker/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var counterColumns = []string{"user_id", "call_count", "version", "updated_at"}

const (
	selectCounter = "SELECT user_id, call_count, version, updated_at FROM call_counters"
	insertCounter = "INSERT INTO call_counters"
	updateCounter = "UPDATE call_counters SET call_count"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return sqlx.NewDb(mockDB, "sqlmock"), mock
}

func TestIncrementCallCount_FirstCall(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCounterRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectCounter)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(counterColumns))
	mock.ExpectExec(regexp.QuoteMeta(insertCounter)).
		WithArgs("u1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	count, err := repo.IncrementCallCount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementCallCount_ExistingCounter(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCounterRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectCounter)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(counterColumns).AddRow("u1", int64(4), int64(7), time.Now()))
	mock.ExpectExec(regexp.QuoteMeta(updateCounter)).
		WithArgs(int64(5), int64(8), sqlmock.AnyArg(), "u1", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	count, err := repo.IncrementCallCount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementCallCount_RetriesOnVersionConflict(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCounterRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectCounter)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(counterColumns).AddRow("u1", int64(4), int64(7), time.Now()))
	mock.ExpectExec(regexp.QuoteMeta(updateCounter)).
		WithArgs(int64(5), int64(8), sqlmock.AnyArg(), "u1", int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(selectCounter)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(counterColumns).AddRow("u1", int64(5), int64(8), time.Now()))
	mock.ExpectExec(regexp.QuoteMeta(updateCounter)).
		WithArgs(int64(6), int64(9), sqlmock.AnyArg(), "u1", int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	count, err := repo.IncrementCallCount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(6), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementCallCount_ConcurrentInsert(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCounterRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectCounter)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(counterColumns))
	mock.ExpectExec(regexp.QuoteMeta(insertCounter)).
		WithArgs("u1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(selectCounter)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(counterColumns).AddRow("u1", int64(1), int64(1), time.Now()))
	mock.ExpectExec(regexp.QuoteMeta(updateCounter)).
		WithArgs(int64(2), int64(2), sqlmock.AnyArg(), "u1", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	count, err := repo.IncrementCallCount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementCallCount_GivesUpAfterRepeatedConflicts(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCounterRepository(&models.Config{}, db)

	for i := 0; i < 5; i++ {
		mock.ExpectQuery(regexp.QuoteMeta(selectCounter)).
			WithArgs("u1").
			WillReturnRows(sqlmock.NewRows(counterColumns).AddRow("u1", int64(4), int64(7), time.Now()))
		mock.ExpectExec(regexp.QuoteMeta(updateCounter)).
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	_, err := repo.IncrementCallCount(context.Background(), "u1")
	assert.ErrorIs(t, err, tracker.ErrCounterConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementCallCount_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCounterRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta(selectCounter)).
		WithArgs("u1").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.IncrementCallCount(context.Background(), "u1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read call counter")
}

func TestGetCallStats(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewCounterRepository(&models.Config{}, db)
	updated := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectCounter)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(counterColumns).AddRow("u1", int64(3), int64(3), updated))
	mock.ExpectQuery(regexp.QuoteMeta(selectCounter)).
		WithArgs("u2").
		WillReturnRows(sqlmock.NewRows(counterColumns))

	stats, err := repo.GetCallStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.CallCount)
	assert.Equal(t, updated, stats.UpdatedAt)

	stats, err = repo.GetCallStats(context.Background(), "u2")
	require.NoError(t, err)
	assert.Equal(t, "u2", stats.UserID)
	assert.Zero(t, stats.CallCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}
