package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/wakestop/internal/pkg/models"
	"github.com/piresc/wakestop/services/callbackend"
	"github.com/piresc/wakestop/services/callbackend/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const selectPhone = "SELECT phone_number FROM users WHERE id = $1 AND is_active = true"

func setupMockDB(t *testing.T) (*repository.PhoneRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return repository.NewPhoneRepository(&models.Config{}, sqlx.NewDb(mockDB, "sqlmock")), mock
}

func TestGetPhoneNumber(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectPhone)).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"phone_number"}).AddRow("+14155550100"))

	phone, err := repo.GetPhoneNumber(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "+14155550100", phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPhoneNumber_NotFound(t *testing.T) {
	tests := []struct {
		name string
		rows *sqlmock.Rows
	}{
		{"no user", sqlmock.NewRows([]string{"phone_number"})},
		{"null number", sqlmock.NewRows([]string{"phone_number"}).AddRow(nil)},
		{"empty number", sqlmock.NewRows([]string{"phone_number"}).AddRow("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := setupMockDB(t)
			mock.ExpectQuery(regexp.QuoteMeta(selectPhone)).WithArgs("u1").WillReturnRows(tt.rows)

			_, err := repo.GetPhoneNumber(context.Background(), "u1")
			assert.ErrorIs(t, err, callbackend.ErrPhoneNotFound)
		})
	}
}

func TestGetPhoneNumber_DatabaseError(t *testing.T) {
	repo, mock := setupMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectPhone)).WithArgs("u1").WillReturnError(errors.New("connection reset"))

	_, err := repo.GetPhoneNumber(context.Background(), "u1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, callbackend.ErrPhoneNotFound)
	assert.Contains(t, err.Error(), "failed to get phone number")
}
