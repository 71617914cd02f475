package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/wakestop/internal/pkg/models"
	nrpkg "github.com/piresc/wakestop/internal/pkg/newrelic"
	"github.com/piresc/wakestop/services/callbackend"
)

// PhoneRepo reads phone numbers from the users table
type PhoneRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPhoneRepository creates a new phone repository
func NewPhoneRepository(cfg *models.Config, db *sqlx.DB) *PhoneRepo {
	return &PhoneRepo{
		cfg: cfg,
		db:  db,
	}
}

// GetPhoneNumber returns the raw phone number of an active user
func (r *PhoneRepo) GetPhoneNumber(ctx context.Context, userID string) (string, error) {
	var phone sql.NullString
	err := nrpkg.WithSegment(ctx, "PhoneRepo.GetPhoneNumber", func() error {
		return r.db.GetContext(ctx, &phone,
			`SELECT phone_number FROM users WHERE id = $1 AND is_active = true`,
			userID)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return "", callbackend.ErrPhoneNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get phone number: %w", err)
	}
	if !phone.Valid || phone.String == "" {
		return "", callbackend.ErrPhoneNotFound
	}
	return phone.String, nil
}
