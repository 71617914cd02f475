package callbackend

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/wakestop/services/callbackend CallUC

import (
	"context"

	"github.com/piresc/wakestop/internal/pkg/models"
)

// CallUC defines the interface for placing wake-up calls
type CallUC interface {
	PlaceCall(ctx context.Context, userID string) (models.CallResult, error)
}
