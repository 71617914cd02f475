package callbackend

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/wakestop/services/callbackend PhoneRepo

import "context"

// PhoneRepo resolves users to the number that should be called
type PhoneRepo interface {
	GetPhoneNumber(ctx context.Context, userID string) (string, error)
}
