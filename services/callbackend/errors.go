package callbackend

import "errors"

var (
	ErrMissingUser    = errors.New("user id is required")
	ErrPhoneNotFound  = errors.New("no phone number registered for user")
	ErrInvalidPhone   = errors.New("registered phone number is invalid")
	ErrCallInProgress = errors.New("a call is already in progress")
)
