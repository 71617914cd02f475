package models

import (
	"errors"
	"fmt"
	"time"
)

// CallErrorKind classifies call backend failures
type CallErrorKind string

const (
	CallErrUnauthenticated   CallErrorKind = "unauthenticated"
	CallErrNotFound          CallErrorKind = "not-found"
	CallErrResourceExhausted CallErrorKind = "resource-exhausted"
	CallErrInternal          CallErrorKind = "internal"
)

// CallError is a typed call backend failure
type CallError struct {
	Kind    CallErrorKind
	Message string
}

func (e *CallError) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewCallError creates a typed call error
func NewCallError(kind CallErrorKind, msg string) *CallError {
	return &CallError{Kind: kind, Message: msg}
}

// CallErrorKindOf returns the kind of a call error, internal for anything untyped
func CallErrorKindOf(err error) CallErrorKind {
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return CallErrInternal
}

// CallResult is the successful outcome of a placed call
type CallResult struct {
	Result string `json:"result"`
	CallID string `json:"call_id,omitempty"`
}

// CallEvent is an audit record of one call attempt
type CallEvent struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Outcome    string    `json:"outcome"`
	ProviderID string    `json:"provider_id,omitempty"`
	Error      string    `json:"error,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
