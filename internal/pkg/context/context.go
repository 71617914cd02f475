package context

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey represents a key for context values
type ContextKey string

const (
	// RequestIDKey is the key for request ID in context
	RequestIDKey ContextKey = "request_id"
	// UserIDKey is the key for user ID in context
	UserIDKey ContextKey = "user_id"
	// TripIDKey is the key for the active trip ID in context
	TripIDKey ContextKey = "trip_id"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = uuid.New().String()
	}
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// WithUserID adds a user ID to the context
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// GetUserID retrieves the user ID from context
func GetUserID(ctx context.Context) string {
	if userID, ok := ctx.Value(UserIDKey).(string); ok {
		return userID
	}
	return ""
}

// WithTripID adds a trip ID to the context
func WithTripID(ctx context.Context, tripID string) context.Context {
	return context.WithValue(ctx, TripIDKey, tripID)
}

// GetTripID retrieves the trip ID from context
func GetTripID(ctx context.Context) string {
	if tripID, ok := ctx.Value(TripIDKey).(string); ok {
		return tripID
	}
	return ""
}

// Detach returns a context that keeps the correlation values of ctx but is never
// cancelled, for work that must outlive the request that started it
func Detach(ctx context.Context) context.Context {
	out := context.Background()
	if v := GetRequestID(ctx); v != "" {
		out = context.WithValue(out, RequestIDKey, v)
	}
	if v := GetUserID(ctx); v != "" {
		out = context.WithValue(out, UserIDKey, v)
	}
	if v := GetTripID(ctx); v != "" {
		out = context.WithValue(out, TripIDKey, v)
	}
	return out
}
