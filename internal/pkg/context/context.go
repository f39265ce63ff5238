package context

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey represents a key for context values
type ContextKey string

const (
	// RequestIDKey is the key for the request ID in context
	RequestIDKey ContextKey = "request_id"
	// DriverIDKey is the key for the authenticated driver ID in context
	DriverIDKey ContextKey = "driver_id"
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

// WithDriverID adds the authenticated driver's ID to the context
func WithDriverID(ctx context.Context, driverID uuid.UUID) context.Context {
	return context.WithValue(ctx, DriverIDKey, driverID)
}

// GetDriverID retrieves the authenticated driver's ID from context.
// Returns uuid.Nil when the request was not driver-authenticated.
func GetDriverID(ctx context.Context) uuid.UUID {
	if driverID, ok := ctx.Value(DriverIDKey).(uuid.UUID); ok {
		return driverID
	}
	return uuid.Nil
}
