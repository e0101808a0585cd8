// Package context carries request-scoped values from the echo middleware chain down to the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"
	KeyOwnerID   ContextKey = "owner_id"
	keyMutation  ContextKey = "trip_mutation"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	maxRequestIDLength = 64
)

// NewRequestID returns the client supplied id when it is usable, otherwise a fresh UUID.
// Usable ids are at most 64 characters of letters, digits, '-', '_' and '.'.
func NewRequestID(supplied string) string {
	if validRequestID(supplied) {
		return supplied
	}

	return uuid.New().String()
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}

	return true
}

// GetRequestID returns the id set by the request id middleware, or "" when it did not run.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(string(KeyRequestID)).(string)

	return id
}

// BindRequest stores the request id and its logger on both echo.Context and the request context.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(string(KeyRequestID), requestID)

	ctx := context.WithValue(c.Request().Context(), KeyRequestID, requestID)
	ctx = WithLogger(ctx, logger.With(slog.String("request_id", requestID)))
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// BindOwner records the authenticated trip owner and tags the request logger with it.
func BindOwner(c echo.Context, ownerID string, fallback *slog.Logger) {
	c.Set(string(KeyOwnerID), ownerID)

	ctx := c.Request().Context()
	logger := GetLoggerOrDefault(ctx, fallback).With(slog.String("owner_id", ownerID))
	ctx = context.WithValue(ctx, KeyOwnerID, ownerID)
	c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger)))
}

// GetOwnerID returns the owner bound by the auth middleware.
func GetOwnerID(c echo.Context) (string, bool) {
	ownerID, ok := c.Get(string(KeyOwnerID)).(string)

	return ownerID, ok && ownerID != ""
}

// Mutation describes the trip change a request performed.
type Mutation struct {
	Op      string
	ID      string
	Outcome string
}

// RecordMutation attaches the change to the request so the logger middleware can report it.
func RecordMutation(c echo.Context, m Mutation) {
	c.Set(string(keyMutation), m)
}

// GetMutation returns the change recorded by the handler, if any.
func GetMutation(c echo.Context) (Mutation, bool) {
	m, ok := c.Get(string(keyMutation)).(Mutation)

	return m, ok
}

// GetLogger extracts the request-scoped logger from context.Context, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger, falling back to the given one.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
