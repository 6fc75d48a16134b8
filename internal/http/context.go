package http

import (
	"context"
	"log/slog"
)

type loggerContextKey struct{}

type userIDContextKey struct{}

type meetingIDContextKey struct{}

// ContextWithLogger attaches a request scoped logger to the context.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if ctx == nil || logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// LoggerFromContext extracts the request scoped logger, if any.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return nil
	}
	logger, _ := ctx.Value(loggerContextKey{}).(*slog.Logger)
	return logger
}

// ContextWithUserID attaches the path user id to the context.
func ContextWithUserID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, id)
}

// UserIDFromContext extracts the path user id.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDContextKey{}).(string)
	return id, ok
}

// ContextWithMeetingID attaches the path meeting id to the context.
func ContextWithMeetingID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, meetingIDContextKey{}, id)
}

// MeetingIDFromContext extracts the path meeting id.
func MeetingIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(meetingIDContextKey{}).(string)
	return id, ok
}
