package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

type contextKey string

const (
	usernameKey contextKey = "username"
	nicknameKey contextKey = "nickname"
)

// InjectUser attaches the acting user's identity to the context so that
// downstream log lines can be attributed without threading claims around.
func InjectUser(ctx context.Context, username, nickname string) context.Context {
	ctx = context.WithValue(ctx, usernameKey, username)
	return context.WithValue(ctx, nicknameKey, nickname)
}

// WithContext returns a logrus entry carrying the user field from the
// request context, or "unknown" for unauthenticated paths.
func WithContext(ctx context.Context) *logrus.Entry {
	if username, ok := ctx.Value(usernameKey).(string); ok && username != "" {
		return logrus.WithField("user", username)
	}
	if nickname, ok := ctx.Value(nicknameKey).(string); ok && nickname != "" {
		return logrus.WithField("user", nickname)
	}
	return logrus.WithField("user", "unknown")
}
