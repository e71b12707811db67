package utils

import (
	"context"

	"emoease-service/internal/app/models"
)

type contextKey string

const sessionContextKey contextKey = "session"

// WithSession attaches the authenticated session to the request context.
func WithSession(ctx context.Context, session *models.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, session)
}

// SessionFromContext returns the attached session, or nil when the request
// was not authenticated.
func SessionFromContext(ctx context.Context) *models.Session {
	session, ok := ctx.Value(sessionContextKey).(*models.Session)
	if !ok {
		return nil
	}
	return session
}

func SessionIDFromContext(ctx context.Context) string {
	session := SessionFromContext(ctx)
	if session == nil {
		return ""
	}
	return session.SessionID
}
