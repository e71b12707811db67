package session

import (
	"context"

	"emoease-service/internal/app/models"
)

// SessionService owns the persisted session lifecycle: created on login,
// rehydrated on start, destroyed on logout or validation failure.
type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	UpdateSession(ctx context.Context, session *models.Session) error
	DeleteSession(ctx context.Context, sessionID string) error
}
