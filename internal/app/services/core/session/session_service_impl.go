package session

import (
	"context"
	"fmt"
	"time"

	"emoease-service/internal/app/models"
	"emoease-service/internal/app/services/shared/redis"
	"emoease-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

const sessionKeyFormat = "session:%s"

type sessionService struct {
	RedisRepository redis.RedisRepository
}

func NewSessionService(redisRepository redis.RedisRepository) SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
	}
}

func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return exceptions.ErrTokenExpired(nil)
	}

	err := svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
	if err != nil {
		return exceptions.ErrRedisStoreSession(err)
	}
	return nil
}

func (svc *sessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sessionData, err := svc.RedisRepository.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrInvalidSession(nil)
	}

	session := new(models.Session)
	err = json.Unmarshal([]byte(sessionData), session)
	if err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) UpdateSession(ctx context.Context, session *models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return exceptions.ErrTokenExpired(nil)
	}
	return svc.RedisRepository.Set(ctx, sessionKey(session.SessionID), session, ttl)
}

// DeleteSession removes every persisted session field at once; there is no
// partial teardown.
func (svc *sessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, sessionKey(sessionID))
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf(sessionKeyFormat, sessionID)
}
