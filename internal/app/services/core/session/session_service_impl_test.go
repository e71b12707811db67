package session

import (
	"context"
	"testing"
	"time"

	"emoease-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *mockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func TestSessionService_CreateSessionUsesTokenExpiryAsTTL(t *testing.T) {
	redisRepo := new(mockRedisRepository)
	redisRepo.On("Set", mock.Anything, "session:abc", mock.Anything, mock.MatchedBy(func(ttl time.Duration) bool {
		return ttl > 59*time.Minute && ttl <= time.Hour
	})).Return(nil)

	svc := NewSessionService(redisRepo)
	err := svc.CreateSession(context.Background(), &models.Session{
		SessionID: "abc",
		ExpiresAt: time.Now().Add(time.Hour),
	})
	assert.NoError(t, err)
	redisRepo.AssertExpectations(t)
}

func TestSessionService_CreateSessionRejectsPastExpiry(t *testing.T) {
	redisRepo := new(mockRedisRepository)

	svc := NewSessionService(redisRepo)
	err := svc.CreateSession(context.Background(), &models.Session{
		SessionID: "abc",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	assert.Error(t, err)
	redisRepo.AssertNotCalled(t, "Set")
}

func TestSessionService_GetSession(t *testing.T) {
	stored := &models.Session{
		SessionID: "abc",
		Role:      "Doctor",
		LoggedIn:  true,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	payload, _ := json.Marshal(stored)

	redisRepo := new(mockRedisRepository)
	redisRepo.On("Get", mock.Anything, "session:abc").Return(string(payload), nil)

	svc := NewSessionService(redisRepo)
	restored, err := svc.GetSession(context.Background(), "abc")
	assert.NoError(t, err)
	assert.Equal(t, "Doctor", restored.Role)
	assert.True(t, restored.LoggedIn)
}

func TestSessionService_GetSessionMissing(t *testing.T) {
	redisRepo := new(mockRedisRepository)
	redisRepo.On("Get", mock.Anything, "session:gone").Return("", nil)

	svc := NewSessionService(redisRepo)
	_, err := svc.GetSession(context.Background(), "gone")
	assert.Error(t, err)
}

func TestSessionService_DeleteSessionClearsEverything(t *testing.T) {
	redisRepo := new(mockRedisRepository)
	redisRepo.On("Delete", mock.Anything, "session:abc").Return(nil)

	svc := NewSessionService(redisRepo)
	assert.NoError(t, svc.DeleteSession(context.Background(), "abc"))
	redisRepo.AssertExpectations(t)
}
