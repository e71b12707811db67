package chat

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"emoease-service/internal/app/config"
	"emoease-service/internal/app/models"
	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type fakeMessageStore struct {
	mu       sync.Mutex
	messages []models.Message
	nextID   int
	watchers []chan []models.Message
}

func (s *fakeMessageStore) Append(_ context.Context, _ string, message *models.Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	message.ID = fmt.Sprintf("msg-%d", s.nextID)
	s.messages = append(s.messages, *message)

	snapshot := make([]models.Message, len(s.messages))
	copy(snapshot, s.messages)
	for _, watcher := range s.watchers {
		select {
		case watcher <- snapshot:
		default:
		}
	}
	return message.ID, nil
}

func (s *fakeMessageStore) Snapshot(context.Context, string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]models.Message, len(s.messages))
	copy(snapshot, s.messages)
	return snapshot, nil
}

func (s *fakeMessageStore) Count(context.Context, string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.messages)), nil
}

func (s *fakeMessageStore) Subscribe(context.Context, string) (<-chan []models.Message, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	watcher := make(chan []models.Message, 16)

	snapshot := make([]models.Message, len(s.messages))
	copy(snapshot, s.messages)
	watcher <- snapshot

	s.watchers = append(s.watchers, watcher)
	return watcher, func() {}, nil
}

func (s *fakeMessageStore) senders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	senders := make([]string, len(s.messages))
	for i, message := range s.messages {
		senders[i] = message.Sender
	}
	return senders
}

// quietMessageStore never delivers a snapshot over its subscription, so the
// usecase only sees what Activate reads itself.
type quietMessageStore struct {
	fakeMessageStore
}

func (s *quietMessageStore) Subscribe(context.Context, string) (<-chan []models.Message, func(), error) {
	return make(chan []models.Message), func() {}, nil
}

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

func chatTestConfig() *config.InternalConfig {
	return &config.InternalConfig{
		Chat: config.Chat{
			Path:                    "messages",
			WelcomeText:             "welcome",
			ReplyText:               "canned reply",
			ReplyDelayInMillisecond: 20,
			WelcomeGuardTTLInDay:    30,
		},
	}
}

func TestChatUsecase_ActivateSeedsWelcomeOnEmptyLog(t *testing.T) {
	store := new(fakeMessageStore)
	redisRepo := new(mockRedisRepository)
	redisRepo.On("TrySetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	uc := NewChatUsecase(store, redisRepo, nil, chatTestConfig(), zap.NewNop())
	defer uc.Close()

	err := uc.Activate(context.Background())
	assert.NoError(t, err)

	response, err := uc.Messages(context.Background())
	assert.NoError(t, err)
	assert.Len(t, response.Messages, 1)
	assert.Equal(t, "welcome", response.Messages[0].Text)
	assert.Equal(t, constvars.ChatSenderShop, response.Messages[0].Sender)
	redisRepo.AssertNumberOfCalls(t, "TrySetNX", 1)
}

func TestChatUsecase_MessagesVisibleImmediatelyAfterActivate(t *testing.T) {
	store := new(quietMessageStore)
	redisRepo := new(mockRedisRepository)
	redisRepo.On("TrySetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	uc := NewChatUsecase(store, redisRepo, nil, chatTestConfig(), zap.NewNop())
	defer uc.Close()

	assert.NoError(t, uc.Activate(context.Background()))

	response, err := uc.Messages(context.Background())
	assert.NoError(t, err)
	assert.Len(t, response.Messages, 1)
	assert.Equal(t, "welcome", response.Messages[0].Text)
}

func TestChatUsecase_ActivateSkipsWelcomeWhenGuardHeld(t *testing.T) {
	store := new(fakeMessageStore)
	redisRepo := new(mockRedisRepository)
	redisRepo.On("TrySetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	uc := NewChatUsecase(store, redisRepo, nil, chatTestConfig(), zap.NewNop())
	defer uc.Close()

	err := uc.Activate(context.Background())
	assert.NoError(t, err)

	count, _ := store.Count(context.Background(), "messages")
	assert.Zero(t, count)
}

func TestChatUsecase_ActivateSkipsWelcomeWhenLogNotEmpty(t *testing.T) {
	store := new(fakeMessageStore)
	_, err := store.Append(context.Background(), "messages", &models.Message{
		Text:   "already here",
		Sender: constvars.ChatSenderUser,
	})
	assert.NoError(t, err)

	redisRepo := new(mockRedisRepository)
	uc := NewChatUsecase(store, redisRepo, nil, chatTestConfig(), zap.NewNop())
	defer uc.Close()

	err = uc.Activate(context.Background())
	assert.NoError(t, err)

	count, _ := store.Count(context.Background(), "messages")
	assert.EqualValues(t, 1, count)
	redisRepo.AssertNotCalled(t, "TrySetNX")
}

func TestChatUsecase_SendWhitespaceOnlyIsNoOp(t *testing.T) {
	store := new(fakeMessageStore)
	uc := NewChatUsecase(store, new(mockRedisRepository), nil, chatTestConfig(), zap.NewNop())
	defer uc.Close()

	response, err := uc.Send(context.Background(), &requests.SendMessage{Text: "   \n\t  "})
	assert.NoError(t, err)
	assert.False(t, response.Accepted)
	assert.Empty(t, response.MessageID)

	count, _ := store.Count(context.Background(), "messages")
	assert.Zero(t, count)
}

func TestChatUsecase_SendSchedulesCannedReplyPerMessage(t *testing.T) {
	store := new(fakeMessageStore)
	uc := NewChatUsecase(store, new(mockRedisRepository), nil, chatTestConfig(), zap.NewNop())
	defer uc.Close()

	first, err := uc.Send(context.Background(), &requests.SendMessage{Text: "hello"})
	assert.NoError(t, err)
	assert.True(t, first.Accepted)
	assert.NotEmpty(t, first.MessageID)

	second, err := uc.Send(context.Background(), &requests.SendMessage{Text: "anyone there?"})
	assert.NoError(t, err)
	assert.True(t, second.Accepted)

	assert.Eventually(t, func() bool {
		count, _ := store.Count(context.Background(), "messages")
		return count == 4
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{
		constvars.ChatSenderUser,
		constvars.ChatSenderUser,
		constvars.ChatSenderShop,
		constvars.ChatSenderShop,
	}, store.senders())
}

func TestChatUsecase_CloseCancelsPendingReplies(t *testing.T) {
	store := new(fakeMessageStore)
	internalConfig := chatTestConfig()
	internalConfig.Chat.ReplyDelayInMillisecond = 50

	uc := NewChatUsecase(store, new(mockRedisRepository), nil, internalConfig, zap.NewNop())

	_, err := uc.Send(context.Background(), &requests.SendMessage{Text: "hello"})
	assert.NoError(t, err)

	uc.Close()
	time.Sleep(120 * time.Millisecond)

	count, _ := store.Count(context.Background(), "messages")
	assert.EqualValues(t, 1, count)
}

func TestChatUsecase_MessagesTracksStreamedSnapshots(t *testing.T) {
	store := new(fakeMessageStore)
	redisRepo := new(mockRedisRepository)
	redisRepo.On("TrySetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil)

	uc := NewChatUsecase(store, redisRepo, nil, chatTestConfig(), zap.NewNop())
	defer uc.Close()

	assert.NoError(t, uc.Activate(context.Background()))

	_, err := store.Append(context.Background(), "messages", &models.Message{Text: "out of band"})
	assert.NoError(t, err)

	assert.Eventually(t, func() bool {
		response, err := uc.Messages(context.Background())
		return err == nil && len(response.Messages) == 2
	}, time.Second, 5*time.Millisecond)

	response, err := uc.Messages(context.Background())
	assert.NoError(t, err)
	// Messages without a sender render as the user's own.
	assert.Equal(t, constvars.ChatSenderUser, response.Messages[1].Sender)
}
