package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"emoease-service/internal/app/config"
	"emoease-service/internal/app/models"
	"emoease-service/internal/app/services/shared/redis"
	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/dto/requests"
	"emoease-service/internal/pkg/dto/responses"
	"emoease-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type chatUsecase struct {
	MessageStore    MessageStore
	RedisRepository redis.RedisRepository
	QueuePublisher  QueuePublisher
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger

	replyDelay time.Duration

	mu          sync.Mutex
	messages    []models.Message
	activated   bool
	closed      bool
	stopStream  func()
	cancelRoot  context.CancelFunc
	replyTimers map[string]*time.Timer
}

func NewChatUsecase(
	messageStore MessageStore,
	redisRepository redis.RedisRepository,
	queuePublisher QueuePublisher,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) ChatUsecase {
	return &chatUsecase{
		MessageStore:    messageStore,
		RedisRepository: redisRepository,
		QueuePublisher:  queuePublisher,
		InternalConfig:  internalConfig,
		Log:             log,
		replyDelay:      time.Duration(internalConfig.Chat.ReplyDelayInMillisecond) * time.Millisecond,
		replyTimers:     make(map[string]*time.Timer),
	}
}

func (uc *chatUsecase) Activate(ctx context.Context) error {
	uc.mu.Lock()
	if uc.activated || uc.closed {
		uc.mu.Unlock()
		return nil
	}
	uc.mu.Unlock()

	if err := uc.seedWelcomeMessage(ctx); err != nil {
		return err
	}

	// The subscription outlives the activation request.
	streamCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	snapshots, stop, err := uc.MessageStore.Subscribe(streamCtx, uc.InternalConfig.Chat.Path)
	if err != nil {
		cancel()
		return err
	}

	// Read the log once before spawning the tracker so callers see the
	// current messages the moment Activate returns.
	initial, err := uc.MessageStore.Snapshot(ctx, uc.InternalConfig.Chat.Path)
	if err != nil {
		stop()
		cancel()
		return err
	}

	uc.mu.Lock()
	uc.activated = true
	uc.stopStream = stop
	uc.cancelRoot = cancel
	uc.mu.Unlock()

	uc.applySnapshot(initial)

	go func() {
		for snapshot := range snapshots {
			uc.applySnapshot(snapshot)
		}
	}()

	return nil
}

// seedWelcomeMessage appends the greeting exactly once when the remote log
// is empty. The SetNX guard keeps two concurrent sessions from both seeding.
func (uc *chatUsecase) seedWelcomeMessage(ctx context.Context) error {
	count, err := uc.MessageStore.Count(ctx, uc.InternalConfig.Chat.Path)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	guardKey := fmt.Sprintf(constvars.ChatWelcomeGuardKeyFormat, uc.InternalConfig.Chat.Path)
	guardTTL := time.Duration(uc.InternalConfig.Chat.WelcomeGuardTTLInDay) * 24 * time.Hour
	acquired, err := uc.RedisRepository.TrySetNX(ctx, guardKey, true, guardTTL)
	if err != nil {
		return err
	}
	if !acquired {
		return nil
	}

	welcome := &models.Message{
		Text:      uc.InternalConfig.Chat.WelcomeText,
		Sender:    constvars.ChatSenderShop,
		Timestamp: time.Now(),
	}
	messageID, err := uc.MessageStore.Append(ctx, uc.InternalConfig.Chat.Path, welcome)
	if err != nil {
		return err
	}
	uc.publishToArchive(ctx, welcome)

	uc.Log.Info("seeded chat welcome message",
		zap.String(constvars.LoggingChatPathKey, uc.InternalConfig.Chat.Path),
		zap.String(constvars.LoggingMessageIDKey, messageID),
	)
	return nil
}

func (uc *chatUsecase) Send(ctx context.Context, request *requests.SendMessage) (*responses.SendMessage, error) {
	utils.SanitizeSendMessageRequest(request)
	// Whitespace-only input is a silent no-op, matching the widget contract.
	if request.Text == "" {
		return &responses.SendMessage{Accepted: false}, nil
	}

	message := &models.Message{
		Text:      request.Text,
		Sender:    constvars.ChatSenderUser,
		Timestamp: time.Now(),
	}
	messageID, err := uc.MessageStore.Append(ctx, uc.InternalConfig.Chat.Path, message)
	if err != nil {
		return nil, err
	}
	uc.publishToArchive(ctx, message)

	// Every send schedules its own canned reply, independent of any other.
	uc.scheduleReply()

	return &responses.SendMessage{MessageID: messageID, Accepted: true}, nil
}

func (uc *chatUsecase) Messages(ctx context.Context) (*responses.ChatMessages, error) {
	uc.mu.Lock()
	activated := uc.activated
	local := make([]models.Message, len(uc.messages))
	copy(local, uc.messages)
	uc.mu.Unlock()

	if activated {
		return &responses.ChatMessages{Messages: local}, nil
	}

	snapshot, err := uc.MessageStore.Snapshot(ctx, uc.InternalConfig.Chat.Path)
	if err != nil {
		return nil, err
	}
	return &responses.ChatMessages{Messages: normalizeSenders(snapshot)}, nil
}

func (uc *chatUsecase) Close() {
	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return
	}
	uc.closed = true
	stop := uc.stopStream
	cancel := uc.cancelRoot
	timers := uc.replyTimers
	uc.replyTimers = make(map[string]*time.Timer)
	uc.mu.Unlock()

	for _, timer := range timers {
		timer.Stop()
	}
	if stop != nil {
		stop()
	}
	if cancel != nil {
		cancel()
	}
}

// applySnapshot wholesale-replaces the local view with the notified list.
func (uc *chatUsecase) applySnapshot(snapshot []models.Message) {
	normalized := normalizeSenders(snapshot)

	uc.mu.Lock()
	uc.messages = normalized
	uc.mu.Unlock()
}

// scheduleReply arms a fire-once timer for the canned staff reply. Timers
// are tracked so Close can cancel replies that have not fired yet.
func (uc *chatUsecase) scheduleReply() {
	timerID := uuid.New().String()

	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return
	}
	uc.replyTimers[timerID] = time.AfterFunc(uc.replyDelay, func() {
		uc.mu.Lock()
		_, pending := uc.replyTimers[timerID]
		delete(uc.replyTimers, timerID)
		closed := uc.closed
		uc.mu.Unlock()
		if !pending || closed {
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		reply := &models.Message{
			Text:      uc.InternalConfig.Chat.ReplyText,
			Sender:    constvars.ChatSenderShop,
			Timestamp: time.Now(),
		}
		if _, err := uc.MessageStore.Append(ctx, uc.InternalConfig.Chat.Path, reply); err != nil {
			uc.Log.Warn("failed to append scheduled chat reply",
				zap.String(constvars.LoggingChatPathKey, uc.InternalConfig.Chat.Path),
				zap.Error(err),
			)
			return
		}
		uc.publishToArchive(ctx, reply)
	})
	uc.mu.Unlock()
}

// publishToArchive is best-effort; the realtime log already holds the message.
func (uc *chatUsecase) publishToArchive(ctx context.Context, message *models.Message) {
	if uc.QueuePublisher == nil {
		return
	}
	if err := uc.QueuePublisher.PublishMessage(ctx, uc.InternalConfig.Chat.Path, message); err != nil {
		uc.Log.Warn("failed to publish chat message to archive queue",
			zap.String(constvars.LoggingMessageIDKey, message.ID),
			zap.Error(err),
		)
	}
}

func normalizeSenders(messages []models.Message) []models.Message {
	normalized := make([]models.Message, len(messages))
	copy(normalized, messages)
	for i := range normalized {
		if normalized[i].Sender == "" {
			normalized[i].Sender = constvars.ChatSenderUser
		}
	}
	return normalized
}
