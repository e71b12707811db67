package chat

import (
	"context"
	"fmt"

	"emoease-service/internal/app/models"
	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/exceptions"
	"emoease-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// messageRedisStore keeps each chat path as a Redis list and notifies
// subscribers through pub/sub. Subscribers re-read the whole list per event,
// so every notification carries the full current child set.
type messageRedisStore struct {
	client *redis.Client
	log    *zap.Logger
}

func NewMessageRedisStore(client *redis.Client, log *zap.Logger) MessageStore {
	return &messageRedisStore{
		client: client,
		log:    log,
	}
}

func (s *messageRedisStore) Append(ctx context.Context, path string, message *models.Message) (string, error) {
	if message.ID == "" {
		message.ID = utils.GenerateMessageKey()
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.client.RPush(ctx, listKey(path), payload).Err()
	if err != nil {
		return "", exceptions.ErrRedisPushToList(err)
	}

	err = s.client.Publish(ctx, eventsChannel(path), message.ID).Err()
	if err != nil {
		return "", exceptions.ErrRedisPublish(err)
	}

	return message.ID, nil
}

func (s *messageRedisStore) Snapshot(ctx context.Context, path string) ([]models.Message, error) {
	entries, err := s.client.LRange(ctx, listKey(path), 0, -1).Result()
	if err != nil {
		return nil, exceptions.ErrRedisRangeList(err)
	}

	messages := make([]models.Message, 0, len(entries))
	for _, entry := range entries {
		var message models.Message
		if err := json.Unmarshal([]byte(entry), &message); err != nil {
			// A malformed entry must not hide the rest of the log.
			s.log.Warn("skipping undecodable chat entry",
				zap.String(constvars.LoggingChatPathKey, path),
				zap.Error(err),
			)
			continue
		}
		messages = append(messages, message)
	}

	return messages, nil
}

func (s *messageRedisStore) Count(ctx context.Context, path string) (int64, error) {
	count, err := s.client.LLen(ctx, listKey(path)).Result()
	if err != nil {
		return 0, exceptions.ErrRedisCountList(err)
	}
	return count, nil
}

func (s *messageRedisStore) Subscribe(ctx context.Context, path string) (<-chan []models.Message, func(), error) {
	pubsub := s.client.Subscribe(ctx, eventsChannel(path))
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, nil, exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientChatUnavailable, constvars.ErrDevRedisSubscribe)
	}

	out := make(chan []models.Message, 1)

	deliver := func() {
		snapshot, err := s.Snapshot(ctx, path)
		if err != nil {
			s.log.Warn("failed to read chat snapshot for notification",
				zap.String(constvars.LoggingChatPathKey, path),
				zap.Error(err),
			)
			return
		}
		select {
		case out <- snapshot:
		case <-ctx.Done():
		}
	}

	go func() {
		defer close(out)
		deliver()
		for {
			select {
			case _, ok := <-pubsub.Channel():
				if !ok {
					return
				}
				deliver()
			case <-ctx.Done():
				return
			}
		}
	}()

	stop := func() {
		pubsub.Close()
	}

	return out, stop, nil
}

func listKey(path string) string {
	return fmt.Sprintf(constvars.ChatListKeyFormat, path)
}

func eventsChannel(path string) string {
	return fmt.Sprintf(constvars.ChatEventsChannelFormat, path)
}
