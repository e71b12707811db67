package chat

import (
	"context"

	"emoease-service/internal/app/models"
	"emoease-service/internal/pkg/dto/requests"
	"emoease-service/internal/pkg/dto/responses"
)

// MessageStore is the realtime log backing the support chat: append-only
// children under a path, with full-snapshot notifications on every change.
type MessageStore interface {
	// Append adds one message under path with a store-generated key and
	// returns that key.
	Append(ctx context.Context, path string, message *models.Message) (string, error)
	// Snapshot returns the full ordered message list at path.
	Snapshot(ctx context.Context, path string) ([]models.Message, error)
	Count(ctx context.Context, path string) (int64, error)
	// Subscribe delivers the full current list on every change, starting
	// with one initial snapshot. The returned stop function tears the
	// subscription down and closes the channel.
	Subscribe(ctx context.Context, path string) (<-chan []models.Message, func(), error)
}

// QueuePublisher forwards appended messages to the archive queue.
type QueuePublisher interface {
	PublishMessage(ctx context.Context, path string, message *models.Message) error
}

type ChatUsecase interface {
	// Activate subscribes to the remote log and seeds the welcome greeting
	// when the log is empty. Safe to call once per process lifetime.
	Activate(ctx context.Context) error
	Send(ctx context.Context, request *requests.SendMessage) (*responses.SendMessage, error)
	Messages(ctx context.Context) (*responses.ChatMessages, error)
	// Close cancels pending scheduled replies and stops the subscription.
	Close()
}
