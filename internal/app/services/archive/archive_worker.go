package archive

import (
	"context"
	"time"

	"emoease-service/internal/app/models"
	"emoease-service/internal/app/services/shared/chatqueue"
	"emoease-service/internal/pkg/constvars"

	"go.uber.org/zap"
)

// Worker drains the chat archive queue into Mongo.
type Worker struct {
	log        *zap.Logger
	queue      *chatqueue.Service
	repository MessageArchiveRepository
}

func NewWorker(log *zap.Logger, queue *chatqueue.Service, repository MessageArchiveRepository) *Worker {
	return &Worker{
		log:        log,
		queue:      queue,
		repository: repository,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	return w.queue.Consume(ctx, w.handle)
}

func (w *Worker) handle(ctx context.Context, message chatqueue.QueueMessage) error {
	archived := &models.ArchivedMessage{
		ID:         message.ID,
		Path:       message.Path,
		Text:       message.Text,
		Sender:     message.Sender,
		Timestamp:  message.Timestamp,
		ArchivedAt: time.Now(),
	}
	if err := w.repository.InsertMessage(ctx, archived); err != nil {
		return err
	}

	w.log.Debug("archived chat message",
		zap.String(constvars.LoggingMessageIDKey, message.ID),
		zap.String(constvars.LoggingChatPathKey, message.Path),
	)
	return nil
}
