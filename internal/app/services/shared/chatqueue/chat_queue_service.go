package chatqueue

import (
	"context"
	"fmt"
	"sync"
	"time"

	"emoease-service/internal/app/config"
	"emoease-service/internal/app/models"
	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// QueueMessage is the payload carried through RabbitMQ to the archive worker.
type QueueMessage struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	Text        string    `json:"text"`
	Sender      string    `json:"sender"`
	Timestamp   time.Time `json:"timestamp"`
	FailedCount int       `json:"failed_count"`
}

// Service manages the durable chat archive queue and its dead-letter queue.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	dlqName   string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

// NewService declares both queues durable, enables publisher confirms, and
// sets a prefetch of one for the consumer side.
func NewService(conn *amqp.Connection, internalConfig *config.InternalConfig, log *zap.Logger) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrQueueDeclare(err)
	}

	for _, name := range []string{internalConfig.Chat.QueueName, internalConfig.Chat.DeadLetterQueueName} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			return nil, exceptions.ErrQueueDeclare(err)
		}
	}

	if err := ch.Qos(1, 0, false); err != nil {
		return nil, exceptions.ErrQueueDeclare(err)
	}
	if err := ch.Confirm(false); err != nil {
		return nil, exceptions.ErrQueueDeclare(err)
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: internalConfig.Chat.QueueName,
		dlqName:   internalConfig.Chat.DeadLetterQueueName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

// PublishMessage enqueues one chat message with persistence and waits for
// the broker confirm.
func (s *Service) PublishMessage(ctx context.Context, path string, message *models.Message) error {
	payload := QueueMessage{
		ID:        message.ID,
		Path:      path,
		Text:      message.Text,
		Sender:    message.Sender,
		Timestamp: message.Timestamp,
	}
	return s.publish(ctx, s.queueName, payload)
}

// PublishToDLQ moves a poison message to the dead-letter queue.
func (s *Service) PublishToDLQ(ctx context.Context, message QueueMessage) error {
	message.FailedCount++
	return s.publish(ctx, s.dlqName, message)
}

func (s *Service) publish(ctx context.Context, queue string, message QueueMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrQueuePublish(err)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrQueuePublish(fmt.Errorf("message not confirmed"))
		}
	case <-ctx.Done():
		return exceptions.ErrQueuePublish(ctx.Err())
	}
	return nil
}

// Consume delivers queue messages to handler with at-least-once semantics.
// Handler failures nack without requeue after the message is dead-lettered.
func (s *Service) Consume(ctx context.Context, handler func(context.Context, QueueMessage) error) error {
	deliveries, err := s.ch.ConsumeWithContext(ctx, s.queueName, "", false, false, false, false, nil)
	if err != nil {
		return exceptions.WrapWithError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevQueueConsume)
	}

	go func() {
		for delivery := range deliveries {
			var message QueueMessage
			if err := json.Unmarshal(delivery.Body, &message); err != nil {
				s.log.Warn("dropping undecodable queue message",
					zap.String(constvars.LoggingQueueKey, s.queueName),
					zap.Error(err),
				)
				delivery.Nack(false, false)
				continue
			}

			if err := handler(ctx, message); err != nil {
				s.log.Warn("queue handler failed, dead-lettering message",
					zap.String(constvars.LoggingQueueKey, s.queueName),
					zap.String(constvars.LoggingMessageIDKey, message.ID),
					zap.Error(err),
				)
				if dlqErr := s.PublishToDLQ(ctx, message); dlqErr != nil {
					s.log.Error("failed to dead-letter queue message",
						zap.String(constvars.LoggingMessageIDKey, message.ID),
						zap.Error(dlqErr),
					)
					delivery.Nack(false, true)
					continue
				}
				delivery.Nack(false, false)
				continue
			}
			delivery.Ack(false)
		}
	}()

	return nil
}
