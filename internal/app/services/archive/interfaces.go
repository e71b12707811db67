package archive

import (
	"context"

	"emoease-service/internal/app/models"
	"emoease-service/internal/pkg/dto/responses"
)

// MessageArchiveRepository is the insert-only transcript store behind the
// staff management views.
type MessageArchiveRepository interface {
	EnsureIndexes(ctx context.Context) error
	InsertMessage(ctx context.Context, message *models.ArchivedMessage) error
	FindMessagesByPath(ctx context.Context, path string, limit int64) ([]models.ArchivedMessage, error)
}

type ArchiveUsecase interface {
	ListMessages(ctx context.Context, path string) (*responses.ArchivedMessages, error)
}
