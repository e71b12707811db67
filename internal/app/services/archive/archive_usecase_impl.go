package archive

import (
	"context"

	"emoease-service/internal/app/config"
	"emoease-service/internal/pkg/dto/responses"
)

const defaultListLimit = 200

type archiveUsecase struct {
	Repository     MessageArchiveRepository
	InternalConfig *config.InternalConfig
}

func NewArchiveUsecase(repository MessageArchiveRepository, internalConfig *config.InternalConfig) ArchiveUsecase {
	return &archiveUsecase{
		Repository:     repository,
		InternalConfig: internalConfig,
	}
}

func (uc *archiveUsecase) ListMessages(ctx context.Context, path string) (*responses.ArchivedMessages, error) {
	if path == "" {
		path = uc.InternalConfig.Chat.Path
	}
	messages, err := uc.Repository.FindMessagesByPath(ctx, path, defaultListLimit)
	if err != nil {
		return nil, err
	}
	return &responses.ArchivedMessages{Messages: messages}, nil
}
