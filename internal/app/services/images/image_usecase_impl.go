package images

import (
	"context"
	"fmt"
	"io"

	"emoease-service/internal/app/config"
	"emoease-service/internal/pkg/constvars"
	"emoease-service/internal/pkg/dto/responses"
	"emoease-service/internal/pkg/exceptions"
	"emoease-service/internal/pkg/utils"

	"go.uber.org/zap"
)

const avatarOwnerType = "User"

type imageUsecase struct {
	ImageClient    ImageClient
	Storage        Storage
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewImageUsecase(imageClient ImageClient, storage Storage, internalConfig *config.InternalConfig, log *zap.Logger) ImageUsecase {
	return &imageUsecase{
		ImageClient:    imageClient,
		Storage:        storage,
		InternalConfig: internalConfig,
		Log:            log,
	}
}

// ResolveAvatarURL never fails; any lookup problem yields the placeholder so
// callers always have something to render.
func (uc *imageUsecase) ResolveAvatarURL(ctx context.Context, ownerID string) string {
	if ownerID == "" {
		return uc.InternalConfig.ImageService.PlaceholderURL
	}

	avatarURL, err := uc.ImageClient.GetAvatarURL(ctx, avatarOwnerType, ownerID)
	if err != nil || avatarURL == "" {
		if err != nil {
			uc.Log.Debug("avatar lookup failed, using placeholder",
				zap.String(constvars.LoggingOwnerIDKey, ownerID),
				zap.Error(err),
			)
		}
		return uc.InternalConfig.ImageService.PlaceholderURL
	}
	return avatarURL
}

func (uc *imageUsecase) GetAvatar(ctx context.Context, ownerID string) (*responses.Avatar, error) {
	return &responses.Avatar{URL: uc.ResolveAvatarURL(ctx, ownerID)}, nil
}

func (uc *imageUsecase) UploadAvatar(ctx context.Context, ownerID, contentType string, reader io.Reader, size int64) (*responses.AvatarUpload, error) {
	if contentType != constvars.MIMEImageJPEG && contentType != constvars.MIMEImagePNG {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("unsupported content type %s", contentType))
	}
	maxSize := uc.InternalConfig.App.AvatarMaxUploadSizeInMB * 1024 * 1024
	if size <= 0 || size > maxSize {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("size %d outside allowed range", size))
	}

	objectName := fmt.Sprintf("avatars/%s/%s", ownerID, utils.GenerateMessageKey())
	if err := uc.Storage.CreateObject(ctx, objectName, contentType, reader, size); err != nil {
		return nil, err
	}

	presignedURL, err := uc.Storage.PresignObjectURL(ctx, objectName)
	if err != nil {
		return nil, err
	}

	return &responses.AvatarUpload{
		ObjectName: objectName,
		URL:        presignedURL,
	}, nil
}
