package images

import (
	"context"
	"io"

	"emoease-service/internal/pkg/dto/responses"
)

type (
	// ImageClient looks an owner's avatar up in the image service.
	ImageClient interface {
		GetAvatarURL(ctx context.Context, ownerType, ownerID string) (string, error)
	}

	// Storage persists uploaded avatar objects.
	Storage interface {
		CreateObject(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) error
		PresignObjectURL(ctx context.Context, objectName string) (string, error)
	}

	ImageUsecase interface {
		ResolveAvatarURL(ctx context.Context, ownerID string) string
		GetAvatar(ctx context.Context, ownerID string) (*responses.Avatar, error)
		UploadAvatar(ctx context.Context, ownerID, contentType string, reader io.Reader, size int64) (*responses.AvatarUpload, error)
	}
)
