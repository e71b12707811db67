package images

import (
	"context"
	"io"
	"time"

	"emoease-service/internal/app/config"
	"emoease-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	client     *minio.Client
	bucketName string
}

func NewMinioStorage(client *minio.Client, driverConfig *config.DriverConfig) Storage {
	return &minioStorage{
		client:     client,
		bucketName: driverConfig.Minio.BucketName,
	}
}

func (s *minioStorage) CreateObject(ctx context.Context, objectName, contentType string, reader io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, s.bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, s.bucketName)
	}
	return nil
}

func (s *minioStorage) PresignObjectURL(ctx context.Context, objectName string) (string, error) {
	presigned, err := s.client.PresignedGetObject(ctx, s.bucketName, objectName, 24*time.Hour, nil)
	if err != nil {
		return "", exceptions.ErrMinioPresignURL(err, s.bucketName)
	}
	return presigned.String(), nil
}
