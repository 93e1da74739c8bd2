package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"socialwall/internal/config"
)

type Storage interface {
	UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (objectName, url string, err error)
	DeleteObject(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *slog.Logger
}

// NewMinIOClient connects to MinIO and makes sure the avatar bucket exists.
func NewMinIOClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.MinIO.BucketName, err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.MinIO.BucketName, err)
		}
		logger.Info("bucket created", "bucket", cfg.MinIO.BucketName)
	}

	return &MinIOClient{
		client:    client,
		bucket:    cfg.MinIO.BucketName,
		publicURL: strings.TrimSuffix(cfg.MinIO.PublicURL, "/"),
		logger:    logger,
	}, nil
}

// AvatarObjectName lays avatars out as avatars/<user>/<yyyy>/<mm>/<uuid><ext>.
func AvatarObjectName(userID, fileName string, now time.Time) string {
	return fmt.Sprintf("avatars/%s/%d/%02d/%s%s",
		userID,
		now.Year(),
		now.Month(),
		uuid.New().String(),
		fileExtension(fileName))
}

func fileExtension(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		return ".jpg"
	}
	return ext
}

func ContentType(fileName string) string {
	contentType := mime.TypeByExtension(fileExtension(fileName))
	if contentType == "" {
		return "application/octet-stream"
	}
	return contentType
}

func (m *MinIOClient) UploadAvatar(ctx context.Context, userID, fileName string, file io.Reader, size int64) (string, string, error) {
	now := time.Now().UTC()
	objectName := AvatarObjectName(userID, fileName, now)

	_, err := m.client.PutObject(ctx, m.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: ContentType(fileName),
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"user-id":           userID,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload avatar to MinIO: %w", err)
	}

	return objectName, m.ObjectURL(objectName), nil
}

func (m *MinIOClient) ObjectURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", m.publicURL, m.bucket, objectName)
}

func (m *MinIOClient) DeleteObject(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete %s from MinIO: %w", objectName, err)
	}
	return nil
}
