package minio

import (
	"context"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO defines the object storage operations used by the export domain.
// Implementations are safe for concurrent use.
type MinIO interface {
	EnsureBucket(ctx context.Context, bucket string) error
	Upload(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) (*ObjectInfo, error)
	Stat(ctx context.Context, bucket, key string) (*ObjectInfo, error)
	PresignedDownloadURL(ctx context.Context, bucket, key string, expiry time.Duration) (*url.URL, error)
	Remove(ctx context.Context, bucket, key string) error
	HealthCheck(ctx context.Context) error
}

// New creates a new MinIO client. Returns the interface.
func New(cfg Config) (MinIO, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, err
	}

	return &implMinIO{
		minioClient: client,
		config:      cfg,
	}, nil
}
