package minio

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
)

// EnsureBucket creates the bucket if it does not exist yet.
func (m *implMinIO) EnsureBucket(ctx context.Context, bucket string) error {
	exists, err := m.minioClient.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("minio: failed to check bucket %s: %w", bucket, err)
	}
	if exists {
		return nil
	}
	if err := m.minioClient.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: m.config.Region}); err != nil {
		return fmt.Errorf("minio: failed to create bucket %s: %w", bucket, err)
	}
	return nil
}

// Upload stores an object and returns its metadata.
func (m *implMinIO) Upload(ctx context.Context, bucket, key string, reader io.Reader, size int64, contentType string) (*ObjectInfo, error) {
	info, err := m.minioClient.PutObject(ctx, bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to upload %s/%s: %w", bucket, key, err)
	}
	return &ObjectInfo{
		Key:         info.Key,
		Size:        info.Size,
		ContentType: contentType,
	}, nil
}

// Stat returns metadata for a stored object.
func (m *implMinIO) Stat(ctx context.Context, bucket, key string) (*ObjectInfo, error) {
	info, err := m.minioClient.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to stat %s/%s: %w", bucket, key, err)
	}
	return &ObjectInfo{
		Key:          info.Key,
		Size:         info.Size,
		ContentType:  info.ContentType,
		LastModified: info.LastModified,
	}, nil
}

// PresignedDownloadURL generates a time-limited download URL.
func (m *implMinIO) PresignedDownloadURL(ctx context.Context, bucket, key string, expiry time.Duration) (*url.URL, error) {
	if expiry <= 0 {
		expiry = DefaultPresignExpiry
	}
	u, err := m.minioClient.PresignedGetObject(ctx, bucket, key, expiry, url.Values{})
	if err != nil {
		return nil, fmt.Errorf("minio: failed to presign %s/%s: %w", bucket, key, err)
	}
	return u, nil
}

// Remove deletes a stored object.
func (m *implMinIO) Remove(ctx context.Context, bucket, key string) error {
	if err := m.minioClient.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("minio: failed to remove %s/%s: %w", bucket, key, err)
	}
	return nil
}

// HealthCheck verifies the storage endpoint is reachable.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	_, err := m.minioClient.ListBuckets(ctx)
	if err != nil {
		return fmt.Errorf("minio: health check failed: %w", err)
	}
	return nil
}
