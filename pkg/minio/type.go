package minio

import (
	"time"

	"github.com/minio/minio-go/v7"
)

// Config holds MinIO connection configuration.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// implMinIO implements MinIO.
type implMinIO struct {
	minioClient *minio.Client
	config      Config
}

// DefaultPresignExpiry is how long presigned download URLs stay valid.
const DefaultPresignExpiry = 15 * time.Minute
