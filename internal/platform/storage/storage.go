package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/leadvault_backend/internal/platform/config"
)

// ErrObjectNotFound is returned when the requested key does not exist.
var ErrObjectNotFound = errors.New("object not found")

// Storage reads and writes named blobs such as the seed lead CSV.
type Storage interface {
	// Open returns a reader for key. The caller closes it.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Put stores data under key, replacing any existing object.
	Put(ctx context.Context, key string, data io.Reader) error
}

// StorageConfig holds the settings of both backends.
type StorageConfig struct {
	StorageType  string
	LocalPath    string
	S3Bucket     string
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
}

// ConfigFromApp extracts the storage settings from the application config.
func ConfigFromApp(cfg *config.Config) StorageConfig {
	return StorageConfig{
		StorageType:  cfg.StorageType,
		LocalPath:    cfg.StorageLocalPath,
		S3Bucket:     cfg.S3Bucket,
		S3Region:     cfg.S3Region,
		AWSAccessKey: cfg.AWSAccessKey,
		AWSSecretKey: cfg.AWSSecretKey,
	}
}

// NewStorage creates the backend selected by cfg.StorageType ("local" or "s3").
func NewStorage(ctx context.Context, cfg StorageConfig) (Storage, error) {
	switch strings.ToLower(cfg.StorageType) {
	case "", "local":
		return NewLocalStorage(cfg.LocalPath)
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("AWS_S3_BUCKET is required for s3 storage")
		}
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.StorageType)
	}
}
