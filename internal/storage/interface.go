package storage

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_storage.go -package=mocks lda-portal/internal/storage Storage

// Storage is the object store holding document and media files.
type Storage interface {
	// GetPresignedURL generates a pre-signed URL for downloading an object.
	GetPresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	// GetPresignedPutURL generates a pre-signed URL for uploading an object.
	GetPresignedPutURL(ctx context.Context, key, contentType string, expiry time.Duration) (string, error)
	// DeleteObject removes an object. Deleting a missing key is not an error.
	DeleteObject(ctx context.Context, key string) error
}

var _ Storage = (*S3Client)(nil)
