package service

import (
	"context"
	"time"

	apperrors "lda-portal/internal/errors"
	"lda-portal/internal/metrics"
	"lda-portal/internal/queue"
	"lda-portal/internal/storage"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// normalizePage clamps paging input to sane values.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// parseOptionalID parses an optional hex id; nil and "" mean absent.
func parseOptionalID(s *string) (*primitive.ObjectID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(*s)
	if err != nil {
		return nil, apperrors.ErrInvalidID
	}
	return &id, nil
}

// Files hands out pre-signed URLs and queues removed objects for deletion.
type Files struct {
	storage       storage.Storage
	queue         queue.Queue
	presignExpiry time.Duration
}

// NewFiles creates a Files helper shared by the document and media services.
func NewFiles(s storage.Storage, q queue.Queue, presignExpiry time.Duration) *Files {
	return &Files{
		storage:       s,
		queue:         q,
		presignExpiry: presignExpiry,
	}
}

// downloadURL returns a pre-signed GET URL, or "" if signing fails.
func (f *Files) downloadURL(ctx context.Context, key string) string {
	if key == "" {
		return ""
	}
	url, err := f.storage.GetPresignedURL(ctx, key, f.presignExpiry)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("failed to presign download url")
		return ""
	}
	return url
}

func (f *Files) uploadURL(ctx context.Context, key, contentType string) (string, error) {
	return f.storage.GetPresignedPutURL(ctx, key, contentType, f.presignExpiry)
}

// enqueueDeletion queues objects whose rows are already gone. A full queue
// leaves the object in storage and is logged.
func (f *Files) enqueueDeletion(ctx context.Context, source string, keys ...string) {
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := f.queue.Enqueue(queue.FileDeletionJob{Key: key, Source: source}); err != nil {
			metrics.ObserveFileDeletion(false)
			zerolog.Ctx(ctx).Error().Err(err).
				Str("key", key).
				Str("source", source).
				Msg("failed to queue file deletion")
		}
	}
}
