package interfaces

import (
	"context"
	"time"
)

// IFileStore abstracts the object store used for exported documents and
// wizard attachments (S3 in production).

type IFileStore interface {
	Upload(ctx context.Context, key, contentType string, data []byte) error
	PublicURL(key string) string
	SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
}
