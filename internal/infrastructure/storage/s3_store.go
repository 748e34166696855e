package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"convoyage/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3FileStore implements IFileStore on an S3 bucket.
//
// Supported env vars:
//   - EXPORTS_BUCKET (default: convoyage-exports)
//   - S3_ENDPOINT (optional; e.g. http://minio:9000 for local runs)

type S3FileStore struct {
	client  *s3.Client
	presign *s3.PresignClient
	bucket  string
	region  string
}

var _ interfaces.IFileStore = (*S3FileStore)(nil)

func NewS3FileStore(cfg aws.Config) *S3FileStore {
	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})
	bucket := os.Getenv("EXPORTS_BUCKET")
	if bucket == "" {
		bucket = "convoyage-exports"
	}
	log.Printf("[storage][s3] file store ready bucket=%s", bucket)
	return &S3FileStore{
		client:  client,
		presign: s3.NewPresignClient(client),
		bucket:  bucket,
		region:  cfg.Region,
	}
}

func (s *S3FileStore) Upload(ctx context.Context, key, contentType string, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("[storage][s3] upload failed key=%s err=%v", key, err)
	}
	return err
}

func (s *S3FileStore) PublicURL(key string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func (s *S3FileStore) SignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	out, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		log.Printf("[storage][s3] presign failed key=%s err=%v", key, err)
		return "", err
	}
	return out.URL, nil
}
