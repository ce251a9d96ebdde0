// Package s3 stores proof-of-delivery signature images in an S3 bucket.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// objectAPI is the slice of the S3 client used by the store.
type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// SignatureStore implements ports.SignatureStore on top of an S3 bucket.
// Uploaded objects are addressed by key under a public base URL; the bucket
// policy, not this code, decides whether the URLs actually resolve.
type SignatureStore struct {
	client  objectAPI
	bucket  string
	baseURL string
	logger  *slog.Logger
}

// NewSignatureStore creates a store for the given bucket and region.
// Credentials come from the default AWS chain. When publicBaseURL is empty,
// the bucket's virtual-hosted S3 URL is used.
func NewSignatureStore(
	ctx context.Context, bucket, region, publicBaseURL string, logger *slog.Logger,
) (*SignatureStore, error) {
	if bucket == "" {
		return nil, fmt.Errorf("signature bucket is required")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	if publicBaseURL == "" {
		publicBaseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, region)
	}

	return &SignatureStore{
		client:  s3.NewFromConfig(cfg),
		bucket:  bucket,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:  logger,
	}, nil
}

// UploadPNG stores the PNG bytes under key and returns the object's URL.
func (s *SignatureStore) UploadPNG(ctx context.Context, key string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload signature to S3: %w", err)
	}

	url := s.baseURL + "/" + key
	s.logger.Info("signature uploaded", "key", key, "bytes", len(data))
	return url, nil
}

// Delete removes a stored signature object by key.
func (s *SignatureStore) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("unable to delete signature from S3: %w", err)
	}

	s.logger.Info("signature deleted", "key", key)
	return nil
}
