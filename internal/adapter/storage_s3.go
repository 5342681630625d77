package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/MKhiriev/agency-portal/internal/config"
	"github.com/MKhiriev/agency-portal/internal/logger"
	"github.com/MKhiriev/agency-portal/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type s3ObjectStore struct {
	client    *minio.Client
	bucket    string
	publicURL string

	logger *logger.Logger
}

// NewS3ObjectStore constructs an [ObjectStore] backed by an S3-compatible
// bucket. No request is made until the first Put.
func NewS3ObjectStore(cfg config.S3, logger *logger.Logger) (ObjectStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating s3 client: %w", err)
	}

	return &s3ObjectStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: objectBaseURL(cfg),
		logger:    logger,
	}, nil
}

// objectBaseURL is the URL prefix objects of the bucket are reachable at.
func objectBaseURL(cfg config.S3) string {
	if cfg.PublicURL != "" {
		return strings.TrimRight(cfg.PublicURL, "/")
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	u := url.URL{Scheme: scheme, Host: cfg.Endpoint, Path: "/" + cfg.Bucket}
	return u.String()
}

func (s *s3ObjectStore) Put(ctx context.Context, key string, content io.Reader, size int64, mimeType string) (models.StoredObject, error) {
	if err := checkObjectKey(key); err != nil {
		return models.StoredObject{}, err
	}

	if size <= 0 {
		size = -1
	}
	opts := minio.PutObjectOptions{ContentType: mimeType}
	if !models.IsInlineImageType(mimeType) {
		opts.ContentDisposition = "attachment"
	}
	info, err := s.client.PutObject(ctx, s.bucket, key, content, size, opts)
	if err != nil {
		s.logger.Err(err).Str("func", "*s3ObjectStore.Put").Str("bucket", s.bucket).Str("key", key).Msg("error uploading object")
		return models.StoredObject{}, fmt.Errorf("error uploading %q: %w", key, err)
	}

	return models.StoredObject{
		Key:      key,
		URL:      s.publicURL + "/" + url.PathEscape(key),
		Size:     info.Size,
		MimeType: mimeType,
	}, nil
}

func (s *s3ObjectStore) Delete(ctx context.Context, key string) error {
	if err := checkObjectKey(key); err != nil {
		return err
	}

	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("error removing %q: %w", key, err)
	}
	return nil
}
