package blob

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/google/uuid"

	"quickclaim/pkg/sentinel"
)

// Config holds MinIO connection settings.
type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinIO implements Store on a MinIO/S3 bucket.
type MinIO struct {
	client    *minio.Client
	bucket    string
	uploadTTL time.Duration
}

// NewMinIO creates the storage client and ensures the bucket exists.
func NewMinIO(cfg Config) (*MinIO, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("blob endpoint missing")
	}
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio new: %w", err)
	}

	s := &MinIO{client: mc, bucket: cfg.Bucket, uploadTTL: 15 * time.Minute}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mc.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		exists, xerr := mc.BucketExists(ctx, s.bucket)
		if xerr != nil || !exists {
			return nil, fmt.Errorf("minio bucket ensure: %w", err)
		}
	}
	return s, nil
}

func (s *MinIO) GenerateUploadURL(ctx context.Context) (UploadTarget, error) {
	ref := uuid.NewString()
	presigned, err := s.client.PresignedPutObject(ctx, s.bucket, ref, s.uploadTTL)
	if err != nil {
		return UploadTarget{}, fmt.Errorf("presign upload: %w", err)
	}
	return UploadTarget{
		URL:       presigned.String(),
		Ref:       ref,
		ExpiresAt: time.Now().Add(s.uploadTTL),
	}, nil
}

func (s *MinIO) Resolve(ctx context.Context, ref string, expires time.Duration) (string, error) {
	if _, err := s.client.StatObject(ctx, s.bucket, ref, minio.StatObjectOptions{}); err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return "", sentinel.ErrNotFound
		}
		return "", fmt.Errorf("stat object: %w", err)
	}

	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, ref, expires, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign download: %w", err)
	}
	return presigned.String(), nil
}
