package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	cfg "github.com/maheshrc27/brandlab-api/configs"
	"go.uber.org/zap"
)

type ObjectStorage interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

// S3Storage talks to any S3-compatible bucket (R2, MinIO, S3 itself).
type S3Storage struct {
	client     *s3.Client
	bucket     string
	publicBase string
	logger     *zap.Logger
}

func NewS3Storage(ctx context.Context, sc cfg.Storage, logger *zap.Logger) (*S3Storage, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(sc.AccessKey, sc.SecretKey, "")),
		config.WithRegion(sc.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("loading storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if sc.Endpoint != "" {
			o.BaseEndpoint = aws.String(sc.Endpoint)
			o.UsePathStyle = true
		}
	})

	publicBase := sc.PublicBaseURL
	if publicBase == "" {
		publicBase = strings.TrimRight(sc.Endpoint, "/") + "/" + sc.BucketName
	}

	return &S3Storage{
		client:     client,
		bucket:     sc.BucketName,
		publicBase: strings.TrimRight(publicBase, "/"),
		logger:     logger,
	}, nil
}

func (s *S3Storage) Put(ctx context.Context, key string, body []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		s.logger.Error("Object upload failed", zap.String("key", key), zap.Error(err))
		return err
	}
	s.logger.Debug("Object uploaded", zap.String("key", key), zap.Int("bytes", len(body)))
	return nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		s.logger.Error("Object delete failed", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (s *S3Storage) PublicURL(key string) string {
	return PublicObjectURL(s.publicBase, key)
}

func PublicObjectURL(base, key string) string {
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(key)
}
