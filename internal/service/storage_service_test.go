package service

import (
	"context"
	"testing"

	cfg "github.com/maheshrc27/brandlab-api/configs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPublicObjectURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example/videos/abc.mp4", PublicObjectURL("https://cdn.example/videos/", "abc.mp4"))
	assert.Equal(t, "https://cdn.example/a%20b.png", PublicObjectURL("https://cdn.example", "a b.png"))
}

func TestNewS3StoragePublicBase(t *testing.T) {
	s, err := NewS3Storage(context.Background(), cfg.Storage{
		Endpoint:   "http://localhost:9000/",
		Region:     "auto",
		AccessKey:  "minio",
		SecretKey:  "minio123",
		BucketName: "brandlab",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/brandlab/k.mp4", s.PublicURL("k.mp4"))

	s, err = NewS3Storage(context.Background(), cfg.Storage{
		Region:        "auto",
		BucketName:    "brandlab",
		PublicBaseURL: "https://media.agency.example/",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "https://media.agency.example/k.mp4", s.PublicURL("k.mp4"))
}
