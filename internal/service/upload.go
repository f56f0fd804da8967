package service

import (
	"context"
	"fmt"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/maheshrc27/brandlab-api/internal/apperrors"
	"github.com/maheshrc27/brandlab-api/internal/metrics"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	videoTypes = map[string]struct{}{"mp4": {}, "mov": {}, "webm": {}}
	imageTypes = map[string]struct{}{"png": {}, "jpg": {}, "webp": {}, "gif": {}}
)

type storedObject struct {
	Key         string
	URL         string
	ContentType string
}

// storeUpload sniffs the upload, rejects types outside allowed and writes it
// under a fresh random key.
func storeUpload(ctx context.Context, storage ObjectStorage, kind string, upload *transfer.Upload, allowed map[string]struct{}) (*storedObject, error) {
	if upload == nil || len(upload.Data) == 0 {
		metrics.Uploads.WithLabelValues(kind, "rejected").Inc()
		return nil, apperrors.Validation("file", "file is required")
	}

	ft, err := filetype.Match(upload.Data)
	if err != nil || ft == types.Unknown {
		metrics.Uploads.WithLabelValues(kind, "rejected").Inc()
		return nil, apperrors.Validation("file", "unsupported file type")
	}
	if _, ok := allowed[ft.Extension]; !ok {
		metrics.Uploads.WithLabelValues(kind, "rejected").Inc()
		return nil, apperrors.Validation("file", fmt.Sprintf("file type %s is not allowed", ft.Extension))
	}

	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generating object key: %w", err)
	}
	key := id + "." + ft.Extension

	if err := storage.Put(ctx, key, upload.Data, ft.MIME.Value); err != nil {
		metrics.Uploads.WithLabelValues(kind, "failed").Inc()
		return nil, apperrors.Storage("upload failed, please try again", err)
	}
	metrics.Uploads.WithLabelValues(kind, "stored").Inc()

	return &storedObject{Key: key, URL: storage.PublicURL(key), ContentType: ft.MIME.Value}, nil
}
