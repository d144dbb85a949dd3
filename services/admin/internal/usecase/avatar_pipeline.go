package usecase

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"time"

	"backoffice/pkg/logger"
	"backoffice/services/admin/internal/entity"
)

// BlobStorage is the storage contract the avatar pipeline runs against.
// Upload must fail on a key collision rather than overwrite.
type BlobStorage interface {
	Upload(key string, reader io.Reader, contentType string) error
	PublicURL(key string) string
	Delete(key string) error
	KeyFromURL(url string) string
}

// AvatarPipeline transforms and stores profile images. Each upload runs the
// stages strictly in sequence: delete the previous asset (best-effort), crop
// to a square, compress, upload under a collision-resistant key, resolve the
// public URL. A stage failure aborts the run; completed stages are not
// rolled back.
type AvatarPipeline struct {
	storage BlobStorage
	logger  *logger.Logger
}

func NewAvatarPipeline(storage BlobStorage, log *logger.Logger) *AvatarPipeline {
	return &AvatarPipeline{
		storage: storage,
		logger:  log,
	}
}

func (p *AvatarPipeline) Upload(userID string, source io.Reader, existingURL string) (string, error) {
	// 1. Previous asset: best-effort removal so blobs don't accumulate
	if existingURL != "" {
		if err := p.DeleteFromStorage(existingURL); err != nil {
			p.logger.Warn("Failed to delete previous avatar for user %s: %v", userID, err)
		}
	}

	// 2. Crop
	img, _, err := image.Decode(source)
	if err != nil {
		return "", fmt.Errorf("%w: decode: %v", entity.ErrAssetPipeline, err)
	}
	img = cropSquare(img)

	// 3. Compress
	data, err := compressJPEG(img, maxAvatarDimension, maxAvatarBytes)
	if err != nil {
		return "", fmt.Errorf("%w: compress: %v", entity.ErrAssetPipeline, err)
	}

	// 4. Upload under {userID}_{epochMillis}.jpg
	key := fmt.Sprintf("%s_%d.jpg", userID, time.Now().UnixMilli())
	if err := p.storage.Upload(key, bytes.NewReader(data), "image/jpeg"); err != nil {
		return "", fmt.Errorf("%w: upload: %v", entity.ErrAssetPipeline, err)
	}

	// 5. Resolve the public URL; this is the only value callers persist
	return p.storage.PublicURL(key), nil
}

// DeleteFromStorage removes the asset a public URL points at. A URL that
// does not resolve into the bucket is treated as already absent.
func (p *AvatarPipeline) DeleteFromStorage(url string) error {
	key := p.storage.KeyFromURL(url)
	if key == "" {
		return nil
	}
	return p.storage.Delete(key)
}
