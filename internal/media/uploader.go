package media

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"pixgram/internal/dbmongo"
)

// Uploader runs the full pipeline: validate, resize, store image and
// thumbnail under generated unique names. The rest of the application only
// keeps the returned file id strings.
type Uploader struct {
	processor *Processor
	storage   *dbmongo.ImageStorage
}

func NewUploader(processor *Processor, storage *dbmongo.ImageStorage) *Uploader {
	return &Uploader{processor: processor, storage: storage}
}

type UploadResult struct {
	ImageID     string `json:"image_id"`
	ThumbnailID string `json:"thumbnail_id"`
}

func (u *Uploader) UploadImage(ctx context.Context, uploaderID string, filename string, content io.Reader) (*UploadResult, error) {
	if err := u.processor.ValidateFilename(filename); err != nil {
		return nil, err
	}

	img, thumb, err := u.processor.Process(content)
	if err != nil {
		return nil, err
	}

	name := uuid.NewString()

	stored, err := u.storage.Upload(ctx, name+".jpg", "image/jpeg", uploaderID, bytes.NewReader(img))
	if err != nil {
		return nil, fmt.Errorf("storing image: %w", err)
	}

	storedThumb, err := u.storage.Upload(ctx, name+"_thumb.jpg", "image/jpeg", uploaderID, bytes.NewReader(thumb))
	if err != nil {
		// best effort cleanup, the post was never created
		_ = u.storage.Delete(ctx, stored.ID)
		return nil, fmt.Errorf("storing thumbnail: %w", err)
	}

	return &UploadResult{ImageID: stored.ID, ThumbnailID: storedThumb.ID}, nil
}
