package media

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds the maximum upload size")
	ErrUnsupportedType = errors.New("unsupported image type")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// Processor turns an uploaded image into a fixed-size square JPEG plus a
// smaller thumbnail variant.
type Processor struct {
	ImageSize     int
	ThumbnailSize int
	MaxBytes      int64
}

func NewProcessor(imageSize, thumbnailSize int, maxBytes int64) *Processor {
	return &Processor{
		ImageSize:     imageSize,
		ThumbnailSize: thumbnailSize,
		MaxBytes:      maxBytes,
	}
}

func (p *Processor) ValidateFilename(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return ErrUnsupportedType
	}
	return nil
}

// Process decodes, center-crops to a square at ImageSize, and JPEG-encodes
// both the main image and the thumbnail. Decoding failures are reported as
// unsupported type so the caller can return a validation failure.
func (p *Processor) Process(r io.Reader) (image []byte, thumbnail []byte, err error) {
	limited := io.LimitReader(r, p.MaxBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, nil, fmt.Errorf("reading upload: %w", err)
	}
	if int64(len(data)) > p.MaxBytes {
		return nil, nil, ErrFileTooLarge
	}

	src, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, nil, ErrUnsupportedType
	}

	main := imaging.Fill(src, p.ImageSize, p.ImageSize, imaging.Center, imaging.Lanczos)
	thumb := imaging.Fill(src, p.ThumbnailSize, p.ThumbnailSize, imaging.Center, imaging.Lanczos)

	var mainBuf, thumbBuf bytes.Buffer
	if err := imaging.Encode(&mainBuf, main, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, nil, fmt.Errorf("encoding image: %w", err)
	}
	if err := imaging.Encode(&thumbBuf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return nil, nil, fmt.Errorf("encoding thumbnail: %w", err)
	}

	return mainBuf.Bytes(), thumbBuf.Bytes(), nil
}
