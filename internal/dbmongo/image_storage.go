package dbmongo

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ImageStorage stores processed images and thumbnails in GridFS. The rest of
// the application only ever references the returned file id string.
type ImageStorage struct {
	gridFS *gridfs.Bucket
}

func NewImageStorage(mongoClient *MongoClient) *ImageStorage {
	return &ImageStorage{
		gridFS: mongoClient.GridFS,
	}
}

type StoredImage struct {
	ID         string    `json:"id"`          // GridFS ObjectID hex
	Filename   string    `json:"filename"`    // generated unique name
	Size       int64     `json:"size"`        // bytes
	MimeType   string    `json:"mime_type"`   // always image/*
	UploadedBy string    `json:"uploaded_by"` // user id that uploaded it
	UploadedAt time.Time `json:"uploaded_at"`
}

func (s *ImageStorage) Upload(ctx context.Context, filename, mimeType, uploaderID string, content io.Reader) (*StoredImage, error) {
	metadata := bson.M{
		"mime_type":   mimeType,
		"uploaded_by": uploaderID,
		"uploaded_at": time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := s.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return nil, fmt.Errorf("upload failed: %w", err)
	}
	defer stream.Close()

	size, err := io.Copy(stream, content)
	if err != nil {
		return nil, fmt.Errorf("file copy failed: %w", err)
	}

	return &StoredImage{
		ID:         stream.FileID.(primitive.ObjectID).Hex(),
		Filename:   filename,
		Size:       size,
		MimeType:   mimeType,
		UploadedBy: uploaderID,
		UploadedAt: time.Now(),
	}, nil
}

func (s *ImageStorage) Download(ctx context.Context, fileID string) (io.Reader, *StoredImage, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid file ID: %w", err)
	}

	stream, err := s.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	img := &StoredImage{
		ID:         fileID,
		Filename:   fileInfo.Name,
		Size:       fileInfo.Length,
		MimeType:   getStringFromMap(metadata, "mime_type"),
		UploadedBy: getStringFromMap(metadata, "uploaded_by"),
		UploadedAt: fileInfo.UploadDate,
	}

	return stream, img, nil
}

func (s *ImageStorage) Delete(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return fmt.Errorf("invalid file ID: %w", err)
	}
	return s.gridFS.Delete(objectID)
}

func getStringFromMap(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}
