package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"villavet/internal/errors"
	"villavet/internal/storage"
)

// UploadService accepts image uploads and turns them into durable URLs.
type UploadService interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (url string, err error)
}

type uploadService struct {
	store storage.ImageStore
}

// NewUploadService creates a new upload service backed by the given store.
func NewUploadService(store storage.ImageStore) UploadService {
	return &uploadService{store: store}
}

// Upload validates the declared MIME type, generates a collision-free object
// name and persists the bytes. Validation happens before any storage write.
func (s *uploadService) Upload(ctx context.Context, filename, contentType string, r io.Reader, size int64) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", errors.ErrNotAnImage
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	url, err := s.store.Save(ctx, name, contentType, r, size)
	if err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return url, nil
}
