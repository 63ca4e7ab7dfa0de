package storage

import (
	"context"
	"io"
)

// ImageStore persists uploaded image bytes under a caller-chosen name and
// returns a URL the image can later be fetched from. Implementations must not
// leave partial state behind on failure beyond the object itself.
type ImageStore interface {
	Save(ctx context.Context, name, contentType string, r io.Reader, size int64) (string, error)
}
