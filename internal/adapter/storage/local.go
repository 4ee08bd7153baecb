// Package storage persists uploaded product images behind the ImageStore
// port. The local-disk implementation serves development and single-node
// deployments; an object store can replace it without touching callers.
package storage

import (
	"context"
	"os"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/daveshb/taskload/internal/core/ports"
)

// URLPrefix is the route prefix the HTTP layer serves stored images from.
const URLPrefix = "/uploads"

type LocalImageStore struct {
	dir string
}

var _ ports.ImageStore = (*LocalImageStore)(nil)

func NewLocalImageStore(dir string) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalImageStore{dir: dir}, nil
}

// Save writes the image under a fresh uuid-derived name, keeping only the
// original extension. The caller-supplied name never reaches the filesystem.
func (s *LocalImageStore) Save(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fileName := uuid.NewString() + filepath.Ext(name)
	if err := os.WriteFile(filepath.Join(s.dir, fileName), data, 0o644); err != nil {
		return "", err
	}

	return path.Join(URLPrefix, fileName), nil
}
