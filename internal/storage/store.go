package storage

import (
	"BookShelf/config"
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNotExist is returned when a named blob is absent from the store.
var ErrNotExist = errors.New("blob not found")

// ObjectInfo describes a stored blob.
type ObjectInfo struct {
	Name string
	Size int64
}

// Store abstracts blob storage operations. Names must already be
// sanitized; implementations reject anything that resolves outside
// their root.
type Store interface {
	Put(ctx context.Context, name string, reader io.Reader, size int64) error
	Get(ctx context.Context, name string) (io.ReadCloser, ObjectInfo, error)
	Exists(ctx context.Context, name string) (bool, error)
	Remove(ctx context.Context, name string) error
}

// New builds the configured store backend.
func New(cfg *config.Config) (Store, error) {
	switch cfg.StorageBackend {
	case "minio":
		return NewMinioStore(cfg)
	case "disk":
		return NewDiskStore(cfg.UploadDir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
