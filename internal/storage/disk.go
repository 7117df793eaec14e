package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore keeps blobs as plain files in a fixed upload directory.
// Name collisions overwrite silently.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// path resolves a blob name inside the upload directory. Names with
// separators or traversal sequences are refused outright.
func (s *DiskStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.Contains(name, "..") {
		return "", errors.New("unsafe blob name")
	}
	return filepath.Join(s.dir, name), nil
}

// Put writes blob bytes, overwriting any existing file of that name.
func (s *DiskStore) Put(ctx context.Context, name string, reader io.Reader, size int64) error {
	target, err := s.path(name)
	if err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	written, err := io.Copy(f, reader)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(target)
		return err
	}
	if size >= 0 && written != size {
		_ = os.Remove(target)
		return fmt.Errorf("short write: %d of %d bytes", written, size)
	}
	return nil
}

// Get opens a blob for reading.
func (s *DiskStore) Get(ctx context.Context, name string) (io.ReadCloser, ObjectInfo, error) {
	target, err := s.path(name)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	f, err := os.Open(target)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ObjectInfo{}, ErrNotExist
		}
		return nil, ObjectInfo{}, err
	}
	stat, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, ObjectInfo{}, err
	}
	return f, ObjectInfo{Name: name, Size: stat.Size()}, nil
}

// Exists reports whether a blob is present.
func (s *DiskStore) Exists(ctx context.Context, name string) (bool, error) {
	target, err := s.path(name)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(target); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Remove deletes a blob; removing an absent blob is not an error.
func (s *DiskStore) Remove(ctx context.Context, name string) error {
	target, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
