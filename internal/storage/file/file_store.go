// Package file implements storage.Store as one file per key inside a directory.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goodnatureofminers/nonceaudit/internal/storage"
)

// NameFunc maps a key to a file name inside the store directory.
type NameFunc func(key string) string

// Store keeps each value in its own file. Writes replace the file atomically.
type Store struct {
	dir  string
	name NameFunc
}

// NewStore creates the directory if needed and returns a Store rooted at it.
// A nil name uses the key itself as the file name.
func NewStore(dir string, name NameFunc) (*Store, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir %s: %w", dir, err)
	}
	if name == nil {
		name = func(key string) string { return key }
	}
	return &Store{dir: dir, name: name}, nil
}

// CacheName names response cache files.
func CacheName(key string) string {
	return "cache_" + key + ".json"
}

// Get reads the file for key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// Put writes value to a temp file in the same directory, syncs it and renames it over the
// previous file so readers never observe a partial write.
func (s *Store) Put(ctx context.Context, key string, value []byte) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}

// Close is a no-op for the file store.
func (s *Store) Close() error {
	return nil
}

func (s *Store) path(key string) (string, error) {
	name := s.name(key)
	if key == "" || name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.dir, name), nil
}
