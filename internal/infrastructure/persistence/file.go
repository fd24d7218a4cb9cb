package persistence

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// collectionFileMode keeps collection files readable by other local tools
const collectionFileMode os.FileMode = 0o644

// FileBackend keeps each collection in <dir>/<name>.json
type FileBackend struct {
	dir string
}

// NewFileBackend creates the data directory if needed
func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}
	return &FileBackend{dir: dir}, nil
}

func (b *FileBackend) path(name string) string {
	return filepath.Join(b.dir, name+".json")
}

// Get reads the collection file; a missing file means the collection is absent
func (b *FileBackend) Get(_ context.Context, name string) ([]byte, bool, error) {
	payload, err := os.ReadFile(b.path(name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return payload, true, nil
}

// Put writes to a temp file and renames it over the collection file
func (b *FileBackend) Put(_ context.Context, name string, payload []byte) error {
	tmp, err := os.CreateTemp(b.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if err := tmp.Chmod(collectionFileMode); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, b.path(name)); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}

// Close is a no-op
func (b *FileBackend) Close(context.Context) error {
	return nil
}
