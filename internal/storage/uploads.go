// Package storage persists the original bytes of analyzed uploads. Saved
// files have no bearing on analysis correctness; they exist for later audit
// and re-processing.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// UploadStore writes uploaded files into a single directory under generated
// unique names. Safe for concurrent use: names never collide and each Save is
// an independent write.
type UploadStore struct {
	dir string
}

// NewUploadStore creates a store rooted at dir. The directory is created on
// first Save, not here.
func NewUploadStore(dir string) *UploadStore {
	return &UploadStore{dir: dir}
}

// Save persists data under a fresh UUID name, keeping the extension of the
// client-provided filename. Returns the generated filename.
func (s *UploadStore) Save(data []byte, originalName string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	name := uuid.New().String() + filepath.Ext(originalName)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}
	return name, nil
}

// Dir returns the directory the store writes into.
func (s *UploadStore) Dir() string {
	return s.dir
}
