// Package filestore implements ports.DatasetStore on the local filesystem.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store writes datasets as files under a base directory.
type Store struct {
	dir string
}

// New creates a file store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Create opens name under the base directory for writing, truncating any
// existing content.
func (s *Store) Create(name string) (io.WriteCloser, error) {
	return os.Create(filepath.Join(s.dir, name))
}

// Dir returns the base directory datasets are written to.
func (s *Store) Dir() string {
	return s.dir
}
