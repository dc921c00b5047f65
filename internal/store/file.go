package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tally-dev/tally/internal/model"
)

// FileStore persists the record list as a JSON document at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore over the document at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the document path.
func (s *FileStore) Path() string { return s.path }

// Load reads the document. A missing file or unparsable content yields an
// empty list with no error.
func (s *FileStore) Load() ([]model.Record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	return unmarshalRecords(data), nil
}

// Save serializes records and overwrites the document.
func (s *FileStore) Save(records []model.Record) error {
	data, err := marshalRecords(records)
	if err != nil {
		return fmt.Errorf("marshaling records: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}
