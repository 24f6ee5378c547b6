package member

import (
	"encoding/json"
	"fmt"
	"os"
)

// Store exposes roster retrieval for HTTP handlers.
type Store interface {
	Load() ([]Record, error)
}

// FileStore implements Store against a JSON array on disk. The file is
// owned and updated by an external process, so every Load re-reads it;
// nothing is cached between requests.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore reading the given roster file.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads and parses the roster file.
func (s *FileStore) Load() ([]Record, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read members file %s: %w", s.path, err)
	}

	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse members file %s: %w", s.path, err)
	}
	return records, nil
}
