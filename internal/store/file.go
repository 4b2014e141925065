package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend persists the state blob as a single JSON file. Writes are
// atomic: the blob is written to a temp file and renamed over the target.
type FileBackend struct {
	path string
}

// NewFileBackend creates a file backend rooted at dir. The blob file is
// named after the fixed storage key.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &FileBackend{path: filepath.Join(dir, StorageKey+".json")}, nil
}

// Load reads the persisted state blob. Returns nil state when the file does
// not exist yet.
func (b *FileBackend) Load(_ context.Context) (*PersistedState, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var state PersistedState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}
	return &state, nil
}

// Save overwrites the persisted state blob atomically.
func (b *FileBackend) Save(_ context.Context, state *PersistedState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// Close implements Backend.
func (b *FileBackend) Close() error {
	return nil
}
