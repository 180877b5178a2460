package settings

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danieljhkim/pixresize/internal/fsops"
)

// Store persists Settings.
type Store interface {
	// Load returns the saved settings, or Default when none were saved.
	Load() (*Settings, error)

	// Save validates and writes the settings atomically.
	Save(s *Settings) error

	// Reset removes the saved settings so Load returns Default again.
	Reset() error
}

// FileStore implements Store as a JSON file.
type FileStore struct {
	fs   fsops.FS
	path string
}

// NewFileStore creates a FileStore writing to path.
func NewFileStore(fs fsops.FS, path string) *FileStore {
	return &FileStore{fs: fs, path: path}
}

// Path returns the settings file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the settings file. Fields missing from the file keep their
// defaults.
func (s *FileStore) Load() (*Settings, error) {
	data, err := s.fs.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	st := Default()
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if st.Version > SchemaVersion {
		return nil, fmt.Errorf("settings version %d is newer than supported version %d", st.Version, SchemaVersion)
	}
	st.Version = SchemaVersion
	if err := st.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", s.path, err)
	}
	return st, nil
}

// Save writes the settings atomically.
func (s *FileStore) Save(st *Settings) error {
	if err := st.Validate(); err != nil {
		return err
	}
	st.Version = SchemaVersion

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := s.fs.AtomicWrite(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}

// Reset deletes the settings file.
func (s *FileStore) Reset() error {
	if err := s.fs.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete settings: %w", err)
	}
	return nil
}
