package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileBackend keeps the session in a YAML file readable only by its owner.
type FileBackend struct {
	path string
}

// NewFileBackend returns a backend for the file at path. The file and its
// directory are created on first save.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the session file location.
func (b *FileBackend) Path() string { return b.path }

// Load reads the session file. A missing file is an empty session.
func (b *FileBackend) Load() (Data, error) {
	raw, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Data{}, nil
	}
	if err != nil {
		return Data{}, fmt.Errorf("session: read %s: %w", b.path, err)
	}

	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("session: parse %s: %w", b.path, err)
	}
	return d, nil
}

// Save replaces the session file atomically. An empty session removes it.
func (b *FileBackend) Save(d Data) error {
	if d == (Data{}) {
		if err := os.Remove(b.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("session: remove %s: %w", b.path, err)
		}
		return nil
	}

	raw, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("session: encode: %w", err)
	}

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("session: create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.yaml")
	if err != nil {
		return fmt.Errorf("session: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("session: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("session: write: %w", err)
	}
	if err := os.Rename(tmp.Name(), b.path); err != nil {
		return fmt.Errorf("session: replace %s: %w", b.path, err)
	}
	return nil
}
