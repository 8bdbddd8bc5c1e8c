// Package storage provides the local-disk artifact store.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hanifn/suara/domain/repositories"
)

// LocalStore saves audio artifacts to a directory on disk. Stored names
// are served publicly under a configured URL prefix.
type LocalStore struct {
	dir           string
	publicBaseURL string
}

// Ensure LocalStore implements the Storage interface
var _ repositories.Storage = (*LocalStore)(nil)

// NewLocalStore creates a store rooted at dir. The directory is created
// on demand by Put.
func NewLocalStore(dir, publicBaseURL string) *LocalStore {
	if dir == "" {
		dir = "audio"
	}
	return &LocalStore{
		dir:           dir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Dir returns the directory artifacts are written to.
func (s *LocalStore) Dir() string {
	return s.dir
}

// Put writes data to {dir}/{name}.
func (s *LocalStore) Put(name string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write artifact %s: %w", name, err)
	}
	return nil
}

// URL returns the public URL for a stored name.
func (s *LocalStore) URL(name string) string {
	return s.publicBaseURL + "/" + name
}

// Files lists the names of every stored artifact, in directory order.
// A missing storage directory means no artifacts yet.
func (s *LocalStore) Files() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list storage directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

// LastModified reports when the named artifact was last written.
func (s *LocalStore) LastModified(name string) (time.Time, error) {
	info, err := os.Stat(filepath.Join(s.dir, name))
	if err != nil {
		return time.Time{}, fmt.Errorf("stat artifact %s: %w", name, err)
	}
	return info.ModTime(), nil
}

// Delete removes the named artifact. A name that is already gone is
// treated as deleted, so overlapping sweeps do not error.
func (s *LocalStore) Delete(name string) error {
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete artifact %s: %w", name, err)
	}
	return nil
}
