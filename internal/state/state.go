// Package state persists per-container backoff bookkeeping across process
// restarts. It is deliberately small: one file, one map, load-then-commit.
package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	yaml "go.yaml.in/yaml/v3"

	"github.com/rcarmo/guerite/pkg/types"
)

// Store is a single-writer, file-backed map of container name to
// types.BackoffRecord, the state machine's only bookkeeping that survives a
// restart. The zero value is not valid; construct one with New.
type Store struct {
	path string
}

// New returns a Store persisting to path. path's directory must exist;
// commit's temp file is created alongside path so the final rename stays
// within one filesystem.
func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted records. A missing file returns an empty map
// with no error — an unwritten state file is the expected condition on
// first run. A corrupt or unreadable file is treated as empty and logged
// at warn level rather than failing startup; the next Commit overwrites it.
func (s *Store) Load() map[string]types.BackoffRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			logrus.WithError(err).WithField("path", s.path).
				Warn("Failed to read state file, starting with empty state")
		}

		return map[string]types.BackoffRecord{}
	}

	records := map[string]types.BackoffRecord{}
	if err := yaml.Unmarshal(data, &records); err != nil {
		logrus.WithError(err).WithField("path", s.path).
			Warn("State file is corrupt, starting with empty state")

		return map[string]types.BackoffRecord{}
	}

	return records
}

// Commit writes records to the state file atomically: encode to a temp file
// in the same directory, fsync it, then rename over the target. A reader
// never observes a partially written file.
func (s *Store) Commit(records map[string]types.BackoffRecord) error {
	data, err := yaml.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp state file: %w", err)
	}

	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return fmt.Errorf("failed to write temp state file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return fmt.Errorf("failed to sync temp state file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)

		return fmt.Errorf("failed to close temp state file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)

		return fmt.Errorf("failed to commit state file: %w", err)
	}

	return nil
}
