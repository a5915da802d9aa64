// Package storage provides whole-document JSON file stores. Every document is
// a single JSON value read and rewritten in full; there is no incremental
// update path.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Indent matches the fixed pretty-printing of the data files.
const Indent = "    "

// Store manages one JSON document on disk. Reads and writes are guarded by a
// per-store RWMutex, so concurrent handlers in this process never observe a
// torn in-process write. Writes go through a temp file and rename, so a crash
// never leaves a half-written document behind.
type Store struct {
	path string
	mu   sync.RWMutex
}

// New creates a store for the document at path. The file itself may not exist
// yet; Read reports that and Write creates it.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Read loads and unmarshals the whole document into v. A missing file is
// reported with an error satisfying errors.Is(err, fs.ErrNotExist).
func (s *Store) Read(v interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("read %s: %w", s.path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", s.path, err)
	}
	return nil
}

// Write marshals v pretty-printed and replaces the document atomically.
func (s *Store) Write(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", Indent)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", s.path, err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp for %s: %w", s.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp for %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp for %s: %w", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}
