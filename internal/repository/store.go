// Package repository persists named JSON collections as flat files inside a
// single data directory. Every mutation is a whole-collection rewrite.
package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/hooplens/nba-backend/internal/pkg/seclog"
)

var (
	ErrBadName     = errors.New("invalid collection name")
	ErrNotFound    = errors.New("collection not found")
	ErrCorruptData = errors.New("collection data is corrupt")
)

// FileStore loads and saves JSON collections under a fixed directory.
// A per-collection mutex serializes read-modify-write cycles within the
// process; concurrent writers in separate processes still race.
type FileStore struct {
	dir string
	sec *seclog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewFileStore creates a store rooted at dir. The directory is created if
// it does not exist.
func NewFileStore(dir string, sec *seclog.Logger) (*FileStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{
		dir:   abs,
		sec:   sec,
		locks: make(map[string]*sync.Mutex),
	}, nil
}

// Lock acquires the mutation lock for a collection. Callers performing a
// read-modify-write hold it across the whole cycle.
func (s *FileStore) Lock(name string) func() {
	s.mu.Lock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// resolve validates a collection name and returns its absolute path. The
// name check and the resolved-path check are both mandatory: a crafted name
// that slips past one must still fail the other.
func (s *FileStore) resolve(name string) (string, error) {
	if strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		s.sec.Event(seclog.TraversalAttempt, zap.String("filename", name))
		return "", ErrBadName
	}

	path := filepath.Join(s.dir, name)
	abs, err := filepath.Abs(path)
	if err != nil || !strings.HasPrefix(abs, s.dir+string(os.PathSeparator)) {
		s.sec.Event(seclog.UnauthorizedFileAccess, zap.String("filename", name))
		return "", ErrBadName
	}
	return abs, nil
}

// Load reads a named collection into v. Missing files yield ErrNotFound;
// undecodable content yields ErrCorruptData, never an empty collection.
func (s *FileStore) Load(name string, v any) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		s.sec.Event(seclog.FileError, zap.String("filename", name), zap.Error(err))
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	if err := json.Unmarshal(raw, v); err != nil {
		s.sec.Event(seclog.JSONDecodeError, zap.String("filename", name), zap.Error(err))
		return ErrCorruptData
	}
	return nil
}

// Save writes a collection as indented JSON, replacing the whole file.
func (s *FileStore) Save(name string, v any) error {
	path, err := s.resolve(name)
	if err != nil {
		return err
	}

	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		s.sec.Event(seclog.FileError, zap.String("filename", name), zap.Error(err))
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
