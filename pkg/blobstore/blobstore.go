package blobstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ErrNotFound is returned by Load when no blob exists under the given key.
var ErrNotFound = errors.New("blob not found")

// Store persists whole JSON collections keyed by name, one file per key.
// Saves overwrite the entire blob; there is no journaling. The mutex keeps
// the store single-writer within the process.
type Store struct {
	dir       string
	loadDelay time.Duration
	saveDelay time.Duration
	mu        sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithLatency adds an artificial delay to loads and saves, emulating the
// network round-trip of a remote store.
func WithLatency(load, save time.Duration) Option {
	return func(s *Store) {
		s.loadDelay = load
		s.saveDelay = save
	}
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string, opts ...Option) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob store directory %s: %w", dir, err)
	}
	s := &Store{dir: dir}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Load reads the blob stored under key into dest. It returns ErrNotFound
// when the blob does not exist; a blob that exists but cannot be decoded is
// reported as an error so the caller can fall back to seed data.
func (s *Store) Load(key string, dest interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	time.Sleep(s.loadDelay)

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to decode blob %s: %w", key, err)
	}
	return nil
}

// Save overwrites the blob stored under key with v.
func (s *Store) Save(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	time.Sleep(s.saveDelay)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode blob %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
