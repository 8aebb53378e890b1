// Package cache is a file-backed key to JSON blob store with read-time TTL
// expiry. Expired entries stay on disk until overwritten; there is no
// eviction sweep. Concurrent writers to the same key race with
// last-write-wins semantics, which is acceptable for idempotent snapshots.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type envelope struct {
	StoredAt time.Time       `json:"stored_at"`
	Data     json.RawMessage `json:"data"`
}

// Store persists one JSON file per key under a base directory.
type Store struct {
	baseDir string
}

// New creates the base directory if needed and returns a ready store.
func New(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

func (s *Store) file(key string) string {
	safe := strings.NewReplacer("/", "_", ":", "_").Replace(key)
	return filepath.Join(s.baseDir, safe+".json")
}

// Get returns the stored blob when the entry exists and is no older than ttl.
// A missing or expired entry returns (nil, nil).
func (s *Store) Get(key string, ttl time.Duration) (json.RawMessage, error) {
	raw, err := os.ReadFile(s.file(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read cache entry: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode cache entry: %w", err)
	}
	if time.Now().UTC().Sub(env.StoredAt) > ttl {
		return nil, nil
	}
	return env.Data, nil
}

// Set stores the blob under key, stamping the write time. Existing entries
// are always overwritten.
func (s *Store) Set(key string, data json.RawMessage) error {
	payload, err := json.Marshal(envelope{
		StoredAt: time.Now().UTC(),
		Data:     data,
	})
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := os.WriteFile(s.file(key), payload, 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}
