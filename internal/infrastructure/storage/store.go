// Package storage persists run progress and the leaderboard in a durable
// key-value store. Values are JSON documents; a missing or malformed value
// never stops play and is replaced by defaults.
package storage

import (
	"errors"
	"sync"
)

// Keys under which the game stores its documents
const (
	ProgressKey    = "neoTowerSave"
	LeaderboardKey = "neoTowerBoard"
)

// ErrNotFound is returned by Get when the key has never been written
var ErrNotFound = errors.New("storage: key not found")

// ErrMalformed wraps decode failures of a stored document
var ErrMalformed = errors.New("storage: malformed document")

// KVStore is a durable key-value store
type KVStore interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// MemoryStore is an in-process KVStore used by tests and headless replays
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Get returns a copy of the stored value
func (m *MemoryStore) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put stores a copy of value under key
func (m *MemoryStore) Put(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), value...)
	return nil
}
