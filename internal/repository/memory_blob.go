package repository

import (
	"context"
	"sync"
)

// MemoryBlobStore is a BlobStore backed by a map. Safe for concurrent use.
type MemoryBlobStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{values: make(map[string]string)}
}

func (m *MemoryBlobStore) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryBlobStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}
