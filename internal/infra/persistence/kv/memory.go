package kv

import (
	"context"
	"sync"

	"barista/internal/domain/repository"
)

// Memory implements repository.KV with an in-process map. It exists for
// tests and for running the core without a disk backend.
// Uses sync.RWMutex for thread-safe concurrent access.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory creates a new in-memory KV store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get retrieves the value stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	if !ok {
		return "", repository.ErrKeyNotFound
	}

	return value, nil
}

// Set stores value under key, overwriting any existing value.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value

	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)

	return nil
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.data)
}
