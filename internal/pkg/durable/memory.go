package durable

import (
	"context"
	"sync"
)

// MemoryBackend keeps values in process memory. It counts reads and
// writes so callers can assert on storage traffic.
type MemoryBackend struct {
	mu     sync.RWMutex
	values map[string]string
	reads  int
	writes int
}

// NewMemoryBackend returns a backend preloaded with initial.
func NewMemoryBackend(initial map[string]string) *MemoryBackend {
	values := make(map[string]string, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &MemoryBackend{values: values}
}

func (m *MemoryBackend) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reads++
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *MemoryBackend) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	m.values[key] = value
	return nil
}

// Reads returns how many Get calls were served.
func (m *MemoryBackend) Reads() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.reads
}

// Writes returns how many Set calls were served.
func (m *MemoryBackend) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}

// Raw returns the stored value and whether it exists, without counting a read.
func (m *MemoryBackend) Raw(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok
}
