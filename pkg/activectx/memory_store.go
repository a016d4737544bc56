package activectx

import (
	"context"
	"sync"
)

// MemoryStore implements Store with a mutex-guarded in-process value. It is
// the default medium and the fallback semantics other media degrade to.
type MemoryStore struct {
	mu   sync.RWMutex
	code string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the stored code, or "" when none was saved.
func (m *MemoryStore) Load(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.code, nil
}

// Save replaces the stored code.
func (m *MemoryStore) Save(ctx context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.code = code
	return nil
}

// Clear removes the stored code.
func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.code = ""
	return nil
}
