package persistence

import (
	"context"
	"sync"
)

// MemoryBackend holds collections in process memory
type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		docs: make(map[string][]byte),
	}
}

// Get returns a copy of the stored payload
func (b *MemoryBackend) Get(_ context.Context, name string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	payload, ok := b.docs[name]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), payload...), true, nil
}

// Put stores a copy of payload
func (b *MemoryBackend) Put(_ context.Context, name string, payload []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.docs[name] = append([]byte(nil), payload...)
	return nil
}

// Close is a no-op
func (b *MemoryBackend) Close(context.Context) error {
	return nil
}
