package store

import "sync"

// Backend persists one blob per collection key. Implementations must be safe
// for concurrent use; the Store serializes collection read-modify-writes on
// top of this, so a Backend only needs atomicity per call.
type Backend interface {
	// Read returns the blob stored under key. The second result is false
	// when the key is absent, which is a normal condition, not an error.
	Read(key string) ([]byte, bool, error)

	// Write stores the blob under key, replacing any previous value.
	Write(key string, data []byte) error

	// Remove deletes key. Removing an absent key returns nil.
	Remove(key string) error

	// Keys lists every key currently stored.
	Keys() ([]string, error)
}

// ─── Memory backend ───────────────────────────────────────────────────────────

// MemoryBackend keeps blobs in a process-local map. It is the default for
// tests and for ephemeral runs where durability does not matter.
type MemoryBackend struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{blobs: make(map[string][]byte)}
}

func (b *MemoryBackend) Read(key string) ([]byte, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	raw, ok := b.blobs[key]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, true, nil
}

func (b *MemoryBackend) Write(key string, data []byte) error {
	cp := make([]byte, len(data))
	copy(cp, data)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.blobs[key] = cp
	return nil
}

func (b *MemoryBackend) Remove(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.blobs, key)
	return nil
}

func (b *MemoryBackend) Keys() ([]string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	keys := make([]string, 0, len(b.blobs))
	for k := range b.blobs {
		keys = append(keys, k)
	}
	return keys, nil
}
