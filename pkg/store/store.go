// Package store implements BizDesk's local collection store: every entity
// collection (inventory, orders, invoices, users, ...) is persisted as one
// serialized blob under a stable string key, and exposed to the application
// through typed list/find/create/update/delete operations.
//
// Quick start:
//
//	st := store.New(store.NewMemoryBackend())
//	st.RegisterSeed("inventory", func() any { return seedProducts() })
//
//	products := store.NewCollection[*models.Product](st, "inventory")
//	all, _ := products.List()                  // seeds on first access
//	created, _ := products.Create(&models.Product{Name: "Widget"})
//
// Every mutation is a full read-modify-write of the collection blob, guarded
// by a store-level mutex. A missing key is never an error: it yields the
// registered seed set (persisted once) or an empty collection. A blob that
// fails to decode is treated as empty so a bad write can never take the
// application down.
package store

import (
	"fmt"
	"sync"

	"github.com/shashiranjanraj/bizdesk/pkg/logger"
)

// Store owns the backend connection and the seed registry. Construct one per
// process (in internal/server) and hand it to every collection that needs it.
type Store struct {
	mu      sync.Mutex
	backend Backend
	codec   Codec
	seeds   map[string]func() any
}

// Option configures a Store.
type Option func(*Store)

// WithCodec replaces the default JSON codec.
func WithCodec(c Codec) Option {
	return func(s *Store) { s.codec = c }
}

// New creates a Store on top of the given backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		codec:   JSONCodec{},
		seeds:   make(map[string]func() any),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterSeed registers the deterministic placeholder set for a collection.
// The function must be pure: same name, same records, every call. It runs at
// most once, the first time the collection key is observed absent.
func (s *Store) RegisterSeed(name string, fn func() any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seeds[name] = fn
}

// Seeded reports whether a seed is registered for the collection.
func (s *Store) Seeded(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seeds[name]
	return ok
}

// Keys lists every collection key currently persisted in the backend.
func (s *Store) Keys() ([]string, error) {
	return s.backend.Keys()
}

// ─── Ad-hoc values ────────────────────────────────────────────────────────────
// The original pages also stash single values (apiKey, popupState) next to
// the record collections. These helpers cover that shape without forcing a
// one-record collection.

// GetValue reads the value stored under key into dest.
// Returns false when the key is absent or the blob does not decode.
func (s *Store) GetValue(key string, dest any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok, err := s.backend.Read(key)
	if err != nil {
		return false, fmt.Errorf("store: read %q: %w", key, err)
	}
	if !ok {
		return false, nil
	}
	if err := s.codec.Unmarshal(raw, dest); err != nil {
		logger.Warn("store: malformed value, ignoring", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

// PutValue serializes v and stores it under key.
func (s *Store) PutValue(key string, v any) error {
	raw, err := s.codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Write(key, raw); err != nil {
		return fmt.Errorf("store: write %q: %w", key, err)
	}
	return nil
}

// DeleteValue removes key from the backend. Removing an absent key is a no-op.
func (s *Store) DeleteValue(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Remove(key)
}

// seedFor returns the registered seed function for name, if any.
// Caller must hold s.mu.
func (s *Store) seedFor(name string) (func() any, bool) {
	fn, ok := s.seeds[name]
	return fn, ok
}
