package store

import (
	"fmt"
	"time"

	"github.com/shashiranjanraj/bizdesk/pkg/logger"
	"github.com/shashiranjanraj/bizdesk/pkg/metrics"
	"github.com/shashiranjanraj/bizdesk/pkg/validate"
)

// Collection is a typed view over one named collection in a Store.
// T must be a pointer type implementing Record, e.g.
//
//	orders := store.NewCollection[*models.Order](st, "orders",
//	    store.WithIDPolicy(store.Timestamp))
type Collection[T Record] struct {
	store  *Store
	name   string
	policy IDPolicy
	now    func() time.Time
}

// CollectionOption configures a Collection.
type CollectionOption func(*collectionConfig)

type collectionConfig struct {
	policy IDPolicy
	now    func() time.Time
}

// WithIDPolicy selects the id assignment policy (default MaxPlusOne).
func WithIDPolicy(p IDPolicy) CollectionOption {
	return func(c *collectionConfig) { c.policy = p }
}

// WithClock replaces the wall clock used by the Timestamp policy. Tests use
// this to make timestamp ids deterministic.
func WithClock(now func() time.Time) CollectionOption {
	return func(c *collectionConfig) { c.now = now }
}

// NewCollection binds a typed collection to st under the given name.
func NewCollection[T Record](st *Store, name string, opts ...CollectionOption) *Collection[T] {
	cfg := collectionConfig{policy: MaxPlusOne, now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Collection[T]{store: st, name: name, policy: cfg.policy, now: cfg.now}
}

// Name returns the collection key.
func (c *Collection[T]) Name() string { return c.name }

// ─── Reads ────────────────────────────────────────────────────────────────────

// List returns the full collection. An absent key yields the registered seed
// set, persisted before returning, or an empty slice. Never fails for a
// missing key.
func (c *Collection[T]) List() ([]T, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	metrics.StoreOps.WithLabelValues("list", c.name).Inc()
	return c.load()
}

// Find returns the record with the given id, or ErrNotFound.
func (c *Collection[T]) Find(id int64) (T, error) {
	var zero T

	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	metrics.StoreOps.WithLabelValues("find", c.name).Inc()

	recs, err := c.load()
	if err != nil {
		return zero, err
	}
	for _, r := range recs {
		if r.GetID() == id {
			return r, nil
		}
	}
	return zero, ErrNotFound
}

// Count returns the number of records without decoding callers' copies twice.
func (c *Collection[T]) Count() (int, error) {
	recs, err := c.List()
	if err != nil {
		return 0, err
	}
	return len(recs), nil
}

// ─── Mutations ────────────────────────────────────────────────────────────────

// Create validates rec, assigns a unique id, recomputes derived fields,
// appends and persists the collection, and returns the stored record.
func (c *Collection[T]) Create(rec T) (T, error) {
	var zero T

	if errs := validate.Struct(rec); validate.HasErrors(errs) {
		return zero, &ValidationError{Fields: errs}
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	metrics.StoreOps.WithLabelValues("create", c.name).Inc()

	recs, err := c.load()
	if err != nil {
		return zero, err
	}

	rec.SetID(nextID(c.policy, recs, c.now))
	recompute(rec)

	recs = append(recs, rec)
	if err := c.save(recs); err != nil {
		return zero, err
	}
	return rec, nil
}

// Update replaces the record matching id with rec (id is preserved),
// recomputes derived fields and persists. Returns ErrNotFound when no record
// matches; the collection is left unchanged.
func (c *Collection[T]) Update(id int64, rec T) (T, error) {
	var zero T

	rec.SetID(id)
	if errs := validate.Struct(rec); validate.HasErrors(errs) {
		return zero, &ValidationError{Fields: errs}
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	metrics.StoreOps.WithLabelValues("update", c.name).Inc()

	recs, err := c.load()
	if err != nil {
		return zero, err
	}

	for i, r := range recs {
		if r.GetID() != id {
			continue
		}
		recompute(rec)
		recs[i] = rec
		if err := c.save(recs); err != nil {
			return zero, err
		}
		return rec, nil
	}
	return zero, ErrNotFound
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op, not an error.
func (c *Collection[T]) Delete(id int64) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	metrics.StoreOps.WithLabelValues("delete", c.name).Inc()

	recs, err := c.load()
	if err != nil {
		return err
	}

	kept := recs[:0]
	for _, r := range recs {
		if r.GetID() != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(recs) {
		return nil
	}
	return c.save(kept)
}

// ─── Blob handling ────────────────────────────────────────────────────────────
// Callers must hold store.mu.

func (c *Collection[T]) load() ([]T, error) {
	raw, ok, err := c.store.backend.Read(c.name)
	if err != nil {
		return nil, fmt.Errorf("store: read collection %q: %w", c.name, err)
	}

	if !ok {
		return c.seed()
	}

	var recs []T
	if err := c.store.codec.Unmarshal(raw, &recs); err != nil {
		// A corrupt blob must never take down the UI that reads it.
		logger.Warn("store: malformed collection blob, treating as empty",
			"collection", c.name, "error", err)
		metrics.StoreMalformed.WithLabelValues(c.name).Inc()
		return nil, nil
	}
	return recs, nil
}

// seed writes the registered placeholder set on first access so subsequent
// reads are stable. No registered seed means an empty collection.
func (c *Collection[T]) seed() ([]T, error) {
	fn, ok := c.store.seedFor(c.name)
	if !ok {
		return nil, nil
	}

	recs, ok := fn().([]T)
	if !ok {
		logger.Error("store: seed type mismatch, skipping", "collection", c.name)
		return nil, nil
	}

	if err := c.save(recs); err != nil {
		return nil, fmt.Errorf("store: persist seed for %q: %w", c.name, err)
	}
	metrics.StoreSeeds.WithLabelValues(c.name).Inc()
	logger.Info("store: seeded collection", "collection", c.name, "records", len(recs))
	return recs, nil
}

func (c *Collection[T]) save(recs []T) error {
	if recs == nil {
		recs = []T{}
	}
	raw, err := c.store.codec.Marshal(recs)
	if err != nil {
		return fmt.Errorf("store: encode collection %q: %w", c.name, err)
	}
	if err := c.store.backend.Write(c.name, raw); err != nil {
		return fmt.Errorf("store: write collection %q: %w", c.name, err)
	}
	return nil
}

func recompute(rec any) {
	if r, ok := rec.(Recomputer); ok {
		r.Recompute()
	}
}
