// Package seeders supplies the deterministic placeholder records written the
// first time a collection is observed absent, so the dashboard is never
// empty on first run.
//
// Seeds register themselves from init() in this package:
//
//	func init() {
//	    seeders.Register("inventory", func() any { return Products() })
//	}
//
// Attach wires the registry into a store for lazy first-access seeding;
// RunAll force-writes every seed (CLI: bizdesk seed).
package seeders

import (
	"fmt"
	"sync"

	"github.com/shashiranjanraj/bizdesk/pkg/store"
)

// SeedFunc returns the placeholder record slice for one collection. It must
// be pure: no randomness, no clock reads.
type SeedFunc func() any

type seedEntry struct {
	name string
	fn   SeedFunc
}

var (
	mu      sync.Mutex
	entries []seedEntry
)

// Register adds a seed to the registry. Call from init() in seed files.
func Register(name string, fn SeedFunc) {
	mu.Lock()
	defer mu.Unlock()
	entries = append(entries, seedEntry{name: name, fn: fn})
}

// Attach registers every seed with the store so first access to an absent
// collection yields the placeholder set.
func Attach(st *store.Store) {
	mu.Lock()
	current := make([]seedEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	for _, e := range current {
		st.RegisterSeed(e.name, e.fn)
	}
}

// RunAll force-writes every registered seed, replacing whatever the backend
// currently holds. It stops on the first error.
func RunAll(st *store.Store) error {
	mu.Lock()
	current := make([]seedEntry, len(entries))
	copy(current, entries)
	mu.Unlock()

	if len(current) == 0 {
		fmt.Println("  (no seeds registered)")
		return nil
	}

	for _, e := range current {
		fmt.Printf("  seeding collection: %s ... ", e.name)
		if err := st.PutValue(e.name, e.fn()); err != nil {
			fmt.Println("FAILED")
			return fmt.Errorf("seed %q: %w", e.name, err)
		}
		fmt.Println("done")
	}
	return nil
}
