package store

import "time"

// Record is implemented by every model persisted in a collection.
// Implement on the pointer type so SetID mutates the caller's value.
type Record interface {
	GetID() int64
	SetID(id int64)
}

// Recomputer is implemented by records carrying derived fields (order and
// invoice totals). Recompute runs on every create and update before the
// collection is persisted, and must be idempotent.
type Recomputer interface {
	Recompute()
}

// IDPolicy decides how a new record gets its id. Both policies guarantee no
// collision under sequential calls on one store.
type IDPolicy int

const (
	// MaxPlusOne assigns one more than the largest id in the collection
	// (1 for an empty collection). Used by inventory.
	MaxPlusOne IDPolicy = iota

	// Timestamp assigns the current Unix time in milliseconds, bumped past
	// the current maximum when the clock has not advanced. Used by orders,
	// invoices and users.
	Timestamp
)

func nextID[T Record](policy IDPolicy, recs []T, now func() time.Time) int64 {
	var max int64
	for _, r := range recs {
		if id := r.GetID(); id > max {
			max = id
		}
	}

	switch policy {
	case Timestamp:
		id := now().UnixMilli()
		if id <= max {
			id = max + 1
		}
		return id
	default:
		return max + 1
	}
}
