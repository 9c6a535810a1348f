// Package models defines the record types persisted by the collection store.
// Every collection has an explicit struct validated at the store boundary;
// nothing is trusted ad hoc from request bodies.
package models

import "math"

// Base carries the numeric id shared by every collection record. Embed it as
// the first field so the id serializes first in the blob.
type Base struct {
	ID int64 `json:"id" gorm:"primaryKey"`
}

// GetID implements store.Record.
func (b *Base) GetID() int64 { return b.ID }

// SetID implements store.Record.
func (b *Base) SetID(id int64) { b.ID = id }

// RoundCents rounds a monetary amount to 2 decimal places, half away from
// zero. This is the single coercion rule for every derived total; the
// original pages disagreed between toFixed and manual guards, so one rule is
// applied uniformly here.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// LineTotal multiplies a quantity by a unit price with the canonical
// rounding. NaN or infinite prices contribute zero.
func LineTotal(quantity int, unitPrice float64) float64 {
	if math.IsNaN(unitPrice) || math.IsInf(unitPrice, 0) {
		return 0
	}
	return RoundCents(float64(quantity) * unitPrice)
}
