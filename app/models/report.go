package models

// SalesEntry is one day of sales on the reporting page. The nightly rollup
// rebuilds these from delivered orders; the seed supplies the initial chart.
type SalesEntry struct {
	Base
	Date   string  `json:"date"   validate:"required,date"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

// InventoryAlert is a low-stock warning row. The scheduled scan rewrites the
// collection from products at or below their reorder point.
type InventoryAlert struct {
	Base
	Name         string `json:"name"         validate:"required"`
	Quantity     int    `json:"quantity"     validate:"gte=0"`
	ReorderPoint int    `json:"reorderPoint" validate:"gte=0"`
}
