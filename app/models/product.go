package models

// Product is an inventory item. Ids are assigned max+1 within the
// collection; prices are stored and displayed to 2 decimal places.
type Product struct {
	Base
	Name        string  `json:"name"        gorm:"size:255;not null;index" validate:"required,max=255"`
	Description string  `json:"description" gorm:"type:text"               validate:"nullable,max=2000"`
	Quantity    int     `json:"quantity"    gorm:"not null;default:0"      validate:"gte=0"`
	Price       float64 `json:"price"       gorm:"not null;default:0"      validate:"gte=0"`

	// ReorderPoint drives low-stock alerts on the reporting page.
	// Zero means no alerting for this product.
	ReorderPoint int `json:"reorderPoint,omitempty" gorm:"default:0" validate:"nullable,gte=0"`
}

// LowStock reports whether the product has fallen to or below its reorder
// point.
func (p *Product) LowStock() bool {
	return p.ReorderPoint > 0 && p.Quantity <= p.ReorderPoint
}

// Recompute normalizes the stored price to cents.
func (p *Product) Recompute() {
	p.Price = RoundCents(p.Price)
}
