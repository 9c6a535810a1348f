package models

// InvoiceItem is one billed line on an invoice.
type InvoiceItem struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Invoice is a billing document. Ids are timestamp-derived.
type Invoice struct {
	Base
	Date     string        `json:"date"     gorm:"size:64"           validate:"required,date"`
	Customer string        `json:"customer" gorm:"size:255;not null" validate:"required,max=255"`
	Items    []InvoiceItem `json:"items"    gorm:"serializer:json"`
	Total    float64       `json:"total"`
}

// Recompute derives Total from the item lines with the canonical rounding.
func (inv *Invoice) Recompute() {
	var total float64
	for _, item := range inv.Items {
		total += LineTotal(item.Quantity, item.UnitPrice)
	}
	inv.Total = RoundCents(total)
}
