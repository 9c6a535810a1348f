package models

// Order statuses, in lifecycle order.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

// OrderStatuses lists every valid status.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
}

// OrderItem is one line of an order. UnitPrice is snapshotted from the
// product catalog when the order is created or edited, so the stored total
// stays meaningful when catalog prices change later.
type OrderItem struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// Order is a customer order. Ids are timestamp-derived (Unix milliseconds).
type Order struct {
	Base
	CustomerName string      `json:"customerName" gorm:"size:255;not null" validate:"required,max=255"`
	OrderDate    string      `json:"orderDate"    gorm:"size:64"           validate:"required,date"`
	Status       string      `json:"status"       gorm:"size:50;default:pending" validate:"required,in=pending,processing,shipped,delivered"`
	OrderItems   []OrderItem `json:"orderItems"   gorm:"serializer:json"`
	TotalAmount  float64     `json:"totalAmount"`
}

// Recompute derives TotalAmount from the line items. Idempotent: quantity is
// an integer, price is rounded to cents, non-finite prices contribute zero.
func (o *Order) Recompute() {
	var total float64
	for _, item := range o.OrderItems {
		total += LineTotal(item.Quantity, item.UnitPrice)
	}
	o.TotalAmount = RoundCents(total)
}
