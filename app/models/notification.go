package models

// Notification types shown in the header bell.
const (
	NotificationInfo     = "info"
	NotificationOrder    = "order"
	NotificationLowStock = "low_stock"
)

// Notification is one entry in the notifications collection. Created by
// event listeners on store mutations and by the low-stock scan; cleared in
// bulk from the header.
type Notification struct {
	Base
	Type      string `json:"type"      validate:"required"`
	Message   string `json:"message"   validate:"required"`
	CreatedAt string `json:"createdAt" validate:"nullable,date"`
}

// Integration is a third-party integration listed on the settings page.
// The set is fixed; only the API key next to it is mutable.
type Integration struct {
	Base
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"nullable"`
}
