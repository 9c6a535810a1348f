package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/bizdesk/app/models"
)

func TestInvoiceTotal(t *testing.T) {
	inv := models.Invoice{
		Customer: "John Doe",
		Date:     "2024-01-15",
		Items: []models.InvoiceItem{
			{Name: "Sample Item 1", Quantity: 2, UnitPrice: 5.00},
			{Name: "Sample Item 2", Quantity: 1, UnitPrice: 3.50},
		},
	}

	inv.Recompute()
	assert.Equal(t, 13.50, inv.Total)

	// Idempotent: a second pass yields the same value.
	inv.Recompute()
	assert.Equal(t, 13.50, inv.Total)
}

func TestInvoiceTotalEmptyItems(t *testing.T) {
	inv := models.Invoice{Customer: "Jane", Date: "2024-01-15"}
	inv.Recompute()
	assert.Zero(t, inv.Total)
}

func TestOrderTotalFromSnapshottedPrices(t *testing.T) {
	o := models.Order{
		CustomerName: "Bob Johnson",
		OrderDate:    "2024-02-01",
		Status:       models.OrderStatusPending,
		OrderItems: []models.OrderItem{
			{ProductID: 1, Quantity: 3, UnitPrice: 10.99},
			{ProductID: 2, Quantity: 1, UnitPrice: 15.99},
		},
		TotalAmount: 999, // stale on purpose; Recompute must win
	}

	o.Recompute()
	assert.Equal(t, 48.96, o.TotalAmount)

	o.Recompute()
	assert.Equal(t, 48.96, o.TotalAmount)
}

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 19.99, models.RoundCents(19.99))
	assert.Equal(t, 2.38, models.RoundCents(2.375))
	assert.Equal(t, -2.38, models.RoundCents(-2.375))
	assert.Equal(t, 0.3, models.RoundCents(0.1+0.2))
}

func TestLineTotalCoercion(t *testing.T) {
	assert.Equal(t, 0.0, models.LineTotal(0, 9.99))
	assert.Equal(t, 29.97, models.LineTotal(3, 9.99))
}

func TestProductLowStock(t *testing.T) {
	p := models.Product{Quantity: 5, ReorderPoint: 10}
	assert.True(t, p.LowStock())

	p.Quantity = 11
	assert.False(t, p.LowStock())

	// No reorder point configured means no alerting.
	p = models.Product{Quantity: 0}
	assert.False(t, p.LowStock())
}

func TestUserIsAdmin(t *testing.T) {
	assert.True(t, (&models.User{Role: models.RoleAdmin}).IsAdmin())
	assert.False(t, (&models.User{Role: models.RoleUser}).IsAdmin())
}
