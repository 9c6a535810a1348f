package seeders

import "github.com/shashiranjanraj/bizdesk/app/models"

func init() {
	Register("inventory", func() any { return Products() })
	Register("invoices", func() any { return Invoices() })
	Register("salesData", func() any { return SalesData() })
	Register("inventoryAlerts", func() any { return InventoryAlerts() })
	Register("integrations", func() any { return Integrations() })
	// orders, users and notifications start empty on purpose: an empty
	// collection is a valid state, not an error.
}

func base(id int64) models.Base { return models.Base{ID: id} }

// Products is the initial inventory shown on a fresh install.
func Products() []*models.Product {
	return []*models.Product{
		{Base: base(1), Name: "Product A", Quantity: 100, Price: 19.99, Description: "Description for Product A", ReorderPoint: 10},
		{Base: base(2), Name: "Product B", Quantity: 50, Price: 29.99, Description: "Description for Product B", ReorderPoint: 15},
		{Base: base(3), Name: "Product C", Quantity: 75, Price: 14.99, Description: "Description for Product C", ReorderPoint: 20},
	}
}

// Invoices is the initial billing history.
func Invoices() []*models.Invoice {
	return []*models.Invoice{
		{Base: base(1), Date: "2023-05-01", Customer: "John Doe", Total: 100.00,
			Items: []models.InvoiceItem{{Name: "Sample Item 1", Quantity: 1, UnitPrice: 100.00}}},
		{Base: base(2), Date: "2023-05-02", Customer: "Jane Smith", Total: 150.50,
			Items: []models.InvoiceItem{{Name: "Sample Item 2", Quantity: 1, UnitPrice: 150.50}}},
		{Base: base(3), Date: "2023-05-03", Customer: "Bob Johnson", Total: 200.75,
			Items: []models.InvoiceItem{{Name: "Sample Item 3", Quantity: 1, UnitPrice: 200.75}}},
	}
}

// SalesData is the initial reporting chart.
func SalesData() []*models.SalesEntry {
	return []*models.SalesEntry{
		{Base: base(1), Date: "2023-05-01", Amount: 1000},
		{Base: base(2), Date: "2023-05-02", Amount: 1200},
		{Base: base(3), Date: "2023-05-03", Amount: 800},
		{Base: base(4), Date: "2023-05-04", Amount: 1500},
		{Base: base(5), Date: "2023-05-05", Amount: 2000},
	}
}

// InventoryAlerts is the initial low-stock panel.
func InventoryAlerts() []*models.InventoryAlert {
	return []*models.InventoryAlert{
		{Base: base(1), Name: "Product A", Quantity: 5, ReorderPoint: 10},
		{Base: base(2), Name: "Product B", Quantity: 2, ReorderPoint: 15},
		{Base: base(3), Name: "Product C", Quantity: 8, ReorderPoint: 20},
	}
}

// Integrations is the fixed list on the settings page.
func Integrations() []*models.Integration {
	return []*models.Integration{
		{Base: base(1), Name: "Shopify", Description: "E-commerce platform integration"},
		{Base: base(2), Name: "Stripe", Description: "Payment processing integration"},
		{Base: base(3), Name: "Mailchimp", Description: "Email marketing integration"},
	}
}
