package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/pkg/migration"
)

func init() {
	migration.Register("20260301000000_create_catalog_tables", &CreateCatalogTables{})
	migration.Register("20260301000001_create_users_table", &CreateUsersTable{})
	migration.Register("20260301000002_create_report_tables", &CreateReportTables{})
}

// -------- 0001: products, orders, invoices --------

type CreateCatalogTables struct{}

func (m *CreateCatalogTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{}, &models.Order{}, &models.Invoice{})
}

func (m *CreateCatalogTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products", "orders", "invoices")
}

// -------- 0002: users --------

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

// -------- 0003: sales entries, inventory alerts, notifications --------

type CreateReportTables struct{}

func (m *CreateReportTables) Up(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.SalesEntry{}, &models.InventoryAlert{},
		&models.Notification{}, &models.Integration{},
	)
}

func (m *CreateReportTables) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("sales_entries", "inventory_alerts", "notifications", "integrations")
}
