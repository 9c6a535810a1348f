package services_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/app/repositories"
	"github.com/shashiranjanraj/bizdesk/app/services"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
)

// fixture wires the full service graph over one in-memory store.
type fixture struct {
	products  *services.InventoryService
	orders    *services.OrderService
	users     *services.UserService
	reports   *services.ReportService
	notifs    *services.NotificationService
	prodRepo  repositories.Repository[*models.Product]
	orderRepo repositories.Repository[*models.Order]
	salesRepo repositories.Repository[*models.SalesEntry]
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := store.New(store.NewMemoryBackend())

	products := repositories.NewLocal[*models.Product](st, "inventory")
	orders := repositories.NewLocal[*models.Order](st, "orders")
	invoices := repositories.NewLocal[*models.Invoice](st, "invoices")
	users := repositories.NewLocal[*models.User](st, "users")
	sales := repositories.NewLocal[*models.SalesEntry](st, "salesData")
	alerts := repositories.NewLocal[*models.InventoryAlert](st, "inventoryAlerts")
	notifs := repositories.NewLocal[*models.Notification](st, "notifications")

	return &fixture{
		products:  services.NewInventoryService(products),
		orders:    services.NewOrderService(orders, products),
		users:     services.NewUserService(repositories.NewUserRepository(users)),
		reports:   services.NewReportService(products, orders, invoices, users, sales, alerts),
		notifs:    services.NewNotificationService(notifs),
		prodRepo:  products,
		orderRepo: orders,
		salesRepo: sales,
	}
}

func (f *fixture) addProduct(t *testing.T, name string, qty int, price float64) *models.Product {
	t.Helper()
	p, err := f.products.Create(&models.Product{Name: name, Quantity: qty, Price: price})
	require.NoError(t, err)
	return p
}

func TestInventoryListFiltersByName(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "Blue Widget", 10, 5)
	f.addProduct(t, "Red Widget", 10, 5)
	f.addProduct(t, "Gadget", 10, 5)

	all, err := f.products.List("")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	widgets, err := f.products.List("widget")
	require.NoError(t, err)
	assert.Len(t, widgets, 2)
}

func TestOrderSnapshotsCatalogPrices(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "Widget", 10, 19.99)

	order, err := f.orders.Create(&models.Order{
		CustomerName: "John Doe",
		OrderDate:    "2026-03-01",
		Status:       models.OrderStatusPending,
		OrderItems: []models.OrderItem{
			// Client-supplied price is ignored; the catalog wins.
			{ProductID: p.ID, Quantity: 3, UnitPrice: 1.00},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 19.99, order.OrderItems[0].UnitPrice)
	assert.Equal(t, 59.97, order.TotalAmount)

	// A later catalog price change must not touch the stored order.
	p.Price = 100
	_, err = f.products.Update(p.ID, p)
	require.NoError(t, err)

	stored, err := f.orders.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, 59.97, stored.TotalAmount)
}

func TestOrderRejectsUnknownProduct(t *testing.T) {
	f := newFixture(t)

	_, err := f.orders.Create(&models.Order{
		CustomerName: "John Doe",
		OrderDate:    "2026-03-01",
		Status:       models.OrderStatusPending,
		OrderItems:   []models.OrderItem{{ProductID: 42, Quantity: 1}},
	})

	var verr *store.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "orderItems")
}

func TestOrderRejectsNonPositiveQuantity(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "Widget", 10, 5)

	_, err := f.orders.Create(&models.Order{
		CustomerName: "John Doe",
		OrderDate:    "2026-03-01",
		Status:       models.OrderStatusPending,
		OrderItems:   []models.OrderItem{{ProductID: p.ID, Quantity: 0}},
	})

	var verr *store.ValidationError
	require.True(t, errors.As(err, &verr))
}

func TestUserCreateHashesPassword(t *testing.T) {
	f := newFixture(t)

	u, err := f.users.Create(&models.User{Name: "Ada", Email: "ada@example.com"}, "hunter2secret")
	require.NoError(t, err)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "hunter2secret", u.PasswordHash)
	assert.Equal(t, models.RoleUser, u.Role)
}

func TestUserUpdateKeepsHashAndRoleWhenEmpty(t *testing.T) {
	f := newFixture(t)

	u, err := f.users.Create(&models.User{Name: "Ada", Email: "ada@example.com", Role: models.RoleAdmin}, "hunter2secret")
	require.NoError(t, err)
	originalHash := u.PasswordHash

	updated, err := f.users.Update(u.ID, &models.User{Name: "Ada L", Email: "ada@example.com"}, "")
	require.NoError(t, err)
	assert.Equal(t, originalHash, updated.PasswordHash)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}

func TestDashboardCountsAndRevenue(t *testing.T) {
	f := newFixture(t)
	f.addProduct(t, "Widget", 10, 5)
	p := f.addProduct(t, "Gadget", 10, 10)

	_, err := f.orders.Create(&models.Order{
		CustomerName: "John Doe", OrderDate: "2026-03-01", Status: models.OrderStatusPending,
		OrderItems: []models.OrderItem{{ProductID: p.ID, Quantity: 2}},
	})
	require.NoError(t, err)

	summary, err := f.reports.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalProducts)
	assert.Equal(t, 1, summary.TotalOrders)
	assert.Equal(t, 1, summary.PendingOrders)
}

func TestOrderStatsCoversEveryStatus(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "Widget", 10, 10)

	for i := 0; i < 2; i++ {
		_, err := f.orders.Create(&models.Order{
			CustomerName: fmt.Sprintf("Customer %d", i),
			OrderDate:    "2026-03-01",
			Status:       models.OrderStatusShipped,
			OrderItems:   []models.OrderItem{{ProductID: p.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	stats, err := f.reports.OrderStats()
	require.NoError(t, err)
	require.Len(t, stats, len(models.OrderStatuses))

	byStatus := map[string]services.OrderStats{}
	for _, s := range stats {
		byStatus[s.Status] = s
	}
	assert.Equal(t, 2, byStatus[models.OrderStatusShipped].Count)
	assert.Equal(t, 20.0, byStatus[models.OrderStatusShipped].Total)
	assert.Equal(t, 0, byStatus[models.OrderStatusPending].Count)
}

func TestRollupSalesRebuildsSeries(t *testing.T) {
	f := newFixture(t)
	p := f.addProduct(t, "Widget", 10, 10)

	for _, date := range []string{"2026-03-02", "2026-03-01", "2026-03-02"} {
		_, err := f.orders.Create(&models.Order{
			CustomerName: "John Doe", OrderDate: date, Status: models.OrderStatusDelivered,
			OrderItems: []models.OrderItem{{ProductID: p.ID, Quantity: 1}},
		})
		require.NoError(t, err)
	}

	require.NoError(t, f.reports.RollupSales())

	series, err := f.reports.Sales()
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, "2026-03-01", series[0].Date)
	assert.Equal(t, 10.0, series[0].Amount)
	assert.Equal(t, "2026-03-02", series[1].Date)
	assert.Equal(t, 20.0, series[1].Amount)
}

func TestRollupSalesKeepsSeriesWithoutOrders(t *testing.T) {
	f := newFixture(t)

	seed, err := f.salesRepo.Create(&models.SalesEntry{Date: "2026-01-01", Amount: 100})
	require.NoError(t, err)

	require.NoError(t, f.reports.RollupSales())

	series, err := f.reports.Sales()
	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, seed.ID, series[0].ID)
}

func TestSyncAlertsTracksLowStock(t *testing.T) {
	f := newFixture(t)

	low, err := f.products.Create(&models.Product{Name: "Widget", Quantity: 2, Price: 5, ReorderPoint: 10})
	require.NoError(t, err)
	_, err = f.products.Create(&models.Product{Name: "Gadget", Quantity: 50, Price: 5, ReorderPoint: 10})
	require.NoError(t, err)

	require.NoError(t, f.reports.SyncAlerts())

	alerts, err := f.reports.Alerts()
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, low.Name, alerts[0].Name)
}

func TestNotificationFeedTrimsAtCap(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 55; i++ {
		_, err := f.notifs.Add(models.NotificationInfo, fmt.Sprintf("event %d", i))
		require.NoError(t, err)
	}

	all, err := f.notifs.List()
	require.NoError(t, err)
	assert.Len(t, all, 50)
	assert.Equal(t, "event 5", all[0].Message)
	assert.Equal(t, "event 54", all[len(all)-1].Message)
}
