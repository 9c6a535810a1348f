package services

import (
	"sort"
	"time"

	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/app/repositories"
	"github.com/shashiranjanraj/bizdesk/pkg/cache"
	"github.com/shashiranjanraj/bizdesk/pkg/collection"
)

// DashboardSummary is the aggregate card row on the dashboard page.
type DashboardSummary struct {
	TotalProducts int     `json:"totalProducts"`
	TotalOrders   int     `json:"totalOrders"`
	TotalInvoices int     `json:"totalInvoices"`
	TotalUsers    int     `json:"totalUsers"`
	PendingOrders int     `json:"pendingOrders"`
	Revenue       float64 `json:"revenue"`
}

// OrderStats is the per-status breakdown used by reports and GraphQL.
type OrderStats struct {
	Status string  `json:"status"`
	Count  int     `json:"count"`
	Total  float64 `json:"total"`
}

// ReportService aggregates across collections for the dashboard and the
// reports page. Summaries are cached briefly when Redis is available.
type ReportService struct {
	products repositories.Repository[*models.Product]
	orders   repositories.Repository[*models.Order]
	invoices repositories.Repository[*models.Invoice]
	users    repositories.Repository[*models.User]
	sales    repositories.Repository[*models.SalesEntry]
	alerts   repositories.Repository[*models.InventoryAlert]
}

func NewReportService(
	products repositories.Repository[*models.Product],
	orders repositories.Repository[*models.Order],
	invoices repositories.Repository[*models.Invoice],
	users repositories.Repository[*models.User],
	sales repositories.Repository[*models.SalesEntry],
	alerts repositories.Repository[*models.InventoryAlert],
) *ReportService {
	return &ReportService{
		products: products,
		orders:   orders,
		invoices: invoices,
		users:    users,
		sales:    sales,
		alerts:   alerts,
	}
}

const dashboardCacheKey = "bizdesk:reports:dashboard"

// Dashboard computes the summary card row. Cached for 30 seconds.
func (s *ReportService) Dashboard() (*DashboardSummary, error) {
	var cached DashboardSummary
	if cache.Get(dashboardCacheKey, &cached) {
		return &cached, nil
	}

	summary := &DashboardSummary{}

	var err error
	if summary.TotalProducts, err = s.products.Count(); err != nil {
		return nil, err
	}
	if summary.TotalUsers, err = s.users.Count(); err != nil {
		return nil, err
	}

	orders, err := s.orders.All()
	if err != nil {
		return nil, err
	}
	summary.TotalOrders = len(orders)
	summary.PendingOrders = len(collection.Filter(orders, func(o *models.Order) bool {
		return o.Status == models.OrderStatusPending
	}))

	invoices, err := s.invoices.All()
	if err != nil {
		return nil, err
	}
	summary.TotalInvoices = len(invoices)
	summary.Revenue = models.RoundCents(collection.Sum(invoices, func(inv *models.Invoice) float64 {
		return inv.Total
	}))

	cache.Set(dashboardCacheKey, summary, 30*time.Second) //nolint:errcheck
	return summary, nil
}

// Sales returns the salesData series for the reports chart.
func (s *ReportService) Sales() ([]*models.SalesEntry, error) {
	return s.sales.All()
}

// Alerts returns the inventoryAlerts collection.
func (s *ReportService) Alerts() ([]*models.InventoryAlert, error) {
	return s.alerts.All()
}

// OrderStats breaks orders down per status.
func (s *ReportService) OrderStats() ([]OrderStats, error) {
	orders, err := s.orders.All()
	if err != nil {
		return nil, err
	}

	byStatus := map[string]*OrderStats{}
	for _, status := range models.OrderStatuses {
		byStatus[status] = &OrderStats{Status: status}
	}
	for _, o := range orders {
		st, ok := byStatus[o.Status]
		if !ok {
			st = &OrderStats{Status: o.Status}
			byStatus[o.Status] = st
		}
		st.Count++
		st.Total = models.RoundCents(st.Total + o.TotalAmount)
	}

	out := make([]OrderStats, 0, len(byStatus))
	for _, status := range models.OrderStatuses {
		out = append(out, *byStatus[status])
	}
	return out, nil
}

// RollupSales rebuilds salesData from orders, one entry per order date,
// keeping dates sorted. Run nightly by the scheduler and on demand from the
// queue worker.
func (s *ReportService) RollupSales() error {
	orders, err := s.orders.All()
	if err != nil {
		return err
	}

	byDate := collection.GroupBy(orders, func(o *models.Order) string { return o.OrderDate })
	if len(byDate) == 0 {
		return nil // keep the seeded series until real orders exist
	}

	existing, err := s.sales.All()
	if err != nil {
		return err
	}
	for _, e := range existing {
		if err := s.sales.Delete(e.ID); err != nil {
			return err
		}
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	for _, d := range dates {
		total := collection.Sum(byDate[d], func(o *models.Order) float64 { return o.TotalAmount })
		entry := &models.SalesEntry{Date: d, Amount: models.RoundCents(total)}
		if _, err := s.sales.Create(entry); err != nil {
			return err
		}
	}
	cache.Del(dashboardCacheKey) //nolint:errcheck
	return nil
}

// SyncAlerts rebuilds inventoryAlerts from the current catalog.
func (s *ReportService) SyncAlerts() error {
	products, err := s.products.All()
	if err != nil {
		return err
	}

	existing, err := s.alerts.All()
	if err != nil {
		return err
	}
	for _, a := range existing {
		if err := s.alerts.Delete(a.ID); err != nil {
			return err
		}
	}

	for _, p := range products {
		if !p.LowStock() {
			continue
		}
		alert := &models.InventoryAlert{
			Name:         p.Name,
			Quantity:     p.Quantity,
			ReorderPoint: p.ReorderPoint,
		}
		if _, err := s.alerts.Create(alert); err != nil {
			return err
		}
	}
	return nil
}
