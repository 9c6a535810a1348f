package graph_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bizdesk/app/graph"
	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/app/repositories"
	"github.com/shashiranjanraj/bizdesk/app/services"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
)

func newHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	st := store.New(store.NewMemoryBackend())

	products := repositories.NewLocal[*models.Product](st, "inventory")
	sales := repositories.NewLocal[*models.SalesEntry](st, "salesData")
	reports := services.NewReportService(
		products,
		repositories.NewLocal[*models.Order](st, "orders"),
		repositories.NewLocal[*models.Invoice](st, "invoices"),
		repositories.NewLocal[*models.User](st, "users"),
		sales,
		repositories.NewLocal[*models.InventoryAlert](st, "inventoryAlerts"),
	)

	_, err := products.Create(&models.Product{Name: "Widget", Quantity: 3, Price: 5})
	require.NoError(t, err)
	_, err = sales.Create(&models.SalesEntry{Date: "2026-03-01", Amount: 150})
	require.NoError(t, err)

	schema, err := graph.NewSchema(reports)
	require.NoError(t, err)
	return graph.Handler(schema)
}

func query(t *testing.T, h http.HandlerFunc, q string) map[string]any {
	t.Helper()

	body, err := json.Marshal(map[string]any{"query": q})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/graphql", strings.NewReader(string(body)))
	rec := httptest.NewRecorder()
	h(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Data   map[string]any `json:"data"`
		Errors []any          `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Empty(t, out.Errors)
	return out.Data
}

func TestSalesReportQuery(t *testing.T) {
	h := newHandler(t)

	data := query(t, h, `{ salesReport { date amount } }`)
	entries, ok := data["salesReport"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 1)

	first := entries[0].(map[string]any)
	assert.Equal(t, "2026-03-01", first["date"])
	assert.Equal(t, 150.0, first["amount"])
}

func TestDashboardQuery(t *testing.T) {
	h := newHandler(t)

	data := query(t, h, `{ dashboard { totalProducts totalOrders } }`)
	dash, ok := data["dashboard"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1.0, dash["totalProducts"])
	assert.Equal(t, 0.0, dash["totalOrders"])
}

func TestMalformedQueryBody(t *testing.T) {
	h := newHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/graphql", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
