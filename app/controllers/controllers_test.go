package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bizdesk/app/controllers"
	"github.com/shashiranjanraj/bizdesk/app/models"
	"github.com/shashiranjanraj/bizdesk/app/repositories"
	"github.com/shashiranjanraj/bizdesk/app/routes"
	"github.com/shashiranjanraj/bizdesk/app/services"
	"github.com/shashiranjanraj/bizdesk/pkg/auth"
	"github.com/shashiranjanraj/bizdesk/pkg/router"
	"github.com/shashiranjanraj/bizdesk/pkg/store"
)

// newAPI wires the whole HTTP surface over an in-memory store, the way the
// server boots it, minus websocket and GraphQL.
func newAPI(t *testing.T) http.Handler {
	t.Helper()
	st := store.New(store.NewMemoryBackend())

	products := repositories.NewLocal[*models.Product](st, "inventory")
	orders := repositories.NewLocal[*models.Order](st, "orders")
	invoices := repositories.NewLocal[*models.Invoice](st, "invoices")
	users := repositories.NewLocal[*models.User](st, "users")
	sales := repositories.NewLocal[*models.SalesEntry](st, "salesData")
	alerts := repositories.NewLocal[*models.InventoryAlert](st, "inventoryAlerts")
	notifs := repositories.NewLocal[*models.Notification](st, "notifications")
	integrations := repositories.NewLocal[*models.Integration](st, "integrations")

	userSvc := services.NewUserService(repositories.NewUserRepository(users))

	r := router.New()
	routes.RegisterAPI(r, &routes.API{
		Auth:          controllers.NewAuthController(services.NewAuthService(userSvc)),
		Inventory:     controllers.NewInventoryController(services.NewInventoryService(products)),
		Orders:        controllers.NewOrderController(services.NewOrderService(orders, products)),
		Invoices:      controllers.NewInvoiceController(services.NewInvoiceService(invoices)),
		Users:         controllers.NewUserController(userSvc),
		Reports:       controllers.NewReportController(services.NewReportService(products, orders, invoices, users, sales, alerts)),
		Notifications: controllers.NewNotificationController(services.NewNotificationService(notifs)),
		Integrations:  controllers.NewIntegrationController(services.NewIntegrationService(integrations, st)),
	})
	return r.Handler()
}

type envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func do(t *testing.T, h http.Handler, method, path, token string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func adminToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(1, models.RoleAdmin)
	require.NoError(t, err)
	return token
}

func TestInventoryCRUDOverHTTP(t *testing.T) {
	h := newAPI(t)

	rec, env := do(t, h, http.MethodPost, "/api/inventory", "", map[string]any{
		"name": "Widget", "quantity": 5, "price": 9.99,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.Product
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, int64(1), created.ID)

	rec, env = do(t, h, http.MethodGet, "/api/inventory", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Product
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 1)

	rec, env = do(t, h, http.MethodPut, fmt.Sprintf("/api/inventory/%d", created.ID), "", map[string]any{
		"name": "Widget v2", "quantity": 8, "price": 10,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated models.Product
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Widget v2", updated.Name)

	rec, _ = do(t, h, http.MethodDelete, fmt.Sprintf("/api/inventory/%d", created.ID), "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodGet, fmt.Sprintf("/api/inventory/%d", created.ID), "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInventoryValidationEnvelope(t *testing.T) {
	h := newAPI(t)

	rec, env := do(t, h, http.MethodPost, "/api/inventory", "", map[string]any{"name": ""})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "name")
}

func TestOrderUnknownProductIsValidationError(t *testing.T) {
	h := newAPI(t)

	rec, env := do(t, h, http.MethodPost, "/api/orders", "", map[string]any{
		"customerName": "John Doe",
		"orderDate":    "2026-03-01",
		"status":       "pending",
		"orderItems":   []map[string]any{{"productId": 42, "quantity": 1}},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "orderItems")
}

func TestRegisterLoginProfile(t *testing.T) {
	h := newAPI(t)

	rec, env := do(t, h, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Ada", "email": "ada@example.com", "password": "hunter2secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var pair struct {
		Token string          `json:"token"`
		User  json.RawMessage `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &pair))
	require.NotEmpty(t, pair.Token)
	assert.NotContains(t, string(pair.User), "passwordHash")

	rec, _ = do(t, h, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "ada@example.com", "password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, env = do(t, h, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email": "ada@example.com", "password": "hunter2secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &pair))

	rec, env = do(t, h, http.MethodGet, "/api/auth/profile", pair.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "ada@example.com")
}

func TestUsersRouteRequiresAdmin(t *testing.T) {
	h := newAPI(t)

	rec, _ := do(t, h, http.MethodGet, "/api/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	userTok, err := auth.GenerateToken(7, models.RoleUser)
	require.NoError(t, err)
	rec, _ = do(t, h, http.MethodGet, "/api/users", userTok, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/api/users", adminToken(t), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserResourceStripsPasswordHash(t *testing.T) {
	h := newAPI(t)
	token := adminToken(t)

	rec, _ := do(t, h, http.MethodPost, "/api/users", token, map[string]any{
		"name": "Ada", "email": "ada@example.com", "role": "Admin", "password": "hunter2secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, env := do(t, h, http.MethodGet, "/api/users", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, string(env.Data), "passwordHash")
}

func TestAPIKeyRoundTrip(t *testing.T) {
	h := newAPI(t)
	token := adminToken(t)

	rec, env := do(t, h, http.MethodGet, "/api/settings/api-key", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodPut, "/api/settings/api-key", token, map[string]any{
		"apiKey": "sk-live-123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/api/settings/api-key", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "sk-live-123")
}

func TestNotificationsClear(t *testing.T) {
	h := newAPI(t)

	rec, env := do(t, h, http.MethodGet, "/api/notifications", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodDelete, "/api/notifications", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, h, http.MethodGet, "/api/notifications", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, string(env.Data), "\"id\"")
}

func TestDashboardSummary(t *testing.T) {
	h := newAPI(t)

	_, _ = do(t, h, http.MethodPost, "/api/inventory", "", map[string]any{
		"name": "Widget", "quantity": 5, "price": 9.99,
	})

	rec, env := do(t, h, http.MethodGet, "/api/dashboard", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary services.DashboardSummary
	require.NoError(t, json.Unmarshal(env.Data, &summary))
	assert.Equal(t, 1, summary.TotalProducts)
}
