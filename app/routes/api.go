// Package routes wires the dashboard API onto the router. Route names follow
// the resource.action convention so URL() lookups and route:list stay
// readable.
package routes

import (
	"net/http"

	"github.com/shashiranjanraj/bizdesk/app/controllers"
	"github.com/shashiranjanraj/bizdesk/pkg/ctx"
	"github.com/shashiranjanraj/bizdesk/pkg/middleware"
	"github.com/shashiranjanraj/bizdesk/pkg/rbac"
	"github.com/shashiranjanraj/bizdesk/pkg/router"
	"github.com/shashiranjanraj/bizdesk/pkg/ws"
)

// API bundles everything the route table mounts.
type API struct {
	Auth          *controllers.AuthController
	Inventory     *controllers.InventoryController
	Orders        *controllers.OrderController
	Invoices      *controllers.InvoiceController
	Users         *controllers.UserController
	Reports       *controllers.ReportController
	Notifications *controllers.NotificationController
	Integrations  *controllers.IntegrationController

	Hub     *ws.Hub          // live dashboard updates
	GraphQL http.HandlerFunc // reporting queries
}

func RegisterAPI(r *router.Router, api *API) {
	g := r.Group("/api")

	// Auth: register and login are public, profile needs a token.
	g.Post("/auth/register", "auth.register", ctx.Wrap(api.Auth.Register))
	g.Post("/auth/login", "auth.login", ctx.Wrap(api.Auth.Login))
	g.Get("/auth/profile", "auth.profile", ctx.Wrap(api.Auth.Profile), middleware.AuthMiddleware)

	// Inventory.
	g.Get("/inventory", "inventory.index", ctx.Wrap(api.Inventory.Index))
	g.Get("/inventory/{id}", "inventory.show", ctx.Wrap(api.Inventory.Show))
	g.Post("/inventory", "inventory.store", ctx.Wrap(api.Inventory.Store))
	g.Put("/inventory/{id}", "inventory.update", ctx.Wrap(api.Inventory.Update))
	g.Delete("/inventory/{id}", "inventory.destroy", ctx.Wrap(api.Inventory.Destroy))

	// Orders.
	g.Get("/orders", "orders.index", ctx.Wrap(api.Orders.Index))
	g.Get("/orders/{id}", "orders.show", ctx.Wrap(api.Orders.Show))
	g.Post("/orders", "orders.store", ctx.Wrap(api.Orders.Store))
	g.Put("/orders/{id}", "orders.update", ctx.Wrap(api.Orders.Update))
	g.Delete("/orders/{id}", "orders.destroy", ctx.Wrap(api.Orders.Destroy))

	// Invoices.
	g.Get("/invoices", "invoices.index", ctx.Wrap(api.Invoices.Index))
	g.Get("/invoices/{id}", "invoices.show", ctx.Wrap(api.Invoices.Show))
	g.Post("/invoices", "invoices.store", ctx.Wrap(api.Invoices.Store))
	g.Put("/invoices/{id}", "invoices.update", ctx.Wrap(api.Invoices.Update))
	g.Delete("/invoices/{id}", "invoices.destroy", ctx.Wrap(api.Invoices.Destroy))

	// Users: admin only.
	admin := g.Group("", middleware.AuthMiddleware, rbac.HasRole("Admin"))
	admin.Get("/users", "users.index", ctx.Wrap(api.Users.Index))
	admin.Get("/users/{id}", "users.show", ctx.Wrap(api.Users.Show))
	admin.Post("/users", "users.store", ctx.Wrap(api.Users.Store))
	admin.Put("/users/{id}", "users.update", ctx.Wrap(api.Users.Update))
	admin.Delete("/users/{id}", "users.destroy", ctx.Wrap(api.Users.Destroy))

	// Reports and dashboard.
	g.Get("/dashboard", "dashboard", ctx.Wrap(api.Reports.Dashboard))
	g.Get("/reports/sales", "reports.sales", ctx.Wrap(api.Reports.Sales))
	g.Get("/reports/alerts", "reports.alerts", ctx.Wrap(api.Reports.Alerts))
	g.Get("/reports/orders", "reports.orders", ctx.Wrap(api.Reports.OrderStats))

	// Notifications (header bell).
	g.Get("/notifications", "notifications.index", ctx.Wrap(api.Notifications.Index))
	g.Delete("/notifications", "notifications.clear", ctx.Wrap(api.Notifications.Clear))

	// Settings: integration list is public, the API key is admin only.
	g.Get("/integrations", "integrations.index", ctx.Wrap(api.Integrations.Index))
	admin.Get("/settings/api-key", "settings.apikey.show", ctx.Wrap(api.Integrations.ShowAPIKey))
	admin.Put("/settings/api-key", "settings.apikey.store", ctx.Wrap(api.Integrations.StoreAPIKey))

	// GraphQL reporting queries.
	if api.GraphQL != nil {
		g.Post("/graphql", "graphql", api.GraphQL)
	}

	// Live updates.
	if api.Hub != nil {
		r.Get("/ws", "ws", func(w http.ResponseWriter, req *http.Request) {
			ws.Upgrade(w, req, api.Hub)
		})
	}
}
